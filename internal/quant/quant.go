// Package quant implements the codec's two scalar quantizers: frame mean
// energy (4 bits, 16 levels) and fundamental frequency Wo (6 bits, 64
// levels, log-spaced). Tables and formulas are taken verbatim from
// original_source/src/encode.c, which spec.md §4.1 leaves unspecified in
// exact value ("Implementations must reproduce the reference numeric
// values").
package quant

import "math"

const (
	// WoLevels is the number of quantized pitch levels (6 bits).
	WoLevels = 64
	// EnergyLevels is the number of quantized energy levels (4 bits).
	EnergyLevels = 16

	// PMin and PMax bound the pitch period in samples (spec.md §3).
	PMin = 20
	PMax = 160

	tau = 2.0 * math.Pi

	// WoMin and WoMax bound the quantizable fundamental frequency.
	WoMin = tau / PMax
	WoMax = tau / PMin
)

var woDiff = math.Log10(WoMax) - math.Log10(WoMin)

// EnergyTable holds the 16 quantized mean-log-energy levels, 10.0+2.5*i dB.
var EnergyTable = [EnergyLevels]float32{
	10.0, 12.5, 15.0, 17.5, 20.0, 22.5, 25.0, 27.5,
	30.0, 32.5, 35.0, 37.5, 40.0, 42.5, 45.0, 47.5,
}

// PitchTable holds the 64 quantized Wo levels (rad/sample), log-spaced
// between WoMin and WoMax.
var PitchTable = [WoLevels]float32{
	0.039270, 0.040567, 0.041907, 0.043290, 0.044720, 0.046197, 0.047723, 0.049299,
	0.050927, 0.052609, 0.054346, 0.056141, 0.057995, 0.059910, 0.061889, 0.063932,
	0.066044, 0.068225, 0.070478, 0.072806, 0.075210, 0.077694, 0.080260, 0.082910,
	0.085648, 0.088477, 0.091399, 0.094417, 0.097535, 0.100756, 0.104084, 0.107521,
	0.111072, 0.114740, 0.118529, 0.122444, 0.126488, 0.130665, 0.134980, 0.139438,
	0.144043, 0.148800, 0.153714, 0.158790, 0.164034, 0.169451, 0.175047, 0.180828,
	0.186800, 0.192969, 0.199342, 0.205925, 0.212726, 0.219751, 0.227008, 0.234505,
	0.242250, 0.250250, 0.258515, 0.267052, 0.275871, 0.284982, 0.294394, 0.304116,
}

// EncodeEnergy returns the EnergyTable index minimizing squared error
// against energy. No extrapolation: the search is over the fixed 16
// entries only.
func EncodeEnergy(energy float32) uint16 {
	best := uint16(0)
	bestErr := float32(math.MaxFloat32)
	for i, v := range EnergyTable {
		diff := v - energy
		err := diff * diff
		if err < bestErr {
			bestErr = err
			best = uint16(i)
		}
	}
	return best & 0x0F
}

// DecodeEnergy returns the table value for a 4-bit energy index.
func DecodeEnergy(index int) float32 {
	return EnergyTable[index]
}

// EncodePitch quantizes a fundamental frequency wo (rad/sample) to a 6-bit
// log-spaced index, clamped to [0, WoLevels-1]. Index 0 is reserved by the
// caller (amp package) to signal an unvoiced frame; EncodePitch itself
// does not special-case it (spec.md §4.1).
func EncodePitch(wo float32) uint16 {
	idx := int(math.Floor(WoLevels*((math.Log10(float64(wo))-math.Log10(WoMin))/woDiff) + 0.5))
	if idx < 0 {
		idx = 0
	} else if idx > WoLevels-1 {
		idx = WoLevels - 1
	}
	return uint16(idx) & 0x3F
}

// DecodePitch returns the Wo value (rad/sample) for a 6-bit pitch index.
func DecodePitch(index int) float32 {
	return PitchTable[index]
}

// Package amp implements rate-L/rate-K envelope resampling, the two-stage
// envelope VQ, Wo/voicing interpolation across the four 10ms sub-frames
// carried by one 40ms packet, and minimum-phase reconstruction (spec.md
// §4.1, §4.2, §4.5-§4.8), grounded on original_source/src/amp.c.
package amp

import (
	"math"

	"github.com/srsampson/DigiVoice/internal/codebook"
	"github.com/srsampson/DigiVoice/internal/mbest"
	"github.com/srsampson/DigiVoice/internal/model"
	"github.com/srsampson/DigiVoice/internal/quant"
	"github.com/srsampson/DigiVoice/internal/sine"
)

const (
	// K is the rate-K envelope dimension.
	K = codebook.K
	// NModels is the number of 10ms sub-frames per 40ms packet.
	NModels = 4
	maxAmp  = model.MaxAmp

	tau          = 2.0 * math.Pi
	phaseFFTSize = 128
	ns           = phaseFFTSize/2 + 1 // 65
)

// ampFreqsKHz are the AMP_K=20 fixed envelope sample frequencies, kHz.
var ampFreqsKHz = [K]float32{
	0.199816, 0.278224, 0.363464, 0.456131, 0.556873, 0.666393, 0.785457, 0.914895,
	1.055613, 1.208592, 1.374901, 1.555703, 1.752259, 1.965942, 2.198245, 2.450789,
	2.725340, 3.023815, 3.348299, 3.701056,
}

// ampPre is the postfilter's per-bin pre-emphasis, 20*log10(freq/0.3) dB.
var ampPre = [K]float32{
	-3.529820, -0.654534, 1.666803, 3.639367, 5.372698, 6.932183, 8.360023, 9.685000,
	10.927670, 12.103168, 13.223004, 14.296108, 15.329541, 16.328987, 17.299097, 18.243692,
	19.165989, 20.068680, 20.954060, 21.824089,
}

// Coder holds both the VQ search scratch state (stateless across calls
// except for its pre-allocated M-best lists) and the decoder's running
// cross-packet interpolation memory (the rate-K envelope, Wo, and voicing
// of the last decoded sub-frame).
type Coder struct {
	tables *codebook.Tables
	phase  *sine.PhaseSynth

	stage1, stage2 mbest.List

	interpSurface [NModels][K]float32
	prevRateK     [K]float32
	woLeft        float32
	voicingLeft   bool
}

// New builds a Coder. tables supplies the two VQ stage codebooks; phase
// performs the minimum-phase reconstruction used by decode.
func New(tables *codebook.Tables, phase *sine.PhaseSynth) *Coder {
	c := &Coder{tables: tables, phase: phase}
	c.woLeft = tau / 100.0
	return c
}

// EncodeFrame quantizes model into the four 16-bit index words spec.md §6
// defines as the wire format: slot 0 the VQ stage-2 row (9 bits), slot 1
// the VQ stage-1 row (9 bits), slot 2 energy (4 bits), and slot 3 pitch
// (6 bits), each tagged in its top nibble with its own bit width.
func (c *Coder) EncodeFrame(m *model.Model) [4]uint16 {
	var vec [K]float32
	resampleConstRateF(vec[:], m)

	var sum float32
	for _, v := range vec {
		sum += v
	}
	mean := sum / K

	var idx [4]uint16
	idx[2] = (4 << 12) | quant.EncodeEnergy(mean)

	var vecNoMean [K]float32
	for k := range vec {
		vecNoMean[k] = vec[k] - mean
	}

	n1, n2 := c.rateKMbestEncode(vecNoMean[:])
	idx[0] = (9 << 12) | n2
	idx[1] = (9 << 12) | n1

	if m.Voiced {
		pitch := quant.EncodePitch(m.Wo)
		if pitch == 0 {
			pitch = 1
		}
		idx[3] = (6 << 12) | pitch
	} else {
		idx[3] = 6 << 12
	}

	return idx
}

func (c *Coder) rateKMbestEncode(vecNoMean []float32) (n1, n2 uint16) {
	var prefix [mbest.Stages]uint16

	c.stage1.Reset()
	mbest.Search(c.tables.Stage1, K, codebook.M, vecNoMean, 0, prefix, &c.stage1)

	c.stage2.Reset()
	var target [K]float32
	for _, cand := range c.stage1.Items() {
		stage1Row := cand.Index[0]
		prefix[1] = stage1Row
		row := c.tables.Stage1[int(stage1Row)*K : int(stage1Row)*K+K]
		for i := 0; i < K; i++ {
			target[i] = vecNoMean[i] - row[i]
		}
		mbest.Search(c.tables.Stage2, K, codebook.M, target[:], 0, prefix, &c.stage2)
	}

	best := c.stage2.Best()
	return best.Index[1], best.Index[0]
}

// DecodeFrame reverses EncodeFrame's packing and reconstructs the
// NModels=4 10ms sub-frame models carried by one 40ms packet, linearly
// interpolating the rate-K envelope and Wo/voicing between the previous
// call's final sub-frame and this packet's decoded values.
func (c *Coder) DecodeFrame(index [4]uint16) [NModels]*model.Model {
	n2 := maskedValue(index[0])
	n1 := maskedValue(index[1])
	energyIdx := maskedValue(index[2])
	pitch := maskedValue(index[3])

	vec := rateKVecFromIndex(c.tables, n1, n2, energyIdx)

	var woRight float32
	var voicedRight bool
	if pitch == 0 {
		woRight = tau / 100.0
		voicedRight = false
	} else {
		woRight = quant.DecodePitch(pitch)
		voicedRight = true
	}

	for i := 0; i < NModels; i++ {
		weight := 1.0 - float32(i)/float32(NModels)
		for k := 0; k < K; k++ {
			c.interpSurface[i][k] = c.prevRateK[k]*weight + vec[k]*(1.0-weight)
		}
	}

	wo, ls, voiced := c.interpWoV(woRight, voicedRight)

	var models [NModels]*model.Model
	for i := 0; i < NModels; i++ {
		m := &model.Model{Wo: wo[i], L: ls[i], Voiced: voiced[i]}
		resampleRateL(m, c.interpSurface[i])
		c.determinePhase(m)
		models[i] = m
	}

	c.prevRateK = vec
	c.woLeft = woRight
	c.voicingLeft = voicedRight

	return models
}

func maskedValue(idx uint16) int {
	bits := idx >> 12
	mask := uint16((1 << bits) - 1)
	return int(idx & mask)
}

func (c *Coder) interpWoV(wo2 float32, voicedRight bool) (wo [NModels]float32, ls [NModels]int, voiced [NModels]bool) {
	silence := float32(tau / 100.0)

	switch {
	case !c.voicingLeft && !voicedRight:
		for i := range wo {
			wo[i] = silence
		}
	case c.voicingLeft && !voicedRight:
		wo[0], wo[1] = c.woLeft, c.woLeft
		wo[2], wo[3] = silence, silence
		voiced[0], voiced[1] = true, true
	case !c.voicingLeft && voicedRight:
		wo[0], wo[1] = silence, silence
		wo[2], wo[3] = wo2, wo2
		voiced[2], voiced[3] = true, true
	default:
		// weight steps 1.000, 0.975, 0.950, 0.925: a fixed 0.025 per
		// sub-frame, not 1.0/NModels (interp_Wo_v's c -= 0.025f).
		weight := float32(1.0)
		for i := 0; i < NModels; i++ {
			wo[i] = c.woLeft*weight + wo2*(1.0-weight)
			voiced[i] = true
			weight -= 0.025
		}
	}

	for i := 0; i < NModels; i++ {
		ls[i] = int(math.Floor(math.Pi / float64(wo[i])))
	}
	return
}

// resampleConstRateF resamples a model's variable-length rate-L amplitude
// envelope onto the fixed K-point log-magnitude grid ampFreqsKHz, clipping
// to a 50dB dynamic range below the frame's peak (resample_const_rate_f).
func resampleConstRateF(vec []float32, m *model.Model) {
	var amdB [maxAmp + 1]float32
	var freqsKHz [maxAmp + 1]float32

	peak := float32(-100.0)
	tval := m.Wo * 4.0 / math.Pi
	for mm := 1; mm <= m.L; mm++ {
		amdB[mm] = 20.0 * float32(math.Log10(float64(m.A[mm]+1e-16)))
		if amdB[mm] > peak {
			peak = amdB[mm]
		}
		freqsKHz[mm] = float32(mm) * tval
	}
	for mm := 1; mm <= m.L; mm++ {
		if amdB[mm] < peak-50.0 {
			amdB[mm] = peak - 50.0
		}
	}

	interpPara(vec, freqsKHz[1:m.L+1], amdB[1:m.L+1], ampFreqsKHz[:])
}

// resampleRateL is resampleConstRateF's inverse: it resamples a fixed
// K-point envelope back onto a model's variable rate-L harmonic grid,
// terminating both ends of the K-point grid at 0dB so extrapolation past
// the codebook's frequency range decays cleanly (resample_rate_L).
func resampleRateL(m *model.Model, surface [K]float32) {
	var vecTerm [K + 2]float32
	var freqsTerm [K + 2]float32

	for i := range m.A {
		m.A[i] = 0
	}

	vecTerm[0], vecTerm[K+1] = 0, 0
	freqsTerm[0], freqsTerm[K+1] = 0, 4.0
	for k := 0; k < K; k++ {
		vecTerm[k+1] = surface[k]
		freqsTerm[k+1] = ampFreqsKHz[k]
	}

	tval := m.Wo * 4.0 / math.Pi
	var freqsL [maxAmp + 1]float32
	for mm := 1; mm <= m.L; mm++ {
		freqsL[mm] = float32(mm) * tval
	}

	var amdB [maxAmp + 1]float32
	interpPara(amdB[1:m.L+1], freqsTerm[:], vecTerm[:], freqsL[1:m.L+1])

	for mm := 1; mm <= m.L; mm++ {
		m.A[mm] = float32(math.Pow(10.0, float64(amdB[mm])/20.0))
	}
}

// postFilterAmp sharpens the decoded envelope's dynamic range and
// renormalizes its energy (post_filter_amp).
func postFilterAmp(vec []float32) {
	var eBefore, eAfter float32
	for k := range vec {
		vec[k] += ampPre[k]
		eBefore += float32(math.Pow(10.0, 2.0*float64(vec[k])/20.0))

		vec[k] *= 1.5
		eAfter += float32(math.Pow(10.0, 2.0*float64(vec[k])/20.0))
	}

	gainDB := 10.0 * float32(math.Log10(float64(eAfter)/float64(eBefore)))

	for k := range vec {
		vec[k] -= gainDB
		vec[k] -= ampPre[k]
	}
}

// rateKVecFromIndex reconstructs the K-point log-magnitude envelope from a
// VQ index pair plus a mean-energy index (amp_index_to_rate_K_vec).
func rateKVecFromIndex(tables *codebook.Tables, n1, n2, energyIdx int) [K]float32 {
	var vecNoMean [K]float32
	for k := 0; k < K; k++ {
		vecNoMean[k] = tables.Stage1[n1*K+k] + tables.Stage2[n2*K+k]
	}
	postFilterAmp(vecNoMean[:])

	mean := quant.DecodeEnergy(energyIdx)

	var vec [K]float32
	for k := 0; k < K; k++ {
		vec[k] = vecNoMean[k] + mean
	}
	return vec
}

// determinePhase reconstructs model.H, the unit phasors phase_synth_zero_
// order multiplies by the excitation each sub-frame, by resampling the
// decoded amplitude envelope onto the phase FFT's frequency grid and
// feeding it through minimum-phase reconstruction (determine_phase).
func (c *Coder) determinePhase(m *model.Model) {
	var freqsL [maxAmp + 1]float32
	var amdB [maxAmp + 1]float32

	tval := m.Wo * 4.0 / math.Pi
	for mm := 1; mm <= m.L; mm++ {
		amdB[mm] = 20.0 * float32(math.Log10(float64(m.A[mm])))
		freqsL[mm] = float32(mm) * tval
	}

	var sampleFreqsKHz [ns]float32
	for i := 0; i < ns; i++ {
		sampleFreqsKHz[i] = 8.0 * float32(i) / phaseFFTSize
	}

	var gdbfk [ns]float32
	interpPara(gdbfk[:], freqsL[1:m.L+1], amdB[1:m.L+1], sampleFreqsKHz[:])

	var phase [ns]float32
	c.phase.MagToPhase(phase[:], gdbfk[:])

	tval = m.Wo * float32(phaseFFTSize) / tau
	for mm := 1; mm <= m.L; mm++ {
		b := int(math.Floor(0.5 + float64(mm)*float64(tval)))
		if b < 0 {
			b = 0
		} else if b >= ns {
			b = ns - 1
		}
		a := float64(phase[b])
		m.H[mm] = complex64(complex(math.Cos(a), math.Sin(a)))
	}
}

// interpPara fits a 3-point parabola through consecutive (xp[k], yp[k])
// knots and evaluates it at each x, advancing the knot window k forward as
// x increases (interp_para). xp and yp must have the same length, at
// least 3; x is assumed non-decreasing.
func interpPara(result, xp, yp, x []float32) {
	np := len(xp)
	k := 0
	for i, xi := range x {
		for k < np-3 && xp[k+1] < xi {
			k++
		}

		x1, y1 := xp[k], yp[k]
		x2, y2 := xp[k+1], yp[k+1]
		x3, y3 := xp[k+2], yp[k+2]

		a := ((y3-y2)/(x3-x2) - (y2-y1)/(x2-x1)) / (x3 - x1)
		b := ((y3-y2)/(x3-x2)*(x2-x1) + (y2-y1)/(x2-x1)*(x3-x2)) / (x3 - x1)

		result[i] = a*(xi-x2)*(xi-x2) + b*(xi-x2) + y2
	}
}

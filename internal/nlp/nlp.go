// Package nlp implements the non-linear pitch estimator (spec.md §4.3),
// grounded verbatim on original_source/src/nlp.c: square the frame, notch
// out DC, low-pass and decimate, FFT the result, and pick the fundamental
// from the global peak refined by a sub-multiple search.
package nlp

import (
	"fmt"

	"github.com/srsampson/DigiVoice/internal/fft"
)

const (
	// FS is the sample rate in Hz.
	FS = 8000
	// FFTSize is the FFT length used for the pitch spectrum.
	FFTSize = 512
	// MPitch is the pitch analysis window length in samples.
	MPitch = 320
	// NSamp is the number of new samples per 10ms frame.
	NSamp = 80
	// PMin and PMax bound the pitch period in samples.
	PMin = 20
	PMax = 160
	// dec is the decimation factor before the pitch FFT (len(cosWindow) == MPitch/dec).
	dec = 5
	// ntap is the low-pass FIR filter length.
	ntap = 48

	// coeff is the DC notch filter's single pole. original_source/header/nlp.h,
	// which defines it, is not part of the retrieved reference material; 0.95
	// is this implementation's documented choice (DESIGN.md).
	coeff = 0.95
	// cnlp sets the sub-multiple acceptance threshold as a fraction of the
	// global peak. Same caveat as coeff.
	cnlp = 0.3
	// minBin floors the sub-multiple search bin, chosen to match the global
	// peak search's own lower bound (FFTSize*dec/PMax).
	minBin = FFTSize * dec / PMax
)

// cosWindow is the MPitch/dec-point raised-cosine window applied to the
// decimated, filtered signal before the pitch FFT (Nlp_cosw in the original).
var cosWindow = [MPitch / dec]float32{
	0.000000, 0.002485, 0.009914, 0.022214, 0.039262, 0.060889, 0.086881, 0.116978,
	0.150882, 0.188255, 0.228727, 0.271895, 0.317330, 0.364580, 0.413176, 0.462635,
	0.512465, 0.562172, 0.611260, 0.659243, 0.705644, 0.750000, 0.791872, 0.830843,
	0.866526, 0.898566, 0.926645, 0.950484, 0.969846, 0.984539, 0.994415, 0.999378,
	0.999378, 0.994415, 0.984539, 0.969846, 0.950484, 0.926645, 0.898566, 0.866526,
	0.830843, 0.791872, 0.750000, 0.705644, 0.659243, 0.611261, 0.562172, 0.512465,
	0.462635, 0.413176, 0.364580, 0.317329, 0.271895, 0.228727, 0.188255, 0.150882,
	0.116978, 0.086881, 0.060889, 0.039262, 0.022214, 0.009914, 0.002485, 0.000000,
}

// lowPassFIR is the 48-tap 600Hz low-pass filter applied before decimation
// (Nlp_fir in the original).
var lowPassFIR = [ntap]float32{
	-0.001082, -0.001101, -0.000928, -0.000423, 0.000550, 0.002003, 0.003706, 0.005145,
	0.005592, 0.004304, 0.000803, -0.004820, -0.011706, -0.018199, -0.022065, -0.020921,
	-0.012809, 0.003220, 0.026684, 0.055521, 0.086306, 0.114802, 0.136742, 0.148676,
	0.148676, 0.136742, 0.114802, 0.086306, 0.055521, 0.026684, 0.003220, -0.012809,
	-0.020921, -0.022065, -0.018199, -0.011706, -0.004820, 0.000803, 0.004304, 0.005592,
	0.005145, 0.003706, 0.002003, 0.000550, -0.000423, -0.000928, -0.001101, -0.001082,
}

// Estimator holds the NLP pitch estimator's running state: the
// squared/filtered history buffer, the notch filter's two memories, the
// FIR delay line, and the previous frame's pitch (for tracking continuity).
// The zero value is not usable; call New.
type Estimator struct {
	plan *fft.Plan // must be a 512-point plan

	sq     [MPitch]float32
	memX   float32
	memY   float32
	firMem [ntap]float32
	prevF0 int // Hz

	// scratch, reused every call, no per-frame allocation.
	spec   [FFTSize]complex128
	mag    [FFTSize]float64
	fwReal [FFTSize]float64
}

// New builds an Estimator using plan for its pitch spectrum. plan must have
// been created with fft.NewPlan(FFTSize).
func New(plan *fft.Plan) (*Estimator, error) {
	if plan.Size() != FFTSize {
		return nil, fmt.Errorf("nlp: plan size %d, want %d", plan.Size(), FFTSize)
	}
	return &Estimator{plan: plan, prevF0: FS / PMin}, nil
}

// Estimate returns the pitch period in samples for the MPitch-sample analysis
// window sn (sn[MPitch-NSamp:] is this frame's new audio; the rest is history
// carried from the previous call). The result is clamped to [PMin, PMax].
func (e *Estimator) Estimate(sn []float32) int {
	for i := MPitch - NSamp; i < MPitch; i++ {
		e.sq[i] = sn[i] * sn[i]
	}

	for i := MPitch - NSamp; i < MPitch; i++ {
		notch := (e.sq[i] - e.memX) + coeff*e.memY
		e.memX = e.sq[i]
		e.memY = notch
		e.sq[i] = notch + 1.0
	}

	for i := MPitch - NSamp; i < MPitch; i++ {
		copy(e.firMem[:ntap-1], e.firMem[1:])
		e.firMem[ntap-1] = e.sq[i]

		var acc float32
		for j := 0; j < ntap; j++ {
			acc += e.firMem[j] * lowPassFIR[j]
		}
		e.sq[i] = acc
	}

	for i := range e.fwReal {
		e.fwReal[i] = 0
	}
	for i := 0; i < MPitch/dec; i++ {
		e.fwReal[i] = float64(e.sq[dec*i] * cosWindow[i])
	}

	for i := range e.spec {
		e.spec[i] = complex(e.fwReal[i], 0)
	}
	e.plan.Forward(e.spec[:], e.spec[:])
	for i := range e.mag {
		re := real(e.spec[i])
		im := imag(e.spec[i])
		e.mag[i] = re*re + im*im
	}

	gmax := 0.0
	gmaxBin := FFTSize * dec / PMax
	lo := FFTSize * dec / PMax
	hi := FFTSize * dec / PMin
	for i := lo; i <= hi; i++ {
		if e.mag[i] > gmax {
			gmax = e.mag[i]
			gmaxBin = i
		}
	}

	f0 := e.postProcessSubMultiples(gmax, gmaxBin)
	e.prevF0 = f0

	copy(e.sq[:MPitch-NSamp], e.sq[NSamp:])

	period := FS / f0
	if period < PMin {
		period = PMin
	} else if period > PMax {
		period = PMax
	}
	return period
}

func (e *Estimator) postProcessSubMultiples(gmax float64, gmaxBin int) int {
	cmaxBin := gmaxBin
	prevF0Bin := e.prevF0 * (FFTSize * dec) / FS

	for mult := 2; gmaxBin/mult >= minBin; mult++ {
		b := gmaxBin / mult
		bmin := int(0.8 * float64(b))
		bmax := int(1.2 * float64(b))
		if bmin < minBin {
			bmin = minBin
		}
		if bmax >= FFTSize {
			bmax = FFTSize - 1
		}

		var thresh float64
		if prevF0Bin > bmin && prevF0Bin < bmax {
			thresh = cnlp * gmax * 0.5
		} else {
			thresh = cnlp * gmax
		}

		lmax := 0.0
		lmaxBin := bmin
		for i := bmin; i <= bmax; i++ {
			if e.mag[i] > lmax {
				lmax = e.mag[i]
				lmaxBin = i
			}
		}

		if lmax > thresh && lmaxBin > 0 && lmaxBin < FFTSize-1 {
			if lmax > e.mag[lmaxBin-1] && lmax > e.mag[lmaxBin+1] {
				cmaxBin = lmaxBin
			}
		}
	}

	f0 := cmaxBin * FS / (FFTSize * dec)
	if f0 <= 0 {
		f0 = 1
	}
	return f0
}

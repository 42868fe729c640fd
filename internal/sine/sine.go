// Package sine implements harmonic analysis, minimum-phase reconstruction,
// and overlap-add synthesis (spec.md §4.4, §4.8, §4.9), grounded on
// original_source/src/sine.c. The spectral tables it uses live in tables.go.
package sine

import (
	"fmt"
	"math"

	"github.com/srsampson/DigiVoice/internal/fft"
	"github.com/srsampson/DigiVoice/internal/model"
	"github.com/srsampson/DigiVoice/internal/nlp"
	"github.com/srsampson/DigiVoice/internal/rand"
)

const (
	fftSize      = 512
	phaseFFTSize = 128
	mPitch       = 320
	nSamp        = 80
	maxAmp       = model.MaxAmp

	tau     = 2.0 * math.Pi
	pMin    = 20
	pMax    = 160
	nw      = 279                    // analysis window span
	ns      = phaseFFTSize/2 + 1     // 65, non-redundant cepstrum half
	scale   = 20.0 / math.Ln10       // converts dB cepstrum back to radians
	fractPi = 0.9497 * math.Pi       // harmonic-count rounding guard
	rndMax  = 32767.0
	sixty   = tau * 60.0 / 8000.0
	bgThresh = 40.0
	bgBeta   = 0.1
	bgMargin = 6.0
	oneOnR   = 1.0 / (tau / fftSize) // FFT bins per rad/sample
	vThresh  = 6.0                  // voicing SNR threshold, dB
)

// Analyzer extracts a Model from each new 80-sample speech block. It owns
// the 320-sample pitch analysis history and the 512-point real FFT used
// for the speech spectrum; the nlp.Estimator it wraps owns its own history.
type Analyzer struct {
	fftr *fft.Plan // size fftSize, real-input

	sn  [mPitch]float32
	sw  [fftSize/2 + 1]complex128
	est *nlp.Estimator

	swReal [fftSize]float64
}

// NewAnalyzer builds an Analyzer. fftr must have been created with
// fft.NewPlan(512).
func NewAnalyzer(fftr *fft.Plan) (*Analyzer, error) {
	if fftr.Size() != fftSize {
		return nil, fmt.Errorf("sine: analyzer fft size %d, want %d", fftr.Size(), fftSize)
	}
	pitchPlan, err := fft.NewPlan(fftSize)
	if err != nil {
		return nil, err
	}
	est, err := nlp.New(pitchPlan)
	if err != nil {
		return nil, err
	}
	return &Analyzer{fftr: fftr, est: est}, nil
}

// Analyze consumes nSamp new speech samples and returns the harmonic model
// for the resulting frame.
func (a *Analyzer) Analyze(speech []int16) (*model.Model, error) {
	if len(speech) != nSamp {
		return nil, fmt.Errorf("sine: Analyze wants %d samples, got %d", nSamp, len(speech))
	}

	copy(a.sn[:mPitch-nSamp], a.sn[nSamp:])
	for i := 0; i < nSamp; i++ {
		a.sn[mPitch-nSamp+i] = float32(speech[i])
	}

	for i := range a.swReal {
		a.swReal[i] = 0
	}
	for i := 0; i < nw/2; i++ {
		half := i + mPitch/2
		a.swReal[i] = float64(a.sn[half] * analysisWindow[half])
	}
	for i := 0; i < nw/2; i++ {
		half := i + mPitch/2 - nw/2
		a.swReal[fftSize-nw/2+i] = float64(a.sn[half] * analysisWindow[half])
	}

	a.fftr.RealForward(a.swReal[:], a.sw[:])

	m := &model.Model{}
	period := a.est.Estimate(a.sn[:])
	m.Wo = tau / float32(period)
	m.L = int(math.Pi / float64(m.Wo))

	twoStagePitchRefinement(m, a.sw[:])
	estimateAmplitudes(m, a.sw[:])
	estVoicingMBE(m, a.sw[:])

	return m, nil
}

func twoStagePitchRefinement(m *model.Model, sw []complex128) {
	tval := tau / m.Wo
	hsPitchRefinement(m, sw, tval-5.0, tval+5.0, 1.0)

	tval = tau / m.Wo
	hsPitchRefinement(m, sw, tval-1.0, tval+1.0, 0.25)

	if m.Wo < tau/pMax {
		m.Wo = tau / pMax
	} else if m.Wo > tau/pMin {
		m.Wo = tau / pMin
	}

	m.L = int(math.Floor(math.Pi / float64(m.Wo)))
	if float64(m.Wo)*float64(m.L) >= fractPi {
		m.L--
	}
}

func hsPitchRefinement(m *model.Model, sw []complex128, pmin, pmax, pstep float32) {
	m.L = int(math.Pi / float64(m.Wo))

	wom := m.Wo
	em := float32(0)

	for pitch := pmin; pitch <= pmax; pitch += pstep {
		var e float32
		wo := tau / pitch
		tval := wo * oneOnR

		for l := 1; l <= m.L; l++ {
			b := int(float32(l)*tval + 0.5)
			if b < 0 {
				b = 0
			} else if b >= len(sw) {
				b = len(sw) - 1
			}
			e += cnorm(sw[b])
		}

		if e > em {
			em = e
			wom = wo
		}
	}

	m.Wo = wom
}

func estimateAmplitudes(m *model.Model, sw []complex128) {
	amp := m.Wo * oneOnR

	for i := range m.A {
		m.A[i] = 0
	}

	for mm := 1; mm <= m.L; mm++ {
		lo := int((float32(mm)-0.5)*amp + 0.5)
		hi := int((float32(mm)+0.5)*amp + 0.5)
		if lo < 0 {
			lo = 0
		}
		if hi > len(sw) {
			hi = len(sw)
		}

		var den float32
		for i := lo; i < hi; i++ {
			den += cnorm(sw[i])
		}
		m.A[mm] = float32(math.Sqrt(float64(den)))
	}
}

func estVoicingMBE(m *model.Model, sw []complex128) {
	sig := float32(1e-4)
	for l := 1; l <= m.L/4; l++ {
		sig += m.A[l] * m.A[l]
	}

	wo := m.Wo * fftSize / tau
	errSum := float32(1e-4)

	for l := 1; l <= m.L/4; l++ {
		var am complex128
		var den float32

		al := int(math.Ceil(float64(float32(l)-0.5) * float64(wo)))
		bl := int(math.Ceil(float64(float32(l)+0.5) * float64(wo)))
		offset := int(fftSize/2 - float32(l)*wo + 0.5)

		for mm := al; mm < bl; mm++ {
			idx := offset + mm
			if idx < 0 || idx >= len(leakageKernel) || mm < 0 || mm >= len(sw) {
				continue
			}
			k := float64(leakageKernel[idx])
			am += sw[mm] * complex(k, 0)
			den += leakageKernel[idx] * leakageKernel[idx]
		}
		if den != 0 {
			am /= complex(float64(den), 0)
		}

		for mm := al; mm < bl; mm++ {
			idx := offset + mm
			if idx < 0 || idx >= len(leakageKernel) || mm < 0 || mm >= len(sw) {
				continue
			}
			diff := sw[mm] - am*complex(float64(leakageKernel[idx]), 0)
			errSum += float32(real(diff)*real(diff) + imag(diff)*imag(diff))
		}
	}

	snr := 10.0 * math.Log10(float64(sig)/float64(errSum))
	m.Voiced = snr > vThresh

	elow := float32(1e-4)
	ehigh := float32(1e-4)
	for l := 1; l <= m.L/2; l++ {
		elow += m.A[l] * m.A[l]
	}
	for l := m.L / 2; l <= m.L; l++ {
		ehigh += m.A[l] * m.A[l]
	}
	eratio := 10.0 * math.Log10(float64(elow)/float64(ehigh))

	if !m.Voiced && eratio > 10.0 {
		m.Voiced = true
	}
	if m.Voiced {
		if eratio < -10.0 {
			m.Voiced = false
		}
		if eratio < -4.0 && m.Wo <= sixty {
			m.Voiced = false
		}
	}
}

func cnorm(c complex128) float32 {
	re := float32(real(c))
	im := float32(imag(c))
	return re*re + im*im
}

// PhaseSynth reconstructs a minimum-phase spectrum from a log-magnitude
// envelope via real-cepstrum folding (spec.md §4.8). It owns the 128-point
// FFT plan the transform needs.
type PhaseSynth struct {
	plan *fft.Plan // size phaseFFTSize

	sdb [phaseFFTSize]complex128
	cf  [phaseFFTSize]complex128
	c   [phaseFFTSize]complex128
}

// NewPhaseSynth builds a PhaseSynth. plan must have been created with
// fft.NewPlan(128).
func NewPhaseSynth(plan *fft.Plan) (*PhaseSynth, error) {
	if plan.Size() != phaseFFTSize {
		return nil, fmt.Errorf("sine: phase fft size %d, want %d", plan.Size(), phaseFFTSize)
	}
	return &PhaseSynth{plan: plan}, nil
}

// MagToPhase derives the ns=65 minimum phase values for a dB-scaled
// log-magnitude envelope mag (also ns entries) and writes them into phase.
func (p *PhaseSynth) MagToPhase(phase []float32, mag []float32) {
	p.sdb[0] = complex(float64(mag[0]), 0)
	for i := 1; i < ns; i++ {
		v := complex(float64(mag[i]), 0)
		p.sdb[i] = v
		p.sdb[phaseFFTSize-i] = v
	}

	p.plan.Inverse(p.sdb[:], p.c[:])

	for i := range p.cf {
		p.cf[i] = 0
	}
	p.cf[0] = p.c[0]
	for i := 1; i < ns-1; i++ {
		p.cf[i] = p.c[i] + p.c[phaseFFTSize-i]
	}
	p.cf[ns-1] = p.c[ns-1]

	p.plan.Forward(p.cf[:], p.cf[:])

	for i := 0; i < ns; i++ {
		phase[i] = float32(imag(p.cf[i]) / scale)
	}
}

// Synthesizer reconstructs 80-sample PCM blocks from a harmonic Model via
// zero-order-hold phase synthesis, a background-noise postfilter, and
// overlap-add resynthesis (spec.md §4.9), grounded on sine.c's
// phase_synth_zero_order/postfilter/synthesize/synthesize_one_frame.
type Synthesizer struct {
	fftri *fft.Plan // size fftSize, real-output inverse

	sn    [nSamp * 2]float32
	exPhase float32
	bgEst   float32

	swFull [fftSize/2 + 1]complex128
	swReal [fftSize]float64
	out    [nSamp]int16
}

// NewSynthesizer builds a Synthesizer. fftri must have been created with
// fft.NewPlan(512).
func NewSynthesizer(fftri *fft.Plan) (*Synthesizer, error) {
	if fftri.Size() != fftSize {
		return nil, fmt.Errorf("sine: synthesizer fft size %d, want %d", fftri.Size(), fftSize)
	}
	return &Synthesizer{fftri: fftri}, nil
}

// PhaseSynthZeroOrder fills in m.Phi from m.H (populated by the amplitude
// envelope's determine_phase step) and the running excitation phase,
// advancing the phase tracker by one frame.
func (s *Synthesizer) PhaseSynthZeroOrder(m *model.Model, rng *rand.Source) {
	s.exPhase += m.Wo*nSamp - float32(math.Floor(float64(s.exPhase)/tau+0.5))*tau

	for mm := 1; mm <= m.L; mm++ {
		var ex complex64
		if m.Voiced {
			a := float64(mm) * float64(s.exPhase)
			ex = complex64(complex(math.Cos(a), math.Sin(a)))
		} else {
			a := tau * float64(rng.Next()) / rndMax
			ex = complex64(complex(math.Cos(a), math.Sin(a)))
		}

		ex *= m.H[mm]
		m.Phi[mm] = float32(math.Atan2(float64(imag(ex)), float64(real(ex))+1e-12))
	}
}

// Postfilter randomizes the phase of low-amplitude harmonics in voiced
// frames and tracks a running background-noise energy estimate, matching
// sine.c's postfilter().
func (s *Synthesizer) Postfilter(m *model.Model, rng *rand.Source) {
	e := float32(1e-12)
	for i := 1; i <= m.L; i++ {
		e += m.A[i] * m.A[i]
	}
	e = 10.0 * float32(math.Log10(float64(e)/float64(m.L)))

	if e < bgThresh && !m.Voiced {
		s.bgEst = s.bgEst*(1.0-bgBeta) + e*bgBeta
	}

	thresh := float32(math.Pow(10.0, float64((s.bgEst+bgMargin)/20.0)))

	if m.Voiced {
		for i := 1; i <= m.L; i++ {
			if m.A[i] < thresh {
				m.Phi[i] = tau * float32(rng.Next()) / rndMax
			}
		}
	}
}

// Synthesize overlap-adds one frame of harmonic synthesis into the
// rolling nSamp*2 output buffer and returns the next nSamp samples as
// clamped, gain-adjusted int16 PCM.
func (s *Synthesizer) Synthesize(m *model.Model) []int16 {
	copy(s.sn[:nSamp-1], s.sn[nSamp:2*nSamp-1])
	s.sn[nSamp-1] = 0

	for i := range s.swFull {
		s.swFull[i] = 0
	}

	wo := m.Wo * fftSize / tau
	for l := 1; l <= m.L; l++ {
		b := int(float32(l)*wo + 0.5)
		if b > fftSize/2-1 {
			b = fftSize/2 - 1
		}
		a := float64(m.Phi[l])
		s.swFull[b] = complex(math.Cos(a), math.Sin(a)) * complex(float64(m.A[l]), 0)
	}

	s.fftri.RealInverse(s.swFull[:], s.swReal[:])

	for i := 0; i < nSamp-1; i++ {
		s.sn[i] += float32(s.swReal[fftSize-nSamp+1+i]) * parzenWindow[i]
	}
	for i, j := nSamp-1, 0; i < nSamp*2; i, j = i+1, j+1 {
		s.sn[i] = float32(s.swReal[j]) * parzenWindow[i]
	}

	maxSample := float32(0)
	for i := 0; i < nSamp; i++ {
		if s.sn[i] > maxSample {
			maxSample = s.sn[i]
		}
	}
	over := maxSample / 30000.0
	gain := float32(1)
	if over > 1.0 {
		gain = 1.0 / (over * over)
	}

	for i := 0; i < nSamp; i++ {
		v := s.sn[i] * gain * 1.5 // this codec's fixed synthesis makeup gain
		switch {
		case v > 32760.0:
			s.out[i] = 32760
		case v < -32760.0:
			s.out[i] = -32760
		default:
			s.out[i] = int16(v)
		}
	}
	return s.out[:]
}

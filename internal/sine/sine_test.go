package sine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srsampson/DigiVoice/internal/fft"
	"github.com/srsampson/DigiVoice/internal/model"
	"github.com/srsampson/DigiVoice/internal/rand"
)

func newAnalyzer(t *testing.T) *Analyzer {
	plan, err := fft.NewPlan(fftSize)
	require.NoError(t, err)
	a, err := NewAnalyzer(plan)
	require.NoError(t, err)
	return a
}

func toneBlock(periodSamples, n int) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = int16(8000 * math.Sin(2*math.Pi*float64(i)/float64(periodSamples)))
	}
	return out
}

func TestNewAnalyzer_RejectsWrongFFTSize(t *testing.T) {
	plan, err := fft.NewPlan(128)
	require.NoError(t, err)
	_, err = NewAnalyzer(plan)
	assert.Error(t, err)
}

func TestAnalyze_RejectsWrongBlockSize(t *testing.T) {
	a := newAnalyzer(t)
	_, err := a.Analyze(make([]int16, 40))
	assert.Error(t, err)
}

func TestAnalyze_ModelInvariants(t *testing.T) {
	a := newAnalyzer(t)
	tone := toneBlock(80, nSamp*20)

	for start := 0; start+nSamp <= len(tone); start += nSamp {
		m, err := a.Analyze(tone[start : start+nSamp])
		require.NoError(t, err)

		assert.GreaterOrEqual(t, m.Wo, float32(tau/pMax))
		assert.LessOrEqual(t, m.Wo, float32(tau/pMin))
		assert.GreaterOrEqual(t, m.L, 1)
		assert.LessOrEqual(t, m.L, maxAmp)
		for l := 1; l <= m.L; l++ {
			assert.GreaterOrEqual(t, m.A[l], float32(0))
		}
	}
}

func TestPhaseSynth_RejectsWrongFFTSize(t *testing.T) {
	plan, err := fft.NewPlan(fftSize)
	require.NoError(t, err)
	_, err = NewPhaseSynth(plan)
	assert.Error(t, err)
}

func TestMagToPhase_FlatEnvelopeIsZeroPhase(t *testing.T) {
	plan, err := fft.NewPlan(phaseFFTSize)
	require.NoError(t, err)
	p, err := NewPhaseSynth(plan)
	require.NoError(t, err)

	mag := make([]float32, ns)
	phase := make([]float32, ns)
	p.MagToPhase(phase, mag)

	for i := range phase {
		assert.InDelta(t, 0, phase[i], 1e-6)
	}
}

func TestNewSynthesizer_RejectsWrongFFTSize(t *testing.T) {
	plan, err := fft.NewPlan(phaseFFTSize)
	require.NoError(t, err)
	_, err = NewSynthesizer(plan)
	assert.Error(t, err)
}

func TestSynthesize_OutputIsClampedAndSized(t *testing.T) {
	plan, err := fft.NewPlan(fftSize)
	require.NoError(t, err)
	s, err := NewSynthesizer(plan)
	require.NoError(t, err)
	rng := rand.New()

	m := &model.Model{Wo: float32(tau / 80.0), L: 50, Voiced: true}
	for l := 1; l <= m.L; l++ {
		m.A[l] = 5000
		m.H[l] = 1
	}

	for i := 0; i < 8; i++ {
		s.PhaseSynthZeroOrder(m, rng)
		s.Postfilter(m, rng)
		out := s.Synthesize(m)
		assert.Len(t, out, nSamp)
		for _, v := range out {
			assert.LessOrEqual(t, v, int16(32760))
			assert.GreaterOrEqual(t, v, int16(-32760))
		}
	}
}

func TestSynthesize_SilenceIsSilence(t *testing.T) {
	plan, err := fft.NewPlan(fftSize)
	require.NoError(t, err)
	s, err := NewSynthesizer(plan)
	require.NoError(t, err)
	rng := rand.New()

	m := &model.Model{Wo: float32(tau / 100.0), L: 1, Voiced: false}

	for i := 0; i < 4; i++ {
		s.PhaseSynthZeroOrder(m, rng)
		s.Postfilter(m, rng)
		out := s.Synthesize(m)
		for _, v := range out {
			assert.Equal(t, int16(0), v)
		}
	}
}

package amp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/srsampson/DigiVoice/internal/codebook"
	"github.com/srsampson/DigiVoice/internal/fft"
	"github.com/srsampson/DigiVoice/internal/model"
	"github.com/srsampson/DigiVoice/internal/sine"
)

func newCoder(t *testing.T) *Coder {
	plan, err := fft.NewPlan(phaseFFTSize)
	require.NoError(t, err)
	phase, err := sine.NewPhaseSynth(plan)
	require.NoError(t, err)
	return New(codebook.Default(), phase)
}

func TestMaskedValue_UnpacksWidthAndPayload(t *testing.T) {
	assert.Equal(t, 0, maskedValue(9<<12|0))
	assert.Equal(t, 511, maskedValue(9<<12|511))
	assert.Equal(t, 15, maskedValue(4<<12|15))
	assert.Equal(t, 63, maskedValue(6<<12|63))
}

func TestInterpPara_ExactOnLinearFunction(t *testing.T) {
	xp := []float32{0, 1, 2, 3, 4}
	yp := []float32{0, 2, 4, 6, 8} // y = 2x, any parabola through collinear points is exact
	x := []float32{0.5, 1.5, 2.5, 3.5}
	result := make([]float32, len(x))

	interpPara(result, xp, yp, x)

	for i, xi := range x {
		assert.InDelta(t, 2*xi, result[i], 1e-4)
	}
}

func TestInterpPara_ExactOnKnownQuadratic(t *testing.T) {
	// y = x^2, sampled at integer knots; a 3-point parabola through any 3
	// consecutive knots of a quadratic reproduces it exactly everywhere.
	xp := []float32{0, 1, 2, 3, 4, 5}
	yp := make([]float32, len(xp))
	for i, xv := range xp {
		yp[i] = xv * xv
	}
	x := []float32{0.25, 1.75, 3.1, 4.9}
	result := make([]float32, len(x))

	interpPara(result, xp, yp, x)

	for i, xi := range x {
		assert.InDelta(t, xi*xi, result[i], 1e-3)
	}
}

func TestEncodeFrame_IndexBitWidths(t *testing.T) {
	c := newCoder(t)
	m := &model.Model{Wo: float32(tau / 80.0), L: 40, Voiced: true}
	for l := 1; l <= m.L; l++ {
		m.A[l] = 1000
	}

	idx := c.EncodeFrame(m)

	assert.Equal(t, uint16(9), idx[0]>>12)
	assert.Equal(t, uint16(9), idx[1]>>12)
	assert.Equal(t, uint16(4), idx[2]>>12)
	assert.Equal(t, uint16(6), idx[3]>>12)
	assert.LessOrEqual(t, maskedValue(idx[0]), codebook.M-1)
	assert.LessOrEqual(t, maskedValue(idx[1]), codebook.M-1)
}

func TestEncodeFrame_UnvoicedPitchIsZero(t *testing.T) {
	c := newCoder(t)
	m := &model.Model{Wo: float32(tau / 80.0), L: 10, Voiced: false}
	for l := 1; l <= m.L; l++ {
		m.A[l] = 500
	}

	idx := c.EncodeFrame(m)
	assert.Equal(t, 0, maskedValue(idx[3]))
}

func TestDecodeFrame_ProducesFourModels(t *testing.T) {
	c := newCoder(t)
	models := c.DecodeFrame([4]uint16{9 << 12, 9 << 12, 4 << 12, 6<<12 | 30})

	assert.Len(t, models, NModels)
	for _, m := range models {
		require.NotNil(t, m)
		assert.GreaterOrEqual(t, m.L, 1)
		assert.LessOrEqual(t, m.L, maxAmp)
	}
}

func TestDecodeFrame_SilenceStaysUnvoiced(t *testing.T) {
	c := newCoder(t)
	models := c.DecodeFrame([4]uint16{9 << 12, 9 << 12, 4 << 12, 6 << 12})

	for _, m := range models {
		assert.False(t, m.Voiced)
	}
}

func TestEncodeFrame_IndexesStableAcrossCalls(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		plan, err := fft.NewPlan(phaseFFTSize)
		if err != nil {
			rt.Fatal(err)
		}
		phase, err := sine.NewPhaseSynth(plan)
		if err != nil {
			rt.Fatal(err)
		}
		c := New(codebook.Default(), phase)

		m := &model.Model{
			Wo:     float32(tau / float64(rapid.IntRange(20, 160).Draw(rt, "period"))),
			L:      rapid.IntRange(10, 80).Draw(rt, "L"),
			Voiced: rapid.Bool().Draw(rt, "voiced"),
		}
		for l := 1; l <= m.L; l++ {
			m.A[l] = rapid.Float32Range(1, 5000).Draw(rt, "amp")
		}

		a := c.EncodeFrame(m)
		b := c.EncodeFrame(m)
		assert.Equal(rt, a, b)
	})
}

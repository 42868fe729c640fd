package digivoice

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toneFrame(periodSamples int, n int) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = int16(10000 * math.Sin(2*math.Pi*float64(i)/float64(periodSamples)))
	}
	return out
}

func TestNewEncoder_Succeeds(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)
	require.NotNil(t, enc)
	assert.NoError(t, enc.Close())
}

func TestNewDecoder_Succeeds(t *testing.T) {
	dec, err := NewDecoder()
	require.NoError(t, err)
	require.NotNil(t, dec)
	assert.NoError(t, dec.Close())
}

func TestEncode_ProducesFourIndexWords(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	tone := toneFrame(80, SamplesPerFrame()*5)
	var pcm [320]int16
	var idx [4]uint16

	for start := 0; start+SamplesPerFrame() <= len(tone); start += SamplesPerFrame() {
		copy(pcm[:], tone[start:start+SamplesPerFrame()])
		enc.Encode(&idx, &pcm)

		assert.Equal(t, uint16(9), idx[0]>>12)
		assert.Equal(t, uint16(9), idx[1]>>12)
		assert.Equal(t, uint16(4), idx[2]>>12)
		assert.Equal(t, uint16(6), idx[3]>>12)
	}
}

func TestEncodeDecode_RoundTripProducesBoundedPCM(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)
	dec, err := NewDecoder()
	require.NoError(t, err)

	tone := toneFrame(80, SamplesPerFrame()*5)
	var in, out [320]int16
	var idx [4]uint16

	for start := 0; start+SamplesPerFrame() <= len(tone); start += SamplesPerFrame() {
		copy(in[:], tone[start:start+SamplesPerFrame()])
		enc.Encode(&idx, &in)
		dec.Decode(&out, &idx)

		for _, v := range out {
			assert.LessOrEqual(t, v, int16(32760))
			assert.GreaterOrEqual(t, v, int16(-32760))
		}
	}
}

func TestDecodeEnergy_PositiveForEncodedTone(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)
	dec, err := NewDecoder()
	require.NoError(t, err)

	tone := toneFrame(80, SamplesPerFrame())
	var pcm [320]int16
	copy(pcm[:], tone)
	var idx [4]uint16
	enc.Encode(&idx, &pcm)

	energy := dec.DecodeEnergy(&idx)
	assert.Greater(t, energy, float32(0))
}

func TestWireRoundTrip(t *testing.T) {
	idx := [4]uint16{9<<12 | 123, 9<<12 | 45, 4<<12 | 6, 6<<12 | 30}
	b := EncodeWire(idx)
	got := DecodeWire(b)
	assert.Equal(t, idx, got)
}

func TestErrResourceInit_IsWrappable(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", ErrResourceInit)
	assert.True(t, errors.Is(wrapped, ErrResourceInit))
}

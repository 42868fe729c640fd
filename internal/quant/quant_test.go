package quant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestEncodeEnergy_TableValuesRoundTrip(t *testing.T) {
	for i, v := range EnergyTable {
		assert.Equal(t, uint16(i), EncodeEnergy(v))
	}
}

func TestEncodeEnergy_NearestNeighbor(t *testing.T) {
	// Halfway between level 0 (10.0) and level 1 (12.5): ties go to
	// whichever the float comparison favors, but comfortably inside
	// either half must land on that half's level.
	assert.Equal(t, uint16(0), EncodeEnergy(10.1))
	assert.Equal(t, uint16(1), EncodeEnergy(12.4))
	assert.Equal(t, uint16(EnergyLevels-1), EncodeEnergy(1000.0))
	assert.Equal(t, uint16(0), EncodeEnergy(-1000.0))
}

func TestEncodeEnergy_AlwaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := rapid.Float32Range(-200, 200).Draw(t, "energy")
		idx := EncodeEnergy(e)
		assert.Less(t, idx, uint16(EnergyLevels))
	})
}

func TestEncodePitch_TableValuesRoundTrip(t *testing.T) {
	for i, v := range PitchTable {
		assert.Equal(t, uint16(i), EncodePitch(v))
	}
}

func TestEncodePitch_ClampsOutOfRange(t *testing.T) {
	assert.Equal(t, uint16(0), EncodePitch(WoMin/2))
	assert.Equal(t, uint16(WoLevels-1), EncodePitch(WoMax*2))
}

func TestEncodePitch_AlwaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		wo := rapid.Float32Range(0.001, 1.0).Draw(t, "wo")
		idx := EncodePitch(wo)
		assert.Less(t, idx, uint16(WoLevels))
	})
}

func TestPitchTable_Monotonic(t *testing.T) {
	for i := 1; i < len(PitchTable); i++ {
		assert.Greater(t, PitchTable[i], PitchTable[i-1])
	}
}

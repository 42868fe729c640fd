package mbest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestSearch_FindsExactMatch(t *testing.T) {
	const k = 4
	codebook := []float32{
		1, 1, 1, 1,
		2, 2, 2, 2,
		3, 3, 3, 3,
		4, 4, 4, 4,
		5, 5, 5, 5,
		6, 6, 6, 6,
	}

	var l List
	l.Reset()
	Search(codebook, k, 6, []float32{3, 3, 3, 3}, 0, [Stages]uint16{}, &l)

	best := l.Best()
	assert.Equal(t, float32(0), best.Error)
	assert.Equal(t, uint16(2), best.Index[0])
}

func TestSearch_ListSortedAscending(t *testing.T) {
	const k = 1
	codebook := []float32{0, 10, 20, 30, 40, 50, 60, 70}

	var l List
	l.Reset()
	Search(codebook, k, 8, []float32{25}, 0, [Stages]uint16{}, &l)

	items := l.Items()
	assert.Len(t, items, Entries)
	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, items[i-1].Error, items[i].Error)
	}
}

func TestSearch_PreservesPrefix(t *testing.T) {
	const k = 1
	codebook := []float32{0, 1}

	var l List
	l.Reset()
	prefix := [Stages]uint16{7, 0, 0, 0}
	Search(codebook, k, 2, []float32{0}, 1, prefix, &l)

	best := l.Best()
	assert.Equal(t, uint16(7), best.Index[0])
	assert.Equal(t, uint16(0), best.Index[1])
}

func TestSearch_AccumulatesAcrossCalls(t *testing.T) {
	const k = 1

	var l List
	l.Reset()
	Search([]float32{100}, k, 1, []float32{0}, 0, [Stages]uint16{}, &l)
	Search([]float32{0}, k, 1, []float32{0}, 0, [Stages]uint16{0, 1}, &l)

	best := l.Best()
	assert.Equal(t, float32(0), best.Error)
	assert.Equal(t, uint16(1), best.Index[1])
}

func TestSearch_NeverExceedsEntries(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 40).Draw(t, "numEntries")
		codebook := make([]float32, n)
		for i := range codebook {
			codebook[i] = rapid.Float32Range(-1000, 1000).Draw(t, "row")
		}

		var l List
		l.Reset()
		Search(codebook, 1, n, []float32{0}, 0, [Stages]uint16{}, &l)

		assert.Len(t, l.Items(), Entries)
		for i := 1; i < Entries; i++ {
			assert.LessOrEqual(t, l.Items()[i-1].Error, l.Items()[i].Error)
		}
	})
}

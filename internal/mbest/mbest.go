// Package mbest implements the M-best list used by the two-stage envelope
// VQ search (spec.md §4.2), grounded on original_source/header/mbest.h and
// src/amp.c's rate_K_mbest_encode. It keeps the Entries lowest-error
// candidates seen so far, each carrying the full Stages-slot index chain
// the caller has accumulated for it.
package mbest

const (
	// Stages is the number of VQ stages whose indices a candidate carries
	// (MBEST_STAGES in the original: {n2, n1, 0, 0} by the time encoding
	// finishes, slots 2 and 3 unused by this codec but kept for layout
	// fidelity with the original's fixed-size struct).
	Stages = 4
	// Entries is the number of candidates retained per stage (MBEST_ENTRIES).
	Entries = 5
)

// Candidate is one entry in an M-best list.
type Candidate struct {
	Index [Stages]uint16
	Error float32
}

// List holds the Entries best candidates seen so far, sorted non-decreasing
// by Error. The zero value is not usable; call Reset before searching.
type List struct {
	items [Entries]Candidate
}

// Reset clears the list to "all slots at +inf error", ready for a new search.
func (l *List) Reset() {
	for i := range l.items {
		l.items[i] = Candidate{Error: maxFloat32}
	}
}

// Items returns the current sorted candidates.
func (l *List) Items() []Candidate {
	return l.items[:]
}

// Best returns the lowest-error candidate.
func (l *List) Best() Candidate {
	return l.items[0]
}

// insert places a candidate into the sorted list if it beats the current
// worst entry, preserving non-decreasing error order (spec.md §4.2).
func (l *List) insert(c Candidate) {
	if c.Error >= l.items[Entries-1].Error {
		return
	}
	pos := Entries - 1
	for pos > 0 && l.items[pos-1].Error > c.Error {
		l.items[pos] = l.items[pos-1]
		pos--
	}
	l.items[pos] = c
}

const maxFloat32 = 3.40282346638528859811704183484516925440e+38

// Search scores every one of numEntries K-dim codebook rows against target
// and merges them into out's running Entries-best list. out is NOT reset
// by Search: stage 2 of the encode calls Search once per stage-1 survivor
// against the same List, so the 5 best candidates are the best of all
// numEntries*len(survivors) rows searched, matching the original's single
// persistent struct MBEST accumulating across repeated mbest_search calls.
// Callers must call out.Reset() once before the first Search of a stage.
//
// codebook is laid out row-major, K entries per row. slot selects which of
// the Stages index slots this call's winning row index is written into;
// the remaining slots are copied from prefix unchanged, matching the
// original's entry[] accumulation across the two VQ stages.
func Search(codebook []float32, k int, numEntries int, target []float32, slot int, prefix [Stages]uint16, out *List) {
	for n := 0; n < numEntries; n++ {
		row := codebook[n*k : n*k+k]
		var errv float32
		for i := 0; i < k; i++ {
			d := target[i] - row[i]
			errv += d * d
		}
		cand := Candidate{Index: prefix, Error: errv}
		cand.Index[slot] = uint16(n)
		out.insert(cand)
	}
}

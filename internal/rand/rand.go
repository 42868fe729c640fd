// Package rand implements the codec's excitation-phase generator: the
// linear congruential generator from original_source/src/sine.c's
// codec2_rand(), not Go's math/rand. Unvoiced excitation phase and
// low-amplitude voiced bin re-randomization (spec.md §4.9) must reproduce
// this exact sequence, not merely "a" pseudo-random one (spec.md §8, S6).
package rand

// Source is the LCG state. The zero value starts from state 0; New seeds
// at Next=1, matching the original's static unsigned long Next = 1.
type Source struct {
	next uint32
}

// New returns a Source seeded at 1, the original's default seed.
func New() *Source {
	return &Source{next: 1}
}

// Seed resets the generator state.
func (s *Source) Seed(seed uint32) {
	s.next = seed
}

// Next returns the next value in [0, 32767], matching codec2_rand():
//
//	Next = Next*1103515245 + 12345
//	return (Next/65536) % 32768
func (s *Source) Next() int {
	s.next = s.next*1103515245 + 12345
	return int((s.next / 65536) % 32768)
}

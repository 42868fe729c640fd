// Package model defines the per-10ms speech parameter record shared by
// the analyzer, amplitude quantizer, and synthesizer (spec.md §3, MODEL).
package model

// MaxAmp bounds the harmonic count L; slots 0 and L+1..MaxAmp are always
// zero and never read semantically.
const MaxAmp = 80

// Model is one 10ms frame's worth of sinusoidal speech parameters.
type Model struct {
	Wo     float32                // fundamental angular frequency, rad/sample
	L      int                    // number of harmonics
	A      [MaxAmp + 1]float32    // harmonic magnitudes
	Phi    [MaxAmp + 1]float32    // synthesized harmonic phases, rad
	H      [MaxAmp + 1]complex64  // unit phasors from phase reconstruction
	Voiced bool
}

// Reset zeroes a model in place so stale harmonic data from a previous,
// larger-L frame cannot leak into a smaller-L one.
func (m *Model) Reset() {
	*m = Model{}
}

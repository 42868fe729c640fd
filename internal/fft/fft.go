// Package fft provides the complex and real-input FFTs the codec treats
// as an external collaborator (see SPEC_FULL.md §4.10). It is a from-scratch
// radix-2 Cooley-Tukey implementation, structured after the teacher's
// internal/celt/kiss_fft.go: a Plan precomputes twiddle factors and a
// bit-reversal permutation once, then Forward/Inverse reuse that state with
// no further allocation. Both sizes this codec needs, 512 and 128, are
// powers of two, so the mixed-radix-2/3/4/5 generality of kissfft is not
// needed here; a pure radix-2 plan covers the codec's two transform sizes.
package fft

import (
	"fmt"
	"math"
)

// Plan holds the precomputed state for one FFT size.
type Plan struct {
	n        int
	twiddles []complex128 // exp(-2*pi*i*k/n) for k = 0..n-1
	bitrev   []int
	scratch  []complex128 // bit-reversed working buffer, reused every call
	aux      []complex128 // second scratch buffer, used by the real-FFT helpers
}

// NewPlan builds an FFT plan for size n. n must be a power of two; this is
// the only failable path in the codec (spec.md §7 ResourceInit).
func NewPlan(n int) (*Plan, error) {
	if n <= 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("fft: size %d is not a power of two", n)
	}

	p := &Plan{
		n:        n,
		twiddles: make([]complex128, n),
		bitrev:   make([]int, n),
		scratch:  make([]complex128, n),
		aux:      make([]complex128, n),
	}

	for k := 0; k < n; k++ {
		angle := -2.0 * math.Pi * float64(k) / float64(n)
		p.twiddles[k] = complex(math.Cos(angle), math.Sin(angle))
	}

	bits := 0
	for (1 << bits) < n {
		bits++
	}
	for i := 0; i < n; i++ {
		p.bitrev[i] = reverseBits(i, bits)
	}

	return p, nil
}

// Size returns the transform length the plan was built for.
func (p *Plan) Size() int { return p.n }

// Forward computes the forward complex FFT of in into out. in and out must
// each have length p.Size() and may not alias p's internal scratch.
func (p *Plan) Forward(in, out []complex128) {
	p.transform(in, out, false)
}

// Inverse computes the inverse complex FFT of in into out, scaled by 1/n.
func (p *Plan) Inverse(in, out []complex128) {
	p.transform(in, out, true)
}

func (p *Plan) transform(in, out []complex128, invert bool) {
	n := p.n
	buf := p.scratch

	for i := 0; i < n; i++ {
		buf[i] = in[p.bitrev[i]]
	}

	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		step := n / size
		for start := 0; start < n; start += size {
			for k := 0; k < half; k++ {
				w := p.twiddles[k*step]
				if invert {
					w = complex(real(w), -imag(w))
				}
				even := buf[start+k]
				odd := buf[start+k+half] * w
				buf[start+k] = even + odd
				buf[start+k+half] = even - odd
			}
		}
	}

	if invert {
		scale := 1.0 / float64(n)
		for i := 0; i < n; i++ {
			out[i] = buf[i] * complex(scale, 0)
		}
		return
	}

	copy(out, buf)
}

// RealForward computes the forward FFT of a length-n real signal, writing
// the non-redundant half spectrum (n/2+1 bins) to out. It mirrors the
// original's fftr(): a real-valued analysis window in, a Hermitian-half
// spectrum out.
func (p *Plan) RealForward(in []float64, out []complex128) {
	n := p.n
	full := p.aux
	for i := 0; i < n; i++ {
		full[i] = complex(in[i], 0)
	}
	p.Forward(full, full)
	copy(out, full[:n/2+1])
}

// RealInverse computes the inverse FFT of a Hermitian half-spectrum (n/2+1
// bins) into a length-n real signal. It mirrors the original's fftri():
// bins above n/2 are reconstructed as the conjugate mirror of bins below,
// which is what makes the time-domain result real.
func (p *Plan) RealInverse(in []complex128, out []float64) {
	n := p.n
	full := p.aux
	full[0] = complex(real(in[0]), 0)
	for k := 1; k < n/2; k++ {
		full[k] = in[k]
		full[n-k] = complex(real(in[k]), -imag(in[k]))
	}
	full[n/2] = complex(real(in[n/2]), 0)

	inv := p.scratch
	p.Inverse(full, inv)
	for i := 0; i < n; i++ {
		out[i] = real(inv[i])
	}
}

// reverseBits returns the bits-bit bit-reversal of i.
func reverseBits(i, bits int) int {
	r := 0
	for b := 0; b < bits; b++ {
		if i&(1<<b) != 0 {
			r |= 1 << (bits - 1 - b)
		}
	}
	return r
}

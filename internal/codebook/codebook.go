// Package codebook holds the two-stage envelope VQ codebooks that spec.md
// §6 calls out as supplied externally ("static codebook tables... These
// are constants"). Rather than bake a single array into the binary, this
// package gives that externality a Go shape: a Tables value an Encoder or
// Decoder is constructed with, a deterministic placeholder for exercising
// the codec end to end, and a YAML loader for callers who have real
// trained tables.
package codebook

import (
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

const (
	// K is the rate-K envelope dimension (AMP_K in the original).
	K = 20
	// M is the number of rows per codebook stage (AMP_M in the original).
	M = 512
)

// Tables holds the two codebook stages, each M rows of K float32s,
// row-major (entry n occupies Stage[n*K : n*K+K]).
type Tables struct {
	Stage1 []float32
	Stage2 []float32
}

// Default returns deterministic placeholder codebooks sized correctly for
// the codec (M*K entries per stage) so the VQ search, wire format, and
// every invariant in spec.md §8 can be exercised without a production
// trained codebook. The rows are smooth low-order sinusoidal basis
// functions scaled into a plausible log-magnitude envelope range; they are
// NOT a trained codebook and will not reproduce reference speech quality.
func Default() *Tables {
	t := &Tables{
		Stage1: make([]float32, M*K),
		Stage2: make([]float32, M*K),
	}
	for n := 0; n < M; n++ {
		for k := 0; k < K; k++ {
			phase := 2 * math.Pi * float64(k) / float64(K)
			f1 := float64(n%32) + 1
			f2 := float64((n/32)%16) + 1
			t.Stage1[n*K+k] = float32(6.0 * math.Sin(f1*phase))
			t.Stage2[n*K+k] = float32(2.0 * math.Cos(f2*phase+float64(n)*0.01))
		}
	}
	return t
}

// tablesDoc is the YAML document shape LoadYAML reads.
type tablesDoc struct {
	Stage1 [][]float32 `yaml:"stage1"`
	Stage2 [][]float32 `yaml:"stage2"`
}

// LoadYAML decodes a production codebook from YAML of the form:
//
//	stage1: [[k0..k19], ...512 rows...]
//	stage2: [[k0..k19], ...512 rows...]
//
// This is the only place in the codec that touches an io.Reader; it is not
// on the per-frame path (spec.md's "OUT OF SCOPE: file I/O" applies to the
// core encode/decode loop, not to how a caller assembles the Tables it
// hands to NewEncoder/NewDecoder).
func LoadYAML(r io.Reader) (*Tables, error) {
	var doc tablesDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("codebook: decode yaml: %w", err)
	}
	t := &Tables{
		Stage1: make([]float32, M*K),
		Stage2: make([]float32, M*K),
	}
	if err := flatten(doc.Stage1, t.Stage1); err != nil {
		return nil, fmt.Errorf("codebook: stage1: %w", err)
	}
	if err := flatten(doc.Stage2, t.Stage2); err != nil {
		return nil, fmt.Errorf("codebook: stage2: %w", err)
	}
	return t, nil
}

func flatten(rows [][]float32, dst []float32) error {
	if len(rows) != M {
		return fmt.Errorf("expected %d rows, got %d", M, len(rows))
	}
	for n, row := range rows {
		if len(row) != K {
			return fmt.Errorf("row %d: expected %d columns, got %d", n, K, len(row))
		}
		copy(dst[n*K:n*K+K], row)
	}
	return nil
}

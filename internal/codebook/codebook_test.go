package codebook

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Sizes(t *testing.T) {
	tables := Default()
	assert.Len(t, tables.Stage1, M*K)
	assert.Len(t, tables.Stage2, M*K)
}

func TestDefault_Deterministic(t *testing.T) {
	a := Default()
	b := Default()
	assert.Equal(t, a.Stage1, b.Stage1)
	assert.Equal(t, a.Stage2, b.Stage2)
}

func TestLoadYAML_RoundTrip(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("stage1:\n")
	for n := 0; n < M; n++ {
		sb.WriteString("  - [")
		for k := 0; k < K; k++ {
			if k > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("1.0")
		}
		sb.WriteString("]\n")
	}
	sb.WriteString("stage2:\n")
	for n := 0; n < M; n++ {
		sb.WriteString("  - [")
		for k := 0; k < K; k++ {
			if k > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("2.0")
		}
		sb.WriteString("]\n")
	}

	tables, err := LoadYAML(bytes.NewReader([]byte(sb.String())))
	require.NoError(t, err)
	assert.Len(t, tables.Stage1, M*K)
	assert.Equal(t, float32(1.0), tables.Stage1[0])
	assert.Equal(t, float32(2.0), tables.Stage2[K-1])
}

func TestLoadYAML_RejectsWrongRowCount(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("stage1:\n  - [1.0]\nstage2:\n  - [1.0]\n"))
	assert.Error(t, err)
}

func TestLoadYAML_RejectsWrongColumnCount(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("stage1:\n")
	for n := 0; n < M; n++ {
		sb.WriteString("  - [1.0]\n")
	}
	sb.WriteString("stage2:\n")
	for n := 0; n < M; n++ {
		sb.WriteString("  - [1.0]\n")
	}
	_, err := LoadYAML(strings.NewReader(sb.String()))
	assert.Error(t, err)
}

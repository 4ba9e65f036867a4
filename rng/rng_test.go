package rng

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMulberry32KnownSequence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		seed uint32
		want []float64
	}{
		{0, []float64{0.26642920868471265, 0.0003297457005828619, 0.2232720274478197}},
		{42, []float64{0.6011037519201636, 0.44829055899754167, 0.8524657934904099}},
	}

	for _, tt := range tests {
		g := New(tt.seed)
		for i, want := range tt.want {
			assert.Equal(t, want, g.Next(), "seed %d draw %d", tt.seed, i)
		}
	}
}

func TestMulberry32Deterministic(t *testing.T) {
	t.Parallel()

	a := New(2329)
	b := New(2329)
	for i := 0; i < 1000; i++ {
		va, vb := a.Next(), b.Next()
		assert.Equal(t, va, vb)
		assert.GreaterOrEqual(t, va, 0.0)
		assert.Less(t, va, 1.0)
	}
}

func TestMulberry32SatisfiesSource(t *testing.T) {
	t.Parallel()

	var src Source = New(7)
	want := New(7).Next()
	assert.Equal(t, want, src.Float64())
}

func TestDeriveSeed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want uint32
	}{
		{"empty", "", 0},
		{"ascii", "abc", 294},
		{"fingerprint", "fvg-retestM152024-01-012024-02-01123", 2329},
		{"code point", "é", 0xE9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveSeed(tt.in))
		})
	}
}

func TestDeriveSeedWraps(t *testing.T) {
	t.Parallel()

	in := strings.Repeat("\U0010FFFF", 5000)
	assert.Equal(t, uint32(1275587704), DeriveSeed(in))
}

// Package rng provides a small, reproducible random stream for simulated
// backtests. Nothing here reads an external entropy source.
package rng

// Source is a stream of values in [0, 1).
type Source interface {
	Float64() float64
}

// Mulberry32 is the classic 32-bit mulberry32 generator. All state changes
// use uint32 arithmetic so a seed yields the same sequence on every platform.
type Mulberry32 struct {
	state uint32
}

// New returns a generator positioned at the start of the sequence for seed.
func New(seed uint32) *Mulberry32 {
	return &Mulberry32{state: seed}
}

// Next advances the generator and returns the next value in [0, 1).
func (m *Mulberry32) Next() float64 {
	m.state += 0x6D2B79F5
	t := m.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296
}

// Float64 is Next; it lets *Mulberry32 satisfy Source.
func (m *Mulberry32) Float64() float64 {
	return m.Next()
}

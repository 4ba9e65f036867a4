package backtest

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateFingerprintScenario(t *testing.T) {
	t.Parallel()

	res := Simulate("fvg-retest", "M15", "2024-01-01", "2024-02-01", 123)

	assert.Equal(t, 69, res.WinRate)
	assert.InDelta(t, 0.9885623335838318, res.Expectancy, 1e-15)
	require.Len(t, res.Equity, 123)
	assert.InDelta(t, 1.1523905444890261, res.Equity[0].Equity, 1e-12)
	assert.InDelta(t, 118.30559255331731, res.Equity[122].Equity, 1e-9)

	for i, p := range res.Equity {
		assert.Equal(t, i, p.Index)
		assert.GreaterOrEqual(t, p.Equity, 0.0)
	}
}

func TestSimulateDeterministic(t *testing.T) {
	t.Parallel()

	a := Simulate("ny-open", "M5", "2024-01-01", "2024-06-30", 1000)
	b := Simulate("ny-open", "M5", "2024-01-01", "2024-06-30", 1000)
	assert.Equal(t, a, b)

	fp := Fingerprint{"ny-open", "M5", "2024-01-01", "2024-06-30", 1000}
	assert.Equal(t, a, fp.Simulate())
	assert.Equal(t, "ny-openM52024-01-012024-06-301000", fp.String())
}

func TestSimulateChangedFieldChangesResult(t *testing.T) {
	t.Parallel()

	base := Simulate("fvg-retest", "M15", "2024-01-01", "2024-02-01", 123)
	other := Simulate("fvg-retest", "H1", "2024-01-01", "2024-02-01", 123)
	assert.NotEqual(t, base.Expectancy, other.Expectancy)
}

func TestSimulateBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		trades int
		want   int
	}{
		{"negative cap", -5, 0},
		{"zero cap", 0, 0},
		{"single", 1, 1},
		{"dashboard cap", DefaultTradeCap, 200},
		{"at limit", MaxEquityPoints, 300},
		{"capped", 1000, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Simulate("break-retest", "H1", "2023-01-01", "2023-12-31", tt.trades)
			assert.Len(t, res.Equity, tt.want)
			assert.GreaterOrEqual(t, res.WinRate, 45)
			assert.LessOrEqual(t, res.WinRate, 75)
			assert.GreaterOrEqual(t, res.Expectancy, -0.2)
			assert.Less(t, res.Expectancy, 1.2)
			for _, p := range res.Equity {
				assert.GreaterOrEqual(t, p.Equity, 0.0)
			}
		})
	}
}

func TestSimulateEmptyStrings(t *testing.T) {
	t.Parallel()

	res := Simulate("", "", "", "", 10)
	assert.Len(t, res.Equity, 10)
	assert.GreaterOrEqual(t, res.WinRate, 45)
	assert.LessOrEqual(t, res.WinRate, 75)
}

type fixedSource struct {
	vals []float64
	i    int
}

func (f *fixedSource) Float64() float64 {
	v := f.vals[f.i%len(f.vals)]
	f.i++
	return v
}

func TestSimulateFloorsEachPoint(t *testing.T) {
	t.Parallel()

	// winRate draw 0.5, expectancy draw 0 => -0.2
	src := &fixedSource{vals: []float64{0.5, 0, 0, 0.5, 1, 1}}
	res := simulate(src, 4)

	assert.Equal(t, 60, res.WinRate)
	assert.InDelta(t, -0.2, res.Expectancy, 1e-12)
	require.Len(t, res.Equity, 4)
	// eq: -0.7, -0.9, -0.6, -0.3
	for _, p := range res.Equity {
		assert.Equal(t, 0.0, p.Equity)
	}
}

func TestSimulatePositiveDrift(t *testing.T) {
	t.Parallel()

	// expectancy draw 1 => 1.2; step draws 0, 0, 1 => 0.7, 1.4, 3.1
	src := &fixedSource{vals: []float64{0, 1, 0, 0, 1}}
	res := simulate(src, 3)
	require.Len(t, res.Equity, 3)
	assert.InDelta(t, 0.7, res.Equity[0].Equity, 1e-12)
	assert.InDelta(t, 1.4, res.Equity[1].Equity, 1e-12)
	assert.InDelta(t, 3.1, res.Equity[2].Equity, 1e-12)
}

func TestRoundHalfUp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 45.0, roundHalfUp(45.49))
	assert.Equal(t, 46.0, roundHalfUp(45.5))
	assert.Equal(t, 75.0, roundHalfUp(74.9999))
}

func TestResultDerivedStats(t *testing.T) {
	t.Parallel()

	r := Result{Equity: []EquityPoint{{0, 1}, {1, 4}, {2, 1.5}, {3, 5}, {4, 2}}}
	assert.Equal(t, 2.0, r.FinalEquity())
	assert.Equal(t, 3.0, r.MaxDrawdown())

	assert.Equal(t, 0.0, Result{}.FinalEquity())
	assert.Equal(t, 0.0, Result{}.MaxDrawdown())
}

func TestRangeFor(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 14, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		preset   string
		wantFrom string
	}{
		{"1m", "2026-09-14"},
		{"3m", "2026-07-14"},
		{"6m", "2026-04-14"},
		{"1y", "2025-10-14"},
		{"all", "2015-01-01"},
		{"bogus", "2026-10-14"},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			from, to := RangeFor(tt.preset, now)
			assert.Equal(t, tt.wantFrom, from)
			assert.Equal(t, "2026-10-14", to)
		})
	}
}

func TestRangeForMonthOverflow(t *testing.T) {
	t.Parallel()

	// May 31 minus three months rolls past the short February.
	from, _ := RangeFor("3m", time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2025-03-03", from)
}

func TestValidDate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidDate("2024-01-01"))
	assert.Error(t, ValidDate("2024-13-01"))
	assert.Error(t, ValidDate("01/01/2024"))
}

func TestWriteReport(t *testing.T) {
	t.Parallel()

	fp := Fingerprint{"fvg-retest", "M15", "2024-01-01", "2024-02-01", 123}
	var buf bytes.Buffer
	WriteReport(&buf, fp, fp.Simulate())

	out := buf.String()
	assert.Contains(t, out, "Strategy:      fvg-retest")
	assert.Contains(t, out, "Timeframe:     M15")
	assert.Contains(t, out, "Win Rate:      69%")
	assert.Contains(t, out, "Points:        123")
	assert.Contains(t, out, "Equity Curve")
}

func TestSparkline(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Sparkline(nil, 10))
	pts := []EquityPoint{{0, 0}, {1, 7}, {2, 14}}
	assert.Equal(t, "▁▄█", Sparkline(pts, 10))
	assert.Equal(t, 2, len([]rune(Sparkline(pts, 2))))
}

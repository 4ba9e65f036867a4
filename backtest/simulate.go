package backtest

import (
	"math"
	"strconv"

	"github.com/rustyeddy/tradedash/rng"
)

const (
	// MaxEquityPoints caps the simulated equity curve.
	MaxEquityPoints = 300

	// DefaultTradeCap is the trade count the dashboard asks for.
	DefaultTradeCap = 200
)

// Fingerprint identifies a simulated backtest. Identical fingerprints always
// produce identical results.
type Fingerprint struct {
	StrategyID string
	Timeframe  string
	From       string
	To         string
	TradeCount int
}

// String concatenates the fields in seed order.
func (f Fingerprint) String() string {
	return f.StrategyID + f.Timeframe + f.From + f.To + strconv.Itoa(f.TradeCount)
}

// Seed is the generator seed derived from the fingerprint.
func (f Fingerprint) Seed() uint32 {
	return rng.DeriveSeed(f.String())
}

// Simulate runs the simulation for this fingerprint.
func (f Fingerprint) Simulate() Result {
	return Simulate(f.StrategyID, f.Timeframe, f.From, f.To, f.TradeCount)
}

// EquityPoint is one step of the simulated equity curve.
type EquityPoint struct {
	Index  int     `json:"n"`
	Equity float64 `json:"eq"`
}

// Result holds simulated performance statistics.
type Result struct {
	WinRate    int           `json:"winRate"`
	Expectancy float64       `json:"expectancy"`
	Equity     []EquityPoint `json:"equity"`
}

// Simulate synthesizes reproducible statistics for a strategy over a time
// window. tradeCount caps the equity curve; zero or negative yields an empty
// curve.
func Simulate(strategyID, timeframe, from, to string, tradeCount int) Result {
	fp := Fingerprint{strategyID, timeframe, from, to, tradeCount}
	return simulate(rng.New(fp.Seed()), tradeCount)
}

func simulate(src rng.Source, tradeCount int) Result {
	// The float64 conversions stop the compiler from fusing the products
	// into FMA instructions, which would change results on some platforms.
	res := Result{
		WinRate:    int(roundHalfUp(45 + float64(src.Float64()*30))),
		Expectancy: float64(src.Float64()*1.4) - 0.2,
	}

	n := min(max(tradeCount, 0), MaxEquityPoints)
	res.Equity = make([]EquityPoint, n)

	// eq may dip below zero; the floor applies to each emitted point only.
	eq := 0.0
	for i := 0; i < n; i++ {
		eq += res.Expectancy + (src.Float64() - 0.5)
		res.Equity[i] = EquityPoint{Index: i, Equity: math.Max(0, eq)}
	}
	return res
}

// FinalEquity returns the last point of the curve, or 0 for an empty curve.
func (r Result) FinalEquity() float64 {
	if len(r.Equity) == 0 {
		return 0
	}
	return r.Equity[len(r.Equity)-1].Equity
}

// MaxDrawdown is the largest peak-to-trough drop of the emitted curve.
func (r Result) MaxDrawdown() float64 {
	var peak, dd float64
	for _, p := range r.Equity {
		if p.Equity > peak {
			peak = p.Equity
		}
		if d := peak - p.Equity; d > dd {
			dd = d
		}
	}
	return dd
}

func roundHalfUp(x float64) float64 {
	f := math.Floor(x)
	if x-f >= 0.5 {
		return f + 1
	}
	return f
}

package backtest

import (
	"fmt"
	"io"
)

// WriteReport prints a simulated backtest summary.
func WriteReport(w io.Writer, fp Fingerprint, r Result) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Simulated Backtest")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintf(w, "Strategy:      %s\n", fp.StrategyID)
	fmt.Fprintf(w, "Timeframe:     %s\n", fp.Timeframe)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Period")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "From:          %s\n", fp.From)
	fmt.Fprintf(w, "To:            %s\n", fp.To)
	fmt.Fprintf(w, "Trade Cap:     %d\n", fp.TradeCount)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Statistics")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Win Rate:      %d%%\n", r.WinRate)
	fmt.Fprintf(w, "Expectancy:    %.2fR\n", r.Expectancy)
	fmt.Fprintf(w, "Points:        %d\n", len(r.Equity))
	fmt.Fprintf(w, "Final Equity:  %.2fR\n", r.FinalEquity())
	if dd := r.MaxDrawdown(); dd > 0 {
		fmt.Fprintf(w, "Max Drawdown:  %.2fR\n", dd)
	}

	if len(r.Equity) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Equity Curve")
		fmt.Fprintln(w, "--------------------------------------------------")
		fmt.Fprintln(w, Sparkline(r.Equity, 50))
	}

	fmt.Fprintln(w)
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders the curve as block characters, sampling down to width.
func Sparkline(pts []EquityPoint, width int) string {
	if len(pts) == 0 || width <= 0 {
		return ""
	}
	if width > len(pts) {
		width = len(pts)
	}

	var top float64
	for _, p := range pts {
		top = max(top, p.Equity)
	}

	out := make([]rune, width)
	for i := range out {
		v := pts[i*len(pts)/width].Equity
		idx := 0
		if top > 0 {
			idx = int(v / top * float64(len(sparkRunes)-1))
		}
		out[i] = sparkRunes[idx]
	}
	return string(out)
}

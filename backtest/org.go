package backtest

import (
	"io"
	"text/template"
	"time"
)

// Run is a simulated backtest prepared for an org-mode note.
type Run struct {
	Fingerprint
	Result

	StrategyName string
	RR           float64
	Created      time.Time
	Notes        []string
}

var orgFuncs = template.FuncMap{
	"orTime": func(t time.Time) time.Time {
		if t.IsZero() {
			return time.Now()
		}
		return t
	},
	"orDash": func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	},
}

var orgTemplate = template.Must(template.New("backtest").Funcs(orgFuncs).Parse(OrgTemplate))

// WriteOrg renders run as an org-mode heading with its equity table.
func WriteOrg(w io.Writer, run Run) error {
	return orgTemplate.Execute(w, run)
}

const OrgTemplate = `* BACKTEST: {{orDash .StrategyName}} {{if .Timeframe}}{{.Timeframe}}{{else}}(timeframe?){{end}}
:PROPERTIES:
:STRATEGY:    {{.StrategyID}}
:TIMEFRAME:   {{if .Timeframe}}{{.Timeframe}}{{else}}(timeframe?){{end}}
:START_DATE:  {{orDash .From}}
:END_DATE:    {{orDash .To}}
:TRADE_CAP:   {{.TradeCount}}
:SEED:        {{.Seed}}
:WIN_RATE:    {{.WinRate}}
:EXPECTANCY:  {{printf "%.2f" .Expectancy}}
:FINAL_EQ:    {{printf "%.2f" .FinalEquity}}
:MAX_DD:      {{printf "%.2f" .MaxDrawdown}}
:CREATED:     [{{(orTime .Created).Format "2006-01-02 Mon 15:04"}}]
:END:

** Strategy Parameters
| Parameter | Value |
|-----------+-------|
| R:R       | {{printf "%.2f" .RR}} |
| Trades    | {{.TradeCount}} |

** Performance Summary
- Win Rate:       *{{.WinRate}}%*
- Expectancy:     *{{printf "%.2f" .Expectancy}}R*
- Final Equity:   *{{printf "%.2f" .FinalEquity}}R*
- Max Drawdown:   *{{printf "%.2f" .MaxDrawdown}}R*
{{- if .Equity}}

** Equity Curve
| n | equity |
|---+--------|
{{- range .Equity}}
| {{.Index}} | {{printf "%.4f" .Equity}} |
{{- end}}
{{- end}}
{{- if .Notes}}

** Notes
{{- range .Notes}}
- {{.}}
{{- end}}
{{- end}}
`

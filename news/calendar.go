// Package news provides the economic calendar shown next to the journal,
// along with a short commentary on the day's risk.
package news

import (
	"fmt"
	"strings"
)

// Impact rates how much an event is expected to move the market.
type Impact string

const (
	High   Impact = "high"
	Medium Impact = "medium"
	Low    Impact = "low"
)

// All disables impact filtering.
const All = "all"

// Event is one scheduled release. Empty Forecast, Previous or Actual means
// the value is not published.
type Event struct {
	Time     string `json:"time"`
	Currency string `json:"ccy"`
	Title    string `json:"title"`
	Impact   Impact `json:"impact"`
	Forecast string `json:"forecast,omitempty"`
	Previous string `json:"previous,omitempty"`
	Actual   string `json:"actual,omitempty"`
}

// Currencies are the selectable currency codes.
var Currencies = []string{"USD", "EUR", "GBP", "JPY", "CAD", "AUD", "NZD", "CHF"}

// DefaultCurrencies is the initial selection.
var DefaultCurrencies = []string{"USD", "EUR", "GBP"}

func day() []Event {
	return []Event{
		{Time: "08:30", Currency: "USD", Title: "Non-Farm Payrolls", Impact: High, Forecast: "+170k", Previous: "+187k", Actual: "—"},
		{Time: "07:00", Currency: "GBP", Title: "BoE Gov Speech", Impact: Medium},
		{Time: "10:00", Currency: "EUR", Title: "CPI (YoY)", Impact: High, Forecast: "2.8%", Previous: "3.1%", Actual: "—"},
		{Time: "13:30", Currency: "CAD", Title: "Unemployment Rate", Impact: Medium, Forecast: "5.7%", Previous: "5.6%", Actual: "—"},
		{Time: "23:50", Currency: "JPY", Title: "GDP (QoQ)", Impact: Low, Forecast: "0.2%", Previous: "0.1%", Actual: "—"},
	}
}

// Calendar returns the events for a date, keeping only those of the given
// impact. An impact of "all" or "" keeps everything.
//
// The calendar is a fixed day template; the date is accepted so callers do
// not change when a live feed is plugged in.
func Calendar(_, impact string) []Event {
	events := day()
	impact = strings.ToLower(strings.TrimSpace(impact))
	if impact == "" || impact == All {
		return events
	}
	out := events[:0]
	for _, e := range events {
		if string(e.Impact) == impact {
			out = append(out, e)
		}
	}
	return out
}

// FilterCurrencies keeps events whose currency is in selected. An empty
// selection keeps everything.
func FilterCurrencies(events []Event, selected []string) []Event {
	if len(selected) == 0 {
		return events
	}
	keep := make(map[string]bool, len(selected))
	for _, c := range selected {
		keep[strings.ToUpper(strings.TrimSpace(c))] = true
	}
	var out []Event
	for _, e := range events {
		if keep[e.Currency] {
			out = append(out, e)
		}
	}
	return out
}

// ValidImpact reports whether s is an accepted impact filter.
func ValidImpact(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", All, string(High), string(Medium), string(Low):
		return nil
	}
	return fmt.Errorf("unknown impact %q (want all, high, medium or low)", s)
}

// Insight summarizes the risk of the given events.
func Insight(events []Event) string {
	var ccys []string
	seen := map[string]bool{}
	for _, e := range events {
		if e.Impact != High || seen[e.Currency] {
			continue
		}
		seen[e.Currency] = true
		ccys = append(ccys, e.Currency)
	}
	if len(ccys) == 0 {
		return "Calendar is light-to-medium impact. Mean-reversion setups in Asia/London, watch overlap for liquidity spikes."
	}
	return fmt.Sprintf("High-impact (%s) today. Expect wider ranges around release times; "+
		"consider smaller size pre-event and fade/continuation setups on the first pullback after actuals.",
		strings.Join(ccys, ", "))
}

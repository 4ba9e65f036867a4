package news

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarImpactFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		impact string
		want   []string
	}{
		{"", []string{"USD", "GBP", "EUR", "CAD", "JPY"}},
		{"all", []string{"USD", "GBP", "EUR", "CAD", "JPY"}},
		{"high", []string{"USD", "EUR"}},
		{"Medium", []string{"GBP", "CAD"}},
		{"low", []string{"JPY"}},
		{"extreme", nil},
	}
	for _, tt := range tests {
		t.Run(tt.impact, func(t *testing.T) {
			var got []string
			for _, e := range Calendar("2024-01-05", tt.impact) {
				got = append(got, e.Currency)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalendarUnpublishedValues(t *testing.T) {
	t.Parallel()

	events := Calendar("", All)
	require.Len(t, events, 5)
	boe := events[1]
	assert.Equal(t, "BoE Gov Speech", boe.Title)
	assert.Empty(t, boe.Forecast)
	assert.Empty(t, boe.Previous)
	assert.Empty(t, boe.Actual)
}

func TestFilterCurrencies(t *testing.T) {
	t.Parallel()

	events := Calendar("", All)

	got := FilterCurrencies(events, DefaultCurrencies)
	require.Len(t, got, 3)
	assert.Equal(t, "USD", got[0].Currency)
	assert.Equal(t, "GBP", got[1].Currency)
	assert.Equal(t, "EUR", got[2].Currency)

	assert.Len(t, FilterCurrencies(events, nil), 5)
	assert.Len(t, FilterCurrencies(events, []string{" jpy "}), 1)
	assert.Empty(t, FilterCurrencies(events, []string{"CHF"}))
}

func TestInsight(t *testing.T) {
	t.Parallel()

	got := Insight(Calendar("", All))
	assert.Equal(t, "High-impact (USD, EUR) today. Expect wider ranges around release times; "+
		"consider smaller size pre-event and fade/continuation setups on the first pullback after actuals.", got)

	dup := []Event{
		{Currency: "EUR", Impact: High},
		{Currency: "USD", Impact: Low},
		{Currency: "EUR", Impact: High},
	}
	assert.Contains(t, Insight(dup), "High-impact (EUR) today.")

	light := Insight(Calendar("", "medium"))
	assert.Equal(t, "Calendar is light-to-medium impact. Mean-reversion setups in Asia/London, watch overlap for liquidity spikes.", light)
	assert.Equal(t, light, Insight(nil))
}

func TestValidImpact(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "all", "HIGH", "medium", "low"} {
		assert.NoError(t, ValidImpact(s), s)
	}
	assert.Error(t, ValidImpact("extreme"))
}

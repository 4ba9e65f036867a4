package journal

import (
	"math"
	"sort"
)

// Bucket accumulates entries sharing a key, a date or a category name.
type Bucket struct {
	Key    string  `json:"key"`
	Count  int     `json:"count"`
	PnL    float64 `json:"pnl"`
	Trades int     `json:"trades"`
}

// DayOutcome classifies a calendar day.
type DayOutcome int

const (
	NoTrades DayOutcome = iota
	WinDay
	LossDay
)

func (o DayOutcome) String() string {
	switch o {
	case WinDay:
		return "win"
	case LossDay:
		return "loss"
	default:
		return "none"
	}
}

// Outcome classifies the day. A flat day with trades counts as a win, unlike
// a flat entry, which counts as a loss.
func (b Bucket) Outcome() DayOutcome {
	switch {
	case b.Trades <= 0:
		return NoTrades
	case b.PnL >= 0:
		return WinDay
	default:
		return LossDay
	}
}

// AggregateCalendar groups the entries dated in yearMonth (YYYY-MM) by day.
func AggregateCalendar(entries []Entry, yearMonth string) map[string]Bucket {
	out := make(map[string]Bucket)
	for _, e := range entries {
		if e.Date == "" || e.Date[:min(7, len(e.Date))] != yearMonth {
			continue
		}
		b := out[e.Date]
		b.Key = e.Date
		b.Count++
		b.PnL += e.PnL
		b.Trades += e.Trades
		out[e.Date] = b
	}
	return out
}

// MonthTotals sums the trades and net P/L of a calendar aggregation.
func MonthTotals(days map[string]Bucket) (trades int, pnl float64) {
	for _, b := range SortedBuckets(days) {
		trades += b.Trades
		pnl += b.PnL
	}
	return trades, pnl
}

// SortedBuckets returns the buckets ordered by key.
func SortedBuckets(m map[string]Bucket) []Bucket {
	out := make([]Bucket, 0, len(m))
	for _, b := range m {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Category is one side of a two-way breakdown.
type Category struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Breakdown is a two-category split such as Win/Loss.
type Breakdown [2]Category

// Total is the sum of both categories.
func (b Breakdown) Total() int {
	return b[0].Value + b[1].Value
}

// Value returns the count for name, or 0 if name is not in the breakdown.
func (b Breakdown) Value(name string) int {
	for _, c := range b {
		if c.Name == name {
			return c.Value
		}
	}
	return 0
}

// Percentages returns both shares as whole percents summing to 100.
func (b Breakdown) Percentages() (int, int) {
	return Split(b[0].Value, b[1].Value)
}

// Split rounds a's share of a+b and gives b the rest, so the pair always
// sums to 100. An empty split is (0, 100).
func Split(a, b int) (int, int) {
	var first int
	if t := a + b; t != 0 {
		first = int(roundHalfUp(float64(a) / float64(t) * 100))
	}
	return first, 100 - first
}

// Categories holds the breakdowns shown beside the journal.
type Categories struct {
	WinLoss     Breakdown `json:"winLoss"`
	ByDirection Breakdown `json:"byDirection"`
	ByBias      Breakdown `json:"byBias"`
}

// AggregateCategories counts wins and losses per entry, long and short
// trades, and bullish and bearish entries over the whole collection.
func AggregateCategories(entries []Entry) Categories {
	var wins, losses, long, short, bull, bear int
	for _, e := range entries {
		if e.Win() {
			wins++
		} else {
			losses++
		}
		long += e.Longs()
		short += e.Shorts()
		switch e.Bias {
		case Bullish:
			bull++
		case Bearish:
			bear++
		}
	}

	return Categories{
		WinLoss:     Breakdown{{"Win", wins}, {"Loss", losses}},
		ByDirection: Breakdown{{"Long", long}, {"Short", short}},
		ByBias:      Breakdown{{"Bullish", bull}, {"Bearish", bear}},
	}
}

// DayPnL is the net P/L of one date.
type DayPnL struct {
	Date string  `json:"date"`
	PnL  float64 `json:"pnl"`
}

// Summary is the headline journal statistics.
type Summary struct {
	Count   int                `json:"count"`
	WinRate int                `json:"winRate"`
	AvgPnL  float64            `json:"avgPnl"`
	ByDay   map[string]float64 `json:"byDay"`
	BestDay *DayPnL            `json:"bestDay,omitempty"`
}

// SummarizeDaily computes entry count, win rate, average P/L and net P/L by
// day. BestDay is nil for an empty collection; on a tie the date seen first
// wins.
func SummarizeDaily(entries []Entry) Summary {
	s := Summary{Count: len(entries), ByDay: make(map[string]float64)}
	if s.Count == 0 {
		return s
	}

	var wins int
	var total float64
	var order []string
	for _, e := range entries {
		if e.Win() {
			wins++
		}
		total += e.PnL
		if _, seen := s.ByDay[e.Date]; !seen {
			order = append(order, e.Date)
		}
		s.ByDay[e.Date] += e.PnL
	}

	s.WinRate = int(roundHalfUp(float64(100*wins) / float64(s.Count)))
	s.AvgPnL = total / float64(s.Count)

	for _, d := range order {
		if s.BestDay == nil || s.ByDay[d] > s.BestDay.PnL {
			s.BestDay = &DayPnL{Date: d, PnL: s.ByDay[d]}
		}
	}
	return s
}

// FilterByDate returns the entries dated date, in collection order. An empty
// date returns all entries.
func FilterByDate(entries []Entry, date string) []Entry {
	if date == "" {
		return entries
	}
	var out []Entry
	for _, e := range entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

func roundHalfUp(x float64) float64 {
	f := math.Floor(x)
	if x-f >= 0.5 {
		return f + 1
	}
	return f
}

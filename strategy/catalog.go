// Package strategy is the catalog of strategies offered to the backtest
// simulator.
package strategy

import (
	"math/rand"
	"regexp"
	"strings"
	"sync"
)

// DefaultTimeframe is used for strategies that do not set one.
const DefaultTimeframe = "M15"

// Strategy describes a named setup and its parameters.
type Strategy struct {
	ID        string  `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	RR        float64 `json:"rr" yaml:"rr"`
	Timeframe string  `json:"timeframe" yaml:"timeframe"`
}

// Defaults returns the built-in strategies.
func Defaults() []Strategy {
	return []Strategy{
		{ID: "fvg-retest", Name: "FVG + Retest", RR: 2, Timeframe: "M15"},
		{ID: "break-retest", Name: "Break & Retest", RR: 1.5, Timeframe: "H1"},
		{ID: "ny-open", Name: "NY Open Range", RR: 1.2, Timeframe: "M5"},
		{ID: "ict-silver-bullet", Name: "Silver Bullet (ICT)", RR: 2, Timeframe: "M5"},
		{ID: "ict-venom", Name: "Venom (ICT)", RR: 1.8, Timeframe: "M15"},
	}
}

// Catalog is an ordered, growable set of strategies.
type Catalog struct {
	mu   sync.Mutex
	list []Strategy
	rand *rand.Rand
}

// NewCatalog returns a catalog holding list. rnd supplies the suffix of
// generated IDs; nil uses a time-seeded source.
func NewCatalog(list []Strategy, rnd *rand.Rand) *Catalog {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(rand.Int63()))
	}
	c := &Catalog{rand: rnd}
	c.list = append(c.list, list...)
	return c
}

// List returns the strategies in insertion order.
func (c *Catalog) List() []Strategy {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Strategy(nil), c.list...)
}

// Get looks up a strategy by ID.
func (c *Catalog) Get(id string) (Strategy, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range c.list {
		if s.ID == id {
			return s, true
		}
	}
	return Strategy{}, false
}

// Timeframe returns the timeframe of id, or DefaultTimeframe if id is
// unknown or has none.
func (c *Catalog) Timeframe(id string) string {
	if s, ok := c.Get(id); ok && s.Timeframe != "" {
		return s.Timeframe
	}
	return DefaultTimeframe
}

var whitespace = regexp.MustCompile(`\s+`)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Add creates a strategy named name with default parameters. The ID is the
// lowercased name with whitespace runs replaced by dashes, plus a random
// four-character suffix. An empty name adds nothing.
func (c *Catalog) Add(name string) (Strategy, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Strategy{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = idAlphabet[c.rand.Intn(len(idAlphabet))]
	}

	s := Strategy{
		ID:        whitespace.ReplaceAllString(strings.ToLower(name), "-") + "-" + string(suffix),
		Name:      name,
		RR:        2,
		Timeframe: DefaultTimeframe,
	}
	c.list = append(c.list, s)
	return s, true
}

// Package catalog holds the named classic 2x2 games.
package catalog

import (
	"sort"

	"github.com/evoterm/gamescape/internal/dynamics"
)

var games = map[string]dynamics.PayoffMatrix{
	"prisoners-dilemma": {A: 3, B: 0, C: 5, D: 1},
	"stag-hunt":         {A: 4, B: 0, C: 3, D: 2},
	"hawk-dove":         {A: 0, B: 3, C: 5, D: 1},
	"coordination":      {A: 4, B: 0, C: 0, D: 3},
	"harmony":           {A: 4, B: 3, C: 2, D: 1},
}

// Get looks up a classic game by name.
func Get(name string) (dynamics.PayoffMatrix, bool) {
	m, ok := games[name]
	return m, ok
}

// Names returns the catalog entries in sorted order.
func Names() []string {
	names := make([]string, 0, len(games))
	for name := range games {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

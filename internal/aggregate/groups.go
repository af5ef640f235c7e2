package aggregate

import (
	"strings"

	"github.com/shopspring/decimal"
)

// groups accumulates sums per key and remembers the order in which
// keys were first seen.
type groups[K comparable] struct {
	order []K
	index map[K]*group
}

type group struct {
	sum   decimal.Decimal
	notes []string
	seen  map[string]struct{}
}

func newGroups[K comparable]() *groups[K] {
	return &groups[K]{index: make(map[K]*group)}
}

func (g *groups[K]) add(key K, amount decimal.Decimal) *group {
	grp, ok := g.index[key]
	if !ok {
		grp = &group{}
		g.index[key] = grp
		g.order = append(g.order, key)
	}

	grp.sum = grp.sum.Add(amount)
	return grp
}

// each calls fn for every group in first-seen order.
func (g *groups[K]) each(fn func(K, *group)) {
	for _, key := range g.order {
		fn(key, g.index[key])
	}
}

// note adds the trimmed note unless it is empty or already present.
func (grp *group) note(n string) {
	n = strings.TrimSpace(n)
	if n == "" {
		return
	}

	if grp.seen == nil {
		grp.seen = make(map[string]struct{})
	}

	if _, ok := grp.seen[n]; ok {
		return
	}

	grp.seen[n] = struct{}{}
	grp.notes = append(grp.notes, n)
}

// round rounds half to even to whole units.
func round(d decimal.Decimal) float64 {
	return d.RoundBank(0).InexactFloat64()
}

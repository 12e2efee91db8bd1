package main

import (
	"math"

	"github.com/tidwall/btree"

	aoc "github.com/maisem/aoc2025"
)

func spanLess(a, b span) bool {
	if a.lo != b.lo {
		return a.lo < b.lo
	}
	return a.hi < b.hi
}

// mergeSpans returns the union of spans as non-overlapping spans ordered by
// their start.
func mergeSpans(spans []span) *btree.BTreeG[span] {
	sorted := btree.NewBTreeG(spanLess)
	for _, r := range spans {
		sorted.Set(r)
	}
	merged := btree.NewBTreeG(spanLess)
	var cur span
	have := false
	sorted.Scan(func(r span) bool {
		if have && r.lo <= cur.hi {
			cur.hi = max(cur.hi, r.hi)
			return true
		}
		if have {
			merged.Set(cur)
		}
		cur, have = r, true
		return true
	})
	if have {
		merged.Set(cur)
	}
	return merged
}

// covered reports whether any of the merged spans contains v.
func covered(merged *btree.BTreeG[span], v int) bool {
	found := false
	// The last span starting at or before v is the only candidate.
	merged.Descend(span{lo: v, hi: math.MaxInt}, func(r span) bool {
		found = r.contains(v)
		return false
	})
	return found
}

type inventory struct {
	fresh []span
	ids   []int
}

func (s solver) inventory() inventory {
	var inv inventory
	onIDs := false
	s.ForLines(func(line string) {
		switch {
		case line == "":
			onIDs = true
		case onIDs:
			inv.ids = append(inv.ids, aoc.Int(line))
		default:
			inv.fresh = append(inv.fresh, parseSpan(line))
		}
	})
	return inv
}

/*
want=3

3-5
10-14
16-20
12-18

1
5
8
11
17
32
*/
func (s solver) D5p1() any {
	inv := s.inventory()
	merged := mergeSpans(inv.fresh)
	n := 0
	for _, id := range inv.ids {
		if covered(merged, id) {
			n++
		}
	}
	return n
}

// want=14
func (s solver) D5p2() any {
	merged := mergeSpans(s.inventory().fresh)
	s.Debug(merged.Items())
	n := 0
	merged.Scan(func(r span) bool {
		n += r.len()
		return true
	})
	return n
}

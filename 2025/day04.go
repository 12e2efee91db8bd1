package main

import (
	aoc "github.com/maisem/aoc2025"
)

func parseRolls(lines []string) aoc.Grid[bool] {
	return aoc.ParseGrid(lines, '.', func(c byte) bool { return c == '@' })
}

// accessible returns the rolls with fewer than four rolls around them.
func accessible(g aoc.Grid[bool]) []aoc.Pt {
	var out []aoc.Pt
	g.ForEach(func(p aoc.Pt, roll bool) {
		if !roll {
			return
		}
		n := 0
		p.ForNeighbors(func(q aoc.Pt) bool {
			if v, ok := g.AtOk(q); ok && v {
				n++
			}
			return true
		})
		if n < 4 {
			out = append(out, p)
		}
	})
	return out
}

// removeAccessible removes accessible rolls until the grid stops changing
// and returns how many were removed.
func removeAccessible(g aoc.Grid[bool]) int {
	removed := 0
	for h := g.Hash(); ; {
		for _, p := range accessible(g) {
			g.Set(p, false)
			removed++
		}
		next := g.Hash()
		if next == h {
			return removed
		}
		h = next
	}
}

/*
want=13

..@@.@@@@.
@@@.@@@.@.
@@@@@.@.@@
@.@@@@..@.
@@.@@@@.@@
.@@@@@@@.@
.@.@.@.@@@
@.@@@.@@@@
.@@@@@@@@.
@.@.@@@.@.
*/
func (s solver) D4p1() any {
	return len(accessible(parseRolls(s.Lines())))
}

// want=43
func (s solver) D4p2() any {
	g := parseRolls(s.Lines())
	n := removeAccessible(g)
	s.Debugf("%d rolls left", g.Count(func(roll bool) bool { return roll }))
	return n
}

package main

import (
	"strings"

	"golang.org/x/exp/maps"

	aoc "github.com/maisem/aoc2025"
)

// splitBeams follows a beam entering at S down the manifold. It returns
// the number of splitters hit and the number of timelines, the distinct
// paths a single particle could have taken.
func splitBeams(lines []string) (splits, timelines int) {
	row, col := -1, -1
	for y, l := range lines {
		if x := strings.IndexByte(l, 'S'); x >= 0 {
			row, col = y, x
			break
		}
	}
	if row < 0 {
		panic("no start")
	}
	paths := map[int]int{col: 1} // column -> timelines through it
	for _, l := range lines[row+1:] {
		next := make(map[int]int, len(paths)+1)
		for x, n := range paths {
			if x < len(l) && l[x] == '^' {
				splits++
				next[x-1] += n
				next[x+1] += n
				continue
			}
			next[x] += n
		}
		paths = next
	}
	return splits, aoc.Sum(maps.Values(paths)...)
}

/*
want=21

.......S.......
...............
.......^.......
...............
......^.^......
...............
.....^.^.^.....
...............
....^.^...^....
...............
...^.^...^.^...
...............
..^...^.....^..
...............
.^.^.^.^.^...^.
...............
*/
func (s solver) D7p1() any {
	splits, _ := splitBeams(s.Lines())
	return splits
}

// want=40
func (s solver) D7p2() any {
	_, timelines := splitBeams(s.Lines())
	return timelines
}

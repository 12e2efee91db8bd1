package main

import (
	aoc "github.com/maisem/aoc2025"
)

const dialSize = 100

// dial is the safe's dial. Its zero value is not ready for use; see newDial.
type dial struct {
	pos    int
	zeros  int // moves that ended on 0
	passes int // times 0 was crossed mid-move
}

func newDial() *dial {
	return &dial{pos: 50}
}

// turn moves the dial by steps clicks, right if positive and left if
// negative.
func (d *dial) turn(steps int) {
	d.passes += aoc.AbsDiff(steps, 0) / dialSize
	rem := steps % dialSize
	// Starting on 0 or landing on it is not a pass.
	if d.pos != 0 && (d.pos+rem > dialSize || d.pos+rem < 0) {
		d.passes++
	}
	d.pos = aoc.Mod(d.pos+rem, dialSize)
	if d.pos == 0 {
		d.zeros++
	}
}

func parseRotation(line string) int {
	n := aoc.Int(line[1:])
	switch line[0] {
	case 'R':
		return n
	case 'L':
		return -n
	}
	panic("bad rotation: " + line)
}

func (s solver) spin() *dial {
	d := newDial()
	s.ForLines(func(line string) {
		if line != "" {
			d.turn(parseRotation(line))
		}
	})
	return d
}

/*
want=3

L68
L30
R48
L5
R60
L55
L1
L99
R14
L82
*/
func (s solver) D1p1() any {
	return s.spin().zeros
}

// want=6
func (s solver) D1p2() any {
	d := s.spin()
	return d.zeros + d.passes
}

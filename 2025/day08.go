package main

import (
	"github.com/maisem/aoc2025/circuit"
)

func (s solver) junctionBoxes() (*circuit.System, error) {
	pts, err := circuit.ParsePoints(s.String())
	if err != nil {
		return nil, err
	}
	return circuit.Build(pts), nil
}

/*
want=40

162,817,812
57,618,57
906,360,560
592,479,940
352,342,300
466,668,158
542,29,236
431,825,988
739,650,466
52,470,668
216,146,977
819,987,18
117,168,530
805,96,715
346,949,466
970,615,88
941,993,340
862,61,35
984,92,344
425,690,689
*/
func (s solver) D8p1() any {
	k := 1000
	if s.SampleMode {
		k = 10
	}
	sys, err := s.junctionBoxes()
	if err != nil {
		return err
	}
	sys.ProcessBounded(k)
	s.Debugf("%d circuits, %d connections left", sys.Live(), sys.Pending())
	return sys.LargestProduct(3)
}

// want=25272
func (s solver) D8p2() any {
	sys, err := s.junctionBoxes()
	if err != nil {
		return err
	}
	last, err := sys.ProcessUntilSingleCircuit()
	if err != nil {
		return err
	}
	s.Debug(last)
	return int(sys.Box(last.From).Pos.X) * int(sys.Box(last.To).Pos.X)
}

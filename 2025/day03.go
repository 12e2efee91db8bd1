package main

import (
	aoc "github.com/maisem/aoc2025"
)

// maxJoltage returns the largest number that can be formed by keeping keep
// digits of bank in their original order.
func maxJoltage(bank []int, keep int) int {
	var st aoc.Stack[int]
	for i, d := range bank {
		// Drop smaller digits while enough digits remain to refill.
		for top, ok := st.Peek(); ok && top < d && st.Len()+len(bank)-i > keep; top, ok = st.Peek() {
			st.Pop()
		}
		if st.Len() < keep {
			st.Push(d)
		}
	}
	return aoc.FromDigits(st.Values()...)
}

func (s solver) totalJoltage(keep int) int {
	total := 0
	s.ForLines(func(line string) {
		if line == "" {
			return
		}
		total += maxJoltage(aoc.Digits(line), keep)
	})
	return total
}

/*
want=357

987654321111111
811111111111119
234234234234278
818181911112111
*/
func (s solver) D3p1() any {
	return s.totalJoltage(2)
}

// want=3121910778619
func (s solver) D3p2() any {
	return s.totalJoltage(12)
}

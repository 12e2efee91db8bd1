package main

import (
	"strings"

	aoc "github.com/maisem/aoc2025"
)

func calc(op byte, nums []int) int {
	switch op {
	case '+':
		return aoc.Sum(nums...)
	case '*':
		return aoc.Product(nums...)
	}
	panic("bad operator: " + string(op))
}

// worksheet returns the input lines without trailing blank lines. The last
// line holds the operators.
func (s solver) worksheet() []string {
	lines := s.Lines()
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// sumRows solves each problem reading its numbers row by row.
func sumRows(lines []string) int {
	ops := strings.Fields(lines[len(lines)-1])
	nums := make([][]int, len(ops))
	for _, l := range lines[:len(lines)-1] {
		for i, f := range strings.Fields(l) {
			nums[i] = append(nums[i], aoc.Int(f))
		}
	}
	total := 0
	for i, op := range ops {
		total += calc(op[0], nums[i])
	}
	return total
}

// sumColumns solves each problem reading one number per character column,
// most significant digit at the top. Columns of spaces separate problems.
func sumColumns(lines []string) int {
	cols := aoc.ParseGrid(lines, ' ', func(c byte) byte { return c }).Transpose()
	total := 0
	var (
		op   byte
		nums []int
	)
	flush := func() {
		if len(nums) > 0 {
			total += calc(op, nums)
		}
		nums = nil
	}
	for _, col := range cols {
		if c := col[len(col)-1]; c != ' ' {
			op = c
		}
		digits := strings.TrimSpace(string(col[:len(col)-1]))
		if digits == "" {
			flush()
			continue
		}
		nums = append(nums, aoc.Int(digits))
	}
	flush()
	return total
}

/*
want=4277556

123 328  51 64
 45 64  387 23
  6 98  215 314
*   +   *   +
*/
func (s solver) D6p1() any {
	return sumRows(s.worksheet())
}

// want=3263827
func (s solver) D6p2() any {
	return sumColumns(s.worksheet())
}

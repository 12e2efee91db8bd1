package main

import (
	"strconv"
	"strings"

	aoc "github.com/maisem/aoc2025"
)

// span is an inclusive range of ids.
type span struct {
	lo, hi int
}

func (r span) contains(v int) bool {
	return v >= r.lo && v <= r.hi
}

func (r span) len() int {
	return r.hi - r.lo + 1
}

func parseSpan(s string) span {
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		panic("bad span: " + s)
	}
	return span{aoc.Int(lo), aoc.Int(hi)}
}

// repeated reports whether the decimal form of id is a block of digits
// repeated at least twice. If times is positive the block must repeat
// exactly that many times.
func repeated(id, times int) bool {
	s := strconv.Itoa(id)
	n := len(s)
	for k := 1; k <= n/2; k++ {
		if n%k != 0 {
			continue
		}
		r := n / k
		if times > 0 && r != times {
			continue
		}
		if strings.Repeat(s[:k], r) == s {
			return true
		}
	}
	return false
}

func sumRepeated(spans []span, times int) int {
	sum := 0
	for _, r := range spans {
		for id := r.lo; id <= r.hi; id++ {
			if repeated(id, times) {
				sum += id
			}
		}
	}
	return sum
}

func (s solver) idSpans() []span {
	var spans []span
	for _, f := range strings.Split(strings.TrimSpace(s.String()), ",") {
		spans = append(spans, parseSpan(f))
	}
	return spans
}

/*
want=1227775554

11-22,95-115,998-1012,1188511880-1188511890,222220-222224,1698522-1698528,446443-446449,38593856-38593862,565653-565659,824824821-824824827,2121212118-2121212124
*/
func (s solver) D2p1() any {
	return sumRepeated(s.idSpans(), 2)
}

// want=4174379265
func (s solver) D2p2() any {
	return sumRepeated(s.idSpans(), 0)
}

package aoc

import (
	"reflect"
	"testing"
)

func TestParseGrid(t *testing.T) {
	g := ParseGrid([]string{"ab", "c", "def"}, '.', func(c byte) byte { return c })
	want := Grid[byte]{
		[]byte("ab."),
		[]byte("c.."),
		[]byte("def"),
	}
	if !reflect.DeepEqual(g, want) {
		t.Errorf("ParseGrid = %q, want %q", g, want)
	}
	if got := g.Size(); got != (Pt{3, 3}) {
		t.Errorf("Size = %v, want {3 3}", got)
	}
	if got := g.Count(func(c byte) bool { return c == '.' }); got != 3 {
		t.Errorf("Count(.) = %v, want 3", got)
	}
}

func TestTranspose(t *testing.T) {
	g := Grid[int]{
		{1, 2, 3},
		{4, 5, 6},
	}
	want := Grid[int]{
		{1, 4},
		{2, 5},
		{3, 6},
	}
	if got := g.Transpose(); !reflect.DeepEqual(got, want) {
		t.Errorf("Transpose = %v, want %v", got, want)
	}
}

func TestAtOk(t *testing.T) {
	g := MakeGrid[int](2, 3)
	g.Set(Pt{1, 2}, 7)
	tests := []struct {
		p    Pt
		want int
		ok   bool
	}{
		{Pt{1, 2}, 7, true},
		{Pt{0, 0}, 0, true},
		{Pt{-1, 0}, 0, false},
		{Pt{2, 0}, 0, false},
		{Pt{0, 3}, 0, false},
	}
	for _, tt := range tests {
		if got, ok := g.AtOk(tt.p); got != tt.want || ok != tt.ok {
			t.Errorf("AtOk(%v) = %v, %v; want %v, %v", tt.p, got, ok, tt.want, tt.ok)
		}
	}
}

func TestForNeighbors(t *testing.T) {
	n := 0
	Pt{5, 5}.ForNeighbors(func(p Pt) bool {
		if p == (Pt{5, 5}) {
			t.Errorf("visited the point itself")
		}
		n++
		return true
	})
	if n != 8 {
		t.Errorf("visited %d neighbors, want 8", n)
	}
}

func TestHash(t *testing.T) {
	a := Grid[bool]{{true, false}, {false, true}}
	b := Grid[bool]{{true, false}, {false, true}}
	if a.Hash() != b.Hash() {
		t.Errorf("equal grids hash differently")
	}
	b.Set(Pt{0, 0}, false)
	if a.Hash() == b.Hash() {
		t.Errorf("different grids hash the same")
	}
}

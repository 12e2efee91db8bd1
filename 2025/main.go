// Command 2025 solves the Advent of Code 2025 puzzles.
//
// Each day's worked example lives in the doc comment of its solver and is
// checked before the real input is solved.
package main

import (
	"embed"

	aoc "github.com/maisem/aoc2025"
)

func main() {
	aoc.Run(2025, sources, &solver{})
}

//go:embed day??.go
var sources embed.FS

type solver struct {
	*aoc.Puzzle
}

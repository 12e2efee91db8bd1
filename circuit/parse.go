package circuit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrMalformedInput is returned by ParsePoints for a line that is not three
// comma-separated numbers.
var ErrMalformedInput = errors.New("circuit: malformed input")

// ParsePoints parses one "x,y,z" point per line. Blank lines are skipped
// and whitespace around each number is ignored.
func ParsePoints(input string) ([]r3.Vec, error) {
	var pts []r3.Vec
	for i, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		f := strings.Split(line, ",")
		if len(f) != 3 {
			return nil, fmt.Errorf("%w: line %d: %q has %d fields, want 3", ErrMalformedInput, i+1, line, len(f))
		}
		var xyz [3]float64
		for j, v := range f {
			n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedInput, i+1, err)
			}
			xyz[j] = n
		}
		pts = append(pts, r3.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]})
	}
	return pts, nil
}

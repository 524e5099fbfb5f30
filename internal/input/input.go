// Package input reads polygon vertices written one "x,y" pair per line.
package input

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/xll-gen/tilerect/pkg/grid"
)

var (
	ErrEmpty     = errors.New("no vertices in input")
	ErrMalformed = errors.New("malformed vertex line")
)

// Parse reads vertices from r. Blank lines and lines starting with '#' are
// skipped; every other line must be two non-negative integers separated by a comma.
func Parse(r io.Reader) ([]grid.Point, error) {
	var points []grid.Point
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p, err := parseLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading vertices")
	}
	if len(points) == 0 {
		return nil, ErrEmpty
	}
	return points, nil
}

func parseLine(line string) (grid.Point, error) {
	xs, ys, ok := strings.Cut(line, ",")
	if !ok {
		return grid.Point{}, errors.Wrapf(ErrMalformed, "%q: expected x,y", line)
	}
	x, err := parseCoord(xs)
	if err != nil {
		return grid.Point{}, errors.Wrapf(ErrMalformed, "%q: x: %v", line, err)
	}
	y, err := parseCoord(ys)
	if err != nil {
		return grid.Point{}, errors.Wrapf(ErrMalformed, "%q: y: %v", line, err)
	}
	return grid.Point{X: x, Y: y}, nil
}

func parseCoord(s string) (int, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, strconv.IntSize-1)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// ReadFile parses the vertices in path. "-" reads standard input.
func ReadFile(path string) ([]grid.Point, error) {
	if path == "-" {
		return Parse(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening vertices")
	}
	defer f.Close()

	points, err := Parse(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return points, nil
}

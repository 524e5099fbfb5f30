package regtest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xll-gen/tilerect/internal/input"
	"github.com/xll-gen/tilerect/internal/solver"
	"github.com/xll-gen/tilerect/pkg/grid"
	"gopkg.in/yaml.v3"
)

// Suite is a list of scenarios loaded from yaml.
type Suite struct {
	Cases []Case `yaml:"cases"`

	dir string
}

// Case is one scenario. Exactly one of Vertices (inline, one "x,y" per line)
// and File (relative to the suite) must be set.
type Case struct {
	Name          string `yaml:"name"`
	Vertices      string `yaml:"vertices"`
	File          string `yaml:"file"`
	AllowDiagonal bool   `yaml:"allow_diagonal"`
	WantLargest   *int   `yaml:"want_largest"`
	WantEnclosed  *int   `yaml:"want_enclosed"`
	// WantError, when set, must appear in the error the case fails with.
	WantError string `yaml:"want_error"`
}

// Outcome is the result of running one case.
type Outcome struct {
	Name   string
	Passed bool
	Detail string
}

// Load reads a suite file.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	s.dir = filepath.Dir(path)

	seen := make(map[string]bool)
	for i, c := range s.Cases {
		if c.Name == "" {
			return nil, fmt.Errorf("case %d: missing name", i)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("duplicate case name: %s", c.Name)
		}
		seen[c.Name] = true
		if (c.Vertices == "") == (c.File == "") {
			return nil, fmt.Errorf("case '%s': set exactly one of vertices or file", c.Name)
		}
		if c.WantError == "" && c.WantLargest == nil && c.WantEnclosed == nil {
			return nil, fmt.Errorf("case '%s': nothing to check", c.Name)
		}
	}
	return &s, nil
}

// Run executes every case in order. workers and index are passed through to
// the solver; each case decides on diagonal edges itself.
func (s *Suite) Run(ctx context.Context, opts solver.Options) []Outcome {
	outcomes := make([]Outcome, 0, len(s.Cases))
	for _, c := range s.Cases {
		outcomes = append(outcomes, s.runCase(ctx, c, opts))
	}
	return outcomes
}

func (s *Suite) runCase(ctx context.Context, c Case, opts solver.Options) Outcome {
	out := Outcome{Name: c.Name}

	vertices, err := s.vertices(c)
	if err == nil {
		opts.AllowDiagonal = c.AllowDiagonal
		var rep *solver.Report
		rep, err = solver.Run(ctx, vertices, opts)
		if err == nil {
			return check(out, c, rep)
		}
	}

	switch {
	case c.WantError == "":
		out.Detail = err.Error()
	case !strings.Contains(err.Error(), c.WantError):
		out.Detail = fmt.Sprintf("error %q does not mention %q", err, c.WantError)
	default:
		out.Passed = true
		out.Detail = "failed as expected"
	}
	return out
}

func (s *Suite) vertices(c Case) ([]grid.Point, error) {
	if c.File != "" {
		path := c.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(s.dir, path)
		}
		return input.ReadFile(path)
	}
	return input.Parse(strings.NewReader(c.Vertices))
}

func check(out Outcome, c Case, rep *solver.Report) Outcome {
	if c.WantError != "" {
		out.Detail = fmt.Sprintf("expected error mentioning %q", c.WantError)
		return out
	}

	var problems []string
	if c.WantLargest != nil && *c.WantLargest != rep.Largest.Area {
		problems = append(problems, fmt.Sprintf("largest = %d, want %d", rep.Largest.Area, *c.WantLargest))
	}
	if c.WantEnclosed != nil && *c.WantEnclosed != rep.Enclosed.Area {
		problems = append(problems, fmt.Sprintf("enclosed = %d, want %d", rep.Enclosed.Area, *c.WantEnclosed))
	}
	if len(problems) > 0 {
		out.Detail = strings.Join(problems, "; ")
		return out
	}

	out.Passed = true
	out.Detail = fmt.Sprintf("largest %d, enclosed %d", rep.Largest.Area, rep.Enclosed.Area)
	return out
}

// Failed counts the outcomes that did not pass.
func Failed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if !o.Passed {
			n++
		}
	}
	return n
}

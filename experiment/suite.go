// Package experiment: YAML suite configuration and batch execution.
package experiment

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/maxmatch/graphio"
)

// Suite describes a batch of graph files to compare the engines on.
//
// Graphs entries are file paths or globs, expanded and sorted before the
// run so record order is stable. MaxExhaustiveEdges overrides the default
// ceiling when positive.
type Suite struct {
	Graphs             []string `yaml:"graphs"`
	MaxExhaustiveEdges int      `yaml:"max_exhaustive_edges"`
}

// LoadSuite decodes a YAML suite description.
func LoadSuite(r io.Reader) (Suite, error) {
	var s Suite
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return Suite{}, fmt.Errorf("experiment: decode suite: %w", err)
	}

	return s, nil
}

// LoadSuiteFile is LoadSuite against a file path.
func LoadSuiteFile(path string) (Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return Suite{}, fmt.Errorf("experiment: open suite %s: %w", path, err)
	}
	defer f.Close()

	return LoadSuite(f)
}

// RunSuite expands the suite's graph patterns, loads every file through
// graphio, and runs a comparison for each. Records are returned in sorted
// file order.
//
// Error Conditions:
//   - ErrEmptySuite : no pattern matched any file.
//   - wrapped glob / load / run errors, each naming the offending file.
func RunSuite(s Suite, opts ...Option) ([]Record, error) {
	// Suite ceiling takes effect unless the caller passed an explicit one;
	// option order makes later options win, so append ours first.
	if s.MaxExhaustiveEdges > 0 {
		opts = append([]Option{WithMaxExhaustiveEdges(s.MaxExhaustiveEdges)}, opts...)
	}
	cfg := newConfig(opts...)

	files, err := expand(s.Graphs)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrEmptySuite
	}

	records := make([]Record, 0, len(files))
	for _, file := range files {
		cfg.logger.WithField("file", file).Info("running comparison")

		g, err := graphio.LoadFile(file)
		if err != nil {
			return nil, fmt.Errorf("experiment: %s: %w", file, err)
		}
		cmp, err := Run(g, opts...)
		if err != nil {
			return nil, fmt.Errorf("experiment: %s: %w", file, err)
		}
		records = append(records, Record{File: file, Comparison: cmp})
	}

	return records, nil
}

// expand resolves globs and literal paths into a sorted, de-duplicated
// file list.
func expand(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("experiment: glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}
	sort.Strings(files)

	return files, nil
}

// Package experiment: aggregate statistics and the fixed-width report.
package experiment

import (
	"fmt"
	"io"
)

// Summary aggregates a batch of comparison records.
type Summary struct {
	// Total is the number of graphs processed.
	Total int

	// ExhaustiveRun counts graphs where the exact engine actually ran.
	ExhaustiveRun int

	// OptimalCount counts graphs where greedy hit the optimum.
	OptimalCount int

	// AvgQuality averages greedy quality % over graphs with both engines.
	AvgQuality float64

	// AvgSpeedup averages exhaustive/greedy elapsed ratios over the same.
	AvgSpeedup float64
}

// Summarize folds records into a Summary. Graphs whose exhaustive run was
// skipped contribute to Total only.
// Complexity: O(len(records)).
func Summarize(records []Record) Summary {
	var s Summary
	s.Total = len(records)

	var qualitySum, speedupSum float64
	var speedups int
	for _, r := range records {
		c := r.Comparison
		if c.ExhaustiveSkipped() {
			continue
		}
		s.ExhaustiveRun++
		qualitySum += c.Quality
		if c.Optimal() {
			s.OptimalCount++
		}
		if c.Speedup > 0 {
			speedupSum += c.Speedup
			speedups++
		}
	}
	if s.ExhaustiveRun > 0 {
		s.AvgQuality = qualitySum / float64(s.ExhaustiveRun)
	}
	if speedups > 0 {
		s.AvgSpeedup = speedupSum / float64(speedups)
	}

	return s
}

// WriteReport renders records and their summary as the familiar
// fixed-width text table.
func WriteReport(w io.Writer, records []Record, s Summary) error {
	const line = "--------------------------------------------------------------------------------"

	if _, err := fmt.Fprintf(w, "%-34s %4s %6s %12s %12s %9s\n",
		"Graph", "V", "E", "Exhaustive", "Greedy", "Quality"); err != nil {
		return fmt.Errorf("experiment: write report: %w", err)
	}
	fmt.Fprintln(w, line)

	for _, r := range records {
		c := r.Comparison
		exWeight, quality := "N/A", "N/A"
		if !c.ExhaustiveSkipped() {
			exWeight = fmt.Sprintf("%.2f", c.Exhaustive.Weight)
			quality = fmt.Sprintf("%.1f%%", c.Quality)
		}
		fmt.Fprintf(w, "%-34s %4d %6d %12s %12.2f %9s\n",
			r.File, c.Vertices, c.Edges, exWeight, c.Greedy.Weight, quality)
	}

	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "Graphs tested:        %d\n", s.Total)
	fmt.Fprintf(w, "Exhaustive completed: %d\n", s.ExhaustiveRun)
	if s.ExhaustiveRun > 0 {
		fmt.Fprintf(w, "Average quality:      %.2f%%\n", s.AvgQuality)
		fmt.Fprintf(w, "Greedy optimal in:    %d/%d (%.1f%%)\n",
			s.OptimalCount, s.ExhaustiveRun,
			float64(s.OptimalCount)/float64(s.ExhaustiveRun)*100)
	}
	if s.AvgSpeedup > 0 {
		fmt.Fprintf(w, "Average speedup:      %.2fx\n", s.AvgSpeedup)
	}

	return nil
}

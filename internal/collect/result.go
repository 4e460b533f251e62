// Package collect orchestrates one collection run: the sequential station
// loop, the two-source merge, and persistence of per-station and aggregate
// files.
package collect

import "fmt"

// Result tracks counts and errors from a collection run.
type Result struct {
	StationsProcessed int
	StationsFailed    int
	Merged            int
	EmptyExtractions  int
	Errors            []string
}

// AddErrorf records a formatted error message.
func (r *Result) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the run.
func (r *Result) Summary() string {
	return fmt.Sprintf(
		"stations=%d failed=%d merged=%d empty=%d errors=%d",
		r.StationsProcessed, r.StationsFailed, r.Merged,
		r.EmptyExtractions, len(r.Errors),
	)
}

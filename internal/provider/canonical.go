// Package provider defines the canonical observation types shared by the
// weather.gov and mtavalanche handlers, plus the table extraction both
// rely on.
package provider

import "context"

// Source names as they appear in persisted records.
const (
	SourceNWS         = "weather.gov"
	SourceMTAvalanche = "mtavalanche"
)

// Table is an extracted observation table. Rows may be ragged: the upstream
// markup does not guarantee one cell per header, and cell counts are
// preserved as scraped.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// EmptyTable returns a well-formed zero-row table. Headers and Rows are
// non-nil so the JSON output is always {"headers":[],"rows":[]}.
func EmptyTable() Table {
	return Table{Headers: []string{}, Rows: [][]string{}}
}

// IsEmpty reports whether the table holds no observation rows.
func (t Table) IsEmpty() bool {
	return len(t.Rows) == 0
}

// Record is one station's result for one run, written verbatim to its
// JSON file.
type Record struct {
	StationID      string   `json:"station_id"`
	StationName    string   `json:"station_name"`
	Timestamp      string   `json:"timestamp"` // UTC, RFC 3339
	Data           *Table   `json:"data,omitempty"`
	URL            string   `json:"url"`
	Error          string   `json:"error,omitempty"`
	Source         string   `json:"source,omitempty"`
	Sources        []string `json:"sources,omitempty"`
	MTAvalancheURL string   `json:"mtavalanche_url,omitempty"`
}

// Failed reports whether the record carries a fetch error.
func (r Record) Failed() bool {
	return r.Error != ""
}

// PageFetcher loads a URL and returns the rendered HTML. Implemented by the
// shared browser session; handlers depend on this interface so tests can
// substitute canned pages.
type PageFetcher interface {
	HTML(ctx context.Context, url string) (string, error)
}

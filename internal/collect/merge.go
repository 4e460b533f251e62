package collect

import (
	"github.com/andrewnakas/Yellowstone-Club-Weather-Stations/internal/provider"
)

// SourceResult is a successful secondary-source extraction: the table plus
// the URL it came from. A nil *SourceResult means the secondary fetch was
// not attempted or failed.
type SourceResult struct {
	Table provider.Table
	URL   string
}

// Merge combines the primary record with an optional secondary result.
// It never fails; every degenerate input falls back to the primary record
// unchanged:
//
//   - primary carries a fetch error
//   - secondary absent
//   - either side has zero rows
//
// On a real merge the secondary's rows come first (a positional convention
// standing in for recency, not a verified ordering) and the primary's
// headers win; the secondary's headers are discarded even when the shapes
// differ. No dedup of overlapping observations.
func Merge(primary provider.Record, secondary *SourceResult) provider.Record {
	if primary.Failed() {
		return primary
	}
	if secondary == nil {
		return primary
	}
	if primary.Data == nil || primary.Data.IsEmpty() {
		return primary
	}
	if secondary.Table.IsEmpty() {
		return primary
	}

	rows := make([][]string, 0, len(secondary.Table.Rows)+len(primary.Data.Rows))
	rows = append(rows, secondary.Table.Rows...)
	rows = append(rows, primary.Data.Rows...)

	merged := primary
	merged.Data = &provider.Table{
		Headers: primary.Data.Headers,
		Rows:    rows,
	}
	merged.Source = ""
	merged.Sources = []string{provider.SourceMTAvalanche, provider.SourceNWS}
	merged.MTAvalancheURL = secondary.URL
	return merged
}

package collect

import (
	"reflect"
	"testing"

	"github.com/andrewnakas/Yellowstone-Club-Weather-Stations/internal/provider"
)

func primaryRecord(rows [][]string) provider.Record {
	return provider.Record{
		StationID:   "YCTIM",
		StationName: "Timberline",
		Timestamp:   "2024-01-01T12:00:00Z",
		Data:        &provider.Table{Headers: []string{"Date", "Temp"}, Rows: rows},
		URL:         "https://www.weather.gov/wrh/timeseries?site=YCTIM&hours=168&units=english",
		Source:      provider.SourceNWS,
	}
}

func secondaryResult(rows [][]string) *SourceResult {
	return &SourceResult{
		Table: provider.Table{Headers: []string{"Hour", "Wind"}, Rows: rows},
		URL:   "https://www.mtavalanche.com/weather/wx-stations/yc-timberline",
	}
}

// TestMerge_PrimaryError verifies that an error-bearing primary record
// passes through untouched regardless of the secondary.
func TestMerge_PrimaryError(t *testing.T) {
	primary := provider.Record{
		StationID: "YCTIM",
		Error:     "net::ERR_TIMED_OUT",
		Source:    provider.SourceNWS,
	}

	got := Merge(primary, secondaryResult([][]string{{"00:00", "5mph"}}))

	if !reflect.DeepEqual(got, primary) {
		t.Errorf("Merge() = %+v, want unchanged primary", got)
	}
}

// TestMerge_NilSecondary verifies the fallback when the secondary fetch was
// not attempted or failed.
func TestMerge_NilSecondary(t *testing.T) {
	primary := primaryRecord([][]string{{"2024-01-01", "20F"}})

	got := Merge(primary, nil)

	if !reflect.DeepEqual(got, primary) {
		t.Errorf("Merge() = %+v, want unchanged primary", got)
	}
}

// TestMerge_EmptyPrimaryRows verifies that no merge happens onto empty
// primary data.
func TestMerge_EmptyPrimaryRows(t *testing.T) {
	primary := primaryRecord([][]string{})

	got := Merge(primary, secondaryResult([][]string{{"00:00", "5mph"}}))

	if !reflect.DeepEqual(got, primary) {
		t.Errorf("Merge() = %+v, want unchanged primary", got)
	}
	if len(got.Sources) != 0 {
		t.Errorf("Sources = %v, want none", got.Sources)
	}
}

// TestMerge_EmptySecondaryRows verifies that an empty secondary table leaves
// the primary record untouched.
func TestMerge_EmptySecondaryRows(t *testing.T) {
	primary := primaryRecord([][]string{{"2024-01-01", "20F"}})

	got := Merge(primary, secondaryResult([][]string{}))

	if !reflect.DeepEqual(got, primary) {
		t.Errorf("Merge() = %+v, want unchanged primary", got)
	}
}

// TestMerge_ConcatenationOrder verifies secondary-rows-first ordering and
// that the primary's headers win.
func TestMerge_ConcatenationOrder(t *testing.T) {
	primary := primaryRecord([][]string{{"P1"}, {"P2"}})
	secondary := secondaryResult([][]string{{"S1"}})

	got := Merge(primary, secondary)

	wantRows := [][]string{{"S1"}, {"P1"}, {"P2"}}
	if !reflect.DeepEqual(got.Data.Rows, wantRows) {
		t.Errorf("Rows = %v, want %v", got.Data.Rows, wantRows)
	}
	if !reflect.DeepEqual(got.Data.Headers, []string{"Date", "Temp"}) {
		t.Errorf("Headers = %v, want the primary's headers", got.Data.Headers)
	}
}

// TestMerge_Scenario runs the full two-source scenario: merged record keeps
// primary headers, prepends secondary rows, records both source names and
// the secondary URL.
func TestMerge_Scenario(t *testing.T) {
	primary := primaryRecord([][]string{{"2024-01-01", "20F"}})
	secondary := secondaryResult([][]string{{"00:00", "5mph"}})

	got := Merge(primary, secondary)

	if !reflect.DeepEqual(got.Data.Headers, []string{"Date", "Temp"}) {
		t.Errorf("Headers = %v, want [Date Temp]", got.Data.Headers)
	}
	wantRows := [][]string{{"00:00", "5mph"}, {"2024-01-01", "20F"}}
	if !reflect.DeepEqual(got.Data.Rows, wantRows) {
		t.Errorf("Rows = %v, want %v", got.Data.Rows, wantRows)
	}
	wantSources := []string{"mtavalanche", "weather.gov"}
	if !reflect.DeepEqual(got.Sources, wantSources) {
		t.Errorf("Sources = %v, want %v", got.Sources, wantSources)
	}
	if got.MTAvalancheURL != secondary.URL {
		t.Errorf("MTAvalancheURL = %q, want %q", got.MTAvalancheURL, secondary.URL)
	}
	if got.Source != "" {
		t.Errorf("Source = %q, want empty once Sources is set", got.Source)
	}
}

// TestMerge_DoesNotMutateInputs verifies the merge builds a new row slice
// instead of appending into the primary's.
func TestMerge_DoesNotMutateInputs(t *testing.T) {
	primary := primaryRecord([][]string{{"2024-01-01", "20F"}})
	secondary := secondaryResult([][]string{{"00:00", "5mph"}})

	_ = Merge(primary, secondary)

	if len(primary.Data.Rows) != 1 {
		t.Errorf("primary rows mutated: %v", primary.Data.Rows)
	}
	if len(secondary.Table.Rows) != 1 {
		t.Errorf("secondary rows mutated: %v", secondary.Table.Rows)
	}
}

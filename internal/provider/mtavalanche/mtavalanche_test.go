package mtavalanche

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/andrewnakas/Yellowstone-Club-Weather-Stations/internal/config"
)

type fakeFetcher struct {
	html string
	err  error
}

func (f *fakeFetcher) HTML(_ context.Context, url string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.html, nil
}

var timberline = config.Station{ID: "YCTIM", Name: "Timberline", MTAvalanchePath: "yc-timberline"}

func testHandler(fetcher *fakeFetcher) *Handler {
	cfg := &config.Config{MTAvalancheBaseURL: "https://www.mtavalanche.com/weather/wx-stations"}
	return NewHandler(fetcher, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// TestStationURL verifies the station path segment is appended to the base.
func TestStationURL(t *testing.T) {
	h := testHandler(&fakeFetcher{})

	got := h.StationURL(timberline)
	want := "https://www.mtavalanche.com/weather/wx-stations/yc-timberline"
	if got != want {
		t.Errorf("StationURL() = %q, want %q", got, want)
	}
}

// TestFetchStation_ExtractsTable verifies extraction with this source's
// keyword set (Hour/Wind wording).
func TestFetchStation_ExtractsTable(t *testing.T) {
	fetcher := &fakeFetcher{html: `
		<table>
			<tr><th>Hour</th><th>Wind</th></tr>
			<tr><td>00:00</td><td>5mph</td></tr>
		</table>`}
	h := testHandler(fetcher)

	table, url, err := h.FetchStation(context.Background(), timberline)
	if err != nil {
		t.Fatalf("FetchStation() error = %v", err)
	}
	if url != h.StationURL(timberline) {
		t.Errorf("url = %q, want %q", url, h.StationURL(timberline))
	}
	if !reflect.DeepEqual(table.Headers, []string{"Hour", "Wind"}) {
		t.Errorf("Headers = %v, want [Hour Wind]", table.Headers)
	}
	if !reflect.DeepEqual(table.Rows, [][]string{{"00:00", "5mph"}}) {
		t.Errorf("Rows = %v, want one observation", table.Rows)
	}
}

// TestFetchStation_FetchError verifies failures propagate so the caller
// can silently skip the merge.
func TestFetchStation_FetchError(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("net::ERR_NAME_NOT_RESOLVED")}
	h := testHandler(fetcher)

	table, _, err := h.FetchStation(context.Background(), timberline)
	if err == nil {
		t.Fatal("FetchStation() error = nil, want fetch failure")
	}
	if len(table.Rows) != 0 {
		t.Errorf("Rows = %v, want empty on error", table.Rows)
	}
}

// Package mtavalanche fetches the avalanche-center station page, the
// secondary source. Its real-time table covers hours the weather.gov
// timeseries has not published yet. Failures here never mark a run record
// as errored; the merge simply does not happen.
package mtavalanche

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/andrewnakas/Yellowstone-Club-Weather-Stations/internal/config"
	"github.com/andrewnakas/Yellowstone-Club-Weather-Stations/internal/provider"
)

// headerKeywords matches the real-time observation table on the
// avalanche-center station pages. Slightly different wording than
// weather.gov, hence a separate set.
var headerKeywords = []string{"Date", "Hour", "Wind"}

// Handler fetches and extracts real-time observations for one run.
type Handler struct {
	fetcher provider.PageFetcher
	baseURL string
	logger  *slog.Logger
}

// NewHandler creates an mtavalanche handler over the shared page fetcher.
func NewHandler(fetcher provider.PageFetcher, cfg *config.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		fetcher: fetcher,
		baseURL: cfg.MTAvalancheBaseURL,
		logger:  logger,
	}
}

// StationURL builds the station page URL from the registry path segment.
func (h *Handler) StationURL(station config.Station) string {
	return fmt.Sprintf("%s/%s", h.baseURL, station.MTAvalanchePath)
}

// FetchStation loads the station page and extracts its observation table.
func (h *Handler) FetchStation(ctx context.Context, station config.Station) (provider.Table, string, error) {
	url := h.StationURL(station)

	html, err := h.fetcher.HTML(ctx, url)
	if err != nil {
		return provider.EmptyTable(), url, fmt.Errorf("fetch %s: %w", station.ID, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return provider.EmptyTable(), url, fmt.Errorf("parse %s: %w", station.ID, err)
	}

	table := provider.ExtractTable(doc, headerKeywords)
	h.logger.Debug("mtavalanche extraction", "site", station.ID, "headers", len(table.Headers), "rows", len(table.Rows))
	return table, url, nil
}

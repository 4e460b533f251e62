// Package nws fetches the weather.gov timeseries page for a station and
// extracts its observation table. This is the primary source: every run
// record starts from its result.
package nws

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/andrewnakas/Yellowstone-Club-Weather-Stations/internal/config"
	"github.com/andrewnakas/Yellowstone-Club-Weather-Stations/internal/provider"
)

// headerKeywords matches the timeseries table on the weather.gov page.
// The wording is controlled by the remote site; substring matching on a few
// stable words is the tolerance for minor markup drift.
var headerKeywords = []string{"Date", "Time", "Temp"}

// Handler fetches and extracts timeseries observations for one run.
type Handler struct {
	fetcher provider.PageFetcher
	baseURL string
	hours   int
	logger  *slog.Logger
}

// NewHandler creates a weather.gov handler over the shared page fetcher.
func NewHandler(fetcher provider.PageFetcher, cfg *config.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		fetcher: fetcher,
		baseURL: cfg.NWSBaseURL,
		hours:   cfg.LookbackHours,
		logger:  logger,
	}
}

// StationURL builds the timeseries URL for a site code.
func (h *Handler) StationURL(siteID string) string {
	return fmt.Sprintf("%s?site=%s&hours=%d&units=english", h.baseURL, siteID, h.hours)
}

// FetchStation loads the station page and extracts its observation table.
// An extraction miss is not an error: the table comes back empty and the
// caller decides what to do with zero rows.
func (h *Handler) FetchStation(ctx context.Context, siteID string) (provider.Table, string, error) {
	url := h.StationURL(siteID)

	html, err := h.fetcher.HTML(ctx, url)
	if err != nil {
		return provider.EmptyTable(), url, fmt.Errorf("fetch %s: %w", siteID, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return provider.EmptyTable(), url, fmt.Errorf("parse %s: %w", siteID, err)
	}

	table := provider.ExtractTable(doc, headerKeywords)
	h.logger.Debug("nws extraction", "site", siteID, "headers", len(table.Headers), "rows", len(table.Rows))
	return table, url, nil
}

package collect

import (
	"context"
	"log/slog"
	"time"

	"github.com/andrewnakas/Yellowstone-Club-Weather-Stations/internal/config"
	"github.com/andrewnakas/Yellowstone-Club-Weather-Stations/internal/provider"
	"github.com/andrewnakas/Yellowstone-Club-Weather-Stations/internal/provider/mtavalanche"
	"github.com/andrewnakas/Yellowstone-Club-Weather-Stations/internal/provider/nws"
	"github.com/andrewnakas/Yellowstone-Club-Weather-Stations/internal/store"
)

// Screenshotter captures a diagnostic screenshot of the current page.
// Implemented by the browser session; nil disables the diagnostics.
type Screenshotter interface {
	Screenshot(ctx context.Context, dir, name string) error
}

// Deps holds the handlers and sinks a run needs. Secondary may be nil
// when the avalanche-center source is disabled.
type Deps struct {
	Primary   *nws.Handler
	Secondary *mtavalanche.Handler
	Store     *store.Store
	Screens   Screenshotter
}

// Run processes every registry station in order: primary fetch, secondary
// fetch, merge, then the per-station file. One station is fully finished
// before the next begins, and a station's failure never aborts the loop —
// it becomes an error-bearing record. After the loop the aggregate and
// metadata files are written.
func Run(ctx context.Context, deps *Deps, cfg *config.Config, logger *slog.Logger) Result {
	var result Result
	all := make(map[string]provider.Record, len(config.StationRegistry))

	for _, station := range config.StationRegistry {
		logger.Info("fetching station", "name", station.Name, "site", station.ID)

		rec := collectStation(ctx, deps, cfg, station, &result, logger)
		all[station.ID] = rec
		result.StationsProcessed++

		if err := deps.Store.WriteStation(rec); err != nil {
			result.AddErrorf("write station %s: %v", station.ID, err)
			logger.Error("write station failed", "site", station.ID, "error", err)
			continue
		}
		logger.Info("station saved", "name", station.Name, "site", station.ID)
	}

	if err := deps.Store.WriteAll(all); err != nil {
		result.AddErrorf("write aggregate: %v", err)
	}

	meta := store.Metadata{
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
		Stations:    config.StationIDs(),
		HoursOfData: cfg.LookbackHours,
	}
	if err := deps.Store.WriteMetadata(meta); err != nil {
		result.AddErrorf("write metadata: %v", err)
	}

	return result
}

// collectStation produces one station's record. Primary failures yield an
// error-bearing record with no data table; secondary failures are silent
// apart from a warning and leave the primary record untouched.
func collectStation(ctx context.Context, deps *Deps, cfg *config.Config, station config.Station, result *Result, logger *slog.Logger) provider.Record {
	now := time.Now().UTC().Format(time.RFC3339)

	table, url, err := deps.Primary.FetchStation(ctx, station.ID)
	if err != nil {
		result.StationsFailed++
		result.AddErrorf("station %s: %v", station.ID, err)
		logger.Error("primary fetch failed", "site", station.ID, "error", err)
		return provider.Record{
			StationID:   station.ID,
			StationName: station.Name,
			Timestamp:   now,
			URL:         url,
			Error:       err.Error(),
			Source:      provider.SourceNWS,
		}
	}

	rec := provider.Record{
		StationID:   station.ID,
		StationName: station.Name,
		Timestamp:   now,
		Data:        &table,
		URL:         url,
		Source:      provider.SourceNWS,
	}

	if table.IsEmpty() {
		result.EmptyExtractions++
		logger.Warn("no observation table matched", "site", station.ID)
		if cfg.ScreenshotOnMiss && deps.Screens != nil {
			if serr := deps.Screens.Screenshot(ctx, cfg.ScreenshotDir, station.ID); serr != nil {
				logger.Debug("screenshot failed", "site", station.ID, "error", serr)
			}
		}
	}

	if deps.Secondary == nil {
		return rec
	}

	secTable, secURL, err := deps.Secondary.FetchStation(ctx, station)
	if err != nil {
		logger.Warn("secondary fetch failed", "site", station.ID, "error", err)
		return rec
	}

	merged := Merge(rec, &SourceResult{Table: secTable, URL: secURL})
	if len(merged.Sources) > 0 {
		result.Merged++
		logger.Info("merged secondary rows", "site", station.ID, "rows", len(secTable.Rows))
	}
	return merged
}

package main

import (
	"context"
	"errors"
	"fmt"
	"meama/internal/sheet"
	"meama/internal/store"
	"time"
)

// refreshDirectory re-fetches the spreadsheet and swaps the snapshot. Failure
// modes keep the previous snapshot and surface a notice instead:
// an unconfigured endpoint serves sample data, a fetch error keeps serving
// whatever was loaded last, and an empty dump is flagged but not applied.
func (app *application) refreshDirectory(ctx context.Context) error {
	tables, err := app.sheet.FetchTables(ctx)
	if err != nil {
		if errors.Is(err, sheet.ErrUnconfigured) {
			app.store.Baristas.Replace(store.SampleBaristas(), store.SourceSample,
				"showing sample data, connect a spreadsheet to go live")
			return nil
		}

		app.logger.Errorw("sheet refresh failed", "error", err)
		app.store.Baristas.SetNotice("could not reach the spreadsheet, data may be stale")
		return fmt.Errorf("refresh directory: %w", err)
	}

	baristas := store.ParseTables(tables.Baristas, tables.Reviews)
	if len(baristas) == 0 {
		app.logger.Warnw("sheet refresh returned no valid baristas, keeping snapshot")
		app.store.Baristas.SetNotice("connected to the spreadsheet, but found no valid baristas")
		return nil
	}

	app.store.Baristas.Replace(baristas, store.SourceSheet, "")

	stats := app.store.Baristas.Stats()
	app.logger.Infow("directory refreshed", "baristas", stats.Baristas, "reviews", stats.Reviews)
	return nil
}

// refreshSheetEvery keeps the snapshot fresh until the context is cancelled.
func (app *application) refreshSheetEvery(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := app.refreshDirectory(ctx); err != nil {
				app.logger.Errorf("Error refreshing directory: %v", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

// The dataset command is the one-shot batch job: it reads the full order
// snapshot, derives labels, strips leakage, and writes the training CSV
// together with the schema registry artifact. Any data-integrity failure
// aborts before a single output byte is written.
package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"rentrisk/internal/config"
	"rentrisk/internal/database"
	"rentrisk/internal/pipeline"
	"rentrisk/internal/schema"
	"rentrisk/internal/service"
)

func main() {
	cfg := config.New()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	db, err := database.NewDB(cfg.DatabaseURI)
	if err != nil {
		slog.Error("failed to connect to DB", "error", err)
		os.Exit(1)
	}
	defer database.CloseDB(db)

	ctx := context.Background()
	store := service.NewOrderStore(db)

	whitelist, err := store.RiskWhitelist(ctx)
	if err != nil {
		slog.Error("failed to read risk whitelist", "error", err)
		os.Exit(1)
	}

	orders, err := store.AllOrders(ctx)
	if err != nil {
		slog.Error("failed to read order snapshot", "error", err)
		os.Exit(1)
	}
	slog.Info("snapshot loaded", "orders", len(orders), "whitelisted_users", len(whitelist))

	ds, err := pipeline.BuildDataset(orders, whitelist)
	if err != nil {
		slog.Error("dataset build failed", "error", err)
		os.Exit(1)
	}

	if err := writeDataset(ds, cfg.DatasetPath); err != nil {
		slog.Error("failed to write dataset", "error", err)
		os.Exit(1)
	}

	registry := schema.Capture(ds.FeatureColumns())
	if err := registry.Save(cfg.SchemaPath); err != nil {
		slog.Error("failed to write schema registry", "error", err)
		os.Exit(1)
	}

	slog.Info("dataset written",
		"path", cfg.DatasetPath,
		"rows", len(ds.Rows),
		"feature_columns", registry.Size(),
	)
}

// writeDataset writes to a temp file and renames it into place, so a failed
// run never leaves a truncated dataset at the output path.
func writeDataset(ds *pipeline.Dataset, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".dataset-*.csv")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := ds.WriteCSV(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

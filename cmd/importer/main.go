// Command importer converts an audiogram spreadsheet export into a
// normalized SQL dump.
//
//	importer -in Audiogramme.csv -out dump.sql
//
// Service endpoints, lookup timeouts and the optional direct-load database
// come from the environment (or a .env file); see internal/config.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/audiogrambase/ingest/internal/build"
	"github.com/audiogrambase/ingest/internal/config"
	"github.com/audiogrambase/ingest/internal/dbload"
	"github.com/audiogrambase/ingest/internal/logging"
	"github.com/audiogrambase/ingest/internal/lookup"
	"github.com/audiogrambase/ingest/internal/sheet"
	"github.com/audiogrambase/ingest/internal/sqlgen"
)

func main() {
	if err := run(); err != nil {
		slog.Error("import failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	inPath := flag.String("in", "", "path to the spreadsheet export (csv)")
	outPath := flag.String("out", "", "path for the generated SQL file")
	flag.Parse()

	if *inPath == "" || *outPath == "" {
		flag.Usage()
		return fmt.Errorf("both -in and -out are required")
	}

	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	runID := uuid.NewString()
	log := logging.ForRun(runID)
	log.Info("import starting", "in", *inPath, "out", *outPath)
	start := time.Now()

	sh, err := sheet.Load(*inPath)
	if err != nil {
		return err
	}
	log.Info("sheet loaded", "rows", len(sh.Rows), "columns", len(sh.Columns))

	client := lookup.NewClient(cfg.Lookup.Timeout, cfg.Lookup.Retries, cfg.Lookup.RetryBackoff)
	pipeline := &build.Pipeline{
		Lineages: &lookup.TreeOfLifeClient{
			BaseURL: cfg.Lookup.TreeOfLifeURL,
			Client:  client,
		},
		Vernaculars: &lookup.WikidataClient{
			WikipediaURL: cfg.Lookup.WikipediaURL,
			WikidataURL:  cfg.Lookup.WikidataURL,
			Client:       client,
		},
		Citations: &lookup.DOIClient{
			BaseURL: cfg.Lookup.DOIURL,
			Client:  client,
		},
		Log:        log,
		DataPoints: cfg.Import.DataPoints,
	}

	ctx := context.Background()
	reg, err := pipeline.Run(ctx, sh)
	if err != nil {
		return err
	}

	stmts := sqlgen.Statements(reg)
	if err := os.WriteFile(*outPath, []byte(sqlgen.Script(stmts)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", *outPath, err)
	}
	log.Info("dump written", "path", *outPath, "statements", len(stmts))

	if cfg.Database.URL != "" {
		ex, closeDB, err := dbload.Open(ctx, cfg.Database.URL)
		if err != nil {
			return err
		}
		defer closeDB()
		if _, err := dbload.Apply(ctx, ex, stmts, log); err != nil {
			return fmt.Errorf("loading database: %w", err)
		}
	}

	log.Info("import finished", "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnplants/internal/iodb"
	"github.com/gnames/gnplants/internal/iofs"
	"github.com/gnames/gnplants/internal/ioschema"
	"github.com/gnames/gnplants/pkg/config"
	"github.com/gnames/gnplants/pkg/db"
)

// GallformersDDL creates the subset of Gallformers schema used by
// GNplants.
var GallformersDDL = []string{
	`CREATE TABLE species (
		id INTEGER PRIMARY KEY,
		taxoncode TEXT,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE place (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		code TEXT NOT NULL,
		type TEXT NOT NULL
	)`,
	`CREATE TABLE speciesplace (
		species_id INTEGER NOT NULL REFERENCES species(id),
		place_id INTEGER NOT NULL REFERENCES place(id),
		PRIMARY KEY (species_id, place_id)
	)`,
	`CREATE TABLE placeplace (
		place_id INTEGER NOT NULL REFERENCES place(id),
		parent_id INTEGER NOT NULL REFERENCES place(id),
		PRIMARY KEY (place_id, parent_id)
	)`,
	`INSERT INTO place (name, code, type) VALUES
		('United States', 'US', 'country'),
		('Canada', 'CA', 'country')`,
}

// USDAHeader is the header of USDA PLANTS state checklists.
var USDAHeader = []string{
	"Symbol",
	"Synonym Symbol",
	"Scientific Name with Author",
	"State Common Name",
	"Family",
}

// Host is a Gallformers species used in fixtures.
type Host struct {
	ID        int64
	Name      string
	TaxonCode string
}

// Config returns a configuration with a temporary home directory,
// created directories and default regions.yaml.
func Config(t *testing.T) *config.Config {
	t.Helper()
	home := t.TempDir()
	if err := iofs.EnsureDirs(home); err != nil {
		t.Fatalf("Failed to create dirs: %v", err)
	}
	if err := iofs.EnsureRegionsFile(home); err != nil {
		t.Fatalf("Failed to create regions.yaml: %v", err)
	}
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptHomeDir(home),
		config.OptJobsNumber(2),
		config.OptLogDestination("stderr"),
	})
	if err := iofs.EnsureDir(cfg.USDADir()); err != nil {
		t.Fatalf("Failed to create USDA dir: %v", err)
	}
	return cfg
}

// PlantsDB connects to the plants database of cfg and creates its schema.
// The connection is closed at the end of the test.
func PlantsDB(t *testing.T, cfg *config.Config) db.Operator {
	t.Helper()
	ctx := context.Background()
	op := iodb.NewPlantsOperator(cfg)
	if err := op.Connect(ctx); err != nil {
		t.Fatalf("Failed to connect to plants db: %v", err)
	}
	t.Cleanup(func() { op.Close() })

	if err := ioschema.NewManager(op).Create(ctx); err != nil {
		t.Fatalf("Failed to create plants schema: %v", err)
	}
	return op
}

// GallformersDB creates an SQLite Gallformers database for cfg with
// country places and given hosts.
func GallformersDB(t *testing.T, cfg *config.Config, hosts []Host) db.Operator {
	t.Helper()
	ctx := context.Background()
	op, err := iodb.NewGallformersOperator(cfg)
	if err != nil {
		t.Fatalf("Failed to create gallformers operator: %v", err)
	}
	if err = op.Connect(ctx); err != nil {
		t.Fatalf("Failed to connect to gallformers db: %v", err)
	}
	t.Cleanup(func() { op.Close() })

	for _, q := range GallformersDDL {
		if _, err = op.DB().ExecContext(ctx, q); err != nil {
			t.Fatalf("Failed to create gallformers schema: %v", err)
		}
	}

	for _, h := range hosts {
		code := h.TaxonCode
		if code == "" {
			code = "plant"
		}
		_, err = op.DB().ExecContext(ctx,
			"INSERT INTO species (id, taxoncode, name) VALUES (?, ?, ?)",
			h.ID, code, h.Name,
		)
		if err != nil {
			t.Fatalf("Failed to insert host %s: %v", h.Name, err)
		}
	}
	return op
}

// WriteUSDA writes a USDA checklist for the region code into the USDA
// directory of cfg. Rows follow USDAHeader.
func WriteUSDA(t *testing.T, cfg *config.Config, code string, rows [][]string) {
	t.Helper()
	path := filepath.Join(cfg.USDADir(), code+".csv")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err = w.Write(USDAHeader); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	if err = w.WriteAll(rows); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

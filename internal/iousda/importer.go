// Package iousda imports USDA PLANTS state checklists into the plants
// database. Every CSV file of the USDA directory is a checklist of one
// region, the file name is the region code.
package iousda

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnparser/ent/parsed"
	"github.com/gnames/gnplants/internal/iodb"
	"github.com/gnames/gnplants/internal/ioplantdb"
	"github.com/gnames/gnplants/internal/ioregions"
	"github.com/gnames/gnplants/pkg/config"
	"github.com/gnames/gnplants/pkg/db"
	"github.com/gnames/gnplants/pkg/lifecycle"
	"github.com/gnames/gnplants/pkg/parserpool"
	"github.com/gnames/gnplants/pkg/plantname"
	"github.com/gnames/gnplants/pkg/regions"
	"github.com/gnames/gnplants/pkg/schema"
	"github.com/gnames/gnuuid"
)

// Stats counts results of an import.
type Stats struct {
	// Rows is the number of checklist rows with a scientific name.
	Rows int

	// Plants is the number of new plants.
	Plants int

	// Aliases is the number of common names linked to plants.
	Aliases int

	// Links is the number of new plant-region links.
	Links int

	// ParseErrors is the number of names the parser rejected.
	ParseErrors int

	// Skipped is the number of orthographic variants and names with
	// other nomenclatural annotations.
	Skipped int
}

func (s *Stats) add(o Stats) {
	s.Rows += o.Rows
	s.Plants += o.Plants
	s.Aliases += o.Aliases
	s.Links += o.Links
	s.ParseErrors += o.ParseErrors
	s.Skipped += o.Skipped
}

type checklist struct {
	path string
	code string
}

type importer struct {
	cfg   *config.Config
	op    db.Operator
	stats Stats
}

// New creates a USDA importer. The operator must be connected to the
// plants database with created schema.
func New(cfg *config.Config, op db.Operator) lifecycle.Importer {
	return &importer{cfg: cfg, op: op}
}

// Import reads all checklists in one transaction. A checklist that fails
// is rolled back and reported, the import fails only if every checklist
// failed.
func (im *importer) Import(ctx context.Context) error {
	conn := im.op.DB()
	if conn == nil {
		return NotConnectedError()
	}

	startTime := time.Now()
	slog.Info("Starting USDA import", "dir", im.cfg.USDADir())

	rc, err := ioregions.New(im.cfg).Load()
	if err != nil {
		return err
	}

	files, err := im.collectFiles()
	if err != nil {
		return err
	}

	pool := parserpool.NewPool(im.cfg.JobsNumber)
	defer pool.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return iodb.TransactionError("begin", err)
	}
	defer tx.Rollback()

	var successCount, errorCount int
	for _, cl := range files {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		gn.Info("Importing checklist <em>%s</em>", filepath.Base(cl.path))
		st, err := im.importChecklist(ctx, tx, pool, rc, cl)
		if err != nil {
			errorCount++
			slog.Error("Failed to import checklist",
				"path", cl.path,
				"region", cl.code,
				"error", err,
			)
			gn.PrintErrorMessage(err)
			continue
		}
		successCount++
		im.stats.add(st)
		slog.Info("Checklist imported",
			"region", cl.code,
			"rows", st.Rows,
			"plants", st.Plants,
			"parse_errors", st.ParseErrors,
			"skipped", st.Skipped,
		)
	}

	if errorCount > 0 && successCount == 0 {
		return AllFilesFailedError(errorCount)
	}

	if err = tx.Commit(); err != nil {
		return iodb.TransactionError("commit", err)
	}

	im.summary(successCount, errorCount, time.Since(startTime))
	return nil
}

func (im *importer) summary(success, failed int, dur time.Duration) {
	st := im.stats
	slog.Info("USDA import complete",
		"files_success", success,
		"files_failed", failed,
		"rows", st.Rows,
		"plants", st.Plants,
		"aliases", st.Aliases,
		"links", st.Links,
		"parse_errors", st.ParseErrors,
		"skipped", st.Skipped,
		"duration", gnfmt.TimeString(dur.Seconds()),
	)
	gn.Info(`USDA import complete
Checklists succeeded: %d, failed %d.
Rows: %s, new plants: %s, region links: %s.
Unparsed names: %s, skipped variants: %s.
Elapsed time: <em>%s</em>
`,
		success,
		failed,
		humanize.Comma(int64(st.Rows)),
		humanize.Comma(int64(st.Plants)),
		humanize.Comma(int64(st.Links)),
		humanize.Comma(int64(st.ParseErrors)),
		humanize.Comma(int64(st.Skipped)),
		gnfmt.TimeString(dur.Seconds()),
	)
}

// collectFiles returns CSV files of the USDA directory sorted by name,
// limited to requested regions if there are any.
func (im *importer) collectFiles() ([]checklist, error) {
	dir := im.cfg.USDADir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ReadCSVError(dir, err)
	}

	var res []checklist
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := filepath.Ext(name)
		if !strings.EqualFold(ext, ".csv") {
			continue
		}
		code := strings.ToUpper(strings.TrimSuffix(name, ext))
		if len(im.cfg.Import.Regions) > 0 &&
			!slices.Contains(im.cfg.Import.Regions, code) {
			continue
		}
		res = append(res, checklist{path: filepath.Join(dir, name), code: code})
	}

	if len(res) == 0 {
		return nil, NoFilesError(dir, im.cfg.Import.Regions)
	}
	return res, nil
}

// importChecklist imports one file inside a savepoint, so a failure
// leaves no partial data of this file.
func (im *importer) importChecklist(
	ctx context.Context,
	tx *sql.Tx,
	pool parserpool.Pool,
	rc *regions.RegionsConfig,
	cl checklist,
) (st Stats, err error) {
	region, ok := rc.Lookup(cl.code)
	if !ok {
		return st, RegionUnknownError(cl.code, cl.path)
	}

	rows, err := readChecklist(cl.path, im.cfg.USDA.Encoding)
	if err != nil {
		return st, err
	}

	if _, err = tx.ExecContext(ctx, "SAVEPOINT checklist"); err != nil {
		return st, iodb.TransactionError("create savepoint", err)
	}
	defer func() {
		if err != nil {
			_, _ = tx.ExecContext(ctx, "ROLLBACK TO checklist")
		}
		_, _ = tx.ExecContext(ctx, "RELEASE checklist")
	}()

	regionID, err := ioplantdb.InsertRegion(ctx, tx, region)
	if err != nil {
		return st, err
	}

	bar := pb.Full.Start(len(rows))
	bar.Set("prefix", fmt.Sprintf("%s: ", cl.code))
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	for _, r := range rows {
		bar.Increment()
		st.Rows++

		pn, perr := plantname.Parse(r.name)
		if perr != nil {
			st.ParseErrors++
			slog.Debug("Cannot parse name", "name", r.name, "error", perr)
			continue
		}
		if pn.Type == plantname.OrthVar || pn.Type == plantname.Other {
			st.Skipped++
			continue
		}

		plant := newPlant(r, pn, pool.Parse(r.name))
		var id int64
		var isNew bool
		id, isNew, err = ioplantdb.InsertPlant(ctx, tx, plant)
		if err != nil {
			return st, err
		}
		if isNew {
			st.Plants++
		}

		if r.commonName != "" {
			var aliasID int64
			aliasID, err = ioplantdb.InsertAlias(ctx, tx, r.commonName)
			if err != nil {
				return st, err
			}
			err = ioplantdb.LinkAlias(ctx, tx, id, aliasID, ioplantdb.AliasCommon)
			if err != nil {
				return st, err
			}
			st.Aliases++
		}

		var linked bool
		linked, err = ioplantdb.LinkRegion(ctx, tx, id, regionID)
		if err != nil {
			return st, err
		}
		if linked {
			st.Links++
		}
	}
	return st, nil
}

// newPlant converts a checklist row and its parsed name to the plants
// table model.
func newPlant(r row, pn plantname.PlantName, p parsed.Parsed) schema.Plant {
	res := schema.Plant{
		UUID:          gnuuid.New(r.name).String(),
		RawName:       r.name,
		Symbol:        r.symbol,
		SynonymSymbol: r.synonymSymbol,
		Family:        r.family,
		Genus:         pn.Genus,
		Specific:      pn.Specific,
		Type:          pn.Type.String(),
		Subordinate:   pn.Subordinate,
		Author:        pn.Author,
		SecondAuthor:  pn.SecondAuthor,
	}
	if pn.HybridPair != nil {
		res.HybridPair = sql.NullString{
			String: pn.HybridPair.First + "," + pn.HybridPair.Second,
			Valid:  true,
		}
	}
	if can, card, ok := parserpool.Canonical(p); ok {
		res.Canonical = sql.NullString{String: can, Valid: true}
		res.Cardinality = card
	}
	return res
}

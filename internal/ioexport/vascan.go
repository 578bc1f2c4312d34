package ioexport

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnplants/internal/iodb"
	"github.com/gnames/gnplants/internal/iogallformers"
	"github.com/gnames/gnplants/internal/ioplantdb"
	"github.com/gnames/gnplants/internal/ioregions"
	"github.com/gnames/gnplants/pkg/config"
	"github.com/gnames/gnplants/pkg/db"
	"github.com/gnames/gnplants/pkg/lifecycle"
	"github.com/gnames/gnplants/pkg/regions"
	"github.com/gnames/gnplants/pkg/schema"
)

// VASCANStats counts results of a VASCAN export.
type VASCANStats struct {
	Ranges         int
	UnknownRegions int
	Links          int
	NewLinks       int
}

type vascanExporter struct {
	cfg    *config.Config
	plants db.Operator
	gf     db.Operator
	stats  VASCANStats
}

// NewVASCAN creates an exporter of stored VASCAN ranges.
func NewVASCAN(
	cfg *config.Config,
	plants, gallformers db.Operator,
) lifecycle.Exporter {
	return &vascanExporter{cfg: cfg, plants: plants, gf: gallformers}
}

// Export resolves localities of VASCAN ranges with regions.yaml and adds
// them to ranges of Gallformers hosts.
func (e *vascanExporter) Export(ctx context.Context) error {
	if e.plants.DB() == nil || e.gf.DB() == nil {
		return NotConnectedError()
	}

	startTime := time.Now()
	slog.Info("Starting VASCAN export")

	rc, err := ioregions.New(e.cfg).Load()
	if err != nil {
		return err
	}

	ranges, err := ioplantdb.VascanRanges(ctx, e.plants.DB())
	if err != nil {
		return err
	}
	e.stats.Ranges = len(ranges)

	tx, err := e.gf.DB().BeginTx(ctx, nil)
	if err != nil {
		return iodb.TransactionError("begin", err)
	}
	defer tx.Rollback()

	lk := newLinker(iogallformers.New(e.gf, tx))
	for _, vr := range ranges {
		region, ok := resolveRegion(rc, vr)
		if !ok {
			e.stats.UnknownRegions++
			slog.Warn("Unknown VASCAN locality",
				"species", vr.SpeciesName,
				"location_id", vr.LocationID,
				"locality", vr.Locality,
			)
			continue
		}
		if err = lk.link(ctx, vr.SpeciesID, region); err != nil {
			return err
		}
		e.stats.Links++
	}
	e.stats.NewLinks = lk.newLinks

	if err = tx.Commit(); err != nil {
		return iodb.TransactionError("commit", err)
	}

	st := e.stats
	dur := time.Since(startTime)
	slog.Info("VASCAN export complete",
		"ranges", st.Ranges,
		"unknown_regions", st.UnknownRegions,
		"links", st.Links,
		"new_links", st.NewLinks,
		"duration", gnfmt.TimeString(dur.Seconds()),
	)
	gn.Info(`VASCAN export complete
Ranges: %s, unknown localities: %s.
New host ranges: %s of %s.
Elapsed time: <em>%s</em>
`,
		humanize.Comma(int64(st.Ranges)),
		humanize.Comma(int64(st.UnknownRegions)),
		humanize.Comma(int64(st.NewLinks)),
		humanize.Comma(int64(st.Links)),
		gnfmt.TimeString(dur.Seconds()),
	)
	return nil
}

// resolveRegion finds the region by ISO location ID, falling back to the
// locality code.
func resolveRegion(
	rc *regions.RegionsConfig,
	vr schema.VascanRange,
) (regions.Region, bool) {
	if r, ok := rc.Lookup(vr.LocationID); ok {
		return r, true
	}
	return rc.Lookup(vr.Locality)
}

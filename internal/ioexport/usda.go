// Package ioexport writes plant ranges from the plants database into the
// Gallformers database. Ranges come either from USDA checklists matched
// to Gallformers hosts by name, or from stored VASCAN distributions.
package ioexport

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnplants/internal/iodb"
	"github.com/gnames/gnplants/internal/iogallformers"
	"github.com/gnames/gnplants/internal/ioplantdb"
	"github.com/gnames/gnplants/pkg/config"
	"github.com/gnames/gnplants/pkg/db"
	"github.com/gnames/gnplants/pkg/lifecycle"
	"github.com/gnames/gnplants/pkg/matcher"
	"github.com/gnames/gnplants/pkg/regions"
	"github.com/gnames/gnplants/pkg/schema"
	"github.com/gnames/gnplants/pkg/species"
)

// USDAStats counts results of a USDA export.
type USDAStats struct {
	Hosts      int
	Plants     int
	Pairs      int
	Misses     int
	Skipped    int
	Duplicates int
	Links      int
	NewLinks   int
}

type usdaExporter struct {
	cfg    *config.Config
	plants db.Operator
	gf     db.Operator
	stats  USDAStats
}

// NewUSDA creates an exporter of USDA ranges.
func NewUSDA(
	cfg *config.Config,
	plants, gallformers db.Operator,
) lifecycle.Exporter {
	return &usdaExporter{cfg: cfg, plants: plants, gf: gallformers}
}

// Export matches Gallformers hosts (short names) to USDA plants (names
// with authors) and adds regions of matched plants to ranges of hosts.
func (e *usdaExporter) Export(ctx context.Context) error {
	if e.plants.DB() == nil || e.gf.DB() == nil {
		return NotConnectedError()
	}

	startTime := time.Now()
	slog.Info("Starting USDA export")

	plants, err := ioplantdb.Plants(ctx, e.plants.DB())
	if err != nil {
		return err
	}

	tx, err := e.gf.DB().BeginTx(ctx, nil)
	if err != nil {
		return iodb.TransactionError("begin", err)
	}
	defer tx.Rollback()

	store := iogallformers.New(e.gf, tx)
	hosts, err := store.Hosts(ctx)
	if err != nil {
		return err
	}

	res := matcher.Match(hosts, matcher.ShortNameKey, plants, matcher.FullNameKey)
	e.stats.Hosts = len(hosts)
	e.stats.Plants = len(plants)
	e.stats.Pairs = len(res.Pairs)
	e.stats.Misses = len(res.Misses)
	e.stats.Skipped = len(res.SkippedA) + len(res.SkippedB)
	e.stats.Duplicates = len(res.DuplicatesA) + len(res.DuplicatesB)
	logMatch(res)

	dups := make(map[species.Name][]int64)
	for _, v := range res.DuplicatesB {
		dups[v.Key] = append(dups[v.Key], v.ID)
	}

	lk := newLinker(store)
	for _, p := range res.Pairs {
		ids := append([]int64{p.B.ID}, dups[p.B.Key]...)
		regs, err := e.plantRegions(ctx, ids)
		if err != nil {
			return err
		}
		for _, r := range regs {
			region := regions.Region{
				Code:    r.Code,
				Name:    r.Name,
				Country: r.Country,
				Type:    r.Type,
			}
			if err = lk.link(ctx, p.A.ID, region); err != nil {
				return err
			}
			e.stats.Links++
		}
	}
	e.stats.NewLinks = lk.newLinks

	if err = tx.Commit(); err != nil {
		return iodb.TransactionError("commit", err)
	}

	if path := e.cfg.Export.ReportPath; path != "" {
		if err = writeReport(path, res); err != nil {
			return err
		}
		gn.Info("Match report is saved to <em>%s</em>", path)
	}

	e.summary(time.Since(startTime))
	return nil
}

// plantRegions returns the union of regions of plants that share a key,
// ordered by region code.
func (e *usdaExporter) plantRegions(
	ctx context.Context,
	ids []int64,
) ([]schema.Region, error) {
	var res []schema.Region
	seen := make(map[string]struct{})
	for _, id := range ids {
		regs, err := ioplantdb.PlantRegions(ctx, e.plants.DB(), id)
		if err != nil {
			return nil, err
		}
		for _, r := range regs {
			if _, ok := seen[r.Code]; ok {
				continue
			}
			seen[r.Code] = struct{}{}
			res = append(res, r)
		}
	}
	slices.SortFunc(res, func(a, b schema.Region) int {
		return strings.Compare(a.Code, b.Code)
	})
	return res, nil
}

func logMatch(res matcher.Result) {
	for _, v := range res.Misses {
		slog.Info("Host not found in USDA plants",
			"id", v.ID, "name", v.Name, "key", v.Key.String())
	}
	for _, v := range res.SkippedA {
		slog.Warn("Cannot normalize host name",
			"id", v.ID, "name", v.Name, "error", v.Err)
	}
	for _, v := range res.SkippedB {
		slog.Debug("Cannot parse plant name",
			"id", v.ID, "name", v.Name, "error", v.Err)
	}
	for _, v := range res.DuplicatesA {
		slog.Warn("Duplicate host key",
			"id", v.ID, "name", v.Name, "key", v.Key.String())
	}
	for _, v := range res.DuplicatesB {
		slog.Debug("Plant shares key with another plant",
			"id", v.ID, "name", v.Name, "key", v.Key.String())
	}
}

func (e *usdaExporter) summary(dur time.Duration) {
	st := e.stats
	slog.Info("USDA export complete",
		"hosts", st.Hosts,
		"plants", st.Plants,
		"pairs", st.Pairs,
		"misses", st.Misses,
		"skipped", st.Skipped,
		"duplicates", st.Duplicates,
		"links", st.Links,
		"new_links", st.NewLinks,
		"duration", gnfmt.TimeString(dur.Seconds()),
	)
	gn.Info(`USDA export complete
Hosts: %s, matched: %s, not matched: %s, skipped: %s.
New host ranges: %s of %s.
Elapsed time: <em>%s</em>
`,
		humanize.Comma(int64(st.Hosts)),
		humanize.Comma(int64(st.Pairs)),
		humanize.Comma(int64(st.Misses)),
		humanize.Comma(int64(st.Skipped)),
		humanize.Comma(int64(st.NewLinks)),
		humanize.Comma(int64(st.Links)),
		gnfmt.TimeString(dur.Seconds()),
	)
}

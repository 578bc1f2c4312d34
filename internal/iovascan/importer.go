// Package iovascan imports distributions of Gallformers hosts from the
// VASCAN (Database of Vascular Plants of Canada) search API into the
// plants database.
package iovascan

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
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
	"github.com/gnames/gnplants/pkg/schema"
	"github.com/gnames/gnplants/pkg/species"
	"golang.org/x/sync/errgroup"
)

// Stats counts results of a VASCAN import.
type Stats struct {
	// Hosts is the number of Gallformers plants.
	Hosts int

	// BadNames is the number of hosts the normalizer rejected.
	BadNames int

	// Failed is the number of failed requests.
	Failed int

	// NotFound is the number of hosts without a matching VASCAN taxon.
	NotFound int

	// Matches is the number of hosts found in VASCAN.
	Matches int

	// Ranges is the number of saved distribution entries.
	Ranges int

	// Discarded is the number of excluded or doubtful occurrences.
	Discarded int
}

type importer struct {
	cfg    *config.Config
	plants db.Operator
	gf     db.Operator
	client *Client
	stats  Stats
}

// lookup is the result of one VASCAN search.
type lookup struct {
	host      matcher.Record
	ranges    []schema.VascanRange
	discarded int
	found     bool
	err       error
}

// New creates a VASCAN importer. Hosts are read from the Gallformers
// database, ranges are written to the plants database.
func New(
	cfg *config.Config,
	plants, gallformers db.Operator,
) lifecycle.Importer {
	return &importer{
		cfg:    cfg,
		plants: plants,
		gf:     gallformers,
		client: NewClient(cfg.VASCAN),
	}
}

// Import searches every Gallformers host in VASCAN concurrently and saves
// accepted distributions in one transaction.
func (im *importer) Import(ctx context.Context) error {
	if im.plants.DB() == nil || im.gf.DB() == nil {
		return NotConnectedError()
	}

	startTime := time.Now()
	slog.Info("Starting VASCAN import", "url", im.cfg.VASCAN.URL)

	hosts, err := iogallformers.New(im.gf, im.gf.DB()).Hosts(ctx)
	if err != nil {
		return err
	}
	im.stats.Hosts = len(hosts)
	gn.Info("Searching <em>%s</em> hosts in VASCAN",
		humanize.Comma(int64(len(hosts))))

	lookups, err := im.search(ctx, hosts)
	if err != nil {
		return err
	}

	if err = im.save(ctx, lookups); err != nil {
		return err
	}

	im.summary(time.Since(startTime))
	if im.stats.Failed > 0 && im.stats.Failed == im.stats.Hosts-im.stats.BadNames {
		return AllRequestsFailedError(im.stats.Failed)
	}
	return nil
}

// search runs lookups with a limited number of workers. Results keep the
// order of hosts.
func (im *importer) search(
	ctx context.Context,
	hosts []matcher.Record,
) ([]lookup, error) {
	res := make([]lookup, len(hosts))

	bar := pb.Full.Start(len(hosts))
	bar.Set("prefix", "VASCAN: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(im.cfg.JobsNumber)

	for i, h := range hosts {
		key, err := matcher.ShortNameKey(h.Name)
		if err != nil {
			im.stats.BadNames++
			slog.Warn("Cannot normalize host name", "name", h.Name, "error", err)
			bar.Increment()
			continue
		}

		g.Go(func() error {
			defer bar.Increment()
			resp, err := im.client.Search(ctx, h.Name)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				res[i] = lookup{host: h, err: err}
				return nil
			}
			res[i] = accept(h, key, resp)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// accept keeps distributions of matches that have the same key as the
// host. Excluded and doubtful occurrences are dropped.
func accept(host matcher.Record, key species.Name, resp *Response) lookup {
	res := lookup{host: host}
	for _, r := range resp.Results {
		for _, m := range r.Matches {
			if !sameKey(key, m.CanonicalName) {
				continue
			}
			res.found = true
			for _, loc := range m.Distribution {
				if !isPresent(loc.OccurrenceStatus) {
					res.discarded++
					continue
				}
				res.ranges = append(res.ranges, schema.VascanRange{
					SpeciesID:          host.ID,
					SpeciesName:        host.Name,
					TaxonID:            m.TaxonID,
					Canonical:          m.CanonicalName,
					LocationID:         loc.LocationID,
					Locality:           loc.Locality,
					EstablishmentMeans: loc.EstablishmentMeans,
					OccurrenceStatus:   loc.OccurrenceStatus,
				})
			}
		}
	}
	return res
}

// sameKey compares the host key with a VASCAN canonical name. Canonical
// names have no authors, so they are keyed by the parser. VASCAN writes
// hybrids as "×epithet" without parents, the parser marks only bracketed
// ones, so the sign is checked before parsing.
func sameKey(key species.Name, canonical string) bool {
	hybrid := strings.Contains(canonical, "×")
	k, err := matcher.FullNameKey(canonical)
	if err != nil {
		return false
	}
	k.Hybrid = k.Hybrid || hybrid
	return k == key
}

func isPresent(status string) bool {
	return !strings.EqualFold(status, "excluded") &&
		!strings.EqualFold(status, "doubtful")
}

// save writes accepted ranges sequentially in one transaction.
func (im *importer) save(ctx context.Context, lookups []lookup) error {
	tx, err := im.plants.DB().BeginTx(ctx, nil)
	if err != nil {
		return iodb.TransactionError("begin", err)
	}
	defer tx.Rollback()

	for _, l := range lookups {
		if l.host.Name == "" {
			continue
		}
		if l.err != nil {
			im.stats.Failed++
			slog.Error("VASCAN lookup failed", "name", l.host.Name, "error", l.err)
			continue
		}
		if !l.found {
			im.stats.NotFound++
			slog.Info("Host not found in VASCAN", "name", l.host.Name)
			continue
		}
		im.stats.Matches++
		im.stats.Discarded += l.discarded
		for _, vr := range l.ranges {
			if _, err = ioplantdb.InsertVascanRange(ctx, tx, vr); err != nil {
				return err
			}
			im.stats.Ranges++
		}
	}

	if err = tx.Commit(); err != nil {
		return iodb.TransactionError("commit", err)
	}
	return nil
}

func (im *importer) summary(dur time.Duration) {
	st := im.stats
	slog.Info("VASCAN import complete",
		"hosts", st.Hosts,
		"bad_names", st.BadNames,
		"failed", st.Failed,
		"not_found", st.NotFound,
		"matches", st.Matches,
		"ranges", st.Ranges,
		"discarded", st.Discarded,
		"duration", gnfmt.TimeString(dur.Seconds()),
	)
	gn.Info(`VASCAN import complete
Hosts: %s, found: %s, not found: %s, failed requests: %s.
Saved ranges: %s, discarded: %s.
Elapsed time: <em>%s</em>
`,
		humanize.Comma(int64(st.Hosts)),
		humanize.Comma(int64(st.Matches)),
		humanize.Comma(int64(st.NotFound)),
		humanize.Comma(int64(st.Failed)),
		humanize.Comma(int64(st.Ranges)),
		humanize.Comma(int64(st.Discarded)),
		gnfmt.TimeString(dur.Seconds()),
	)
}

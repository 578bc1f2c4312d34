// Package ioplantdb reads and writes the plants SQLite database.
// Functions accept db.Querier, so they work both inside and outside of
// transactions.
package ioplantdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gnames/gnplants/pkg/db"
	"github.com/gnames/gnplants/pkg/matcher"
	"github.com/gnames/gnplants/pkg/regions"
	"github.com/gnames/gnplants/pkg/schema"
)

// AliasType tells how an alias relates to a plant.
type AliasType string

const (
	AliasCommon     AliasType = "common"
	AliasScientific AliasType = "scientific"
	AliasOrthVar    AliasType = "orth. var."
)

// InsertRegion saves a region and returns its ID. An existing region with
// the same code is updated.
func InsertRegion(
	ctx context.Context,
	q db.Querier,
	r regions.Region,
) (int64, error) {
	query := `INSERT INTO regions (code, name, country, type)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (code) DO UPDATE SET
			name = excluded.name,
			country = excluded.country,
			type = excluded.type
		RETURNING id`
	var id int64
	err := q.QueryRowContext(ctx, query, r.Code, r.Name, r.Country, r.Type).
		Scan(&id)
	if err != nil {
		return 0, InsertError("regions", r.Code, err)
	}
	return id, nil
}

// InsertPlant saves a plant unless a plant with the same raw name exists.
// It returns the ID of the plant and true if the plant is new.
func InsertPlant(
	ctx context.Context,
	q db.Querier,
	p schema.Plant,
) (int64, bool, error) {
	query := `INSERT INTO plants (
			uuid, raw_name, symbol, synonym_symbol, family, genus, specific,
			type, subordinate, hybrid_pair, author, second_author,
			canonical, cardinality
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (raw_name) DO NOTHING`
	res, err := q.ExecContext(ctx, query,
		p.UUID, p.RawName, p.Symbol, p.SynonymSymbol, p.Family, p.Genus,
		p.Specific, p.Type, p.Subordinate, p.HybridPair, p.Author,
		p.SecondAuthor, p.Canonical, p.Cardinality,
	)
	if err != nil {
		return 0, false, InsertError("plants", p.RawName, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, false, InsertError("plants", p.RawName, err)
	}

	var id int64
	err = q.QueryRowContext(ctx,
		"SELECT id FROM plants WHERE raw_name = ?", p.RawName,
	).Scan(&id)
	if err != nil {
		return 0, false, InsertError("plants", p.RawName, err)
	}
	return id, n > 0, nil
}

// InsertAlias saves an alias name if it is new and returns its ID.
func InsertAlias(ctx context.Context, q db.Querier, name string) (int64, error) {
	_, err := q.ExecContext(ctx,
		"INSERT INTO aliases (name) VALUES (?) ON CONFLICT (name) DO NOTHING",
		name,
	)
	if err != nil {
		return 0, InsertError("aliases", name, err)
	}

	var id int64
	err = q.QueryRowContext(ctx,
		"SELECT id FROM aliases WHERE name = ?", name,
	).Scan(&id)
	if err != nil {
		return 0, InsertError("aliases", name, err)
	}
	return id, nil
}

// LinkAlias relates an alias to a plant.
func LinkAlias(
	ctx context.Context,
	q db.Querier,
	plantID, aliasID int64,
	typ AliasType,
) error {
	_, err := q.ExecContext(ctx,
		`INSERT INTO plant_aliases (plant_id, alias_id, type)
			VALUES (?, ?, ?) ON CONFLICT DO NOTHING`,
		plantID, aliasID, string(typ),
	)
	if err != nil {
		return InsertError("plant_aliases", fmt.Sprintf("%d-%d", plantID, aliasID), err)
	}
	return nil
}

// LinkRegion tells that a plant occurs in a region. It returns true if
// the link is new.
func LinkRegion(
	ctx context.Context,
	q db.Querier,
	plantID, regionID int64,
) (bool, error) {
	res, err := q.ExecContext(ctx,
		`INSERT INTO plant_regions (plant_id, region_id)
			VALUES (?, ?) ON CONFLICT DO NOTHING`,
		plantID, regionID,
	)
	if err != nil {
		return false, InsertError("plant_regions", fmt.Sprintf("%d-%d", plantID, regionID), err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, InsertError("plant_regions", fmt.Sprintf("%d-%d", plantID, regionID), err)
	}
	return n > 0, nil
}

// Plants returns IDs and raw names of all plants that occur at least in
// one region, ordered by ID.
func Plants(ctx context.Context, q db.Querier) ([]matcher.Record, error) {
	query := `SELECT p.id, p.raw_name
		FROM plants p
		WHERE EXISTS (SELECT 1 FROM plant_regions pr WHERE pr.plant_id = p.id)
		ORDER BY p.id`
	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, QueryError("plants", err)
	}
	defer rows.Close()

	var res []matcher.Record
	for rows.Next() {
		var rec matcher.Record
		if err = rows.Scan(&rec.ID, &rec.Name); err != nil {
			return nil, QueryError("plants", err)
		}
		res = append(res, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, QueryError("plants", err)
	}
	return res, nil
}

// PlantRegions returns regions of a plant ordered by code.
func PlantRegions(
	ctx context.Context,
	q db.Querier,
	plantID int64,
) ([]schema.Region, error) {
	cols := schema.Columns(schema.Region{})
	for i := range cols {
		cols[i] = "r." + cols[i]
	}
	query := fmt.Sprintf(`SELECT %s
		FROM regions r
			JOIN plant_regions pr ON pr.region_id = r.id
		WHERE pr.plant_id = ?
		ORDER BY r.code`, strings.Join(cols, ", "))
	rows, err := q.QueryContext(ctx, query, plantID)
	if err != nil {
		return nil, QueryError("regions", err)
	}
	defer rows.Close()

	var res []schema.Region
	for rows.Next() {
		var r schema.Region
		err = rows.Scan(&r.ID, &r.Code, &r.Name, &r.Country, &r.Type)
		if err != nil {
			return nil, QueryError("regions", err)
		}
		res = append(res, r)
	}
	if err = rows.Err(); err != nil {
		return nil, QueryError("regions", err)
	}
	return res, nil
}

// PlantByID returns a plant.
func PlantByID(ctx context.Context, q db.Querier, id int64) (schema.Plant, error) {
	var p schema.Plant
	query := `SELECT id, uuid, raw_name, symbol, synonym_symbol, family,
			genus, specific, type, subordinate, hybrid_pair, author,
			second_author, canonical, cardinality
		FROM plants WHERE id = ?`
	err := q.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.UUID, &p.RawName, &p.Symbol, &p.SynonymSymbol, &p.Family,
		&p.Genus, &p.Specific, &p.Type, &p.Subordinate, &p.HybridPair,
		&p.Author, &p.SecondAuthor, &p.Canonical, &p.Cardinality,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return p, QueryError("plants", fmt.Errorf("no plant with id %d", id))
	}
	if err != nil {
		return p, QueryError("plants", err)
	}
	return p, nil
}

// InsertVascanRange saves a VASCAN distribution entry. An entry for the
// same species and location is replaced. It returns true if a row was
// written.
func InsertVascanRange(
	ctx context.Context,
	q db.Querier,
	vr schema.VascanRange,
) (bool, error) {
	query := `INSERT INTO vascan_ranges (
			species_id, species_name, taxon_id, canonical, location_id,
			locality, establishment_means, occurrence_status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (species_id, location_id) DO UPDATE SET
			taxon_id = excluded.taxon_id,
			canonical = excluded.canonical,
			establishment_means = excluded.establishment_means,
			occurrence_status = excluded.occurrence_status`
	res, err := q.ExecContext(ctx, query,
		vr.SpeciesID, vr.SpeciesName, vr.TaxonID, vr.Canonical, vr.LocationID,
		vr.Locality, vr.EstablishmentMeans, vr.OccurrenceStatus,
	)
	if err != nil {
		return false, InsertError("vascan_ranges", vr.SpeciesName, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, InsertError("vascan_ranges", vr.SpeciesName, err)
	}
	return n > 0, nil
}

// VascanRanges returns all stored VASCAN ranges ordered by species and
// location.
func VascanRanges(ctx context.Context, q db.Querier) ([]schema.VascanRange, error) {
	query := `SELECT id, species_id, species_name, taxon_id, canonical,
			location_id, locality, establishment_means, occurrence_status
		FROM vascan_ranges
		ORDER BY species_id, location_id`
	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, QueryError("vascan_ranges", err)
	}
	defer rows.Close()

	var res []schema.VascanRange
	for rows.Next() {
		var vr schema.VascanRange
		err = rows.Scan(
			&vr.ID, &vr.SpeciesID, &vr.SpeciesName, &vr.TaxonID, &vr.Canonical,
			&vr.LocationID, &vr.Locality, &vr.EstablishmentMeans,
			&vr.OccurrenceStatus,
		)
		if err != nil {
			return nil, QueryError("vascan_ranges", err)
		}
		res = append(res, vr)
	}
	if err = rows.Err(); err != nil {
		return nil, QueryError("vascan_ranges", err)
	}
	return res, nil
}

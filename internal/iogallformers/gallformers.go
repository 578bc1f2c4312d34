// Package iogallformers reads hosts and writes host ranges in the
// Gallformers database. The database is either SQLite or PostgreSQL, all
// queries use '?' placeholders and are rebound for the driver.
package iogallformers

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gnames/gnplants/pkg/db"
	"github.com/gnames/gnplants/pkg/matcher"
)

// Place is a geographic place of Gallformers.
type Place struct {
	ID   int64
	Name string
	Code string
	Type string
}

// Store wraps a connection or a transaction of the Gallformers database.
type Store struct {
	q      db.Querier
	rebind func(string) string
}

// New creates a Store. Queries go through q, which is usually a
// transaction started on op.DB().
func New(op db.Operator, q db.Querier) *Store {
	return &Store{q: q, rebind: op.Rebind}
}

// Hosts returns IDs and names of all plant species ordered by ID.
func (s *Store) Hosts(ctx context.Context) ([]matcher.Record, error) {
	q := "SELECT id, name FROM species WHERE taxoncode = 'plant' ORDER BY id"
	rows, err := s.q.QueryContext(ctx, s.rebind(q))
	if err != nil {
		return nil, QueryError("species", err)
	}
	defer rows.Close()

	var res []matcher.Record
	for rows.Next() {
		var rec matcher.Record
		if err = rows.Scan(&rec.ID, &rec.Name); err != nil {
			return nil, QueryError("species", err)
		}
		res = append(res, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, QueryError("species", err)
	}
	return res, nil
}

// PlaceByName finds a place by its name.
func (s *Store) PlaceByName(ctx context.Context, name string) (Place, bool, error) {
	var res Place
	q := "SELECT id, name, code, type FROM place WHERE name = ?"
	err := s.q.QueryRowContext(ctx, s.rebind(q), name).
		Scan(&res.ID, &res.Name, &res.Code, &res.Type)
	if errors.Is(err, sql.ErrNoRows) {
		return res, false, nil
	}
	if err != nil {
		return res, false, QueryError("place", err)
	}
	return res, true, nil
}

// CreateOrFetchPlace returns the ID of a place with the same name, creating
// the place if it does not exist.
func (s *Store) CreateOrFetchPlace(ctx context.Context, p Place) (int64, error) {
	existing, ok, err := s.PlaceByName(ctx, p.Name)
	if err != nil {
		return 0, err
	}
	if ok {
		return existing.ID, nil
	}

	var id int64
	q := "INSERT INTO place (name, code, type) VALUES (?, ?, ?) RETURNING id"
	err = s.q.QueryRowContext(ctx, s.rebind(q), p.Name, p.Code, p.Type).Scan(&id)
	if err != nil {
		return 0, PlaceError(p.Name, err)
	}
	return id, nil
}

// LinkPlaces makes parentID the parent of placeID.
// It returns true if the link is new.
func (s *Store) LinkPlaces(ctx context.Context, parentID, placeID int64) (bool, error) {
	return s.link(ctx, "placeplace", "parent_id", "place_id", parentID, placeID)
}

// LinkSpeciesPlace adds a place to the range of a species.
// It returns true if the link is new.
func (s *Store) LinkSpeciesPlace(ctx context.Context, speciesID, placeID int64) (bool, error) {
	return s.link(ctx, "speciesplace", "species_id", "place_id", speciesID, placeID)
}

func (s *Store) link(
	ctx context.Context,
	table, colA, colB string,
	a, b int64,
) (bool, error) {
	var exists bool
	q := "SELECT EXISTS (SELECT 1 FROM " + table +
		" WHERE " + colA + " = ? AND " + colB + " = ?)"
	if err := s.q.QueryRowContext(ctx, s.rebind(q), a, b).Scan(&exists); err != nil {
		return false, LinkError(table, a, b, err)
	}
	if exists {
		return false, nil
	}

	q = "INSERT INTO " + table + " (" + colA + ", " + colB + ") VALUES (?, ?)"
	if _, err := s.q.ExecContext(ctx, s.rebind(q), a, b); err != nil {
		return false, LinkError(table, a, b, err)
	}
	return true, nil
}

package ioexport

import (
	"context"

	"github.com/gnames/gnplants/internal/iogallformers"
	"github.com/gnames/gnplants/pkg/regions"
)

// linker adds regions to ranges of Gallformers species. Region places are
// created on first use and linked to their country.
type linker struct {
	store     *iogallformers.Store
	countries map[string]int64
	places    map[string]int64
	newLinks  int
}

func newLinker(store *iogallformers.Store) *linker {
	return &linker{
		store:     store,
		countries: make(map[string]int64),
		places:    make(map[string]int64),
	}
}

// link adds the region to the range of the species.
func (l *linker) link(
	ctx context.Context,
	speciesID int64,
	r regions.Region,
) error {
	placeID, err := l.placeID(ctx, r)
	if err != nil {
		return err
	}
	isNew, err := l.store.LinkSpeciesPlace(ctx, speciesID, placeID)
	if err != nil {
		return err
	}
	if isNew {
		l.newLinks++
	}
	return nil
}

func (l *linker) placeID(ctx context.Context, r regions.Region) (int64, error) {
	if id, ok := l.places[r.Code]; ok {
		return id, nil
	}

	countryID, err := l.countryID(ctx, r.Country)
	if err != nil {
		return 0, err
	}

	id, err := l.store.CreateOrFetchPlace(ctx, iogallformers.Place{
		Name: r.Name,
		Code: r.Code,
		Type: r.Type,
	})
	if err != nil {
		return 0, err
	}

	if _, err = l.store.LinkPlaces(ctx, countryID, id); err != nil {
		return 0, err
	}
	l.places[r.Code] = id
	return id, nil
}

func (l *linker) countryID(ctx context.Context, country string) (int64, error) {
	if id, ok := l.countries[country]; ok {
		return id, nil
	}
	place, ok, err := l.store.PlaceByName(ctx, country)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, iogallformers.CountryNotFoundError(country)
	}
	l.countries[country] = place.ID
	return place.ID, nil
}

package ioplantdb_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/gnames/gnplants/internal/ioplantdb"
	"github.com/gnames/gnplants/internal/iotesting"
	"github.com/gnames/gnplants/pkg/regions"
	"github.com/gnames/gnplants/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlantsRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	ctx := context.Background()
	cfg := iotesting.Config(t)
	op := iotesting.PlantsDB(t, cfg)
	q := op.DB()

	nc := regions.Region{Code: "NC", Name: "North Carolina", Country: "United States", Type: "state"}
	ncID, err := ioplantdb.InsertRegion(ctx, q, nc)
	require.Nil(t, err)
	again, err := ioplantdb.InsertRegion(ctx, q, nc)
	require.Nil(t, err)
	assert.Equal(t, ncID, again)

	plant := schema.Plant{
		UUID:        "uuid",
		RawName:     "Quercus alba L.",
		Symbol:      "QUAL",
		Family:      "Fagaceae",
		Genus:       "Quercus",
		Specific:    "alba",
		Type:        "sp.",
		Author:      sql.NullString{String: "L.", Valid: true},
		Canonical:   sql.NullString{String: "Quercus alba", Valid: true},
		Cardinality: 2,
	}
	id, isNew, err := ioplantdb.InsertPlant(ctx, q, plant)
	require.Nil(t, err)
	assert.True(t, isNew)

	id2, isNew, err := ioplantdb.InsertPlant(ctx, q, plant)
	require.Nil(t, err)
	assert.False(t, isNew)
	assert.Equal(t, id, id2)

	// plants without regions are not returned
	recs, err := ioplantdb.Plants(ctx, q)
	require.Nil(t, err)
	assert.Empty(t, recs)

	linked, err := ioplantdb.LinkRegion(ctx, q, id, ncID)
	require.Nil(t, err)
	assert.True(t, linked)
	linked, err = ioplantdb.LinkRegion(ctx, q, id, ncID)
	require.Nil(t, err)
	assert.False(t, linked)

	aliasID, err := ioplantdb.InsertAlias(ctx, q, "white oak")
	require.Nil(t, err)
	aliasID2, err := ioplantdb.InsertAlias(ctx, q, "white oak")
	require.Nil(t, err)
	assert.Equal(t, aliasID, aliasID2)
	require.Nil(t, ioplantdb.LinkAlias(ctx, q, id, aliasID, ioplantdb.AliasCommon))
	require.Nil(t, ioplantdb.LinkAlias(ctx, q, id, aliasID, ioplantdb.AliasCommon))

	recs, err = ioplantdb.Plants(ctx, q)
	require.Nil(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Quercus alba L.", recs[0].Name)

	regs, err := ioplantdb.PlantRegions(ctx, q, id)
	require.Nil(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, "North Carolina", regs[0].Name)
	assert.Equal(t, "United States", regs[0].Country)

	p, err := ioplantdb.PlantByID(ctx, q, id)
	require.Nil(t, err)
	assert.Equal(t, "Fagaceae", p.Family)
	assert.Equal(t, "L.", p.Author.String)
	assert.False(t, p.Subordinate.Valid)

	_, err = ioplantdb.PlantByID(ctx, q, 1000)
	assert.NotNil(t, err)
}

func TestVascanRanges(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	ctx := context.Background()
	cfg := iotesting.Config(t)
	q := iotesting.PlantsDB(t, cfg).DB()

	vr := schema.VascanRange{
		SpeciesID:        7,
		SpeciesName:      "Acer rubrum",
		TaxonID:          100,
		Canonical:        "Acer rubrum",
		LocationID:       "ISO 3166-2:CA-QC",
		Locality:         "QC",
		OccurrenceStatus: "native",
	}
	ok, err := ioplantdb.InsertVascanRange(ctx, q, vr)
	require.Nil(t, err)
	assert.True(t, ok)

	vr.OccurrenceStatus = "introduced"
	_, err = ioplantdb.InsertVascanRange(ctx, q, vr)
	require.Nil(t, err)

	res, err := ioplantdb.VascanRanges(ctx, q)
	require.Nil(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "introduced", res[0].OccurrenceStatus)
	assert.Equal(t, "QC", res[0].Locality)
}

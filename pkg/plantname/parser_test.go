package plantname_test

import (
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gnames/gnplants/pkg/plantname"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func some(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func TestParse(t *testing.T) {
	tests := []struct {
		msg  string
		name string
		res  plantname.PlantName
	}{
		{
			msg:  "species",
			name: "Quercus alba L.",
			res: plantname.PlantName{
				Genus:    "Quercus",
				Specific: "alba",
				Type:     plantname.Species,
				Author:   some("L."),
			},
		},
		{
			msg:  "species without author",
			name: "Quercus alba",
			res: plantname.PlantName{
				Genus:    "Quercus",
				Specific: "alba",
				Type:     plantname.Species,
			},
		},
		{
			msg:  "variety",
			name: "Quercus alba L. var. subcaerulea A.L. Pickens & M.C. Pickens",
			res: plantname.PlantName{
				Genus:        "Quercus",
				Specific:     "alba",
				Type:         plantname.Variety,
				Subordinate:  some("subcaerulea"),
				Author:       some("L."),
				SecondAuthor: some("A.L. Pickens & M.C. Pickens"),
			},
		},
		{
			msg:  "autonym variety",
			name: "Acer rubrum L. var. rubrum",
			res: plantname.PlantName{
				Genus:       "Acer",
				Specific:    "rubrum",
				Type:        plantname.Variety,
				Subordinate: some("rubrum"),
				Author:      some("L."),
			},
		},
		{
			msg:  "variety without author",
			name: "Quercus alba var. foo",
			res: plantname.PlantName{
				Genus:       "Quercus",
				Specific:    "alba",
				Type:        plantname.Variety,
				Subordinate: some("foo"),
			},
		},
		{
			msg:  "subspecies",
			name: "Ruellia caroliniensis (J.F. Gmel.) Steud. ssp. ciliosa (Pursh) R.W. Long",
			res: plantname.PlantName{
				Genus:        "Ruellia",
				Specific:     "caroliniensis",
				Type:         plantname.Subspecies,
				Subordinate:  some("ciliosa"),
				Author:       some("(J.F. Gmel.) Steud."),
				SecondAuthor: some("(Pursh) R.W. Long"),
			},
		},
		{
			msg:  "hybrid",
			name: "Quercus ×beadlei Trel. ex Palmer [alba × michauxii]",
			res: plantname.PlantName{
				Genus:    "Quercus",
				Specific: "beadlei",
				Type:     plantname.Hybrid,
				HybridPair: &plantname.HybridPair{
					First:  "alba",
					Second: "michauxii",
				},
				Author: some("Trel. ex Palmer"),
			},
		},
		{
			msg:  "hybrid sign without bracket",
			name: "Quercus ×bebbiana C.K. Schneid.",
			res: plantname.PlantName{
				Genus:    "Quercus",
				Specific: "bebbiana",
				Type:     plantname.Species,
				Author:   some("C.K. Schneid."),
			},
		},
		{
			msg:  "orthographic variant",
			name: "Acaena novae-zelandica Kirk, orth. var.",
			res: plantname.PlantName{
				Genus:    "Acaena",
				Specific: "novae-zelandica",
				Type:     plantname.OrthVar,
				Author:   some("Kirk"),
			},
		},
		{
			msg:  "nom. inval.",
			name: "Carex foo Mack., nom. inval.",
			res: plantname.PlantName{
				Genus:    "Carex",
				Specific: "foo",
				Type:     plantname.Other,
			},
		},
		{
			msg:  "orth. cons.",
			name: "Aster bar Nees, orth. cons. ssp. baz",
			res: plantname.PlantName{
				Genus:    "Aster",
				Specific: "bar",
				Type:     plantname.Other,
			},
		},
		{
			msg:  "tabs as separators",
			name: "Quercus\talba\tL.",
			res: plantname.PlantName{
				Genus:    "Quercus",
				Specific: "alba",
				Type:     plantname.Species,
				Author:   some("L."),
			},
		},
	}

	for _, v := range tests {
		res, err := plantname.Parse(v.name)
		require.Nil(t, err, v.msg)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		msg  string
		name string
		err  error
	}{
		{"empty", "", plantname.ErrMalformedName},
		{"leading space", " Quercus alba", plantname.ErrMalformedName},
		{"genus only", "Quercus", plantname.ErrMalformedName},
		{"genus and space", "Quercus ", plantname.ErrMalformedName},
		{"hybrid sign only", "Quercus ×", plantname.ErrMalformedName},
		{"no variety epithet", "Quercus alba L. var.  ", plantname.ErrMalformedName},
		{"no separator", "Quercus ×beadlei Palmer [alba x michauxii]", plantname.ErrMalformedHybridBracket},
		{"no closing bracket", "Quercus ×beadlei Palmer [alba × michauxii", plantname.ErrMalformedHybridBracket},
		{"one parent", "Quercus ×beadlei Palmer [alba]", plantname.ErrMalformedHybridBracket},
		{"hyphen in parent", "Quercus ×beadlei Palmer [alba-x × michauxii]", plantname.ErrMalformedHybridBracket},
	}

	for _, v := range tests {
		res, err := plantname.Parse(v.name)
		assert.True(t, errors.Is(err, v.err), v.msg)
		assert.Equal(t, plantname.PlantName{}, res, v.msg)

		var pErr *plantname.Error
		require.True(t, errors.As(err, &pErr), v.msg)
		assert.NotEmpty(t, pErr.Rule, v.msg)
	}
}

func TestSpeciesName(t *testing.T) {
	assert := assert.New(t)
	pn, err := plantname.Parse("Quercus alba L. var. subcaerulea Pickens")
	assert.Nil(err)
	key := pn.SpeciesName()
	assert.Equal("Quercus", key.Genus)
	assert.Equal("alba", key.Specific)
	assert.Equal(some("subcaerulea"), key.Subspecies)
	assert.False(key.Hybrid)

	pn, err = plantname.Parse("Quercus ×beadlei Trel. [alba × michauxii]")
	assert.Nil(err)
	key = pn.SpeciesName()
	assert.True(key.Hybrid)
	assert.False(key.Subspecies.Valid)
	assert.Equal("Quercus x beadlei", key.String())
}

func TestSpeciesType(t *testing.T) {
	tests := []struct {
		st  plantname.SpeciesType
		str string
	}{
		{plantname.Species, "sp."},
		{plantname.Variety, "var."},
		{plantname.Subspecies, "ssp."},
		{plantname.Hybrid, "x"},
		{plantname.OrthVar, "orth. var."},
		{plantname.Other, "other"},
	}

	for _, v := range tests {
		assert.Equal(t, v.str, v.st.String())
		assert.Equal(t, v.st, plantname.NewSpeciesType(v.str))
	}
	assert.Equal(t, plantname.Other, plantname.NewSpeciesType("f."))
}

// TestParseInvariants checks relations between Type and optional fields on
// generated names.
func TestParseInvariants(t *testing.T) {
	faker := gofakeit.New(42)
	modifiers := []string{
		"",
		" var. " + faker.Regex("[a-z]{4,10}"),
		" ssp. " + faker.Regex("[a-z]{4,10}"),
		", orth. var.",
		" [" + faker.Regex("[a-z]{4,8}") + " × " + faker.Regex("[a-z]{4,8}") + "]",
		", nom. illeg.",
	}

	for range 500 {
		var sb strings.Builder
		sb.WriteString(faker.Regex("[A-Z][a-z]{3,10}"))
		sb.WriteString(" ")
		if faker.Bool() {
			sb.WriteRune(plantname.HybridSign)
		}
		sb.WriteString(faker.Regex("[a-z]{3,12}"))
		if faker.Bool() {
			sb.WriteString(" " + faker.LastName() + ".")
		}
		sb.WriteString(modifiers[faker.Number(0, len(modifiers)-1)])
		if faker.Bool() {
			sb.WriteString(" " + faker.LastName())
		}
		name := sb.String()

		res, err := plantname.Parse(name)
		require.Nil(t, err, name)
		assert.NotEmpty(t, res.Genus, name)
		assert.NotEmpty(t, res.Specific, name)
		assert.NotContains(t, res.Specific, string(plantname.HybridSign), name)

		isHybrid := res.Type == plantname.Hybrid
		assert.Equal(t, isHybrid, res.HybridPair != nil, name)

		hasSubordinate := res.Type == plantname.Variety ||
			res.Type == plantname.Subspecies
		assert.Equal(t, hasSubordinate, res.Subordinate.Valid, name)

		if res.Type == plantname.Other {
			assert.False(t, res.Author.Valid, name)
			assert.False(t, res.SecondAuthor.Valid, name)
		}
	}
}

// Package plantname parses botanical scientific names in the format used
// by USDA PLANTS checklists ("Scientific Name with Author") into a
// structured PlantName.
//
// The parser extracts syntactic structure only. It does not check that a
// name refers to a real taxon, and it does not try to understand all
// nomenclatural status annotations: names with "nom. inval.", "orth. cons."
// and similar suffixes are put into the Other bucket.
//
// This is a pure package without I/O. All functions are safe for
// concurrent use.
package plantname

import (
	"database/sql"

	"github.com/gnames/gnplants/pkg/species"
)

// SpeciesType tells which modifier, if any, follows the binomial.
type SpeciesType int

const (
	// Species is a plain binomial with optional authorship.
	Species SpeciesType = iota

	// Variety has a "var." subordinate epithet.
	Variety

	// Subspecies has a "ssp." subordinate epithet.
	Subspecies

	// Hybrid has a bracketed pair of parents: "[alba × michauxii]".
	Hybrid

	// OrthVar is an orthographic variant of an accepted name.
	OrthVar

	// Other covers the remaining nomenclatural status annotations.
	Other
)

var speciesTypeStr = map[SpeciesType]string{
	Species:    "sp.",
	Variety:    "var.",
	Subspecies: "ssp.",
	Hybrid:     "x",
	OrthVar:    "orth. var.",
	Other:      "other",
}

// String returns the abbreviation stored in the plant database.
func (st SpeciesType) String() string {
	if res, ok := speciesTypeStr[st]; ok {
		return res
	}
	return "other"
}

// NewSpeciesType converts the abbreviation back to SpeciesType.
// Unknown values become Other.
func NewSpeciesType(s string) SpeciesType {
	for k, v := range speciesTypeStr {
		if v == s {
			return k
		}
	}
	return Other
}

// MarshalText implements encoding.TextMarshaler.
func (st SpeciesType) MarshalText() ([]byte, error) {
	return []byte(st.String()), nil
}

// HybridPair keeps the specific epithets of both parents of a hybrid.
type HybridPair struct {
	First  string `json:"first"`
	Second string `json:"second"`
}

// PlantName is the parsed structure of a long-form scientific name.
//
// Subordinate is valid only for Variety and Subspecies, HybridPair is set
// only for Hybrid. For Other only Genus and Specific are populated.
type PlantName struct {
	// Genus is the first word of the name.
	Genus string

	// Specific is the specific epithet without the hybrid sign.
	Specific string

	// Type is the species type detected from the name modifiers.
	Type SpeciesType

	// Subordinate is the variety or subspecies epithet.
	Subordinate sql.NullString

	// HybridPair contains epithets of hybrid parents.
	HybridPair *HybridPair

	// Author is the authorship of the species.
	Author sql.NullString

	// SecondAuthor is the authorship of the subordinate taxon, or any
	// other text that follows the modifier.
	SecondAuthor sql.NullString
}

// SpeciesName projects the PlantName to a comparison key. Authorship and
// the kind of subordinate rank are lost: both varieties and subspecies
// become the subspecies of the key.
func (pn PlantName) SpeciesName() species.Name {
	return species.Name{
		Genus:      pn.Genus,
		Specific:   pn.Specific,
		Subspecies: pn.Subordinate,
		Hybrid:     pn.HybridPair != nil,
	}
}

// Binomial returns genus and specific epithet.
func (pn PlantName) Binomial() string {
	return pn.Genus + " " + pn.Specific
}

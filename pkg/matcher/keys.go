package matcher

import (
	"github.com/gnames/gnplants/pkg/plantname"
	"github.com/gnames/gnplants/pkg/species"
)

// ShortNameKey keys short names like "Quercus x bebbiana" with the species
// normalizer.
func ShortNameKey(name string) (species.Name, error) {
	return species.Normalize(name)
}

// FullNameKey keys names with authorship like "Quercus alba L." by parsing
// them and projecting the result to a species key.
func FullNameKey(name string) (species.Name, error) {
	pn, err := plantname.Parse(name)
	if err != nil {
		return species.Name{}, err
	}
	return pn.SpeciesName(), nil
}

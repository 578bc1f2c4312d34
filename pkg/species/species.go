// Package species provides the comparison key used to join plant records
// coming from different sources, and the normalizer for short "canonical"
// names such as the ones kept by Gallformers and VASCAN.
//
// This is a pure package without I/O.
package species

import (
	"database/sql"
	"strings"
)

// Name is a normalized species key. It is a comparable value, so it can be
// used directly as a map key. Two names are equal only when genus, specific
// epithet, subspecies (absent is different from any present value) and the
// hybrid flag are all the same.
type Name struct {
	// Genus is the first element of a binomial.
	Genus string

	// Specific is the specific epithet.
	Specific string

	// Subspecies is an infraspecific epithet, if present. It is filled from
	// either subspecies or variety ranks.
	Subspecies sql.NullString

	// Hybrid is true for nothospecies.
	Hybrid bool
}

// String renders the key in the short form used by Gallformers.
func (n Name) String() string {
	var sb strings.Builder
	sb.WriteString(n.Genus)
	if n.Hybrid {
		sb.WriteString(" x")
	}
	sb.WriteString(" ")
	sb.WriteString(n.Specific)
	if n.Subspecies.Valid {
		sb.WriteString(" ")
		sb.WriteString(n.Subspecies.String)
	}
	return sb.String()
}

// Normalize converts a whitespace-tokenized short name
// "genus specific [subspecies]" into a Name. An ASCII "x" or "X" in the
// second position marks a hybrid: "Quercus x bebbiana".
//
// The hybrid branch never keeps a subspecies, even if more tokens follow.
// A name with more than one token after the specific epithet gets no
// subspecies either, as multi-word infraspecific parts are ambiguous.
func Normalize(short string) (Name, error) {
	var res Name
	words := strings.Fields(short)
	if len(words) < 2 {
		return res, tooFewTokensError(short)
	}
	res.Genus = words[0]

	if strings.EqualFold(words[1], "x") {
		if len(words) < 3 {
			return Name{}, missingHybridEpithetError(short)
		}
		res.Hybrid = true
		res.Specific = words[2]
		return res, nil
	}

	res.Specific = words[1]
	if len(words) == 3 {
		res.Subspecies = sql.NullString{String: words[2], Valid: true}
	}
	return res, nil
}

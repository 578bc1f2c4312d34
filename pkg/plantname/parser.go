package plantname

import "strings"

// Parse converts a raw scientific name into PlantName.
//
// The name must start with genus and specific epithet separated by
// whitespace. A hybrid sign directly in front of the specific epithet is
// removed and does not make the name a Hybrid; only a bracketed parents
// pair does that. Text between the specific epithet and the first modifier
// is the author, text after the modifier is the second author.
//
// Returned errors are of *Error type and match ErrMalformedName or
// ErrMalformedHybridBracket with errors.Is.
func Parse(raw string) (PlantName, error) {
	var res PlantName

	genus, rest := token(raw)
	if genus == "" {
		return res, malformedNameError(ruleGenus, raw)
	}

	rest, ok := skipSpace(rest)
	if !ok || rest == "" {
		return res, malformedNameError(ruleSpecific, rest)
	}

	specific, rest := token(skipHybridSign(rest))
	if specific == "" {
		return res, malformedNameError(ruleSpecific, rest)
	}
	res.Genus = genus
	res.Specific = specific

	pos, kind, tag := nextMarker(rest)
	author := rest[:pos]
	rest = rest[pos:]

	switch kind {
	case statusMarker:
		// status annotations are not parsed, authors are not extracted.
		res.Type = Other
		return res, nil
	case varietyMarker, subspeciesMarker:
		epithet, tail := token(rest[len(tag):])
		if epithet == "" {
			return PlantName{}, malformedNameError(ruleSubordinate, rest)
		}
		res.Type = Variety
		if kind == subspeciesMarker {
			res.Type = Subspecies
		}
		res.Subordinate = optional(epithet)
		rest = tail
	case hybridMarker:
		pair, tail, err := hybridPair(rest)
		if err != nil {
			return PlantName{}, err
		}
		res.Type = Hybrid
		res.HybridPair = &pair
		rest = tail
	case orthVarMarker:
		res.Type = OrthVar
		rest = rest[len(tag):]
	default:
		res.Type = Species
	}

	res.Author = optional(author)
	res.SecondAuthor = optional(rest)
	return res, nil
}

// hybridPair parses " [parent1 × parent2]" at the start of s and returns
// the pair with the text that follows the closing bracket.
func hybridPair(s string) (HybridPair, string, error) {
	var res HybridPair
	body, ok := strings.CutPrefix(s, hybridTag)
	if !ok {
		return res, s, malformedHybridError(s)
	}

	first, body := word(body)
	if first == "" {
		return res, s, malformedHybridError(s)
	}

	if body, ok = strings.CutPrefix(body, hybridSeparator); !ok {
		return res, s, malformedHybridError(s)
	}

	second, body := word(body)
	if second == "" {
		return res, s, malformedHybridError(s)
	}

	if body, ok = strings.CutPrefix(body, "]"); !ok {
		return res, s, malformedHybridError(s)
	}

	res.First = first
	res.Second = second
	return res, body, nil
}

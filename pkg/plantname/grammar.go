package plantname

import (
	"database/sql"
	"strings"
	"unicode"
)

// HybridSign is the multiplication sign U+00D7 used by botanists to mark
// hybrids. It is not the ASCII letter "x".
const HybridSign = '×'

// Modifier markers, in the order of their priority.
const (
	varietyTag    = " var. "
	subspeciesTag = " ssp. "
	orthVarTag    = ", orth. var."
	hybridTag     = " ["
)

// hybridSeparator divides parents inside of the hybrid bracket.
const hybridSeparator = " × "

type marker int

const (
	endMarker marker = iota
	varietyMarker
	subspeciesMarker
	orthVarMarker
	hybridMarker
	statusMarker
)

var modifiers = []struct {
	tag  string
	kind marker
}{
	{varietyTag, varietyMarker},
	{subspeciesTag, subspeciesMarker},
	{orthVarTag, orthVarMarker},
	{hybridTag, hybridMarker},
}

// statusTags start nomenclatural status annotations that are not parsed
// further ("nom. inval.", "nom. illeg.", "orth. cons." etc).
// They are checked after modifiers, so ", orth. var." wins over ", orth. ".
var statusTags = []string{
	", nom. ",
	", orth. ",
	", pro sp.",
	", pro hybr.",
}

// nextMarker finds the earliest modifier or status annotation in s.
// It returns the position of the marker, its kind and its tag. If nothing
// is found the position is len(s) and the kind is endMarker.
func nextMarker(s string) (int, marker, string) {
	for i := range s {
		tail := s[i:]
		for _, m := range modifiers {
			if strings.HasPrefix(tail, m.tag) {
				return i, m.kind, m.tag
			}
		}
		for _, tag := range statusTags {
			if strings.HasPrefix(tail, tag) {
				return i, statusMarker, tag
			}
		}
	}
	return len(s), endMarker, ""
}

// token splits s into a leading run of non-space characters and the rest.
func token(s string) (string, string) {
	idx := strings.IndexFunc(s, unicode.IsSpace)
	if idx < 0 {
		return s, ""
	}
	return s[:idx], s[idx:]
}

// skipSpace removes leading whitespace and reports if there was any.
func skipSpace(s string) (string, bool) {
	res := strings.TrimLeftFunc(s, unicode.IsSpace)
	return res, len(res) < len(s)
}

// skipHybridSign removes the hybrid signs that prefix an epithet.
// The comparison is done on runes, the sign takes two bytes in UTF-8.
func skipHybridSign(s string) string {
	return strings.TrimLeftFunc(s, func(r rune) bool {
		return r == HybridSign
	})
}

// word splits s into a leading run of letters and digits and the rest.
func word(s string) (string, string) {
	idx := strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if idx < 0 {
		return s, ""
	}
	return s[:idx], s[idx:]
}

func optional(s string) sql.NullString {
	s = strings.TrimSpace(s)
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

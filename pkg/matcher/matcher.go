// Package matcher joins records of two independent sources by their
// normalized species keys.
//
// Matching is best-effort: records that cannot be keyed are skipped,
// records without a counterpart are reported as misses, and none of them
// stop the run. This is a pure package without I/O.
package matcher

import (
	"github.com/gnames/gnplants/pkg/species"
)

// Record is an identifier with the name string it belongs to.
type Record struct {
	ID   int64
	Name string
}

// KeyFunc converts a name string of a particular source to a species key.
type KeyFunc func(name string) (species.Name, error)

// Entry is a keyed record.
type Entry struct {
	Record
	Key species.Name
}

// Skip is a record which name could not be converted to a key.
type Skip struct {
	Record
	Err error
}

// Pair connects matching records of source A and source B.
type Pair struct {
	A Entry
	B Entry
}

// Index maps species keys to records of one source.
// When several records have the same key, the first one wins.
type Index struct {
	entries    map[species.Name]Entry
	order      []species.Name
	Skipped    []Skip
	Duplicates []Entry
}

// NewIndex builds an Index from records using the key function of their
// source.
func NewIndex(records []Record, key KeyFunc) *Index {
	res := &Index{
		entries: make(map[species.Name]Entry, len(records)),
	}
	for _, rec := range records {
		k, err := key(rec.Name)
		if err != nil {
			res.Skipped = append(res.Skipped, Skip{Record: rec, Err: err})
			continue
		}
		entry := Entry{Record: rec, Key: k}
		if _, ok := res.entries[k]; ok {
			res.Duplicates = append(res.Duplicates, entry)
			continue
		}
		res.entries[k] = entry
		res.order = append(res.order, k)
	}
	return res
}

// Lookup returns the entry stored for the key.
func (idx *Index) Lookup(k species.Name) (Entry, bool) {
	res, ok := idx.entries[k]
	return res, ok
}

// Len returns the number of distinct keys.
func (idx *Index) Len() int {
	return len(idx.order)
}

// Entries returns entries in the order they were first inserted.
func (idx *Index) Entries() []Entry {
	res := make([]Entry, len(idx.order))
	for i, k := range idx.order {
		res[i] = idx.entries[k]
	}
	return res
}

// Result is the outcome of a Match.
type Result struct {
	// Pairs are successful lookups in the order of source A.
	Pairs []Pair

	// Misses are entries of source A without a counterpart in source B.
	Misses []Entry

	// SkippedA and SkippedB are records that could not be keyed.
	SkippedA, SkippedB []Skip

	// DuplicatesA and DuplicatesB are records that lost to an earlier
	// record with the same key.
	DuplicatesA, DuplicatesB []Entry
}

// Match indexes both sources and looks up every entry of source A in the
// index of source B.
func Match(a []Record, aKey KeyFunc, b []Record, bKey KeyFunc) Result {
	idxA := NewIndex(a, aKey)
	idxB := NewIndex(b, bKey)
	return MatchIndex(idxA, idxB)
}

// MatchIndex looks up every entry of idxA in idxB.
func MatchIndex(idxA, idxB *Index) Result {
	res := Result{
		SkippedA:    idxA.Skipped,
		SkippedB:    idxB.Skipped,
		DuplicatesA: idxA.Duplicates,
		DuplicatesB: idxB.Duplicates,
	}
	for _, ea := range idxA.Entries() {
		eb, ok := idxB.Lookup(ea.Key)
		if !ok {
			res.Misses = append(res.Misses, ea)
			continue
		}
		res.Pairs = append(res.Pairs, Pair{A: ea, B: eb})
	}
	return res
}

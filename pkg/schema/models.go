// Package schema provides models of the plants database.
//
// The plants database is an SQLite file filled from USDA PLANTS checklists
// and VASCAN distributions. Its DDL is generated from `db` and `ddl` struct
// tags.
package schema

import "database/sql"

// DDLGenerator defines how Go models generate DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the table name for this model.
	TableName() string
}

// Plant is one row of a USDA checklist with its parsed name.
type Plant struct {
	ID int64 `db:"id" ddl:"INTEGER PRIMARY KEY"`

	// UUID is a UUID v5 generated from RawName.
	UUID string `db:"uuid" ddl:"TEXT NOT NULL"`

	// RawName is "Scientific Name with Author" of the checklist.
	RawName string `db:"raw_name" ddl:"TEXT NOT NULL UNIQUE"`

	// Symbol is the USDA PLANTS symbol.
	Symbol string `db:"symbol" ddl:"TEXT NOT NULL DEFAULT ''"`

	// SynonymSymbol is set when the row is a synonym.
	SynonymSymbol string `db:"synonym_symbol" ddl:"TEXT NOT NULL DEFAULT ''"`

	Family string `db:"family" ddl:"TEXT NOT NULL DEFAULT ''"`

	Genus string `db:"genus" ddl:"TEXT NOT NULL"`

	Specific string `db:"specific" ddl:"TEXT NOT NULL"`

	// Type is the abbreviation of the species type ("sp.", "var."...).
	Type string `db:"type" ddl:"TEXT NOT NULL"`

	// Subordinate is the variety or subspecies epithet.
	Subordinate sql.NullString `db:"subordinate" ddl:"TEXT"`

	// HybridPair is "first,second" for hybrids.
	HybridPair sql.NullString `db:"hybrid_pair" ddl:"TEXT"`

	Author sql.NullString `db:"author" ddl:"TEXT"`

	SecondAuthor sql.NullString `db:"second_author" ddl:"TEXT"`

	// Canonical is the simple canonical form given by GNparser.
	Canonical sql.NullString `db:"canonical" ddl:"TEXT"`

	// Cardinality is the number of elements in the canonical form.
	Cardinality int `db:"cardinality" ddl:"INTEGER NOT NULL DEFAULT 0"`
}

// Alias is a common name or other alternative name of a plant.
type Alias struct {
	ID   int64  `db:"id" ddl:"INTEGER PRIMARY KEY"`
	Name string `db:"name" ddl:"TEXT NOT NULL UNIQUE"`
}

// PlantAlias connects a plant with an alias.
type PlantAlias struct {
	PlantID int64 `db:"plant_id" ddl:"INTEGER NOT NULL REFERENCES plants(id)"`
	AliasID int64 `db:"alias_id" ddl:"INTEGER NOT NULL REFERENCES aliases(id)"`

	// Type is "common", "scientific" or "orth. var.".
	Type string `db:"type" ddl:"TEXT NOT NULL"`
}

// Region is a state or a province of a checklist.
type Region struct {
	ID      int64  `db:"id" ddl:"INTEGER PRIMARY KEY"`
	Code    string `db:"code" ddl:"TEXT NOT NULL UNIQUE"`
	Name    string `db:"name" ddl:"TEXT NOT NULL"`
	Country string `db:"country" ddl:"TEXT NOT NULL"`
	Type    string `db:"type" ddl:"TEXT NOT NULL"`
}

// PlantRegion tells that a plant occurs in a region.
type PlantRegion struct {
	PlantID  int64 `db:"plant_id" ddl:"INTEGER NOT NULL REFERENCES plants(id)"`
	RegionID int64 `db:"region_id" ddl:"INTEGER NOT NULL REFERENCES regions(id)"`
}

// VascanRange is a distribution entry received from VASCAN for a
// Gallformers host.
type VascanRange struct {
	ID int64 `db:"id" ddl:"INTEGER PRIMARY KEY"`

	// SpeciesID is the ID of the host in Gallformers database.
	SpeciesID int64 `db:"species_id" ddl:"INTEGER NOT NULL"`

	// SpeciesName is the name of the host in Gallformers database.
	SpeciesName string `db:"species_name" ddl:"TEXT NOT NULL"`

	// TaxonID is the VASCAN taxon ID.
	TaxonID int64 `db:"taxon_id" ddl:"INTEGER NOT NULL"`

	// Canonical is the VASCAN canonical name of the taxon.
	Canonical string `db:"canonical" ddl:"TEXT NOT NULL"`

	// LocationID is an ISO 3166-2 code, for example "ISO 3166-2:CA-QC".
	LocationID string `db:"location_id" ddl:"TEXT NOT NULL"`

	// Locality is a short region code, for example "QC".
	Locality string `db:"locality" ddl:"TEXT NOT NULL"`

	EstablishmentMeans string `db:"establishment_means" ddl:"TEXT NOT NULL DEFAULT ''"`

	OccurrenceStatus string `db:"occurrence_status" ddl:"TEXT NOT NULL DEFAULT ''"`
}

// AllModels returns all models of the plants database in the order of
// their creation.
func AllModels() []DDLGenerator {
	return []DDLGenerator{
		Plant{},
		Alias{},
		PlantAlias{},
		Region{},
		PlantRegion{},
		VascanRange{},
	}
}

package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model any, tableName string) string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var columns []string
	for i := range t.NumField() {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))
}

// Columns returns column names of a model in the order of its fields.
func Columns(model any) []string {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	var res []string
	for i := range t.NumField() {
		if col := t.Field(i).Tag.Get("db"); col != "" {
			res = append(res, col)
		}
	}
	return res
}

func (Plant) TableName() string { return "plants" }

func (p Plant) TableDDL() string { return generateDDL(p, p.TableName()) }

func (Plant) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_plants_genus_specific ON plants(genus, specific);",
		"CREATE INDEX IF NOT EXISTS idx_plants_canonical ON plants(canonical);",
	}
}

func (Alias) TableName() string { return "aliases" }

func (a Alias) TableDDL() string { return generateDDL(a, a.TableName()) }

func (Alias) IndexDDL() []string { return nil }

func (PlantAlias) TableName() string { return "plant_aliases" }

func (pa PlantAlias) TableDDL() string { return generateDDL(pa, pa.TableName()) }

func (PlantAlias) IndexDDL() []string {
	return []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_plant_aliases_uniq ON plant_aliases(plant_id, alias_id, type);",
	}
}

func (Region) TableName() string { return "regions" }

func (r Region) TableDDL() string { return generateDDL(r, r.TableName()) }

func (Region) IndexDDL() []string { return nil }

func (PlantRegion) TableName() string { return "plant_regions" }

func (pr PlantRegion) TableDDL() string { return generateDDL(pr, pr.TableName()) }

func (PlantRegion) IndexDDL() []string {
	return []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_plant_regions_uniq ON plant_regions(plant_id, region_id);",
		"CREATE INDEX IF NOT EXISTS idx_plant_regions_region ON plant_regions(region_id);",
	}
}

func (VascanRange) TableName() string { return "vascan_ranges" }

func (vr VascanRange) TableDDL() string { return generateDDL(vr, vr.TableName()) }

func (VascanRange) IndexDDL() []string {
	return []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_vascan_ranges_uniq ON vascan_ranges(species_id, location_id);",
	}
}

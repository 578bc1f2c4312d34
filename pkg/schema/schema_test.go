package schema_test

import (
	"strings"
	"testing"

	"github.com/gnames/gnplants/pkg/schema"
	"github.com/stretchr/testify/assert"
)

func TestPlantDDL(t *testing.T) {
	ddl := schema.Plant{}.TableDDL()
	assert.True(t, strings.HasPrefix(ddl, "CREATE TABLE IF NOT EXISTS plants ("))
	assert.Contains(t, ddl, "id INTEGER PRIMARY KEY")
	assert.Contains(t, ddl, "raw_name TEXT NOT NULL UNIQUE")
	assert.Contains(t, ddl, "subordinate TEXT")
	assert.Contains(t, ddl, "cardinality INTEGER NOT NULL DEFAULT 0")
	assert.True(t, strings.HasSuffix(ddl, ");"))
}

func TestAllModels(t *testing.T) {
	names := []string{
		"plants", "aliases", "plant_aliases",
		"regions", "plant_regions", "vascan_ranges",
	}
	models := schema.AllModels()
	assert.Len(t, models, len(names))
	for i, m := range models {
		assert.Equal(t, names[i], m.TableName())
		assert.Contains(t, m.TableDDL(), names[i])
		for _, idx := range m.IndexDDL() {
			assert.Contains(t, idx, "IF NOT EXISTS")
			assert.Contains(t, idx, "ON "+names[i]+"(")
		}
	}
}

func TestColumns(t *testing.T) {
	cols := schema.Columns(schema.Region{})
	assert.Equal(t, []string{"id", "code", "name", "country", "type"}, cols)

	cols = schema.Columns(&schema.PlantRegion{})
	assert.Equal(t, []string{"plant_id", "region_id"}, cols)
}

package iodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRebindDollar(t *testing.T) {
	tests := []struct {
		msg, q, res string
	}{
		{"no placeholders", "SELECT 1", "SELECT 1"},
		{
			"two placeholders",
			"INSERT INTO place (name, code) VALUES (?, ?)",
			"INSERT INTO place (name, code) VALUES ($1, $2)",
		},
		{
			"quoted question mark",
			"SELECT id FROM species WHERE name = '?' AND id = ?",
			"SELECT id FROM species WHERE name = '?' AND id = $1",
		},
	}
	for _, v := range tests {
		assert.Equal(t, v.res, rebindDollar(v.q), v.msg)
	}
}

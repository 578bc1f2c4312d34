package parserpool_test

import (
	"sync"
	"testing"

	"github.com/gnames/gnplants/pkg/parserpool"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	pool := parserpool.NewPool(2)
	defer pool.Close()

	tests := []struct {
		msg         string
		name        string
		canonical   string
		cardinality int
		parsed      bool
	}{
		{
			msg:         "binomial with author",
			name:        "Quercus alba L.",
			canonical:   "Quercus alba",
			cardinality: 2,
			parsed:      true,
		},
		{
			msg:         "variety",
			name:        "Quercus alba L. var. subcaerulea Pickens",
			canonical:   "Quercus alba subcaerulea",
			cardinality: 3,
			parsed:      true,
		},
		{
			msg:         "named hybrid",
			name:        "Quercus ×beadlei Trel. ex Palmer",
			canonical:   "Quercus beadlei",
			cardinality: 2,
			parsed:      true,
		},
		{
			msg:  "not a name",
			name: "12345",
		},
	}

	for _, v := range tests {
		res := pool.Parse(v.name)
		canonical, card, ok := parserpool.Canonical(res)
		assert.Equal(t, v.parsed, ok, v.msg)
		assert.Equal(t, v.canonical, canonical, v.msg)
		assert.Equal(t, v.cardinality, card, v.msg)
	}
}

func TestParseConcurrent(t *testing.T) {
	pool := parserpool.NewPool(0)
	defer pool.Close()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 10 {
				res := pool.Parse("Plantago major L.")
				assert.True(t, res.Parsed)
			}
		}()
	}
	wg.Wait()
}

func TestCloseTwice(t *testing.T) {
	pool := parserpool.NewPool(1)
	pool.Close()
	assert.NotPanics(t, pool.Close)
}

// Package parserpool provides a pool of botanical gnparser instances for
// concurrent name parsing. This is a pure package, parsing is computation,
// not I/O.
package parserpool

import (
	"runtime"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnparser/ent/parsed"
)

// Pool provides gnparser instances configured for the botanical code.
type Pool interface {
	// Parse parses a scientific name string. It takes a parser from the
	// pool and returns it back after parsing. This method is safe for
	// concurrent use.
	Parse(nameString string) parsed.Parsed

	// Close shuts down the pool. After calling Close, the pool should not
	// be used.
	Close()
}

type pool struct {
	ch chan gnparser.GNparser
}

// NewPool creates a new parser pool with jobsNum parsers.
// If jobsNum is 0, it defaults to runtime.NumCPU().
func NewPool(jobsNum int) Pool {
	size := jobsNum
	if size <= 0 {
		size = runtime.NumCPU()
	}

	cfg := gnparser.NewConfig(
		gnparser.OptCode(nomcode.Botanical),
		gnparser.OptWithDetails(true),
	)
	return &pool{ch: gnparser.NewPool(cfg, size)}
}

func (p *pool) Parse(nameString string) parsed.Parsed {
	parser := <-p.ch
	res := parser.ParseName(nameString)
	p.ch <- parser
	return res
}

func (p *pool) Close() {
	if p.ch == nil {
		return
	}
	close(p.ch)
	for range p.ch {
	}
	p.ch = nil
}

// Canonical returns the simple canonical form and cardinality of a parsed
// name. The second value is false when the name was not parsed.
func Canonical(p parsed.Parsed) (string, int, bool) {
	if !p.Parsed || p.Canonical == nil {
		return "", 0, false
	}
	return p.Canonical.Simple, p.Cardinality, true
}

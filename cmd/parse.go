/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnplants/pkg/parserpool"
	"github.com/gnames/gnplants/pkg/plantname"
	"github.com/gnames/gnuuid"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// parsedName is the output of the parse command.
type parsedName struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Genus        string                 `json:"genus,omitempty"`
	Specific     string                 `json:"specific,omitempty"`
	Type         *plantname.SpeciesType `json:"type,omitempty"`
	Subordinate  string                 `json:"subordinate,omitempty"`
	HybridPair   *plantname.HybridPair  `json:"hybridPair,omitempty"`
	Author       string                 `json:"author,omitempty"`
	SecondAuthor string                 `json:"secondAuthor,omitempty"`
	Binomial     string                 `json:"binomial,omitempty"`
	Key          string                 `json:"key,omitempty"`
	Canonical    string                 `json:"canonical,omitempty"`
	Cardinality  int                    `json:"cardinality,omitempty"`
	Error        string                 `json:"error,omitempty"`
}

// getParseCmd returns the parse command.
func getParseCmd() *cobra.Command {
	parseCmd := &cobra.Command{
		Use:   "parse [names...]",
		Short: "Parse USDA scientific names",
		Long: `Parse USDA scientific names with authors.

Names are taken from arguments or, if there are none, from standard input
one name per line. Every name is printed as JSON with its parsed
structure, the species key used for matching Gallformers hosts and the
canonical form from GNparser.

Examples:
  gnplants parse "Quercus alba L. var. latiloba Sarg."
  gnplants parse --pretty "Quercus ×beadlei Trel. ex Palmer [alba × michauxii]"
  cat names.txt | gnplants parse`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pretty, _ := cmd.Flags().GetBool("pretty")
			names := args
			if len(names) == 0 {
				var err error
				if names, err = readNames(os.Stdin); err != nil {
					gn.PrintErrorMessage(err)
					return err
				}
			}
			err := runParse(cmd.OutOrStdout(), names, pretty)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	parseCmd.Flags().BoolP("pretty", "p", false, "print indented JSON")
	return parseCmd
}

func readNames(r io.Reader) ([]string, error) {
	var res []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			res = append(res, line)
		}
	}
	return res, sc.Err()
}

func runParse(w io.Writer, names []string, pretty bool) error {
	jobs := 1
	if cfg != nil {
		jobs = cfg.JobsNumber
	}
	pool := parserpool.NewPool(jobs)
	defer pool.Close()

	enc := gnfmt.GNjson{Pretty: pretty}
	for _, name := range names {
		out, err := enc.Encode(parseName(pool, name))
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintln(w, string(out)); err != nil {
			return err
		}
	}
	return nil
}

func parseName(pool parserpool.Pool, name string) parsedName {
	res := parsedName{ID: uuid.Nil.String(), Name: name}
	if name == "" {
		res.Error = "empty name"
		return res
	}
	res.ID = gnuuid.New(name).String()

	if can, card, ok := parserpool.Canonical(pool.Parse(name)); ok {
		res.Canonical = can
		res.Cardinality = card
	}

	pn, err := plantname.Parse(name)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Genus = pn.Genus
	res.Specific = pn.Specific
	res.Type = &pn.Type
	res.Subordinate = pn.Subordinate.String
	res.HybridPair = pn.HybridPair
	res.Author = pn.Author.String
	res.SecondAuthor = pn.SecondAuthor.String
	res.Binomial = pn.Binomial()
	if pn.Type != plantname.OrthVar && pn.Type != plantname.Other {
		res.Key = pn.SpeciesName().String()
	}
	return res
}

package iousda

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Header columns of USDA PLANTS state checklists.
const (
	colSymbol        = "Symbol"
	colSynonymSymbol = "Synonym Symbol"
	colName          = "Scientific Name with Author"
	colCommonName    = "State Common Name"
	colFamily        = "Family"
)

// row is one record of a checklist with NFC-normalized fields.
type row struct {
	symbol        string
	synonymSymbol string
	name          string
	commonName    string
	family        string
}

// readChecklist reads all rows of a checklist. Rows without a scientific
// name are ignored.
func readChecklist(path, encoding string) ([]row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ReadCSVError(path, err)
	}
	defer f.Close()

	var dec transform.Transformer = unicode.UTF8BOM.NewDecoder()
	if encoding == "windows-1252" {
		dec = charmap.Windows1252.NewDecoder()
	}

	r := csv.NewReader(transform.NewReader(f, dec))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, ReadCSVError(path, err)
	}
	idx := make(map[string]int, len(header))
	for i, v := range header {
		idx[strings.TrimSpace(v)] = i
	}
	if _, ok := idx[colName]; !ok {
		return nil, MissingColumnError(path, colName)
	}

	field := func(rec []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return norm.NFC.String(strings.TrimSpace(rec[i]))
	}

	var res []row
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, ReadCSVError(path, err)
		}
		rw := row{
			symbol:        field(rec, colSymbol),
			synonymSymbol: field(rec, colSynonymSymbol),
			name:          field(rec, colName),
			commonName:    field(rec, colCommonName),
			family:        field(rec, colFamily),
		}
		if rw.name == "" {
			continue
		}
		res = append(res, rw)
	}
	return res, nil
}

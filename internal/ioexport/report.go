package ioexport

import (
	"github.com/gnames/gnplants/pkg/matcher"
	"github.com/xuri/excelize/v2"
)

const (
	sheetMatched   = "matched"
	sheetUnmatched = "unmatched"
	sheetSkipped   = "skipped"
)

var reportHeaders = map[string][]string{
	sheetMatched:   {"Host ID", "Host Name", "Key", "Plant ID", "Plant Name"},
	sheetUnmatched: {"Host ID", "Host Name", "Key"},
	sheetSkipped:   {"Source", "ID", "Name", "Reason"},
}

// writeReport saves the match result as an XLSX file with matched,
// unmatched and skipped sheets.
func writeReport(path string, res matcher.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetMatched); err != nil {
		return ReportError(path, err)
	}
	for _, sheet := range []string{sheetUnmatched, sheetSkipped} {
		if _, err := f.NewSheet(sheet); err != nil {
			return ReportError(path, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return ReportError(path, err)
	}

	for sheet, headers := range reportHeaders {
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			if err = f.SetCellValue(sheet, cell, h); err != nil {
				return ReportError(path, err)
			}
		}
		last, _ := excelize.ColumnNumberToName(len(headers))
		if err = f.SetCellStyle(sheet, "A1", last+"1", headerStyle); err != nil {
			return ReportError(path, err)
		}
		if err = f.SetColWidth(sheet, "A", last, 25); err != nil {
			return ReportError(path, err)
		}
	}

	var rows []reportRow
	for _, p := range res.Pairs {
		rows = append(rows, reportRow{sheetMatched, []any{
			p.A.ID, p.A.Name, p.A.Key.String(), p.B.ID, p.B.Name,
		}})
	}
	for _, m := range res.Misses {
		rows = append(rows, reportRow{sheetUnmatched, []any{
			m.ID, m.Name, m.Key.String(),
		}})
	}
	for _, s := range res.SkippedA {
		rows = append(rows, reportRow{sheetSkipped, []any{
			"gallformers", s.ID, s.Name, s.Err.Error(),
		}})
	}
	for _, d := range res.DuplicatesA {
		rows = append(rows, reportRow{sheetSkipped, []any{
			"gallformers", d.ID, d.Name, "duplicate key " + d.Key.String(),
		}})
	}
	for _, s := range res.SkippedB {
		rows = append(rows, reportRow{sheetSkipped, []any{
			"usda", s.ID, s.Name, s.Err.Error(),
		}})
	}
	for _, d := range res.DuplicatesB {
		rows = append(rows, reportRow{sheetSkipped, []any{
			"usda", d.ID, d.Name, "duplicate key " + d.Key.String(),
		}})
	}

	next := map[string]int{sheetMatched: 2, sheetUnmatched: 2, sheetSkipped: 2}
	for _, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, next[r.sheet])
		if err = f.SetSheetRow(r.sheet, cell, &r.values); err != nil {
			return ReportError(path, err)
		}
		next[r.sheet]++
	}

	f.SetActiveSheet(0)
	if err = f.SaveAs(path); err != nil {
		return ReportError(path, err)
	}
	return nil
}

type reportRow struct {
	sheet  string
	values []any
}

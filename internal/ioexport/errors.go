package ioexport

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnplants/pkg/errcode"
)

// NotConnectedError is returned when export starts without database
// connections.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Export attempted without database connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// ReportError is returned when the match report cannot be written.
func ReportError(path string, err error) error {
	msg := `Cannot write match report <em>%s</em>

<em>How to fix:</em>
  Make sure the directory exists and the file is not open elsewhere`

	return &gn.Error{
		Code: errcode.ExportReportError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("cannot write report %s: %w", path, err),
	}
}

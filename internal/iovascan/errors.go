package iovascan

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnplants/pkg/errcode"
)

// RequestError is returned when VASCAN cannot be reached or answers with
// an error status.
func RequestError(name string, err error) error {
	return &gn.Error{
		Code: errcode.VASCANRequestError,
		Msg:  "VASCAN request failed for <em>%s</em>",
		Vars: []any{name},
		Err:  fmt.Errorf("vascan request for %q: %w", name, err),
	}
}

// ResponseError is returned when a VASCAN response cannot be decoded.
func ResponseError(name string, err error) error {
	return &gn.Error{
		Code: errcode.VASCANResponseError,
		Msg:  "Cannot decode VASCAN response for <em>%s</em>",
		Vars: []any{name},
		Err:  fmt.Errorf("vascan response for %q: %w", name, err),
	}
}

// AllRequestsFailedError is returned when not a single host was looked
// up successfully.
func AllRequestsFailedError(failed int) error {
	msg := `All <em>%d</em> VASCAN requests failed

<em>How to fix:</em>
  1. Check network connection
  2. Check vascan.url in config.yaml
  3. Lower vascan.requests_per_second`

	return &gn.Error{
		Code: errcode.VASCANRequestError,
		Msg:  msg,
		Vars: []any{failed},
		Err:  fmt.Errorf("all %d vascan requests failed", failed),
	}
}

// NotConnectedError is returned when import starts without database
// connections.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "VASCAN import attempted without database connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

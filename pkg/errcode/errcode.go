// Package errcode enumerates error codes of GNplants.
package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Configuration errors
	RegionsConfigError
	RegionUnknownError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBUnsupportedDriverError
	DBTableExistsCheckError
	DBQueryTablesError
	DBDropTableError
	DBTransactionError

	// Schema errors
	SchemaCreateError

	// Import errors
	ImportNoFilesError
	ImportReadCSVError
	ImportMissingColumnError
	ImportInsertError
	ImportAllFilesFailedError

	// VASCAN errors
	VASCANRequestError
	VASCANResponseError

	// Export errors
	ExportQueryError
	ExportCountryNotFoundError
	ExportPlaceError
	ExportLinkError
	ExportReportError
)

package lifecycle

import "context"

// Importer loads data from an external source into the plants database.
type Importer interface {
	// Import runs one import in a single transaction. Records that cannot
	// be processed are skipped and counted, they do not stop the run.
	Import(ctx context.Context) error
}

// Exporter writes plant ranges from the plants database into the
// Gallformers database.
type Exporter interface {
	// Export runs one export in a single transaction on the Gallformers
	// database.
	Export(ctx context.Context) error
}

// Package lifecycle defines the stages of GNplants work: schema creation,
// imports into the plants database and exports into Gallformers.
package lifecycle

import (
	"context"
)

// SchemaManager creates the plants database schema.
// Creation is idempotent, existing tables are kept.
type SchemaManager interface {
	// Create creates tables and indices that do not exist yet.
	Create(ctx context.Context) error
}

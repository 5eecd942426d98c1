/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package tableservice

import (
	"context"

	"github.com/suparena/tablebind/storagemodels"
)

// TableService is the external table-storage collaborator consumed by the
// binding orchestrator. Connection and credential selection, retries, and
// transactional semantics are the implementation's concern, not the core's.
type TableService interface {
	// AppendEntity inserts or replaces one entity in the named table.
	AppendEntity(ctx context.Context, tableName string, entity *storagemodels.Entity) error

	// GetEntity fetches exactly one entity by its two-part key.
	// It returns (nil, nil) when the entity does not exist; absence is
	// not an error.
	GetEntity(ctx context.Context, tableName, partitionKey, rowKey string) (*storagemodels.Entity, error)

	// BindTableHandle obtains a queryable handle for the named table,
	// used by the collection-read path before scanning.
	BindTableHandle(ctx context.Context, tableName string) (TableHandle, error)
}

// TableHandle is a queryable view of a single table.
type TableHandle interface {
	// Scan runs a bounded, filtered scan and returns matching entities
	// in the table's natural order.
	Scan(ctx context.Context, params *storagemodels.ScanParams) ([]*storagemodels.Entity, error)
}

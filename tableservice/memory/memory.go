/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/suparena/tablebind/filter"
	"github.com/suparena/tablebind/storagemodels"
	"github.com/suparena/tablebind/tableservice"
)

// Service is a thread-safe in-memory TableService. Entities keep their
// insertion order per table, and AppendEntity replaces an existing
// entity with the same partition and row key in place.
type Service struct {
	mu     sync.RWMutex
	tables map[string][]*storagemodels.Entity
}

// New returns an empty in-memory table service.
func New() *Service {
	return &Service{tables: make(map[string][]*storagemodels.Entity)}
}

// AppendEntity inserts or replaces the entity in the named table.
func (s *Service) AppendEntity(_ context.Context, tableName string, entity *storagemodels.Entity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.tables[tableName]
	for i, existing := range rows {
		if existing.PartitionKey == entity.PartitionKey && existing.RowKey == entity.RowKey {
			rows[i] = entity
			return nil
		}
	}
	s.tables[tableName] = append(rows, entity)
	return nil
}

// GetEntity returns the entity with the given key, or (nil, nil) when absent.
func (s *Service) GetEntity(_ context.Context, tableName, partitionKey, rowKey string) (*storagemodels.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.tables[tableName] {
		if e.PartitionKey == partitionKey && e.RowKey == rowKey {
			return e, nil
		}
	}
	return nil, nil
}

// BindTableHandle returns a scan handle over the named table. Binding an
// unknown table is legal; it scans as empty.
func (s *Service) BindTableHandle(_ context.Context, tableName string) (tableservice.TableHandle, error) {
	return &handle{service: s, tableName: tableName}, nil
}

// Count returns the number of entities stored in a table. Test helper.
func (s *Service) Count(tableName string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tables[tableName])
}

type handle struct {
	service   *Service
	tableName string
}

// Scan evaluates the filter expression against every stored entity, in
// insertion order, up to the limit.
func (h *handle) Scan(_ context.Context, params *storagemodels.ScanParams) ([]*storagemodels.Entity, error) {
	expr, err := filter.Parse(params.FilterExpression)
	if err != nil {
		return nil, fmt.Errorf("scan filter: %w", err)
	}

	h.service.mu.RLock()
	defer h.service.mu.RUnlock()

	var out []*storagemodels.Entity
	for _, e := range h.service.tables[h.tableName] {
		if !expr.Eval(e) {
			continue
		}
		out = append(out, e)
		if params.Limit > 0 && int32(len(out)) >= params.Limit {
			break
		}
	}
	return out, nil
}

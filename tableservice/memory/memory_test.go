/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/tablebind/storagemodels"
)

func entity(pk, rk string, age int32) *storagemodels.Entity {
	e := storagemodels.NewEntity(pk, rk)
	e.SetProperty("Age", &storagemodels.Int32Property{Value: age})
	return e
}

func TestAppendAndGet(t *testing.T) {
	svc := New()
	ctx := context.Background()

	require.NoError(t, svc.AppendEntity(ctx, "People", entity("p", "1", 30)))

	got, err := svc.GetEntity(ctx, "People", "p", "1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "p", got.PartitionKey)

	absent, err := svc.GetEntity(ctx, "People", "p", "missing")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestAppendReplacesSameKey(t *testing.T) {
	svc := New()
	ctx := context.Background()

	require.NoError(t, svc.AppendEntity(ctx, "People", entity("p", "1", 30)))
	require.NoError(t, svc.AppendEntity(ctx, "People", entity("p", "1", 31)))

	assert.Equal(t, 1, svc.Count("People"))

	got, err := svc.GetEntity(ctx, "People", "p", "1")
	require.NoError(t, err)
	prop, _ := got.Property("Age")
	assert.Equal(t, int32(31), prop.(*storagemodels.Int32Property).Value)
}

func TestScanFilterAndLimit(t *testing.T) {
	svc := New()
	ctx := context.Background()

	require.NoError(t, svc.AppendEntity(ctx, "People", entity("p", "1", 10)))
	require.NoError(t, svc.AppendEntity(ctx, "People", entity("p", "2", 20)))
	require.NoError(t, svc.AppendEntity(ctx, "People", entity("p", "3", 30)))
	require.NoError(t, svc.AppendEntity(ctx, "People", entity("q", "4", 40)))

	h, err := svc.BindTableHandle(ctx, "People")
	require.NoError(t, err)

	all, err := h.Scan(ctx, &storagemodels.ScanParams{TableName: "People"})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	filtered, err := h.Scan(ctx, &storagemodels.ScanParams{TableName: "People", FilterExpression: "Age gt 15"})
	require.NoError(t, err)
	assert.Len(t, filtered, 3)

	limited, err := h.Scan(ctx, &storagemodels.ScanParams{TableName: "People", FilterExpression: "Age gt 15", Limit: 2})
	require.NoError(t, err)
	require.Len(t, limited, 2)
	// Insertion order is preserved.
	assert.Equal(t, "2", limited[0].RowKey)
	assert.Equal(t, "3", limited[1].RowKey)

	_, err = h.Scan(ctx, &storagemodels.ScanParams{TableName: "People", FilterExpression: "Age gt"})
	assert.Error(t, err)
}

func TestScanUnknownTableIsEmpty(t *testing.T) {
	svc := New()
	h, err := svc.BindTableHandle(context.Background(), "Nothing")
	require.NoError(t, err)

	out, err := h.Scan(context.Background(), &storagemodels.ScanParams{TableName: "Nothing"})
	require.NoError(t, err)
	assert.Empty(t, out)
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package convert

import (
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/tablebind/errors"
	"github.com/suparena/tablebind/settings"
	"github.com/suparena/tablebind/storagemodels"
)

func TestToEntityInference(t *testing.T) {
	rec := storagemodels.NewRecord().
		Set("name", storagemodels.StringValue("ada")).
		Set("count", storagemodels.IntegerValue(3)).
		Set("active", storagemodels.BooleanValue(true)).
		Set("owner", storagemodels.GuidValue("0f8fad5b-d9cb-469f-a165-70867728950e")).
		Set("total", storagemodels.FloatValue(9.5))

	e, err := ToEntity("west", "42", rec, nil)
	require.NoError(t, err)

	assert.Equal(t, "west", e.PartitionKey)
	assert.Equal(t, "42", e.RowKey)
	require.Len(t, e.Properties, 5)

	assert.Equal(t, &storagemodels.StringProperty{Value: "ada"}, e.Properties[0].Value)
	assert.Equal(t, &storagemodels.Int32Property{Value: 3}, e.Properties[1].Value)
	assert.Equal(t, &storagemodels.BoolProperty{Value: true}, e.Properties[2].Value)
	assert.Equal(t, &storagemodels.GuidProperty{Value: uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e")}, e.Properties[3].Value)
	assert.Equal(t, &storagemodels.DoubleProperty{Value: 9.5}, e.Properties[4].Value)

	// Property order follows record order.
	names := []string{}
	for _, p := range e.Properties {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"name", "count", "active", "owner", "total"}, names)
}

func TestToEntityNarrowestInteger(t *testing.T) {
	rec := storagemodels.NewRecord().
		Set("small", storagemodels.IntegerValue(7)).
		Set("big", storagemodels.IntegerValue(1<<40))

	e, err := ToEntity("", "", rec, nil)
	require.NoError(t, err)

	assert.IsType(t, &storagemodels.Int32Property{}, e.Properties[0].Value)
	assert.IsType(t, &storagemodels.Int64Property{}, e.Properties[1].Value)
}

func TestToEntityKeyOverrides(t *testing.T) {
	rec := storagemodels.NewRecord().
		Set("partitionKEY", storagemodels.StringValue("override-p")).
		Set("ROWkey", storagemodels.StringValue("override-r")).
		Set("total", storagemodels.IntegerValue(1))

	e, err := ToEntity("resolved-p", "resolved-r", rec, nil)
	require.NoError(t, err)

	assert.Equal(t, "override-p", e.PartitionKey)
	assert.Equal(t, "override-r", e.RowKey)

	// Overrides never survive as stored properties.
	require.Len(t, e.Properties, 1)
	assert.Equal(t, "total", e.Properties[0].Name)

	// The caller's record is untouched.
	assert.Equal(t, 3, rec.Len())
}

func TestToEntityKeyOverridePassesThroughSettings(t *testing.T) {
	res := settings.NewResolver(settings.Map{"TENANT": "acme"})
	rec := storagemodels.NewRecord().
		Set("partitionKey", storagemodels.StringValue("%TENANT%-west"))

	e, err := ToEntity("ignored", "r", rec, res)
	require.NoError(t, err)
	assert.Equal(t, "acme-west", e.PartitionKey)
}

func TestToEntityMalformedGuid(t *testing.T) {
	rec := storagemodels.NewRecord().
		Set("owner", storagemodels.GuidValue("not-a-guid"))

	_, err := ToEntity("p", "r", rec, nil)
	require.Error(t, err)
	assert.True(t, errors.IsConversion(err))
	assert.Contains(t, err.Error(), `"owner"`)
}

func TestToEntityRawPassthrough(t *testing.T) {
	when := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	rec := storagemodels.NewRecord().
		Set("payload", storagemodels.RawValue([]byte{0xDE, 0xAD})).
		Set("created", storagemodels.RawValue(when)).
		Set("meta", storagemodels.RawValue(map[string]any{"a": int64(1)}))

	e, err := ToEntity("p", "r", rec, nil)
	require.NoError(t, err)

	assert.Equal(t, &storagemodels.BinaryProperty{Value: []byte{0xDE, 0xAD}}, e.Properties[0].Value)
	assert.Equal(t, &storagemodels.DateTimeProperty{Value: strfmt.DateTime(when)}, e.Properties[1].Value)
	assert.Equal(t, &storagemodels.StringProperty{Value: `{"a":1}`}, e.Properties[2].Value)
}

func TestToRecordTrailingKeys(t *testing.T) {
	e := storagemodels.NewEntity("west", "42")
	e.SetProperty("total", &storagemodels.DoubleProperty{Value: 9.5})

	rec := ToRecord(e)
	fields := rec.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, "total", fields[0].Name)
	assert.Equal(t, "PartitionKey", fields[1].Name)
	assert.Equal(t, "RowKey", fields[2].Name)
	assert.Equal(t, "west", fields[1].Value.Text())
	assert.Equal(t, "42", fields[2].Value.Text())
}

func TestToRecordKeysPresentWithoutProperties(t *testing.T) {
	rec := ToRecord(storagemodels.NewEntity("", ""))
	require.Equal(t, 2, rec.Len())
	assert.Equal(t, "PartitionKey", rec.Fields()[0].Name)
	assert.Equal(t, "RowKey", rec.Fields()[1].Name)
}

func TestToRecordOmitsUnsupported(t *testing.T) {
	e := storagemodels.NewEntity("p", "r")
	e.SetProperty("weird", &storagemodels.UnsupportedProperty{Value: struct{}{}})
	e.SetProperty("ok", &storagemodels.StringProperty{Value: "x"})

	rec := ToRecord(e)
	_, found := rec.Get("weird")
	assert.False(t, found)
	_, found = rec.Get("ok")
	assert.True(t, found)
}

func TestRoundTrip(t *testing.T) {
	// Type-preserving round trip for {String, Int32, Boolean, Guid, Double}.
	e := storagemodels.NewEntity("west", "42")
	e.SetProperty("s", &storagemodels.StringProperty{Value: "text"})
	e.SetProperty("i", &storagemodels.Int32Property{Value: 7})
	e.SetProperty("b", &storagemodels.BoolProperty{Value: true})
	e.SetProperty("g", &storagemodels.GuidProperty{Value: uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e")})
	e.SetProperty("d", &storagemodels.DoubleProperty{Value: 2.75})

	back, err := ToEntity(e.PartitionKey, e.RowKey, ToRecord(e), nil)
	require.NoError(t, err)
	assert.Equal(t, e, back)
}

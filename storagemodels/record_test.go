/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordMarshalPreservesOrder(t *testing.T) {
	rec := NewRecord().
		Set("total", FloatValue(9.5)).
		Set("total_count", IntegerValue(3)).
		Set("PartitionKey", StringValue("west")).
		Set("RowKey", StringValue("42"))

	out, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, `{"total":9.5,"total_count":3,"PartitionKey":"west","RowKey":"42"}`, string(out))
}

func TestRecordMarshalIsCompact(t *testing.T) {
	rec := NewRecord().Set("a", StringValue("x"))
	out, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.NotContains(t, string(out), " ")
}

func TestRecordUnmarshalPreservesOrderAndKinds(t *testing.T) {
	rec := NewRecord()
	err := json.Unmarshal([]byte(`{"name":"ada","age":36,"score":9.5,"active":true,"tags":["a","b"],"nothing":null}`), rec)
	require.NoError(t, err)

	fields := rec.Fields()
	require.Len(t, fields, 6)
	assert.Equal(t, "name", fields[0].Name)
	assert.Equal(t, KindString, fields[0].Value.Kind())
	assert.Equal(t, "age", fields[1].Name)
	assert.Equal(t, KindInteger, fields[1].Value.Kind())
	assert.Equal(t, int64(36), fields[1].Value.Integer())
	assert.Equal(t, KindFloat, fields[2].Value.Kind())
	assert.Equal(t, 9.5, fields[2].Value.Float())
	assert.Equal(t, KindBoolean, fields[3].Value.Kind())
	assert.True(t, fields[3].Value.Boolean())
	assert.Equal(t, KindRaw, fields[4].Value.Kind())
	assert.Equal(t, KindRaw, fields[5].Value.Kind())
	assert.Nil(t, fields[5].Value.Raw())
}

func TestRecordUnmarshalNested(t *testing.T) {
	rec := NewRecord()
	err := json.Unmarshal([]byte(`{"meta":{"a":1,"b":"x"}}`), rec)
	require.NoError(t, err)

	v, ok := rec.Get("meta")
	require.True(t, ok)
	require.Equal(t, KindRaw, v.Kind())
	assert.Equal(t, map[string]any{"a": int64(1), "b": "x"}, v.Raw())
}

func TestRecordUnmarshalRejectsNonObject(t *testing.T) {
	rec := NewRecord()
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), rec))
	assert.Error(t, json.Unmarshal([]byte(`"text"`), rec))
}

func TestRecordSetReplacesInPlace(t *testing.T) {
	rec := NewRecord().
		Set("a", IntegerValue(1)).
		Set("b", IntegerValue(2)).
		Set("a", IntegerValue(3))

	require.Equal(t, 2, rec.Len())
	assert.Equal(t, "a", rec.Fields()[0].Name)
	assert.Equal(t, int64(3), rec.Fields()[0].Value.Integer())
}

func TestRecordTakeFold(t *testing.T) {
	rec := NewRecord().
		Set("PARTITIONKEY", StringValue("p1")).
		Set("total", IntegerValue(1))

	v, ok := rec.TakeFold("partitionKey")
	require.True(t, ok)
	assert.Equal(t, "p1", v.Text())
	require.Equal(t, 1, rec.Len())

	_, ok = rec.TakeFold("rowKey")
	assert.False(t, ok)
}

func TestDecodeRecords(t *testing.T) {
	single, err := DecodeRecords([]byte(`{"total": 9.5}`))
	require.NoError(t, err)
	require.Len(t, single, 1)

	many, err := DecodeRecords([]byte(` [{"a":1},{"a":2}]`))
	require.NoError(t, err)
	require.Len(t, many, 2)
	assert.Equal(t, int64(2), many[1].Fields()[0].Value.Integer())

	none, err := DecodeRecords([]byte("  \n"))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestValueMarshal(t *testing.T) {
	tests := []struct {
		value    Value
		expected string
	}{
		{StringValue("x"), `"x"`},
		{IntegerValue(42), `42`},
		{BooleanValue(false), `false`},
		{FloatValue(9.5), `9.5`},
		{GuidValue("0f8fad5b-d9cb-469f-a165-70867728950e"), `"0f8fad5b-d9cb-469f-a165-70867728950e"`},
		{RawValue([]byte{0x01, 0x02}), `"AQI="`},
		{RawValue(nil), `null`},
	}
	for _, tt := range tests {
		out, err := json.Marshal(tt.value)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, string(out))
	}
}

func TestEntityProperties(t *testing.T) {
	e := NewEntity("p", "r")
	e.SetProperty("n", &Int32Property{Value: 1})
	e.SetProperty("s", &StringProperty{Value: "x"})
	e.SetProperty("n", &Int32Property{Value: 2})

	require.Len(t, e.Properties, 2)
	assert.Equal(t, "n", e.Properties[0].Name)

	v, ok := e.Property("n")
	require.True(t, ok)
	assert.Equal(t, int32(2), v.(*Int32Property).Value)

	_, ok = e.Property("absent")
	assert.False(t, ok)
}

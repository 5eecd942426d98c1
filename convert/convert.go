/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package convert

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"

	"github.com/suparena/tablebind/errors"
	"github.com/suparena/tablebind/settings"
	"github.com/suparena/tablebind/storagemodels"
)

// Reserved record entries that override the resolved key set on the
// write path. Matched case-insensitively.
const (
	PartitionKeyField = "PartitionKey"
	RowKeyField       = "RowKey"
)

// ToEntity maps a schema-less record into a typed entity, using the
// already-resolved partition and row key as defaults. A partitionKey or
// rowKey entry embedded in the record (any casing) overrides the
// corresponding default — after a settings-resolution pass — and is
// stripped from the stored property set. Every remaining property maps
// to exactly one typed property or fails with a ConversionError; nothing
// is silently dropped. The input record is not modified.
func ToEntity(partitionKey, rowKey string, record *storagemodels.Record, resolver *settings.Resolver) (*storagemodels.Entity, error) {
	// Work on a shallow copy so the caller's record keeps its key entries.
	rec := storagemodels.NewRecord()
	for _, f := range record.Fields() {
		rec.Set(f.Name, f.Value)
	}

	if v, ok := rec.TakeFold(PartitionKeyField); ok {
		pk, err := keyOverride(PartitionKeyField, v, resolver)
		if err != nil {
			return nil, err
		}
		partitionKey = pk
	}
	if v, ok := rec.TakeFold(RowKeyField); ok {
		rk, err := keyOverride(RowKeyField, v, resolver)
		if err != nil {
			return nil, err
		}
		rowKey = rk
	}

	entity := storagemodels.NewEntity(partitionKey, rowKey)
	for _, f := range rec.Fields() {
		prop, err := toProperty(f.Value)
		if err != nil {
			return nil, errors.NewConversionError(f.Name, err)
		}
		entity.Properties = append(entity.Properties, storagemodels.EntityProperty{Name: f.Name, Value: prop})
	}
	return entity, nil
}

func keyOverride(field string, v storagemodels.Value, resolver *settings.Resolver) (string, error) {
	var text string
	switch v.Kind() {
	case storagemodels.KindString, storagemodels.KindGuid:
		text = v.Text()
	default:
		return "", errors.NewConversionError(field, fmt.Errorf("key override must be a string, got %v", v.Kind()))
	}
	if resolver == nil {
		return text, nil
	}
	resolved, err := resolver.Resolve(text)
	if err != nil {
		return "", fmt.Errorf("resolving %s override: %w", field, err)
	}
	return resolved, nil
}

// toProperty infers the narrowest storage property type from a record
// value's kind. The precedence order is fixed: string, integer, boolean,
// GUID, float, then raw passthrough.
func toProperty(v storagemodels.Value) (storagemodels.Property, error) {
	switch v.Kind() {
	case storagemodels.KindString:
		return &storagemodels.StringProperty{Value: v.Text()}, nil
	case storagemodels.KindInteger:
		i := v.Integer()
		if i >= math.MinInt32 && i <= math.MaxInt32 {
			return &storagemodels.Int32Property{Value: int32(i)}, nil
		}
		return &storagemodels.Int64Property{Value: i}, nil
	case storagemodels.KindBoolean:
		return &storagemodels.BoolProperty{Value: v.Boolean()}, nil
	case storagemodels.KindGuid:
		id, err := uuid.Parse(v.Text())
		if err != nil {
			return nil, err
		}
		return &storagemodels.GuidProperty{Value: id}, nil
	case storagemodels.KindFloat:
		return &storagemodels.DoubleProperty{Value: v.Float()}, nil
	case storagemodels.KindRaw:
		return rawToProperty(v.Raw())
	}
	return nil, fmt.Errorf("unknown value kind %v", v.Kind())
}

// rawToProperty builds a passthrough property from a raw value's own
// representation: byte sequences become Binary, date-times become
// DateTime, everything else is rendered into a String property.
func rawToProperty(raw any) (storagemodels.Property, error) {
	switch t := raw.(type) {
	case []byte:
		return &storagemodels.BinaryProperty{Value: t}, nil
	case time.Time:
		return &storagemodels.DateTimeProperty{Value: strfmt.DateTime(t)}, nil
	case strfmt.DateTime:
		return &storagemodels.DateTimeProperty{Value: t}, nil
	case string:
		return &storagemodels.StringProperty{Value: t}, nil
	case nil:
		return &storagemodels.StringProperty{Value: ""}, nil
	default:
		rendered, err := json.Marshal(t)
		if err != nil {
			return nil, fmt.Errorf("unconvertible raw value of type %T: %w", t, err)
		}
		return &storagemodels.StringProperty{Value: string(rendered)}, nil
	}
}

// ToRecord maps a typed entity into a schema-less record. Stored
// properties render first, in entity order; unsupported property arms
// are omitted without error. PartitionKey and RowKey always render last,
// even when the entity has no other properties, so order-sensitive
// consumers can find the keys without a full scan.
func ToRecord(entity *storagemodels.Entity) *storagemodels.Record {
	rec := storagemodels.NewRecord()
	for _, p := range entity.Properties {
		if v, ok := toValue(p.Value); ok {
			rec.Set(p.Name, v)
		}
	}
	rec.Set(PartitionKeyField, storagemodels.StringValue(entity.PartitionKey))
	rec.Set(RowKeyField, storagemodels.StringValue(entity.RowKey))
	return rec
}

func toValue(p storagemodels.Property) (storagemodels.Value, bool) {
	switch t := p.(type) {
	case *storagemodels.StringProperty:
		return storagemodels.StringValue(t.Value), true
	case *storagemodels.Int32Property:
		return storagemodels.IntegerValue(int64(t.Value)), true
	case *storagemodels.Int64Property:
		return storagemodels.IntegerValue(t.Value), true
	case *storagemodels.BoolProperty:
		return storagemodels.BooleanValue(t.Value), true
	case *storagemodels.GuidProperty:
		return storagemodels.GuidValue(t.Value.String()), true
	case *storagemodels.DoubleProperty:
		return storagemodels.FloatValue(t.Value), true
	case *storagemodels.DateTimeProperty:
		return storagemodels.RawValue(t.Value), true
	case *storagemodels.BinaryProperty:
		return storagemodels.RawValue(t.Value), true
	case *storagemodels.UnsupportedProperty:
		// Explicitly omitted: no value, no error.
		return storagemodels.Value{}, false
	default:
		return storagemodels.Value{}, false
	}
}

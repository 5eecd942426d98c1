/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
)

// Property is the discriminated value of a typed entity property.
// Exactly one member type applies per value, mirroring the tagged-union
// style of DynamoDB attribute values.
type Property interface {
	isProperty()
}

// StringProperty holds a String-typed value.
type StringProperty struct {
	Value string
}

// Int32Property holds a 32-bit integer value.
type Int32Property struct {
	Value int32
}

// Int64Property holds a 64-bit integer value.
type Int64Property struct {
	Value int64
}

// BoolProperty holds a boolean value.
type BoolProperty struct {
	Value bool
}

// GuidProperty holds a GUID value.
type GuidProperty struct {
	Value uuid.UUID
}

// DoubleProperty holds a double-precision floating point value.
type DoubleProperty struct {
	Value float64
}

// DateTimeProperty holds a date-time value.
type DateTimeProperty struct {
	Value strfmt.DateTime
}

// BinaryProperty holds a byte sequence.
type BinaryProperty struct {
	Value []byte
}

// UnsupportedProperty is the explicit arm for storage types this package
// does not map. Rendering omits it; keeping the arm visible makes
// round-trip coverage gaps show up in tests instead of a silent default.
type UnsupportedProperty struct {
	Value any
}

func (*StringProperty) isProperty()      {}
func (*Int32Property) isProperty()       {}
func (*Int64Property) isProperty()       {}
func (*BoolProperty) isProperty()        {}
func (*GuidProperty) isProperty()        {}
func (*DoubleProperty) isProperty()      {}
func (*DateTimeProperty) isProperty()    {}
func (*BinaryProperty) isProperty()      {}
func (*UnsupportedProperty) isProperty() {}

// EntityProperty is a named property within an entity. Order matters.
type EntityProperty struct {
	Name  string
	Value Property
}

// Entity is a typed wide-column storage entity: a two-part primary key
// plus an ordered set of named, typed properties. Partition and row key
// are always present (empty string is valid) and are never part of the
// ordinary property set.
type Entity struct {
	PartitionKey string
	RowKey       string
	Properties   []EntityProperty
}

// NewEntity constructs an entity with the given keys.
func NewEntity(partitionKey, rowKey string) *Entity {
	return &Entity{PartitionKey: partitionKey, RowKey: rowKey}
}

// SetProperty appends the property, or replaces it in place when the name
// already exists, preserving the original position.
func (e *Entity) SetProperty(name string, value Property) *Entity {
	for i := range e.Properties {
		if e.Properties[i].Name == name {
			e.Properties[i].Value = value
			return e
		}
	}
	e.Properties = append(e.Properties, EntityProperty{Name: name, Value: value})
	return e
}

// Property returns the named property value, if present.
func (e *Entity) Property(name string) (Property, bool) {
	for i := range e.Properties {
		if e.Properties[i].Name == name {
			return e.Properties[i].Value, true
		}
	}
	return nil, false
}

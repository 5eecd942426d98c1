/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Kind discriminates the runtime shape of a record value.
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindBoolean
	KindGuid
	KindFloat
	KindRaw
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindInteger:
		return "Integer"
	case KindBoolean:
		return "Boolean"
	case KindGuid:
		return "Guid"
	case KindFloat:
		return "Float"
	case KindRaw:
		return "Raw"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is the closed variant type for schema-less record values.
// Conversion logic is a pure function over the kind tag; no reflection.
type Value struct {
	kind Kind
	str  string
	num  int64
	bit  bool
	flt  float64
	raw  any
}

// StringValue returns a String-kind value.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// IntegerValue returns an Integer-kind value.
func IntegerValue(i int64) Value { return Value{kind: KindInteger, num: i} }

// BooleanValue returns a Boolean-kind value.
func BooleanValue(b bool) Value { return Value{kind: KindBoolean, bit: b} }

// GuidValue returns a Guid-kind value holding GUID text. The text is not
// validated here; conversion to an entity property validates it.
func GuidValue(text string) Value { return Value{kind: KindGuid, str: text} }

// FloatValue returns a Float-kind value.
func FloatValue(f float64) Value { return Value{kind: KindFloat, flt: f} }

// RawValue returns a Raw-kind passthrough value for shapes outside the
// scalar set (byte sequences, date-times, nested structures).
func RawValue(v any) Value { return Value{kind: KindRaw, raw: v} }

// Kind returns the value's kind tag.
func (v Value) Kind() Kind { return v.kind }

// Text returns the carried string for String and Guid kinds.
func (v Value) Text() string { return v.str }

// Integer returns the carried integer for the Integer kind.
func (v Value) Integer() int64 { return v.num }

// Boolean returns the carried bool for the Boolean kind.
func (v Value) Boolean() bool { return v.bit }

// Float returns the carried float for the Float kind.
func (v Value) Float() float64 { return v.flt }

// Raw returns the carried value for the Raw kind.
func (v Value) Raw() any { return v.raw }

// MarshalJSON renders the value in its natural JSON shape.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString, KindGuid:
		return json.Marshal(v.str)
	case KindInteger:
		return json.Marshal(v.num)
	case KindBoolean:
		return json.Marshal(v.bit)
	case KindFloat:
		return json.Marshal(v.flt)
	case KindRaw:
		return json.Marshal(v.raw)
	}
	return nil, fmt.Errorf("unknown value kind %v", v.kind)
}

// Field is a named record value. Order matters.
type Field struct {
	Name  string
	Value Value
}

// Record is an ordered, schema-less mapping from property name to a
// dynamically-typed scalar value.
type Record struct {
	fields []Field
}

// NewRecord returns an empty record.
func NewRecord() *Record { return &Record{} }

// Set appends the field, or replaces an existing field of the same name
// in place, preserving its position. Returns the record for chaining.
func (r *Record) Set(name string, v Value) *Record {
	for i := range r.fields {
		if r.fields[i].Name == name {
			r.fields[i].Value = v
			return r
		}
	}
	r.fields = append(r.fields, Field{Name: name, Value: v})
	return r
}

// Get returns the value for an exact name match.
func (r *Record) Get(name string) (Value, bool) {
	for i := range r.fields {
		if r.fields[i].Name == name {
			return r.fields[i].Value, true
		}
	}
	return Value{}, false
}

// TakeFold removes and returns the first field whose name matches
// case-insensitively. Used for the reserved partitionKey/rowKey entries,
// which are keys in disguise rather than stored properties.
func (r *Record) TakeFold(name string) (Value, bool) {
	for i := range r.fields {
		if strings.EqualFold(r.fields[i].Name, name) {
			v := r.fields[i].Value
			r.fields = append(r.fields[:i], r.fields[i+1:]...)
			return v, true
		}
	}
	return Value{}, false
}

// Fields returns the ordered field slice. Callers must not mutate it.
func (r *Record) Fields() []Field { return r.fields }

// Len returns the number of fields.
func (r *Record) Len() int { return len(r.fields) }

// MarshalJSON renders the record as a compact JSON object, preserving
// field order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("marshal field %q: %w", f.Name, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the record, preserving key
// order. Integral numbers decode as Integer, fractional or exponent
// notation as Float, and nested objects/arrays/null as Raw passthrough.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("record must be a JSON object, got %v", tok)
	}

	r.fields = r.fields[:0]
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name := keyTok.(string)

		v, err := decodeValue(dec)
		if err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
		r.fields = append(r.fields, Field{Name: name, Value: v})
	}
	// consume closing '}'
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case string:
		return StringValue(t), nil
	case bool:
		return BooleanValue(t), nil
	case json.Number:
		s := t.String()
		if !strings.ContainsAny(s, ".eE") {
			i, err := t.Int64()
			if err == nil {
				return IntegerValue(i), nil
			}
		}
		f, err := t.Float64()
		if err != nil {
			return Value{}, err
		}
		return FloatValue(f), nil
	case nil:
		return RawValue(nil), nil
	case json.Delim:
		// Nested object or array: decode generically and pass through.
		var nested any
		switch t {
		case '{':
			m := map[string]any{}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				v, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				m[keyTok.(string)] = valueToAny(v)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			nested = m
		case '[':
			var list []any
			for dec.More() {
				v, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				list = append(list, valueToAny(v))
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			nested = list
		default:
			return Value{}, fmt.Errorf("unexpected delimiter %v", t)
		}
		return RawValue(nested), nil
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

func valueToAny(v Value) any {
	switch v.kind {
	case KindString, KindGuid:
		return v.str
	case KindInteger:
		return v.num
	case KindBoolean:
		return v.bit
	case KindFloat:
		return v.flt
	default:
		return v.raw
	}
}

// DecodeRecords parses boundary input that is either a single JSON
// record object or a JSON array of record objects, returning a
// collection either way.
func DecodeRecords(data []byte) ([]*Record, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var records []*Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, err
		}
		return records, nil
	}
	rec := NewRecord()
	if err := json.Unmarshal(trimmed, rec); err != nil {
		return nil, err
	}
	return []*Record{rec}, nil
}

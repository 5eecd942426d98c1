/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package tablebind

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/suparena/tablebind/convert"
	"github.com/suparena/tablebind/errors"
	"github.com/suparena/tablebind/settings"
	"github.com/suparena/tablebind/storagemodels"
	"github.com/suparena/tablebind/tableservice"
	"github.com/suparena/tablebind/template"
)

// Direction selects the data-flow side of a binding.
type Direction int

const (
	// DirectionRead binds table entities into boundary output.
	DirectionRead Direction = iota
	// DirectionWrite binds boundary records into table entities.
	DirectionWrite
)

func (d Direction) String() string {
	switch d {
	case DirectionRead:
		return "read"
	case DirectionWrite:
		return "write"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty value
// defaults to read.
func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "read", "in":
		*d = DirectionRead
	case "write", "out":
		*d = DirectionWrite
	default:
		return errors.NewConfigurationError("direction", fmt.Sprintf("unknown direction %q", text))
	}
	return nil
}

// DefaultTake is the result cap applied when a declaration does not set one.
const DefaultTake = 50

// Declaration describes one table binding. It is created at binding
// registration time, validated once, and never mutated afterwards.
type Declaration struct {
	// TableName is the target table. Required.
	TableName string `yaml:"tableName"`
	// PartitionKey is an optional {name} template for the partition key.
	PartitionKey string `yaml:"partitionKey,omitempty"`
	// RowKey is an optional {name} template for the row key.
	RowKey string `yaml:"rowKey,omitempty"`
	// Filter is an optional {name} template for a filter expression.
	Filter string `yaml:"filter,omitempty"`
	// Take caps collection reads. Defaults to DefaultTake.
	Take int32 `yaml:"take,omitempty"`
	// Connection optionally names the storage connection to use. The
	// core only forwards it; connection selection is the collaborator's.
	Connection string `yaml:"connection,omitempty"`
	// Direction is read or write. Defaults to read.
	Direction Direction `yaml:"direction,omitempty"`
}

// Validate checks the declaration's registration-time invariants.
func (d Declaration) Validate() error {
	if strings.TrimSpace(d.TableName) == "" {
		return errors.NewConfigurationError("tableName", "must not be empty")
	}
	if d.Take < 0 {
		return errors.NewConfigurationError("take", "must be a positive integer")
	}
	return nil
}

// resolvedKeys is the per-invocation triple produced from the declared
// templates. Undeclared templates resolve to empty strings.
type resolvedKeys struct {
	partitionKey string
	rowKey       string
	filter       string
}

// Context is the per-invocation binding data: placeholder name to value,
// case-sensitive, read-only to the binding.
type Context map[string]string

// Binding is the orchestrator for one declared table binding. A Binding
// is immutable after construction and safe for concurrent invocations;
// all per-invocation state stays local to the call.
type Binding struct {
	decl     Declaration
	take     int32
	service  tableservice.TableService
	resolver *settings.Resolver

	partitionKey *template.Template
	rowKey       *template.Template
	filter       *template.Template
}

// NewBinding validates the declaration, compiles its templates, and
// wires the table-service collaborator and settings provider. All
// configuration and template-syntax failures surface here, never at
// invocation time. A nil provider behaves as an empty configuration, so
// any %name% token fails resolution.
func NewBinding(decl Declaration, service tableservice.TableService, provider settings.Provider) (*Binding, error) {
	if err := decl.Validate(); err != nil {
		return nil, err
	}
	if service == nil {
		return nil, errors.NewConfigurationError("", "table service must not be nil")
	}
	if provider == nil {
		provider = settings.Map(nil)
	}

	b := &Binding{
		decl:     decl,
		take:     decl.Take,
		service:  service,
		resolver: settings.NewResolver(provider),
	}
	if b.take == 0 {
		b.take = DefaultTake
	}

	var err error
	if decl.PartitionKey != "" {
		if b.partitionKey, err = template.Compile(decl.PartitionKey); err != nil {
			return nil, err
		}
	}
	if decl.RowKey != "" {
		if b.rowKey, err = template.Compile(decl.RowKey); err != nil {
			return nil, err
		}
	}
	if decl.Filter != "" {
		if b.filter, err = template.Compile(decl.Filter); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Declaration returns a copy of the binding's declaration.
func (b *Binding) Declaration() Declaration { return b.decl }

// resolve binds every declared template against the invocation context,
// then runs the settings pass over each result. A declared template with
// a missing context entry is an error; an undeclared one is empty.
func (b *Binding) resolve(bctx Context) (resolvedKeys, error) {
	var keys resolvedKeys
	var err error

	if keys.partitionKey, err = b.resolveOne(b.partitionKey, bctx); err != nil {
		return keys, fmt.Errorf("resolving partition key: %w", err)
	}
	if keys.rowKey, err = b.resolveOne(b.rowKey, bctx); err != nil {
		return keys, fmt.Errorf("resolving row key: %w", err)
	}
	if keys.filter, err = b.resolveOne(b.filter, bctx); err != nil {
		return keys, fmt.Errorf("resolving filter: %w", err)
	}
	return keys, nil
}

func (b *Binding) resolveOne(t *template.Template, bctx Context) (string, error) {
	if t == nil {
		return "", nil
	}
	bound, err := t.Bind(bctx)
	if err != nil {
		return "", err
	}
	return b.resolver.Resolve(bound)
}

// Write converts each record into a typed entity, using the resolved
// partition and row key as defaults, and submits them for insertion in
// input order. The first failure aborts the invocation; records already
// submitted stay submitted, since the collaborator owns transactionality.
func (b *Binding) Write(ctx context.Context, bctx Context, records ...*storagemodels.Record) error {
	if b.decl.Direction != DirectionWrite {
		return errors.NewConfigurationError("direction", "binding is not declared for writing")
	}

	keys, err := b.resolve(bctx)
	if err != nil {
		return err
	}

	for i, rec := range records {
		entity, err := convert.ToEntity(keys.partitionKey, keys.rowKey, rec, b.resolver)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if err := b.service.AppendEntity(ctx, b.decl.TableName, entity); err != nil {
			return fmt.Errorf("appending record %d: %w", i, err)
		}
	}
	return nil
}

// Read resolves the key set and renders the bound result into w as
// compact JSON. When both keys resolve non-empty, a point read runs: an
// absent entity yields (false, nil) with nothing written; a present one
// yields a single JSON object. Otherwise a bounded collection scan runs
// and always yields a JSON array. After writing, w is flushed if it
// supports flushing; its lifetime belongs to the caller and it is never
// closed here.
func (b *Binding) Read(ctx context.Context, bctx Context, w io.Writer) (bool, error) {
	if b.decl.Direction != DirectionRead {
		return false, errors.NewConfigurationError("direction", "binding is not declared for reading")
	}

	keys, err := b.resolve(bctx)
	if err != nil {
		return false, err
	}

	if keys.partitionKey != "" && keys.rowKey != "" {
		return b.readOne(ctx, keys, w)
	}
	return b.readMany(ctx, keys, w)
}

func (b *Binding) readOne(ctx context.Context, keys resolvedKeys, w io.Writer) (bool, error) {
	entity, err := b.service.GetEntity(ctx, b.decl.TableName, keys.partitionKey, keys.rowKey)
	if err != nil {
		return false, fmt.Errorf("reading entity: %w", err)
	}
	if entity == nil {
		// The absence marker: a normal outcome, not an error.
		return false, nil
	}

	data, err := json.Marshal(convert.ToRecord(entity))
	if err != nil {
		return false, err
	}
	if _, err := w.Write(data); err != nil {
		return false, err
	}
	return true, flush(w)
}

func (b *Binding) readMany(ctx context.Context, keys resolvedKeys, w io.Writer) (bool, error) {
	handle, err := b.service.BindTableHandle(ctx, b.decl.TableName)
	if err != nil {
		return false, fmt.Errorf("binding table handle: %w", err)
	}

	entities, err := handle.Scan(ctx, &storagemodels.ScanParams{
		TableName:        b.decl.TableName,
		FilterExpression: CombineFilter(keys.partitionKey, keys.filter),
		Limit:            b.take,
	})
	if err != nil {
		return false, fmt.Errorf("scanning table: %w", err)
	}

	if _, err := w.Write([]byte{'['}); err != nil {
		return false, err
	}
	for i, entity := range entities {
		if i > 0 {
			if _, err := w.Write([]byte{','}); err != nil {
				return false, err
			}
		}
		data, err := json.Marshal(convert.ToRecord(entity))
		if err != nil {
			return false, err
		}
		if _, err := w.Write(data); err != nil {
			return false, err
		}
	}
	if _, err := w.Write([]byte{']'}); err != nil {
		return false, err
	}
	return true, flush(w)
}

// CombineFilter builds the collection-read filter: the partition-key
// equality test joins a declared filter as a conjunct, never replacing
// it; either condition alone stands by itself; neither means an
// unfiltered scan.
func CombineFilter(partitionKey, filterExpr string) string {
	var pkCond string
	if partitionKey != "" {
		pkCond = fmt.Sprintf("PartitionKey eq '%s'", strings.ReplaceAll(partitionKey, "'", "''"))
	}
	switch {
	case pkCond != "" && filterExpr != "":
		return fmt.Sprintf("(%s) and (%s)", pkCond, filterExpr)
	case pkCond != "":
		return pkCond
	default:
		return filterExpr
	}
}

// flush pushes buffered output through without closing the stream.
func flush(w io.Writer) error {
	switch f := w.(type) {
	case interface{ Flush() error }:
		return f.Flush()
	case interface{ Flush() }:
		f.Flush()
	}
	return nil
}

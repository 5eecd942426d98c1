/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package filter

import (
	"time"

	"github.com/suparena/tablebind/storagemodels"
)

// Eval reports whether the entity satisfies the filter. A nil expression
// matches every entity. Comparisons against a property the entity does
// not carry are false, whatever the operator.
func (x *Expr) Eval(e *storagemodels.Entity) bool {
	if x == nil || x.root == nil {
		return true
	}
	return evalNode(x.root, e)
}

func evalNode(n Node, e *storagemodels.Entity) bool {
	switch t := n.(type) {
	case *And:
		return evalNode(t.Left, e) && evalNode(t.Right, e)
	case *Or:
		return evalNode(t.Left, e) || evalNode(t.Right, e)
	case *Not:
		return !evalNode(t.Operand, e)
	case *Comparison:
		return evalComparison(t, e)
	}
	return false
}

func evalComparison(c *Comparison, e *storagemodels.Entity) bool {
	switch c.Ident {
	case "PartitionKey":
		return compareStrings(e.PartitionKey, c.Op, c.Lit)
	case "RowKey":
		return compareStrings(e.RowKey, c.Op, c.Lit)
	}

	prop, ok := e.Property(c.Ident)
	if !ok {
		return false
	}

	switch p := prop.(type) {
	case *storagemodels.StringProperty:
		return compareStrings(p.Value, c.Op, c.Lit)
	case *storagemodels.GuidProperty:
		return compareStrings(p.Value.String(), c.Op, c.Lit)
	case *storagemodels.DateTimeProperty:
		return compareStrings(time.Time(p.Value).UTC().Format(time.RFC3339Nano), c.Op, c.Lit)
	case *storagemodels.Int32Property:
		return compareNumbers(float64(p.Value), c.Op, c.Lit)
	case *storagemodels.Int64Property:
		return compareNumbers(float64(p.Value), c.Op, c.Lit)
	case *storagemodels.DoubleProperty:
		return compareNumbers(p.Value, c.Op, c.Lit)
	case *storagemodels.BoolProperty:
		if c.Lit.Kind() != storagemodels.KindBoolean {
			return false
		}
		switch c.Op {
		case OpEq:
			return p.Value == c.Lit.Boolean()
		case OpNe:
			return p.Value != c.Lit.Boolean()
		}
		return false
	}
	return false
}

func compareStrings(have string, op Op, lit storagemodels.Value) bool {
	if lit.Kind() != storagemodels.KindString && lit.Kind() != storagemodels.KindGuid {
		return false
	}
	want := lit.Text()
	switch op {
	case OpEq:
		return have == want
	case OpNe:
		return have != want
	case OpGt:
		return have > want
	case OpGe:
		return have >= want
	case OpLt:
		return have < want
	case OpLe:
		return have <= want
	}
	return false
}

func compareNumbers(have float64, op Op, lit storagemodels.Value) bool {
	var want float64
	switch lit.Kind() {
	case storagemodels.KindInteger:
		want = float64(lit.Integer())
	case storagemodels.KindFloat:
		want = lit.Float()
	default:
		return false
	}
	switch op {
	case OpEq:
		return have == want
	case OpNe:
		return have != want
	case OpGt:
		return have > want
	case OpGe:
		return have >= want
	case OpLt:
		return have < want
	case OpLe:
		return have <= want
	}
	return false
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/tablebind/filter"
	"github.com/suparena/tablebind/storagemodels"
)

// exprBuilder compiles a parsed filter tree into a native DynamoDB filter
// expression with #n / :v placeholder indexes, deduplicating attribute
// names along the way.
type exprBuilder struct {
	names    map[string]string
	values   map[string]types.AttributeValue
	nameIdx  map[string]string // attribute name -> assigned #n placeholder
	nindex   int
	vindex   int
	pkAttr   string
	rkAttr   string
}

// buildFilterExpression returns the DynamoDB expression string plus its
// attribute name and value maps for the given filter source. Empty
// source compiles to an empty expression.
func buildFilterExpression(source, pkAttr, rkAttr string) (string, map[string]string, map[string]types.AttributeValue, error) {
	expr, err := filter.Parse(source)
	if err != nil {
		return "", nil, nil, err
	}
	if expr.Root() == nil {
		return "", nil, nil, nil
	}

	b := &exprBuilder{
		names:   map[string]string{},
		values:  map[string]types.AttributeValue{},
		nameIdx: map[string]string{},
		pkAttr:  pkAttr,
		rkAttr:  rkAttr,
	}
	rendered, err := b.render(expr.Root())
	if err != nil {
		return "", nil, nil, err
	}
	return rendered, b.names, b.values, nil
}

func (b *exprBuilder) render(n filter.Node) (string, error) {
	switch t := n.(type) {
	case *filter.And:
		l, err := b.render(t.Left)
		if err != nil {
			return "", err
		}
		r, err := b.render(t.Right)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s) AND (%s)", l, r), nil
	case *filter.Or:
		l, err := b.render(t.Left)
		if err != nil {
			return "", err
		}
		r, err := b.render(t.Right)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s) OR (%s)", l, r), nil
	case *filter.Not:
		inner, err := b.render(t.Operand)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("NOT (%s)", inner), nil
	case *filter.Comparison:
		return b.renderComparison(t)
	}
	return "", fmt.Errorf("unsupported filter node %T", n)
}

var opSymbols = map[filter.Op]string{
	filter.OpEq: "=",
	filter.OpNe: "<>",
	filter.OpGt: ">",
	filter.OpGe: ">=",
	filter.OpLt: "<",
	filter.OpLe: "<=",
}

func (b *exprBuilder) renderComparison(c *filter.Comparison) (string, error) {
	symbol, ok := opSymbols[c.Op]
	if !ok {
		return "", fmt.Errorf("unsupported comparison operator %q", c.Op)
	}

	val, err := literalValue(c.Lit)
	if err != nil {
		return "", err
	}

	name := b.attrPlaceholder(b.attributeName(c.Ident))
	valuePlaceholder := fmt.Sprintf(":v%d", b.vindex)
	b.vindex++
	b.values[valuePlaceholder] = val

	return fmt.Sprintf("%s %s %s", name, symbol, valuePlaceholder), nil
}

// attributeName maps the logical key identifiers onto the physical
// attribute names used by this service.
func (b *exprBuilder) attributeName(ident string) string {
	switch ident {
	case "PartitionKey":
		return b.pkAttr
	case "RowKey":
		return b.rkAttr
	}
	return ident
}

func (b *exprBuilder) attrPlaceholder(attr string) string {
	if p, ok := b.nameIdx[attr]; ok {
		return p
	}
	p := fmt.Sprintf("#n%d", b.nindex)
	b.nindex++
	b.names[p] = attr
	b.nameIdx[attr] = p
	return p
}

func literalValue(lit storagemodels.Value) (types.AttributeValue, error) {
	switch lit.Kind() {
	case storagemodels.KindString, storagemodels.KindGuid:
		return &types.AttributeValueMemberS{Value: lit.Text()}, nil
	case storagemodels.KindInteger:
		return &types.AttributeValueMemberN{Value: strconv.FormatInt(lit.Integer(), 10)}, nil
	case storagemodels.KindFloat:
		return &types.AttributeValueMemberN{Value: strconv.FormatFloat(lit.Float(), 'g', -1, 64)}, nil
	case storagemodels.KindBoolean:
		return &types.AttributeValueMemberBOOL{Value: lit.Boolean()}, nil
	}
	return nil, fmt.Errorf("unsupported literal kind %v", lit.Kind())
}

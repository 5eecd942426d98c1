/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"

	"github.com/suparena/tablebind/storagemodels"
)

// entityToItem renders a typed entity as a DynamoDB item. Guid and
// DateTime properties are stored as strings; DynamoDB has no native
// representation for either, so they do not survive a read back with
// their original type tag.
func entityToItem(entity *storagemodels.Entity) (map[string]types.AttributeValue, error) {
	item := map[string]types.AttributeValue{
		partitionKeyAttr: &types.AttributeValueMemberS{Value: entity.PartitionKey},
		rowKeyAttr:       &types.AttributeValueMemberS{Value: entity.RowKey},
	}

	for _, p := range entity.Properties {
		av, err := propertyToAttribute(p.Value)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", p.Name, err)
		}
		item[p.Name] = av
	}
	return item, nil
}

func propertyToAttribute(p storagemodels.Property) (types.AttributeValue, error) {
	switch t := p.(type) {
	case *storagemodels.StringProperty:
		return &types.AttributeValueMemberS{Value: t.Value}, nil
	case *storagemodels.GuidProperty:
		return &types.AttributeValueMemberS{Value: t.Value.String()}, nil
	case *storagemodels.DateTimeProperty:
		return &types.AttributeValueMemberS{Value: time.Time(t.Value).UTC().Format(time.RFC3339Nano)}, nil
	case *storagemodels.Int32Property:
		return &types.AttributeValueMemberN{Value: strconv.FormatInt(int64(t.Value), 10)}, nil
	case *storagemodels.Int64Property:
		return &types.AttributeValueMemberN{Value: strconv.FormatInt(t.Value, 10)}, nil
	case *storagemodels.DoubleProperty:
		return &types.AttributeValueMemberN{Value: strconv.FormatFloat(t.Value, 'g', -1, 64)}, nil
	case *storagemodels.BoolProperty:
		return &types.AttributeValueMemberBOOL{Value: t.Value}, nil
	case *storagemodels.BinaryProperty:
		return &types.AttributeValueMemberB{Value: t.Value}, nil
	case *storagemodels.UnsupportedProperty:
		return attributevalue.Marshal(t.Value)
	default:
		return nil, fmt.Errorf("unsupported property type %T", p)
	}
}

// itemToEntity converts a DynamoDB item back into a typed entity.
// Numbers come back as the narrowest integer type that fits, or Double;
// attribute shapes outside the scalar set land in the Unsupported arm.
// Items carry no attribute order, so properties sort by name to keep
// rendered output stable.
func itemToEntity(item map[string]types.AttributeValue) (*storagemodels.Entity, error) {
	entity := &storagemodels.Entity{}

	names := make([]string, 0, len(item))
	for name := range item {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		av := item[name]
		switch name {
		case partitionKeyAttr:
			s, ok := av.(*types.AttributeValueMemberS)
			if !ok {
				return nil, fmt.Errorf("attribute %s must be a string", partitionKeyAttr)
			}
			entity.PartitionKey = s.Value
			continue
		case rowKeyAttr:
			s, ok := av.(*types.AttributeValueMemberS)
			if !ok {
				return nil, fmt.Errorf("attribute %s must be a string", rowKeyAttr)
			}
			entity.RowKey = s.Value
			continue
		}

		prop, err := attributeToProperty(av)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		entity.Properties = append(entity.Properties, storagemodels.EntityProperty{Name: name, Value: prop})
	}
	return entity, nil
}

func attributeToProperty(av types.AttributeValue) (storagemodels.Property, error) {
	switch t := av.(type) {
	case *types.AttributeValueMemberS:
		if dt, err := strfmt.ParseDateTime(t.Value); err == nil && looksLikeDateTime(t.Value) {
			return &storagemodels.DateTimeProperty{Value: dt}, nil
		}
		return &storagemodels.StringProperty{Value: t.Value}, nil
	case *types.AttributeValueMemberN:
		if !strings.ContainsAny(t.Value, ".eE") {
			i, err := strconv.ParseInt(t.Value, 10, 64)
			if err == nil {
				if i >= math.MinInt32 && i <= math.MaxInt32 {
					return &storagemodels.Int32Property{Value: int32(i)}, nil
				}
				return &storagemodels.Int64Property{Value: i}, nil
			}
		}
		f, err := strconv.ParseFloat(t.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", t.Value)
		}
		return &storagemodels.DoubleProperty{Value: f}, nil
	case *types.AttributeValueMemberBOOL:
		return &storagemodels.BoolProperty{Value: t.Value}, nil
	case *types.AttributeValueMemberB:
		return &storagemodels.BinaryProperty{Value: t.Value}, nil
	default:
		// Sets, lists, maps, and nulls written by other producers pass
		// through the explicit unsupported arm.
		var generic any
		if err := attributevalue.Unmarshal(av, &generic); err != nil {
			return nil, err
		}
		return &storagemodels.UnsupportedProperty{Value: generic}, nil
	}
}

// looksLikeDateTime gates date-time detection to full RFC3339 shapes so
// ordinary strings containing digits are not misread.
func looksLikeDateTime(s string) bool {
	return len(s) >= 20 && s[4] == '-' && s[7] == '-' && (s[10] == 'T' || s[10] == 't')
}

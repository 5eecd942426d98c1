/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFilterExpressionEmpty(t *testing.T) {
	rendered, names, values, err := buildFilterExpression("", partitionKeyAttr, rowKeyAttr)
	require.NoError(t, err)
	assert.Empty(t, rendered)
	assert.Nil(t, names)
	assert.Nil(t, values)
}

func TestBuildFilterExpressionComparison(t *testing.T) {
	rendered, names, values, err := buildFilterExpression("Age gt 5", partitionKeyAttr, rowKeyAttr)
	require.NoError(t, err)

	assert.Equal(t, "#n0 > :v0", rendered)
	assert.Equal(t, map[string]string{"#n0": "Age"}, names)
	assert.Equal(t, &types.AttributeValueMemberN{Value: "5"}, values[":v0"])
}

func TestBuildFilterExpressionConjunction(t *testing.T) {
	rendered, names, values, err := buildFilterExpression(
		"(PartitionKey eq 'west') and (Age gt 5)", partitionKeyAttr, rowKeyAttr)
	require.NoError(t, err)

	assert.Equal(t, "(#n0 = :v0) AND (#n1 > :v1)", rendered)
	// Logical key identifiers map onto the physical attribute names.
	assert.Equal(t, map[string]string{"#n0": "PK", "#n1": "Age"}, names)
	assert.Equal(t, &types.AttributeValueMemberS{Value: "west"}, values[":v0"])
	assert.Equal(t, &types.AttributeValueMemberN{Value: "5"}, values[":v1"])
}

func TestBuildFilterExpressionDeduplicatesNames(t *testing.T) {
	rendered, names, _, err := buildFilterExpression("Age gt 5 and Age lt 10", partitionKeyAttr, rowKeyAttr)
	require.NoError(t, err)

	assert.Equal(t, "(#n0 > :v0) AND (#n0 < :v1)", rendered)
	assert.Len(t, names, 1)
}

func TestBuildFilterExpressionOperators(t *testing.T) {
	tests := []struct {
		source   string
		expected string
	}{
		{"A eq 1", "#n0 = :v0"},
		{"A ne 1", "#n0 <> :v0"},
		{"A ge 1", "#n0 >= :v0"},
		{"A le 1", "#n0 <= :v0"},
		{"not A eq 1", "NOT (#n0 = :v0)"},
		{"A eq 1 or A eq 2", "(#n0 = :v0) OR (#n0 = :v1)"},
		{"A eq true", "#n0 = :v0"},
		{"A eq 1.5", "#n0 = :v0"},
	}
	for _, tt := range tests {
		rendered, _, _, err := buildFilterExpression(tt.source, partitionKeyAttr, rowKeyAttr)
		require.NoError(t, err, tt.source)
		assert.Equal(t, tt.expected, rendered)
	}
}

func TestBuildFilterExpressionSyntaxError(t *testing.T) {
	_, _, _, err := buildFilterExpression("Age gt", partitionKeyAttr, rowKeyAttr)
	assert.Error(t, err)
}

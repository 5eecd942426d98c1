/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/tablebind/errors"
	"github.com/suparena/tablebind/storagemodels"
)

func testEntity() *storagemodels.Entity {
	e := storagemodels.NewEntity("west", "42")
	e.SetProperty("Status", &storagemodels.StringProperty{Value: "open"})
	e.SetProperty("Age", &storagemodels.Int32Property{Value: 7})
	e.SetProperty("Total", &storagemodels.DoubleProperty{Value: 9.5})
	e.SetProperty("Active", &storagemodels.BoolProperty{Value: true})
	return e
}

func TestParseEmptyMatchesAll(t *testing.T) {
	for _, src := range []string{"", "   "} {
		x, err := Parse(src)
		require.NoError(t, err)
		assert.Nil(t, x)
		assert.True(t, x.Eval(testEntity()))
	}
}

func TestEvalComparisons(t *testing.T) {
	tests := []struct {
		source string
		match  bool
	}{
		{"Age gt 5", true},
		{"Age gt 7", false},
		{"Age ge 7", true},
		{"Age lt 10", true},
		{"Age le 6", false},
		{"Age eq 7", true},
		{"Age ne 7", false},
		{"Total gt 9", true},
		{"Total eq 9.5", true},
		{"Status eq 'open'", true},
		{"Status ne 'closed'", true},
		{"Status eq 'closed'", false},
		{"Active eq true", true},
		{"Active ne true", false},
		{"PartitionKey eq 'west'", true},
		{"RowKey eq '42'", true},
		{"PartitionKey eq 'east'", false},
		{"Missing eq 'x'", false},
		{"Missing ne 'x'", false},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			x, err := Parse(tt.source)
			require.NoError(t, err)
			assert.Equal(t, tt.match, x.Eval(testEntity()))
		})
	}
}

func TestEvalCombinators(t *testing.T) {
	tests := []struct {
		source string
		match  bool
	}{
		{"(PartitionKey eq 'west') and (Age gt 5)", true},
		{"(PartitionKey eq 'east') and (Age gt 5)", false},
		{"PartitionKey eq 'east' or Age gt 5", true},
		{"not Status eq 'closed'", true},
		{"not (Status eq 'open' and Age gt 5)", false},
		{"Age gt 1 and Age lt 10 and Status eq 'open'", true},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			x, err := Parse(tt.source)
			require.NoError(t, err)
			assert.Equal(t, tt.match, x.Eval(testEntity()))
		})
	}
}

func TestStringEscapes(t *testing.T) {
	e := storagemodels.NewEntity("p", "r")
	e.SetProperty("Name", &storagemodels.StringProperty{Value: "o'neill"})

	x, err := Parse("Name eq 'o''neill'")
	require.NoError(t, err)
	assert.True(t, x.Eval(e))
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"Age gt",
		"Age unknownop 5",
		"Age gt 'open' trailing",
		"(Age gt 5",
		"eq 5",
		"Age gt 'unterminated",
		"Age gt #",
	}

	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			_, err := Parse(src)
			require.Error(t, err)
			assert.True(t, errors.IsFilterSyntax(err))
		})
	}
}

func TestParseTree(t *testing.T) {
	x, err := Parse("(PartitionKey eq 'west') and (Age gt 5)")
	require.NoError(t, err)

	and, ok := x.Root().(*And)
	require.True(t, ok)

	left, ok := and.Left.(*Comparison)
	require.True(t, ok)
	assert.Equal(t, "PartitionKey", left.Ident)
	assert.Equal(t, OpEq, left.Op)
	assert.Equal(t, "west", left.Lit.Text())

	right, ok := and.Right.(*Comparison)
	require.True(t, ok)
	assert.Equal(t, "Age", right.Ident)
	assert.Equal(t, OpGt, right.Op)
	assert.Equal(t, int64(5), right.Lit.Integer())
}

// Copyright 2024 The Tektite Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spirit-labs/colcmp/errors"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, input string) ExprDesc {
	expr, err := NewParser().ParseExpression(input)
	require.NoError(t, err)
	return expr
}

func TestParseComparisons(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"a = 1", "equals(a, 1)"},
		{"a == 1", "equals(a, 1)"},
		{"a != 1", "not_equals(a, 1)"},
		{"a <> 1", "not_equals(a, 1)"},
		{"a > -1", "greater_than(a, -1)"},
		{"a >= +1", "greater_than_or_equal(a, 1)"},
		{"a < 3.5", "less_than(a, 3.5)"},
		{"a <= 1e3", "less_than_or_equal(a, 1000)"},
		{"name = 'o''brien'", "equals(name, 'o''brien')"},
		{"b = X'0aFF'", "equals(b, X'0aff')"},
		{"a = null", "equals(a, null)"},
		{"flag = TRUE", "equals(flag, true)"},
		{`"my col" = 1`, "equals(my col, 1)"},
		{"(a = 1)", "equals(a, 1)"},
		{"lower(s) = 'x'", "equals(lower(s), 'x')"},
		{"equals(a, b)", "equals(a, b)"},
		{"a = b = c", "equals(equals(a, b), c)"},
		{"now() > t", "greater_than(now(), t)"},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			require.Equal(t, tc.expected, PrettyPrint(parse(t, tc.input)))
		})
	}
}

func TestParseLiteralKinds(t *testing.T) {
	testCases := []struct {
		input string
		kind  LiteralKind
		value string
	}{
		{"a = 42", LiteralKindLong, "42"},
		{"a = 9223372036854775808", LiteralKindBigDecimal, "9223372036854775808"},
		{"a = 3.5", LiteralKindDouble, "3.5"},
		{"a = 0.1", LiteralKindDouble, "0.1"},
		{"a = 9007199254740993.5", LiteralKindBigDecimal, "9007199254740993.5"},
		{"a = 'text'", LiteralKindString, "text"},
		{"a = x''", LiteralKindBytes, ""},
		{"a = false", LiteralKindBool, "false"},
		{"a = NULL", LiteralKindNull, ""},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			fe, ok := parse(t, tc.input).(*FunctionExprDesc)
			require.True(t, ok)
			require.Equal(t, 2, len(fe.ArgExprs))
			lit, ok := fe.ArgExprs[1].(*LiteralExprDesc)
			require.True(t, ok)
			require.Equal(t, tc.kind, lit.Kind)
			require.Equal(t, tc.value, lit.Value)
		})
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		input  string
		errMsg string
	}{
		{"", "expression is empty"},
		{"a =", "reached end of expression"},
		{"a = 1 2", "expected end of expression but found '2' (line 1 column 7):\na = 1 2\n      ^"},
		{"a = )", "expected operand but found ')' (line 1 column 5):\na = )\n    ^"},
		{"f(a b)", "expected ',' or ')' but found 'b' (line 1 column 5):\nf(a b)\n    ^"},
		{"a = X'abc'", "invalid bytes literal 'abc' (line 1 column 5):\na = X'abc'\n    ^"},
		{"a = #", "invalid expression (line 1 column 5):\na = #\n    ^"},
		{"(a = 1", "reached end of expression"},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			_, err := NewParser().ParseExpression(tc.input)
			require.Error(t, err)
			var kerr errors.KernelError
			require.True(t, errors.As(err, &kerr))
			require.Equal(t, errors.ParseError, kerr.Code)
			require.Equal(t, tc.errMsg, kerr.Msg)
		})
	}
}

func TestErrorAtPosition(t *testing.T) {
	fe := parse(t, "a = 'x'").(*FunctionExprDesc)
	err := fe.ArgExprs[1].ErrorAtPosition("bad literal %s", "x")
	require.Equal(t, "bad literal x (line 1 column 5):\na = 'x'\n    ^", err.Error())

	err = NewIdentifierExprDesc("c").ErrorAtPosition("unknown column")
	require.Equal(t, "unknown column", err.Error())
}

func TestNewLiteralExprDesc(t *testing.T) {
	require.Equal(t, LiteralKindNull, NewLiteralExprDesc(nil).Kind)
	require.True(t, NewLiteralExprDesc(nil).IsNull())

	lit := NewLiteralExprDesc(int32(7))
	require.Equal(t, LiteralKindLong, lit.Kind)
	require.Equal(t, "7", lit.Value)

	lit = NewLiteralExprDesc(float32(1.5))
	require.Equal(t, LiteralKindDouble, lit.Kind)
	require.Equal(t, "1.5", lit.Value)

	lit = NewLiteralExprDesc([]byte{0xca, 0xfe})
	require.Equal(t, LiteralKindBytes, lit.Kind)
	require.Equal(t, "cafe", lit.Value)

	lit = NewLiteralExprDesc(true)
	require.Equal(t, LiteralKindBool, lit.Kind)
	require.Equal(t, "true", lit.Value)

	lit = NewLiteralExprDesc(decimal.RequireFromString("1.25"))
	require.Equal(t, LiteralKindBigDecimal, lit.Kind)

	lit = NewLiteralExprDesc(struct{ A int }{3})
	require.Equal(t, LiteralKindString, lit.Kind)
	require.Equal(t, "{3}", lit.Value)
}

func TestCanonicalizeFunctionName(t *testing.T) {
	require.Equal(t, "greaterthanorequal", CanonicalizeFunctionName("GREATER_THAN_OR_EQUAL"))
	require.Equal(t, "notequals", CanonicalizeFunctionName("notEquals"))
	require.Equal(t, "null", PrettyPrint(nil))
}

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

package predicate

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spirit-labs/colcmp/dictionary"
	"github.com/spirit-labs/colcmp/errors"
	"github.com/spirit-labs/colcmp/types"
	"github.com/stretchr/testify/require"
)

func sortedIntDict() dictionary.Dictionary {
	return dictionary.NewIntDictionary([]int32{1, 3, 5, 7, 9}, true)
}

func unsortedIntDict() dictionary.Dictionary {
	return dictionary.NewIntDictionary([]int32{7, 1, 9, 3, 5}, false)
}

func TestEqualsEvaluator(t *testing.T) {
	dict := sortedIntDict()
	eval, err := NewEqualsDictionaryEvaluator(NewEqPredicate("c", "5"), dict, types.StoredTypeInt)
	require.NoError(t, err)
	require.Equal(t, TypeEq, eval.PredicateType())
	require.False(t, eval.IsAlwaysFalse())
	require.False(t, eval.IsAlwaysTrue())
	require.True(t, eval.ApplyDictID(2))
	require.False(t, eval.ApplyDictID(1))
	require.True(t, eval.ApplyInt(5))
	require.False(t, eval.ApplyInt(4))

	out := make([]int32, 3)
	eval.ApplyDictIDs([]int32{2, 0, 2}, out)
	require.Equal(t, []int32{1, 0, 1}, out)

	eval, err = NewEqualsDictionaryEvaluator(NewEqPredicate("c", "4"), dict, types.StoredTypeInt)
	require.NoError(t, err)
	require.True(t, eval.IsAlwaysFalse())
	for id := int32(0); id < 5; id++ {
		require.False(t, eval.ApplyDictID(id))
	}
}

func TestNotEqualsEvaluator(t *testing.T) {
	dict := unsortedIntDict()
	eval, err := NewNotEqualsDictionaryEvaluator(NewNotEqPredicate("c", "9"), dict, types.StoredTypeInt)
	require.NoError(t, err)
	require.False(t, eval.IsAlwaysTrue())
	require.False(t, eval.ApplyDictID(2))
	require.True(t, eval.ApplyDictID(0))
	require.False(t, eval.ApplyInt(9))
	require.True(t, eval.ApplyInt(100))

	eval, err = NewNotEqualsDictionaryEvaluator(NewNotEqPredicate("c", "2"), dict, types.StoredTypeInt)
	require.NoError(t, err)
	require.True(t, eval.IsAlwaysTrue())
	require.True(t, eval.ApplyDictID(2))
}

func TestSortedRangeEvaluator(t *testing.T) {
	dict := sortedIntDict()
	testCases := []struct {
		r        Range
		expected []bool
	}{
		{GreaterEqualRange("5"), []bool{false, false, true, true, true}},
		{GreaterRange("5"), []bool{false, false, false, true, true}},
		{LessRange("5"), []bool{true, true, false, false, false}},
		{LessEqualRange("5"), []bool{true, true, true, false, false}},
		{GreaterEqualRange("4"), []bool{false, false, true, true, true}},
		{GreaterRange("4"), []bool{false, false, true, true, true}},
		{LessRange("4"), []bool{true, true, false, false, false}},
		{LessEqualRange("4"), []bool{true, true, false, false, false}},
		{GreaterRange("9"), []bool{false, false, false, false, false}},
		{GreaterEqualRange("1"), []bool{true, true, true, true, true}},
		{Range{Lower: "3", LowerInclusive: true, Upper: "7"}, []bool{false, true, true, false, false}},
	}
	for _, tc := range testCases {
		t.Run(tc.r.String(), func(t *testing.T) {
			eval, err := NewRangeDictionaryEvaluator(NewRangePredicate("c", tc.r), dict, types.StoredTypeInt)
			require.NoError(t, err)
			for id, exp := range tc.expected {
				require.Equal(t, exp, eval.ApplyDictID(int32(id)), "id %d", id)
				require.Equal(t, exp, eval.ApplyInt(dict.GetInt(int32(id))), "id %d", id)
			}
		})
	}
}

func TestRangeEvaluatorAlwaysFlags(t *testing.T) {
	dict := sortedIntDict()
	eval, err := NewRangeDictionaryEvaluator(NewRangePredicate("c", GreaterRange("9")), dict, types.StoredTypeInt)
	require.NoError(t, err)
	require.True(t, eval.IsAlwaysFalse())
	require.False(t, eval.IsAlwaysTrue())

	eval, err = NewRangeDictionaryEvaluator(NewRangePredicate("c", GreaterEqualRange("0")), dict, types.StoredTypeInt)
	require.NoError(t, err)
	require.True(t, eval.IsAlwaysTrue())

	eval, err = NewRangeDictionaryEvaluator(NewRangePredicate("c", LessRange("1")), unsortedIntDict(), types.StoredTypeInt)
	require.NoError(t, err)
	require.True(t, eval.IsAlwaysFalse())

	eval, err = NewRangeDictionaryEvaluator(NewRangePredicate("c", LessEqualRange("9")), unsortedIntDict(), types.StoredTypeInt)
	require.NoError(t, err)
	require.True(t, eval.IsAlwaysTrue())
}

func TestRawApplyBetweenDictionaryValues(t *testing.T) {
	dict := sortedIntDict()
	eval, err := NewRangeDictionaryEvaluator(NewRangePredicate("c", GreaterRange("4")), dict, types.StoredTypeInt)
	require.NoError(t, err)
	require.True(t, eval.ApplyInt(5))
	require.False(t, eval.ApplyInt(4))
	require.True(t, eval.ApplyInt(100))
}

func TestSortedAndUnsortedRangeAgree(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	builder := dictionary.NewBuilder(types.StoredTypeDouble)
	for i := 0; i < 200; i++ {
		require.NoError(t, builder.Add(float64(rnd.Intn(1000))/10))
	}
	sorted := builder.Build(true)
	unsorted := builder.Build(false)
	for i := 0; i < 50; i++ {
		bound := fmt.Sprintf("%d.%d", rnd.Intn(100), rnd.Intn(10))
		for _, r := range []Range{GreaterRange(bound), GreaterEqualRange(bound), LessRange(bound), LessEqualRange(bound)} {
			sortedEval, err := NewRangeDictionaryEvaluator(NewRangePredicate("d", r), sorted, types.StoredTypeDouble)
			require.NoError(t, err)
			unsortedEval, err := NewRangeDictionaryEvaluator(NewRangePredicate("d", r), unsorted, types.StoredTypeDouble)
			require.NoError(t, err)
			for id := int32(0); id < int32(unsorted.Length()); id++ {
				value := unsorted.GetDouble(id)
				expected := unsortedEval.ApplyDictID(id)
				require.Equal(t, expected, sortedEval.ApplyDictID(sorted.IndexOf(value)), "range %s value %f", r, value)
				require.Equal(t, expected, sortedEval.ApplyDouble(value))
			}
		}
	}
}

func TestStringRangeEvaluator(t *testing.T) {
	dict := dictionary.NewStringDictionary([]string{"apple", "banana", "cherry"}, true)
	eval, err := NewRangeDictionaryEvaluator(NewRangePredicate("s", LessRange("b")), dict, types.StoredTypeString)
	require.NoError(t, err)
	require.True(t, eval.ApplyDictID(0))
	require.False(t, eval.ApplyDictID(1))
	require.True(t, eval.ApplyString("a"))
}

func TestBigDecimalEqualsIgnoresScale(t *testing.T) {
	dict := dictionary.NewBigDecimalDictionary([]decimal.Decimal{decimal.RequireFromString("1.50")}, true)
	eval, err := NewEqualsDictionaryEvaluator(NewEqPredicate("d", "1.5"), dict, types.StoredTypeBigDecimal)
	require.NoError(t, err)
	require.True(t, eval.ApplyDictID(0))
	require.True(t, eval.ApplyBigDecimal(decimal.RequireFromString("1.500")))
}

func TestEvaluatorErrors(t *testing.T) {
	dict := dictionary.NewBytesDictionary([][]byte{{1}, {2}}, true)
	_, err := NewEqualsDictionaryEvaluator(NewEqPredicate("b", "not hex"), dict, types.StoredTypeBytes)
	require.True(t, errors.IsKernelErrorWithCode(err, errors.InvalidLiteralError))

	_, err = NewRangeDictionaryEvaluator(NewRangePredicate("b", GreaterRange("0102")), dict, types.StoredTypeString)
	require.True(t, errors.IsKernelErrorWithCode(err, errors.TypeMismatchError))

	eval, err := NewRangeDictionaryEvaluator(NewRangePredicate("b", GreaterRange("01")), dict, types.StoredTypeBytes)
	require.NoError(t, err)
	require.False(t, eval.ApplyDictID(0))
	require.True(t, eval.ApplyBytes([]byte{1, 0}))
}

func TestRangeString(t *testing.T) {
	require.Equal(t, "[3, *)", GreaterEqualRange("3").String())
	require.Equal(t, "(*, 3]", LessEqualRange("3").String())
	require.Equal(t, "c in (3, *)", NewRangePredicate("c", GreaterRange("3")).String())
	require.Equal(t, "c != 'x'", NewNotEqPredicate("c", "x").String())
}

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

package transform

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/shopspring/decimal"
	"github.com/spirit-labs/colcmp/block"
	"github.com/spirit-labs/colcmp/errors"
	log "github.com/spirit-labs/colcmp/logger"
	"github.com/spirit-labs/colcmp/predicate"
	"github.com/spirit-labs/colcmp/types"
)

// BinaryOperatorTransformFunction compares two operands row by row and produces a BOOLEAN result (1 or 0 per row).
//
// Everything that does not depend on the rows is decided when it is bound: when the left operand is a dictionary
// encoded column and the right operand a literal, the literal is converted to the column's stored type and the
// comparison is evaluated on dictionary ids by a predicate.Evaluator. Some literals make the result the same for every
// row, e.g. comparing an INT column with 3.5 using '='. Those comparisons are not evaluated at all.
type BinaryOperatorTransformFunction struct {
	baseTransformFunction
	op              Operator
	left            TransformFunction
	right           TransformFunction
	leftStoredType  types.StoredType
	rightStoredType types.StoredType
	evaluator       predicate.Evaluator

	// at most one of these is set
	alwaysTrue                 bool
	alwaysFalse                bool
	comparesAgainstNullLiteral bool
}

// Bind creates a comparison of args[0] with args[1]. dictionaryFastPath enables evaluation on dictionary ids.
func Bind(op Operator, args []TransformFunction, dictionaryFastPath bool) (*BinaryOperatorTransformFunction, error) {
	if len(args) != 2 {
		return nil, errors.NewArgumentErrorf("exactly 2 arguments are required for %s but %d were provided", op.Name(),
			len(args))
	}
	b := &BinaryOperatorTransformFunction{
		op:              op,
		left:            args[0],
		right:           args[1],
		leftStoredType:  args[0].ResultMetadata().DataType.StoredType(),
		rightStoredType: args[1].ResultMetadata().DataType.StoredType(),
	}
	b.readNative = b.readResult
	if err := b.checkTypes(); err != nil {
		return nil, err
	}
	if lit, ok := b.right.(*LiteralTransformFunction); ok && lit.IsNull() &&
		b.leftStoredType != types.StoredTypeUnknown {
		b.comparesAgainstNullLiteral = true
	} else if dictionaryFastPath {
		if err := b.bindDictionaryPredicate(); err != nil {
			return nil, err
		}
	}
	log.Debugf("bound %s: left=%s right=%s predicate=%t alwaysTrue=%t alwaysFalse=%t nullLiteral=%t", b,
		b.leftStoredType, b.rightStoredType, b.evaluator != nil, b.alwaysTrue, b.alwaysFalse,
		b.comparesAgainstNullLiteral)
	return b, nil
}

// BYTES can only be compared with BYTES, not even with NULL.
func (b *BinaryOperatorTransformFunction) checkTypes() error {
	l, r := b.leftStoredType, b.rightStoredType
	if (l == types.StoredTypeBytes || r == types.StoredTypeBytes) && l != r {
		return errors.NewTypeMismatchErrorf(
			"unsupported data type for comparison: left %s result type is %s, right %s result type is %s",
			b.left.Name(), l, b.right.Name(), r)
	}
	return nil
}

func (b *BinaryOperatorTransformFunction) bindDictionaryPredicate() error {
	ident, ok := b.left.(*IdentifierTransformFunction)
	if !ok || ident.Dictionary() == nil {
		return nil
	}
	lit, ok := b.right.(*LiteralTransformFunction)
	if !ok {
		return nil
	}
	s := sanitize(lit, b.op, b.leftStoredType)
	if s.alwaysTrue || s.alwaysFalse {
		b.alwaysTrue, b.alwaysFalse = s.alwaysTrue, s.alwaysFalse
		return nil
	}
	column, dict := ident.ColumnName(), ident.Dictionary()
	var err error
	switch b.op {
	case OperatorEquals:
		b.evaluator, err = predicate.NewEqualsDictionaryEvaluator(predicate.NewEqPredicate(column, s.value), dict,
			b.leftStoredType)
	case OperatorNotEquals:
		b.evaluator, err = predicate.NewNotEqualsDictionaryEvaluator(predicate.NewNotEqPredicate(column, s.value), dict,
			b.leftStoredType)
	case OperatorGreaterThanOrEqual:
		b.evaluator, err = predicate.NewRangeDictionaryEvaluator(
			predicate.NewRangePredicate(column, predicate.GreaterEqualRange(s.value)), dict, b.leftStoredType)
	case OperatorGreaterThan:
		b.evaluator, err = predicate.NewRangeDictionaryEvaluator(
			predicate.NewRangePredicate(column, predicate.GreaterRange(s.value)), dict, b.leftStoredType)
	case OperatorLessThan:
		b.evaluator, err = predicate.NewRangeDictionaryEvaluator(
			predicate.NewRangePredicate(column, predicate.LessRange(s.value)), dict, b.leftStoredType)
	case OperatorLessThanOrEqual:
		b.evaluator, err = predicate.NewRangeDictionaryEvaluator(
			predicate.NewRangePredicate(column, predicate.LessEqualRange(s.value)), dict, b.leftStoredType)
	default:
		return errors.NewInternalError(errors.Errorf("unexpected operator %d", int(b.op)))
	}
	if err != nil {
		return err
	}
	b.alwaysTrue = b.evaluator.IsAlwaysTrue()
	b.alwaysFalse = b.evaluator.IsAlwaysFalse()
	return nil
}

type sanitizedLiteral struct {
	value       string
	alwaysTrue  bool
	alwaysFalse bool
}

// sanitize converts the text of a literal into a value of the stored type of the column it is compared with. When
// the literal cannot be represented exactly the boundary is moved so that the comparison gives the same result for
// every value of the column, or the comparison is found to have the same result for every row.
func sanitize(lit *LiteralTransformFunction, op Operator, storedType types.StoredType) sanitizedLiteral {
	if lit.IsNull() {
		return sanitizedLiteral{value: types.NullPlaceholderLiteral(storedType)}
	}
	text := lit.StringLiteral()
	if !storedType.IsNumeric() {
		return sanitizedLiteral{value: text}
	}
	if lit.ResultMetadata().DataType == types.DataTypeBoolean {
		text = strconv.Itoa(int(lit.intValue))
	}
	d, err := types.ParseBigDecimal(text)
	if err != nil {
		// a number is never equal, less or greater than text that is not a number
		return sanitizedLiteral{alwaysFalse: true}
	}
	switch storedType {
	case types.StoredTypeInt:
		return sanitizeIntegral(d, op, math.MinInt32, math.MaxInt32)
	case types.StoredTypeLong:
		return sanitizeIntegral(d, op, math.MinInt64, math.MaxInt64)
	case types.StoredTypeFloat:
		return sanitizeFloat(d, op)
	case types.StoredTypeDouble:
		return sanitizeDouble(d, op, doubleComparison(lit, d))
	default:
		return sanitizedLiteral{value: d.String()}
	}
}

func sanitizeIntegral(d decimal.Decimal, op Operator, lo int64, hi int64) sanitizedLiteral {
	boundary := d.Floor()
	if !boundary.Equal(d) {
		switch op {
		case OperatorEquals:
			return sanitizedLiteral{alwaysFalse: true}
		case OperatorNotEquals:
			return sanitizedLiteral{alwaysTrue: true}
		case OperatorGreaterThanOrEqual, OperatorLessThan:
			// x >= 3.5 is x >= 4 and x < 3.5 is x < 4
			boundary = boundary.Add(decimal.NewFromInt(1))
		}
	}
	switch {
	case boundary.GreaterThan(decimal.NewFromInt(hi)):
		return outsideColumnRange(op, true)
	case boundary.LessThan(decimal.NewFromInt(lo)):
		return outsideColumnRange(op, false)
	}
	return sanitizedLiteral{value: boundary.String()}
}

// outsideColumnRange is the result of comparing every value of a column with a boundary above (or below) the range of
// its stored type.
func outsideColumnRange(op Operator, aboveRange bool) sanitizedLiteral {
	switch op {
	case OperatorEquals:
		return sanitizedLiteral{alwaysFalse: true}
	case OperatorNotEquals:
		return sanitizedLiteral{alwaysTrue: true}
	case OperatorGreaterThan, OperatorGreaterThanOrEqual:
		return sanitizedLiteral{alwaysTrue: !aboveRange, alwaysFalse: aboveRange}
	default:
		return sanitizedLiteral{alwaysTrue: aboveRange, alwaysFalse: !aboveRange}
	}
}

// sanitizeFloat rounds to the nearest FLOAT. Unlike the integral types the boundary is not adjusted for the range
// operators, they compare with the rounded value.
func sanitizeFloat(d decimal.Decimal, op Operator) sanitizedLiteral {
	// out of range values round to an infinity
	f, _ := strconv.ParseFloat(d.String(), 32)
	f32 := float32(f)
	if !types.ExactlyEqualsFloat(d, float64(f32)) {
		switch op {
		case OperatorEquals:
			return sanitizedLiteral{alwaysFalse: true}
		case OperatorNotEquals:
			return sanitizedLiteral{alwaysTrue: true}
		}
	}
	return sanitizedLiteral{value: types.FormatFloat32(f32)}
}

// doubleComparison compares a DOUBLE with the literal the same way the row by row comparison does. Text and
// BIG_DECIMAL literals are compared with the shortest decimal form of the double, other numbers with its exact value.
func doubleComparison(lit *LiteralTransformFunction, d decimal.Decimal) func(float64) int {
	switch lit.ResultMetadata().DataType {
	case types.DataTypeDouble:
		return func(f float64) int {
			return types.CompareFloat64(f, lit.doubleValue)
		}
	case types.DataTypeBigDecimal, types.DataTypeString:
		return func(f float64) int {
			return compareDoubleBigDecimal(f, d)
		}
	default:
		return func(f float64) int {
			return -types.CompareBigDecimalDouble(d, f)
		}
	}
}

// sanitizeDouble finds the nearest DOUBLE to the literal. When the literal falls between two adjacent doubles the
// range operators compare with whichever of them gives the same result for every value of the column. Literals beyond
// the range of DOUBLE fall between the largest finite double and infinity.
func sanitizeDouble(d decimal.Decimal, op Operator, compare func(float64) int) sanitizedLiteral {
	// out of range values round to an infinity
	f, _ := strconv.ParseFloat(d.String(), 64)
	c := compare(f)
	if c == 0 {
		return sanitizedLiteral{value: types.FormatFloat64(f)}
	}
	var below, above float64
	if c < 0 {
		below, above = f, math.Nextafter(f, math.Inf(1))
	} else {
		below, above = math.Nextafter(f, math.Inf(-1)), f
	}
	switch op {
	case OperatorEquals:
		return sanitizedLiteral{alwaysFalse: true}
	case OperatorNotEquals:
		return sanitizedLiteral{alwaysTrue: true}
	case OperatorGreaterThan, OperatorLessThanOrEqual:
		// x > 1e400 is x > MaxFloat64 and x <= 1e400 is x <= MaxFloat64
		return sanitizedLiteral{value: types.FormatFloat64(below)}
	default:
		return sanitizedLiteral{value: types.FormatFloat64(above)}
	}
}
func (b *BinaryOperatorTransformFunction) Name() string {
	return b.op.Name()
}

func (b *BinaryOperatorTransformFunction) String() string {
	return fmt.Sprintf("%s(%s, %s)", b.op.Name(), describe(b.left), describe(b.right))
}

func describe(tf TransformFunction) string {
	switch t := tf.(type) {
	case *IdentifierTransformFunction:
		return t.ColumnName()
	case *LiteralTransformFunction:
		if t.IsNull() {
			return "null"
		}
		if t.ResultMetadata().DataType == types.DataTypeString {
			return "'" + strings.ReplaceAll(t.StringLiteral(), "'", "''") + "'"
		}
		return t.StringLiteral()
	case fmt.Stringer:
		return t.String()
	default:
		return tf.Name()
	}
}

func (b *BinaryOperatorTransformFunction) ResultMetadata() ResultMetadata {
	return booleanSVNoDictionaryMetadata
}

// Evaluate returns 1 for the rows of the block where the comparison holds and 0 elsewhere. The slice is only valid
// until the next call.
func (b *BinaryOperatorTransformFunction) Evaluate(blk *block.Block) ([]int32, error) {
	return b.TransformToIntValuesSV(blk)
}

// NullBitmap is the union of the null bitmaps of the operands. Comparisons with a NULL literal are never null. The
// returned bitmap must not be modified.
func (b *BinaryOperatorTransformFunction) NullBitmap(blk *block.Block) (*roaring.Bitmap, error) {
	if b.comparesAgainstNullLiteral {
		return nil, nil
	}
	leftNulls, err := b.left.NullBitmap(blk)
	if err != nil {
		return nil, err
	}
	rightNulls, err := b.right.NullBitmap(blk)
	if err != nil {
		return nil, err
	}
	switch {
	case leftNulls == nil:
		return rightNulls, nil
	case rightNulls == nil:
		return leftNulls, nil
	}
	return roaring.Or(leftNulls, rightNulls), nil
}

func (b *BinaryOperatorTransformFunction) readResult(blk *block.Block) (values, error) {
	out := resize(&b.intValues, blk.RowCount)
	if err := b.fillResult(blk, out); err != nil {
		return values{}, err
	}
	return values{storedType: types.StoredTypeInt, length: blk.RowCount, ints: out}, nil
}

func (b *BinaryOperatorTransformFunction) fillResult(blk *block.Block, out []int32) error {
	if !b.left.ResultMetadata().SingleValue || !b.right.ResultMetadata().SingleValue {
		return errors.NewUnsupportedTypeErrorf("%s is only supported on single-value operands", b.op.Name())
	}
	if b.alwaysTrue {
		fill[int32](out, 1)
		return nil
	}
	if b.alwaysFalse {
		fill[int32](out, 0)
		return nil
	}
	if b.comparesAgainstNullLiteral {
		return b.fillNullComparison(blk, out)
	}
	if b.left.Dictionary() != nil && b.evaluator != nil {
		ids, err := b.left.TransformToDictIDsSV(blk)
		if err != nil {
			return err
		}
		b.evaluator.ApplyDictIDs(ids, out)
		return nil
	}
	if b.leftStoredType == types.StoredTypeUnknown || b.rightStoredType == types.StoredTypeUnknown {
		fill[int32](out, 0)
		return nil
	}
	left, err := readValues(b.left, b.leftStoredType, blk)
	if err != nil {
		return err
	}
	if b.evaluator != nil {
		return b.applyEvaluator(left, out)
	}
	switch b.leftStoredType {
	case types.StoredTypeString:
		// anything compared with a STRING is compared as a STRING
		right, err := readValues(b.right, types.StoredTypeString, blk)
		if err != nil {
			return err
		}
		compareEach(b.op, out, left.strings, right.strings, strings.Compare)
		return nil
	case types.StoredTypeBytes:
		right, err := readValues(b.right, types.StoredTypeBytes, blk)
		if err != nil {
			return err
		}
		compareEach(b.op, out, left.bytes, right.bytes, types.CompareBytes)
		return nil
	}
	right, err := readValues(b.right, b.rightStoredType, blk)
	if err != nil {
		return err
	}
	return b.compareNumeric(left, right, out)
}

// fillNullComparison evaluates '=' with a NULL literal as "is null" and every other operator as "is not null".
func (b *BinaryOperatorTransformFunction) fillNullComparison(blk *block.Block, out []int32) error {
	nulls, err := b.left.NullBitmap(blk)
	if err != nil {
		return err
	}
	isNullResult := boolToInt(b.op == OperatorEquals)
	if nulls == nil {
		fill(out, 1-isNullResult)
		return nil
	}
	for i := range out {
		if nulls.Contains(uint32(i)) {
			out[i] = isNullResult
		} else {
			out[i] = 1 - isNullResult
		}
	}
	return nil
}

func (b *BinaryOperatorTransformFunction) applyEvaluator(left values, out []int32) error {
	e := b.evaluator
	switch left.storedType {
	case types.StoredTypeInt:
		applyEach(out, left.ints, e.ApplyInt)
	case types.StoredTypeLong:
		applyEach(out, left.longs, e.ApplyLong)
	case types.StoredTypeFloat:
		applyEach(out, left.floats, e.ApplyFloat)
	case types.StoredTypeDouble:
		applyEach(out, left.doubles, e.ApplyDouble)
	case types.StoredTypeBigDecimal:
		applyEach(out, left.bigDecimals, e.ApplyBigDecimal)
	case types.StoredTypeString:
		applyEach(out, left.strings, e.ApplyString)
	case types.StoredTypeBytes:
		applyEach(out, left.bytes, e.ApplyBytes)
	default:
		return b.unsupportedTypes()
	}
	return nil
}

func (b *BinaryOperatorTransformFunction) unsupportedTypes() error {
	return errors.NewUnsupportedTypeErrorf("cannot compare %s with %s", b.leftStoredType, b.rightStoredType)
}

// compareNumeric compares a numeric left operand with a numeric or STRING right operand. LONG and floating point
// values are compared exactly when the LONG is too large to be represented as a double. BIG_DECIMAL values are
// compared with other numbers after converting those numbers to BIG_DECIMAL, and so is the text of STRING values.
func (b *BinaryOperatorTransformFunction) compareNumeric(left values, right values, out []int32) error {
	op := b.op
	if right.storedType == types.StoredTypeString {
		switch left.storedType {
		case types.StoredTypeInt:
			compareEachWithText(op, out, left.ints, right.strings, int32ToDecimal)
		case types.StoredTypeLong:
			compareEachWithText(op, out, left.longs, right.strings, int64ToDecimal)
		case types.StoredTypeFloat:
			compareEachWithText(op, out, left.floats, right.strings, float32ToDecimal)
		case types.StoredTypeDouble:
			compareEachWithText(op, out, left.doubles, right.strings, types.BigDecimalFromFloat64)
		case types.StoredTypeBigDecimal:
			compareEachWithText(op, out, left.bigDecimals, right.strings, bigDecimalToDecimal)
		default:
			return b.unsupportedTypes()
		}
		return nil
	}
	switch left.storedType {
	case types.StoredTypeInt:
		switch right.storedType {
		case types.StoredTypeInt:
			compareEach(op, out, left.ints, right.ints, types.CompareOrdered[int32])
		case types.StoredTypeLong:
			compareEach(op, out, left.ints, right.longs, func(l int32, r int64) int {
				return types.CompareOrdered(int64(l), r)
			})
		case types.StoredTypeFloat:
			compareEach(op, out, left.ints, right.floats, func(l int32, r float32) int {
				return types.CompareFloat64(float64(l), float64(r))
			})
		case types.StoredTypeDouble:
			compareEach(op, out, left.ints, right.doubles, func(l int32, r float64) int {
				return types.CompareFloat64(float64(l), r)
			})
		case types.StoredTypeBigDecimal:
			compareEach(op, out, left.ints, right.bigDecimals, func(l int32, r decimal.Decimal) int {
				return decimal.NewFromInt32(l).Cmp(r)
			})
		default:
			return b.unsupportedTypes()
		}
	case types.StoredTypeLong:
		switch right.storedType {
		case types.StoredTypeInt:
			compareEach(op, out, left.longs, right.ints, func(l int64, r int32) int {
				return types.CompareOrdered(l, int64(r))
			})
		case types.StoredTypeLong:
			compareEach(op, out, left.longs, right.longs, types.CompareOrdered[int64])
		case types.StoredTypeFloat:
			compareEach(op, out, left.longs, right.floats, func(l int64, r float32) int {
				return types.CompareLongDouble(l, float64(r))
			})
		case types.StoredTypeDouble:
			compareEach(op, out, left.longs, right.doubles, types.CompareLongDouble)
		case types.StoredTypeBigDecimal:
			compareEach(op, out, left.longs, right.bigDecimals, func(l int64, r decimal.Decimal) int {
				return decimal.NewFromInt(l).Cmp(r)
			})
		default:
			return b.unsupportedTypes()
		}
	case types.StoredTypeFloat:
		switch right.storedType {
		case types.StoredTypeInt:
			compareEach(op, out, left.floats, right.ints, func(l float32, r int32) int {
				return types.CompareFloat64(float64(l), float64(r))
			})
		case types.StoredTypeLong:
			compareEach(op, out, left.floats, right.longs, func(l float32, r int64) int {
				return types.CompareDoubleLong(float64(l), r)
			})
		case types.StoredTypeFloat:
			compareEach(op, out, left.floats, right.floats, types.CompareFloat32)
		case types.StoredTypeDouble:
			compareEach(op, out, left.floats, right.doubles, func(l float32, r float64) int {
				return types.CompareFloat64(float64(l), r)
			})
		case types.StoredTypeBigDecimal:
			compareEach(op, out, left.floats, right.bigDecimals, func(l float32, r decimal.Decimal) int {
				return compareDoubleBigDecimal(float64(l), r)
			})
		default:
			return b.unsupportedTypes()
		}
	case types.StoredTypeDouble:
		switch right.storedType {
		case types.StoredTypeInt:
			compareEach(op, out, left.doubles, right.ints, func(l float64, r int32) int {
				return types.CompareFloat64(l, float64(r))
			})
		case types.StoredTypeLong:
			compareEach(op, out, left.doubles, right.longs, types.CompareDoubleLong)
		case types.StoredTypeFloat:
			compareEach(op, out, left.doubles, right.floats, func(l float64, r float32) int {
				return types.CompareFloat64(l, float64(r))
			})
		case types.StoredTypeDouble:
			compareEach(op, out, left.doubles, right.doubles, types.CompareFloat64)
		case types.StoredTypeBigDecimal:
			compareEach(op, out, left.doubles, right.bigDecimals, compareDoubleBigDecimal)
		default:
			return b.unsupportedTypes()
		}
	case types.StoredTypeBigDecimal:
		switch right.storedType {
		case types.StoredTypeInt:
			compareEach(op, out, left.bigDecimals, right.ints, func(l decimal.Decimal, r int32) int {
				return l.Cmp(decimal.NewFromInt32(r))
			})
		case types.StoredTypeLong:
			compareEach(op, out, left.bigDecimals, right.longs, func(l decimal.Decimal, r int64) int {
				return l.Cmp(decimal.NewFromInt(r))
			})
		case types.StoredTypeFloat:
			compareEach(op, out, left.bigDecimals, right.floats, func(l decimal.Decimal, r float32) int {
				return -compareDoubleBigDecimal(float64(r), l)
			})
		case types.StoredTypeDouble:
			compareEach(op, out, left.bigDecimals, right.doubles, func(l decimal.Decimal, r float64) int {
				return -compareDoubleBigDecimal(r, l)
			})
		case types.StoredTypeBigDecimal:
			compareEach(op, out, left.bigDecimals, right.bigDecimals, decimal.Decimal.Cmp)
		default:
			return b.unsupportedTypes()
		}
	default:
		return b.unsupportedTypes()
	}
	return nil
}

func compareEach[L any, R any](op Operator, out []int32, left []L, right []R, compare func(L, R) int) {
	for i := range out {
		out[i] = op.result(compare(left[i], right[i]))
	}
}

// compareEachWithText compares numbers with the decimal numbers in right. The result is 0 for every operator when
// the text is not a number, or when the left value has no decimal value (NaN and the infinities).
func compareEachWithText[L any](op Operator, out []int32, left []L, right []string, toDecimal func(L) (decimal.Decimal, bool)) {
	for i := range out {
		l, ok := toDecimal(left[i])
		if !ok {
			out[i] = 0
			continue
		}
		r, err := types.ParseBigDecimal(right[i])
		if err != nil {
			out[i] = 0
			continue
		}
		out[i] = op.result(l.Cmp(r))
	}
}

func applyEach[T any](out []int32, vals []T, apply func(T) bool) {
	for i, v := range vals {
		out[i] = boolToInt(apply(v))
	}
}

// compareDoubleBigDecimal converts the double to the BIG_DECIMAL with the shortest decimal representation that
// rounds to it, so 0.1 is equal to 0.1. NaN and the infinities sort around all decimals.
func compareDoubleBigDecimal(f float64, d decimal.Decimal) int {
	if fd, ok := types.BigDecimalFromFloat64(f); ok {
		return fd.Cmp(d)
	}
	return -types.CompareBigDecimalDouble(d, f)
}

func int32ToDecimal(v int32) (decimal.Decimal, bool) {
	return decimal.NewFromInt32(v), true
}

func int64ToDecimal(v int64) (decimal.Decimal, bool) {
	return decimal.NewFromInt(v), true
}

func float32ToDecimal(v float32) (decimal.Decimal, bool) {
	return types.BigDecimalFromFloat64(float64(v))
}

func bigDecimalToDecimal(v decimal.Decimal) (decimal.Decimal, bool) {
	return v, true
}

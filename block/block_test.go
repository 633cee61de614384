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

package block

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spirit-labs/colcmp/dictionary"
	"github.com/spirit-labs/colcmp/errors"
	"github.com/spirit-labs/colcmp/types"
	"github.com/stretchr/testify/require"
)

func TestBlockTypes(t *testing.T) {
	schema := NewSchema([]string{"f0", "f1", "f2", "f3", "f4", "f5", "f6"},
		[]types.DataType{types.DataTypeInt, types.DataTypeLong, types.DataTypeFloat, types.DataTypeDouble,
			types.DataTypeBigDecimal, types.DataTypeString, types.DataTypeBytes})
	blk := createBlock(t, schema)

	require.Equal(t, 20, blk.RowCount)

	rowIndex := 0
	for i := 0; i < 10; i++ {
		require.Equal(t, int32(i), blk.Columns[0].(*IntColumn).Get(rowIndex))
		require.Equal(t, int64(i)*1000000000000, blk.Columns[1].(*LongColumn).Get(rowIndex))
		require.Equal(t, float32(i)+0.5, blk.Columns[2].(*FloatColumn).Get(rowIndex))
		require.Equal(t, 1.25+float64(i), blk.Columns[3].(*DoubleColumn).Get(rowIndex))
		expectedDec := decimal.RequireFromString(fmt.Sprintf("%d12345.54321", i))
		require.True(t, expectedDec.Equal(blk.Columns[4].(*BigDecimalColumn).Get(rowIndex)))
		require.Equal(t, fmt.Sprintf("ldg %d", i), blk.Columns[5].(*StringColumn).Get(rowIndex))
		require.Equal(t, []byte(fmt.Sprintf("somebytes%d", i)), blk.Columns[6].(*BytesColumn).Get(rowIndex))
		rowIndex++
		for _, col := range blk.Columns {
			require.True(t, col.IsNull(rowIndex))
			require.False(t, col.IsNull(rowIndex-1))
		}
		rowIndex++
	}
	for _, col := range blk.Columns {
		bm := col.NullBitmap()
		require.NotNil(t, bm)
		require.Equal(t, uint64(10), bm.GetCardinality())
		require.True(t, bm.Contains(1))
		require.False(t, bm.Contains(0))
	}
}

func createBlock(t *testing.T, schema *Schema) *Block {
	builders := CreateColBuilders(schema, 20, 5)
	for i := 0; i < 10; i++ {
		builders[0].(*IntColBuilder).Append(int32(i))
		builders[1].(*LongColBuilder).Append(int64(i) * 1000000000000)
		builders[2].(*FloatColBuilder).Append(float32(i) + 0.5)
		builders[3].(*DoubleColBuilder).Append(1.25 + float64(i))
		err := builders[4].(*BigDecimalColBuilder).Append(decimal.RequireFromString(fmt.Sprintf("%d12345.54321", i)))
		require.NoError(t, err)
		builders[5].(*StringColBuilder).Append(fmt.Sprintf("ldg %d", i))
		builders[6].(*BytesColBuilder).Append([]byte(fmt.Sprintf("somebytes%d", i)))
		for _, builder := range builders {
			builder.AppendNull()
		}
	}
	return NewBlockFromBuilders(schema, builders...)
}

func TestNoNullsGivesNilBitmap(t *testing.T) {
	builder := NewIntColBuilder()
	builder.Append(1)
	builder.Append(2)
	col := builder.Build()
	require.Nil(t, col.NullBitmap())
}

func TestNewBlockPanicsOnUnequalColumns(t *testing.T) {
	schema := NewSchema([]string{"a", "b"}, []types.DataType{types.DataTypeInt, types.DataTypeInt})
	b1 := NewIntColBuilder()
	b1.Append(1)
	b2 := NewIntColBuilder()
	b2.Append(1)
	b2.Append(2)
	require.Panics(t, func() {
		NewBlockFromBuilders(schema, b1, b2)
	})
}

func TestDictionaryEncodedColumn(t *testing.T) {
	dict := dictionary.NewStringDictionary([]string{"", "a", "b", "c"}, true)
	builder := NewDictIDColBuilder(dict)
	builder.Append(3)
	builder.AppendNull()
	builder.Append(1)
	schema := NewSchema([]string{"s"}, []types.DataType{types.DataTypeString})
	blk := NewBlockFromBuilders(schema, builder)

	require.True(t, blk.IsDictionaryEncoded("s"))
	require.Same(t, dict, blk.Dictionary("s"))
	ids, err := blk.ReadDictionaryIDs("s")
	require.NoError(t, err)
	require.Equal(t, []int32{3, 0, 1}, ids)

	values := make([]string, blk.RowCount)
	require.NoError(t, blk.ReadStringValues("s", values))
	require.Equal(t, []string{"c", "", "a"}, values)

	bm, err := blk.ReadNullBitmap("s")
	require.NoError(t, err)
	require.Equal(t, []uint32{1}, bm.ToArray())
	require.Equal(t, types.StoredTypeString, blk.Columns[0].StoredType())
}

func TestDictIDColBuilderWithoutPlaceholder(t *testing.T) {
	dict := dictionary.NewIntDictionary([]int32{5, 6}, true)
	builder := NewDictIDColBuilder(dict)
	require.Panics(t, func() {
		builder.AppendNull()
	})
	require.Panics(t, func() {
		builder.Append(2)
	})
}

func TestReadRawValues(t *testing.T) {
	schema := NewSchema([]string{"l", "d"}, []types.DataType{types.DataTypeTimestamp, types.DataTypeBigDecimal})
	lb := NewLongColBuilder()
	lb.Append(100)
	lb.AppendNull()
	db := NewBigDecimalColBuilder(10, 2)
	require.NoError(t, db.Append(decimal.RequireFromString("1.5")))
	require.NoError(t, db.Append(decimal.RequireFromString("-2.25")))
	blk := NewBlockFromBuilders(schema, lb, db)

	longs := make([]int64, 2)
	require.NoError(t, blk.ReadLongValues("l", longs))
	require.Equal(t, []int64{100, types.NullPlaceholderLong}, longs)

	decs := make([]decimal.Decimal, 2)
	require.NoError(t, blk.ReadBigDecimalValues("d", decs))
	require.Equal(t, "1.5", decs[0].String())
	require.Equal(t, "-2.25", decs[1].String())

	err := blk.ReadIntValues("l", make([]int32, 2))
	require.Error(t, err)

	err = blk.ReadIntValues("missing", make([]int32, 2))
	require.True(t, errors.IsKernelErrorWithCode(err, errors.ArgumentError))
	require.False(t, blk.IsDictionaryEncoded("l"))
	require.Nil(t, blk.Dictionary("l"))
}

func TestBigDecimalPrecisionOverflow(t *testing.T) {
	db := NewBigDecimalColBuilder(4, 2)
	require.Error(t, db.Append(decimal.RequireFromString("123.45")))
}

func TestBigDecimalScaleOverflow(t *testing.T) {
	db := NewBigDecimalColBuilder(10, 2)
	require.Error(t, db.Append(decimal.RequireFromString("1.125")))
	require.NoError(t, db.Append(decimal.RequireFromString("1.100")))
}

func TestSchemaString(t *testing.T) {
	schema := NewSchemaWithValueKinds([]string{"a", "b"}, []types.DataType{types.DataTypeInt, types.DataTypeString},
		[]bool{true, false})
	require.Equal(t, "a: INT, b: STRING[]", schema.String())
	require.Equal(t, 1, schema.ColumnIndex("b"))
	require.Equal(t, -1, schema.ColumnIndex("c"))
	require.False(t, schema.IsSingleValue(1))
}

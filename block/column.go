package block

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/apache/arrow/go/v11/arrow"
	"github.com/apache/arrow/go/v11/arrow/array"
	"github.com/apache/arrow/go/v11/arrow/memory"
	"github.com/shopspring/decimal"
	"github.com/spirit-labs/colcmp/dictionary"
	"github.com/spirit-labs/colcmp/types"
)

// Column is an immutable column of a Block. The value slot of a null row holds the null placeholder of the
// column's stored type.
type Column interface {
	Len() int
	IsNull(row int) bool
	// NullBitmap has a bit set for every null row, it is nil when the column has no nulls
	NullBitmap() *roaring.Bitmap
	StoredType() types.StoredType
}

type ColumnBuilder interface {
	AppendNull()
	Build() Column
}

func nullBitmapOf(arr arrow.Array) *roaring.Bitmap {
	if arr.NullN() == 0 {
		return nil
	}
	bm := roaring.New()
	for i := 0; i < arr.Len(); i++ {
		if arr.IsNull(i) {
			bm.Add(uint32(i))
		}
	}
	bm.RunOptimize()
	return bm
}

func NewIntColBuilder() *IntColBuilder {
	return &IntColBuilder{builder: array.NewInt32Builder(memory.NewGoAllocator())}
}

type IntColBuilder struct {
	builder *array.Int32Builder
}

func (ib *IntColBuilder) AppendNull() {
	ib.builder.AppendNull()
}

func (ib *IntColBuilder) Append(val int32) {
	ib.builder.Append(val)
}

func (ib *IntColBuilder) BuildIntColumn() *IntColumn {
	arr := ib.builder.NewInt32Array()
	return &IntColumn{array: arr, nulls: nullBitmapOf(arr)}
}

func (ib *IntColBuilder) Build() Column {
	return ib.BuildIntColumn()
}

var _ Column = &IntColumn{}

type IntColumn struct {
	array *array.Int32
	nulls *roaring.Bitmap
}

func (ic *IntColumn) Get(row int) int32 {
	return ic.array.Value(row)
}

func (ic *IntColumn) Values() []int32 {
	return ic.array.Int32Values()
}

func (ic *IntColumn) IsNull(row int) bool {
	return ic.array.IsNull(row)
}

func (ic *IntColumn) NullBitmap() *roaring.Bitmap {
	return ic.nulls
}

func (ic *IntColumn) Len() int {
	return ic.array.Len()
}

func (ic *IntColumn) StoredType() types.StoredType {
	return types.StoredTypeInt
}

func NewLongColBuilder() *LongColBuilder {
	return &LongColBuilder{builder: array.NewInt64Builder(memory.NewGoAllocator())}
}

type LongColBuilder struct {
	builder *array.Int64Builder
}

func (lb *LongColBuilder) AppendNull() {
	lb.builder.AppendNull()
}

func (lb *LongColBuilder) Append(val int64) {
	lb.builder.Append(val)
}

func (lb *LongColBuilder) BuildLongColumn() *LongColumn {
	arr := lb.builder.NewInt64Array()
	return &LongColumn{array: arr, nulls: nullBitmapOf(arr)}
}

func (lb *LongColBuilder) Build() Column {
	return lb.BuildLongColumn()
}

var _ Column = &LongColumn{}

type LongColumn struct {
	array *array.Int64
	nulls *roaring.Bitmap
}

func (lc *LongColumn) Get(row int) int64 {
	return lc.array.Value(row)
}

func (lc *LongColumn) Values() []int64 {
	return lc.array.Int64Values()
}

func (lc *LongColumn) IsNull(row int) bool {
	return lc.array.IsNull(row)
}

func (lc *LongColumn) NullBitmap() *roaring.Bitmap {
	return lc.nulls
}

func (lc *LongColumn) Len() int {
	return lc.array.Len()
}

func (lc *LongColumn) StoredType() types.StoredType {
	return types.StoredTypeLong
}

func NewFloatColBuilder() *FloatColBuilder {
	return &FloatColBuilder{builder: array.NewFloat32Builder(memory.NewGoAllocator())}
}

type FloatColBuilder struct {
	builder *array.Float32Builder
}

func (fb *FloatColBuilder) AppendNull() {
	fb.builder.AppendNull()
}

func (fb *FloatColBuilder) Append(val float32) {
	fb.builder.Append(val)
}

func (fb *FloatColBuilder) BuildFloatColumn() *FloatColumn {
	arr := fb.builder.NewFloat32Array()
	return &FloatColumn{array: arr, nulls: nullBitmapOf(arr)}
}

func (fb *FloatColBuilder) Build() Column {
	return fb.BuildFloatColumn()
}

var _ Column = &FloatColumn{}

type FloatColumn struct {
	array *array.Float32
	nulls *roaring.Bitmap
}

func (fc *FloatColumn) Get(row int) float32 {
	return fc.array.Value(row)
}

func (fc *FloatColumn) Values() []float32 {
	return fc.array.Float32Values()
}

func (fc *FloatColumn) IsNull(row int) bool {
	return fc.array.IsNull(row)
}

func (fc *FloatColumn) NullBitmap() *roaring.Bitmap {
	return fc.nulls
}

func (fc *FloatColumn) Len() int {
	return fc.array.Len()
}

func (fc *FloatColumn) StoredType() types.StoredType {
	return types.StoredTypeFloat
}

func NewDoubleColBuilder() *DoubleColBuilder {
	return &DoubleColBuilder{builder: array.NewFloat64Builder(memory.NewGoAllocator())}
}

type DoubleColBuilder struct {
	builder *array.Float64Builder
}

func (db *DoubleColBuilder) AppendNull() {
	db.builder.AppendNull()
}

func (db *DoubleColBuilder) Append(val float64) {
	db.builder.Append(val)
}

func (db *DoubleColBuilder) BuildDoubleColumn() *DoubleColumn {
	arr := db.builder.NewFloat64Array()
	return &DoubleColumn{array: arr, nulls: nullBitmapOf(arr)}
}

func (db *DoubleColBuilder) Build() Column {
	return db.BuildDoubleColumn()
}

var _ Column = &DoubleColumn{}

type DoubleColumn struct {
	array *array.Float64
	nulls *roaring.Bitmap
}

func (dc *DoubleColumn) Get(row int) float64 {
	return dc.array.Value(row)
}

func (dc *DoubleColumn) Values() []float64 {
	return dc.array.Float64Values()
}

func (dc *DoubleColumn) IsNull(row int) bool {
	return dc.array.IsNull(row)
}

func (dc *DoubleColumn) NullBitmap() *roaring.Bitmap {
	return dc.nulls
}

func (dc *DoubleColumn) Len() int {
	return dc.array.Len()
}

func (dc *DoubleColumn) StoredType() types.StoredType {
	return types.StoredTypeDouble
}

func NewBigDecimalColBuilder(precision int, scale int) *BigDecimalColBuilder {
	dt := &arrow.Decimal128Type{
		Precision: int32(precision),
		Scale:     int32(scale),
	}
	return &BigDecimalColBuilder{
		precision: precision,
		scale:     scale,
		builder:   array.NewDecimal128Builder(memory.NewGoAllocator(), dt),
	}
}

type BigDecimalColBuilder struct {
	precision int
	scale     int
	builder   *array.Decimal128Builder
}

func (bb *BigDecimalColBuilder) AppendNull() {
	bb.builder.AppendNull()
}

// Append rescales val to the column scale, it fails if the result does not fit the column precision.
func (bb *BigDecimalColBuilder) Append(val decimal.Decimal) error {
	num, err := types.BigDecimalToDecimal128(val, bb.precision, bb.scale)
	if err != nil {
		return err
	}
	bb.builder.Append(num)
	return nil
}

func (bb *BigDecimalColBuilder) BuildBigDecimalColumn() *BigDecimalColumn {
	arr := bb.builder.NewDecimal128Array()
	return &BigDecimalColumn{
		precision: bb.precision,
		scale:     bb.scale,
		array:     arr,
		nulls:     nullBitmapOf(arr),
	}
}

func (bb *BigDecimalColBuilder) Build() Column {
	return bb.BuildBigDecimalColumn()
}

var _ Column = &BigDecimalColumn{}

type BigDecimalColumn struct {
	precision int
	scale     int
	array     *array.Decimal128
	nulls     *roaring.Bitmap
}

func (bc *BigDecimalColumn) Get(row int) decimal.Decimal {
	return types.BigDecimalFromDecimal128(bc.array.Value(row), bc.scale)
}

func (bc *BigDecimalColumn) Precision() int {
	return bc.precision
}

func (bc *BigDecimalColumn) Scale() int {
	return bc.scale
}

func (bc *BigDecimalColumn) IsNull(row int) bool {
	return bc.array.IsNull(row)
}

func (bc *BigDecimalColumn) NullBitmap() *roaring.Bitmap {
	return bc.nulls
}

func (bc *BigDecimalColumn) Len() int {
	return bc.array.Len()
}

func (bc *BigDecimalColumn) StoredType() types.StoredType {
	return types.StoredTypeBigDecimal
}

func NewStringColBuilder() *StringColBuilder {
	return &StringColBuilder{builder: array.NewStringBuilder(memory.NewGoAllocator())}
}

type StringColBuilder struct {
	builder *array.StringBuilder
}

func (sb *StringColBuilder) AppendNull() {
	sb.builder.AppendNull()
}

func (sb *StringColBuilder) Append(val string) {
	sb.builder.Append(val)
}

func (sb *StringColBuilder) BuildStringColumn() *StringColumn {
	arr := sb.builder.NewStringArray()
	return &StringColumn{array: arr, nulls: nullBitmapOf(arr)}
}

func (sb *StringColBuilder) Build() Column {
	return sb.BuildStringColumn()
}

var _ Column = &StringColumn{}

type StringColumn struct {
	array *array.String
	nulls *roaring.Bitmap
}

func (sc *StringColumn) Get(row int) string {
	return sc.array.Value(row)
}

func (sc *StringColumn) IsNull(row int) bool {
	return sc.array.IsNull(row)
}

func (sc *StringColumn) NullBitmap() *roaring.Bitmap {
	return sc.nulls
}

func (sc *StringColumn) Len() int {
	return sc.array.Len()
}

func (sc *StringColumn) StoredType() types.StoredType {
	return types.StoredTypeString
}

func NewBytesColBuilder() *BytesColBuilder {
	return &BytesColBuilder{builder: array.NewBinaryBuilder(memory.NewGoAllocator(), arrow.BinaryTypes.Binary)}
}

type BytesColBuilder struct {
	builder *array.BinaryBuilder
}

func (bb *BytesColBuilder) AppendNull() {
	bb.builder.AppendNull()
}

func (bb *BytesColBuilder) Append(val []byte) {
	bb.builder.Append(val)
}

func (bb *BytesColBuilder) BuildBytesColumn() *BytesColumn {
	arr := bb.builder.NewBinaryArray()
	return &BytesColumn{array: arr, nulls: nullBitmapOf(arr)}
}

func (bb *BytesColBuilder) Build() Column {
	return bb.BuildBytesColumn()
}

var _ Column = &BytesColumn{}

type BytesColumn struct {
	array *array.Binary
	nulls *roaring.Bitmap
}

// Get returns a slice of the column's buffer, it must not be modified.
func (bc *BytesColumn) Get(row int) []byte {
	return bc.array.Value(row)
}

func (bc *BytesColumn) IsNull(row int) bool {
	return bc.array.IsNull(row)
}

func (bc *BytesColumn) NullBitmap() *roaring.Bitmap {
	return bc.nulls
}

func (bc *BytesColumn) Len() int {
	return bc.array.Len()
}

func (bc *BytesColumn) StoredType() types.StoredType {
	return types.StoredTypeBytes
}

// NewDictIDColBuilder creates a builder for a dictionary encoded column. Null rows are given the id of the null
// placeholder value, which must therefore be in the dictionary if AppendNull is called.
func NewDictIDColBuilder(dict dictionary.Dictionary) *DictIDColBuilder {
	nullID := int32(-1)
	if placeholder, err := dict.ParseLiteral(types.NullPlaceholderLiteral(dict.StoredType())); err == nil {
		nullID = dict.IndexOf(placeholder)
	}
	return &DictIDColBuilder{dict: dict, nullID: nullID}
}

type DictIDColBuilder struct {
	dict     dictionary.Dictionary
	nullID   int32
	ids      []int32
	valid    []bool
	anyNulls bool
}

func (db *DictIDColBuilder) AppendNull() {
	if db.nullID == -1 {
		panic(fmt.Sprintf("dictionary of type %s does not contain the null placeholder", db.dict.StoredType()))
	}
	db.ids = append(db.ids, db.nullID)
	db.valid = append(db.valid, false)
	db.anyNulls = true
}

func (db *DictIDColBuilder) Append(id int32) {
	if id < 0 || int(id) >= db.dict.Length() {
		panic(fmt.Sprintf("dictionary id %d out of range, dictionary length %d", id, db.dict.Length()))
	}
	db.ids = append(db.ids, id)
	db.valid = append(db.valid, true)
}

func (db *DictIDColBuilder) BuildDictIDColumn() *DictIDColumn {
	builder := array.NewInt32Builder(memory.NewGoAllocator())
	if db.anyNulls {
		builder.AppendValues(db.ids, db.valid)
	} else {
		builder.AppendValues(db.ids, nil)
	}
	arr := builder.NewInt32Array()
	return &DictIDColumn{array: arr, dict: db.dict, nulls: nullBitmapOf(arr)}
}

func (db *DictIDColBuilder) Build() Column {
	return db.BuildDictIDColumn()
}

var _ Column = &DictIDColumn{}

// DictIDColumn holds dictionary ids, its stored type is the stored type of the dictionary values.
type DictIDColumn struct {
	array *array.Int32
	dict  dictionary.Dictionary
	nulls *roaring.Bitmap
}

func (dc *DictIDColumn) Dictionary() dictionary.Dictionary {
	return dc.dict
}

func (dc *DictIDColumn) IDs() []int32 {
	return dc.array.Int32Values()
}

func (dc *DictIDColumn) IsNull(row int) bool {
	return dc.array.IsNull(row)
}

func (dc *DictIDColumn) NullBitmap() *roaring.Bitmap {
	return dc.nulls
}

func (dc *DictIDColumn) Len() int {
	return dc.array.Len()
}

func (dc *DictIDColumn) StoredType() types.StoredType {
	return dc.dict.StoredType()
}

// CreateColBuilders creates raw value builders for the schema. BIG_DECIMAL columns use the given precision and
// scale.
func CreateColBuilders(schema *Schema, decimalPrecision int, decimalScale int) []ColumnBuilder {
	colBuilders := make([]ColumnBuilder, len(schema.dataTypes))
	for colIndex, dt := range schema.dataTypes {
		colBuilders[colIndex] = NewColBuilder(dt.StoredType(), decimalPrecision, decimalScale)
	}
	return colBuilders
}

func NewColBuilder(storedType types.StoredType, decimalPrecision int, decimalScale int) ColumnBuilder {
	switch storedType {
	case types.StoredTypeInt:
		return NewIntColBuilder()
	case types.StoredTypeLong:
		return NewLongColBuilder()
	case types.StoredTypeFloat:
		return NewFloatColBuilder()
	case types.StoredTypeDouble:
		return NewDoubleColBuilder()
	case types.StoredTypeBigDecimal:
		return NewBigDecimalColBuilder(decimalPrecision, decimalScale)
	case types.StoredTypeString:
		return NewStringColBuilder()
	case types.StoredTypeBytes:
		return NewBytesColBuilder()
	default:
		panic(fmt.Sprintf("unknown stored type %s", storedType))
	}
}

package transform

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/shopspring/decimal"
	"github.com/spirit-labs/colcmp/block"
	"github.com/spirit-labs/colcmp/dictionary"
	"github.com/spirit-labs/colcmp/errors"
	"github.com/spirit-labs/colcmp/types"
)

// TransformFunction is a node of a bound expression tree. It is evaluated once per block and produces one value per
// row. Slices returned by the Transform* methods are buffers owned by the function and are only valid until the next
// call on the same instance. A TransformFunction must not be used from more than one goroutine at a time.
type TransformFunction interface {
	Name() string
	ResultMetadata() ResultMetadata
	// Dictionary returns the dictionary backing the result, or nil when the result is not dictionary encoded
	Dictionary() dictionary.Dictionary

	TransformToDictIDsSV(blk *block.Block) ([]int32, error)
	TransformToIntValuesSV(blk *block.Block) ([]int32, error)
	TransformToLongValuesSV(blk *block.Block) ([]int64, error)
	TransformToFloatValuesSV(blk *block.Block) ([]float32, error)
	TransformToDoubleValuesSV(blk *block.Block) ([]float64, error)
	TransformToBigDecimalValuesSV(blk *block.Block) ([]decimal.Decimal, error)
	TransformToStringValuesSV(blk *block.Block) ([]string, error)
	TransformToBytesValuesSV(blk *block.Block) ([][]byte, error)

	// NullBitmap returns the rows of the block for which the result is null, or nil when no row is null
	NullBitmap(blk *block.Block) (*roaring.Bitmap, error)
}

type ResultMetadata struct {
	DataType      types.DataType
	SingleValue   bool
	HasDictionary bool
}

var booleanSVNoDictionaryMetadata = ResultMetadata{
	DataType:    types.DataTypeBoolean,
	SingleValue: true,
}

// ColumnContext is the metadata of a column that is needed to bind an expression against it. Dictionary is nil for
// raw encoded columns.
type ColumnContext struct {
	DataType    types.DataType
	SingleValue bool
	Dictionary  dictionary.Dictionary
}

// baseTransformFunction implements the Transform*ValuesSV methods in terms of a single read of the values in their
// native stored type, converting when another stored type is asked for.
type baseTransformFunction struct {
	buffers
	readNative func(blk *block.Block) (values, error)
}

func (b *baseTransformFunction) Dictionary() dictionary.Dictionary {
	return nil
}

func (b *baseTransformFunction) TransformToDictIDsSV(_ *block.Block) ([]int32, error) {
	return nil, errors.Error("result is not dictionary encoded")
}

func (b *baseTransformFunction) TransformToIntValuesSV(blk *block.Block) ([]int32, error) {
	v, err := b.readNative(blk)
	if err != nil {
		return nil, err
	}
	if v.storedType == types.StoredTypeInt {
		return v.ints, nil
	}
	out := resize(&b.intValues, v.length)
	return out, v.toInts(out)
}

func (b *baseTransformFunction) TransformToLongValuesSV(blk *block.Block) ([]int64, error) {
	v, err := b.readNative(blk)
	if err != nil {
		return nil, err
	}
	if v.storedType == types.StoredTypeLong {
		return v.longs, nil
	}
	out := resize(&b.longValues, v.length)
	return out, v.toLongs(out)
}

func (b *baseTransformFunction) TransformToFloatValuesSV(blk *block.Block) ([]float32, error) {
	v, err := b.readNative(blk)
	if err != nil {
		return nil, err
	}
	if v.storedType == types.StoredTypeFloat {
		return v.floats, nil
	}
	out := resize(&b.floatValues, v.length)
	return out, v.toFloats(out)
}

func (b *baseTransformFunction) TransformToDoubleValuesSV(blk *block.Block) ([]float64, error) {
	v, err := b.readNative(blk)
	if err != nil {
		return nil, err
	}
	if v.storedType == types.StoredTypeDouble {
		return v.doubles, nil
	}
	out := resize(&b.doubleValues, v.length)
	return out, v.toDoubles(out)
}

func (b *baseTransformFunction) TransformToBigDecimalValuesSV(blk *block.Block) ([]decimal.Decimal, error) {
	v, err := b.readNative(blk)
	if err != nil {
		return nil, err
	}
	if v.storedType == types.StoredTypeBigDecimal {
		return v.bigDecimals, nil
	}
	out := resize(&b.bigDecimalValues, v.length)
	return out, v.toBigDecimals(out)
}

func (b *baseTransformFunction) TransformToStringValuesSV(blk *block.Block) ([]string, error) {
	v, err := b.readNative(blk)
	if err != nil {
		return nil, err
	}
	if v.storedType == types.StoredTypeString {
		return v.strings, nil
	}
	out := resize(&b.stringValues, v.length)
	return out, v.toStrings(out)
}

func (b *baseTransformFunction) TransformToBytesValuesSV(blk *block.Block) ([][]byte, error) {
	v, err := b.readNative(blk)
	if err != nil {
		return nil, err
	}
	if v.storedType == types.StoredTypeBytes {
		return v.bytes, nil
	}
	out := resize(&b.bytesValues, v.length)
	return out, v.toBytes(out)
}

// buffers are the reusable per-instance result arrays.
type buffers struct {
	intValues        []int32
	longValues       []int64
	floatValues      []float32
	doubleValues     []float64
	bigDecimalValues []decimal.Decimal
	stringValues     []string
	bytesValues      [][]byte
}

func resize[T any](buf *[]T, length int) []T {
	if cap(*buf) < length {
		*buf = make([]T, length)
	}
	*buf = (*buf)[:length]
	return *buf
}

func fill[T any](out []T, value T) {
	for i := range out {
		out[i] = value
	}
}

// readValues reads the values of tf in the given stored type.
func readValues(tf TransformFunction, storedType types.StoredType, blk *block.Block) (values, error) {
	v := values{storedType: storedType, length: blk.RowCount}
	var err error
	switch storedType {
	case types.StoredTypeInt:
		v.ints, err = tf.TransformToIntValuesSV(blk)
	case types.StoredTypeLong:
		v.longs, err = tf.TransformToLongValuesSV(blk)
	case types.StoredTypeFloat:
		v.floats, err = tf.TransformToFloatValuesSV(blk)
	case types.StoredTypeDouble:
		v.doubles, err = tf.TransformToDoubleValuesSV(blk)
	case types.StoredTypeBigDecimal:
		v.bigDecimals, err = tf.TransformToBigDecimalValuesSV(blk)
	case types.StoredTypeString:
		v.strings, err = tf.TransformToStringValuesSV(blk)
	case types.StoredTypeBytes:
		v.bytes, err = tf.TransformToBytesValuesSV(blk)
	case types.StoredTypeUnknown:
	default:
		return values{}, errors.NewUnsupportedTypeErrorf("cannot read values of stored type %d", int(storedType))
	}
	return v, err
}

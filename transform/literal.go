package transform

import (
	"strconv"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/shopspring/decimal"
	"github.com/spirit-labs/colcmp/block"
	"github.com/spirit-labs/colcmp/errors"
	"github.com/spirit-labs/colcmp/parser"
	"github.com/spirit-labs/colcmp/types"
)

// LiteralTransformFunction is a constant. Its value is repeated for every row of the block.
type LiteralTransformFunction struct {
	baseTransformFunction
	dataType      types.DataType
	stringLiteral string
	isNull        bool

	intValue        int32
	longValue       int64
	doubleValue     float64
	bigDecimalValue decimal.Decimal
	bytesValue      []byte
}

func NewLiteralTransformFunction(desc *parser.LiteralExprDesc) (*LiteralTransformFunction, error) {
	l := &LiteralTransformFunction{stringLiteral: desc.Value}
	l.readNative = l.readConstant
	var err error
	switch desc.Kind {
	case parser.LiteralKindLong:
		l.dataType = types.DataTypeLong
		l.longValue, err = types.ParseInt64(desc.Value)
	case parser.LiteralKindDouble:
		l.dataType = types.DataTypeDouble
		l.doubleValue, err = types.ParseFloat64(desc.Value)
	case parser.LiteralKindBigDecimal:
		l.dataType = types.DataTypeBigDecimal
		l.bigDecimalValue, err = types.ParseBigDecimal(desc.Value)
	case parser.LiteralKindBool:
		l.dataType = types.DataTypeBoolean
		var b bool
		if b, err = strconv.ParseBool(desc.Value); b {
			l.intValue = 1
		}
	case parser.LiteralKindString:
		l.dataType = types.DataTypeString
	case parser.LiteralKindBytes:
		l.dataType = types.DataTypeBytes
		l.bytesValue, err = types.ParseBytesHex(desc.Value)
	case parser.LiteralKindNull:
		l.dataType = types.DataTypeUnknown
		l.isNull = true
		l.stringLiteral = ""
	default:
		return nil, errors.NewArgumentErrorf("unsupported literal kind %d", int(desc.Kind))
	}
	if err != nil {
		return nil, errors.NewInvalidLiteralErrorf("invalid %s literal '%s'", desc.Kind, desc.Value)
	}
	return l, nil
}

func (l *LiteralTransformFunction) Name() string {
	return "literal"
}

func (l *LiteralTransformFunction) ResultMetadata() ResultMetadata {
	return ResultMetadata{DataType: l.dataType, SingleValue: true}
}

// StringLiteral returns the text of the literal. BOOLEAN literals are "true" or "false", BYTES literals are hex.
func (l *LiteralTransformFunction) StringLiteral() string {
	return l.stringLiteral
}

func (l *LiteralTransformFunction) IsNull() bool {
	return l.isNull
}

func (l *LiteralTransformFunction) TransformToStringValuesSV(blk *block.Block) ([]string, error) {
	out := resize(&l.stringValues, blk.RowCount)
	if l.isNull {
		fill(out, types.NullPlaceholderString)
	} else {
		fill(out, l.stringLiteral)
	}
	return out, nil
}

// NullBitmap of a NULL literal contains every row of the block.
func (l *LiteralTransformFunction) NullBitmap(blk *block.Block) (*roaring.Bitmap, error) {
	if !l.isNull {
		return nil, nil
	}
	bm := roaring.New()
	bm.AddRange(0, uint64(blk.RowCount))
	return bm, nil
}

func (l *LiteralTransformFunction) readConstant(blk *block.Block) (values, error) {
	n := blk.RowCount
	v := values{storedType: l.dataType.StoredType(), length: n}
	switch v.storedType {
	case types.StoredTypeInt:
		v.ints = resize(&l.intValues, n)
		fill(v.ints, l.intValue)
	case types.StoredTypeLong:
		v.longs = resize(&l.longValues, n)
		fill(v.longs, l.longValue)
	case types.StoredTypeDouble:
		v.doubles = resize(&l.doubleValues, n)
		fill(v.doubles, l.doubleValue)
	case types.StoredTypeBigDecimal:
		v.bigDecimals = resize(&l.bigDecimalValues, n)
		fill(v.bigDecimals, l.bigDecimalValue)
	case types.StoredTypeString:
		v.strings = resize(&l.stringValues, n)
		fill(v.strings, l.stringLiteral)
	case types.StoredTypeBytes:
		v.bytes = resize(&l.bytesValues, n)
		fill(v.bytes, l.bytesValue)
	}
	return v, nil
}

package transform

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/spirit-labs/colcmp/block"
	"github.com/spirit-labs/colcmp/dictionary"
	"github.com/spirit-labs/colcmp/errors"
	"github.com/spirit-labs/colcmp/types"
)

// IdentifierTransformFunction reads the values of a column from the block.
type IdentifierTransformFunction struct {
	baseTransformFunction
	columnName          string
	columnContext       ColumnContext
	storedType          types.StoredType
	nullHandlingEnabled bool
}

func NewIdentifierTransformFunction(columnName string, columnContext ColumnContext, nullHandlingEnabled bool) *IdentifierTransformFunction {
	i := &IdentifierTransformFunction{
		columnName:          columnName,
		columnContext:       columnContext,
		storedType:          columnContext.DataType.StoredType(),
		nullHandlingEnabled: nullHandlingEnabled,
	}
	i.readNative = i.readColumn
	return i
}

func (i *IdentifierTransformFunction) Name() string {
	return "identifier"
}

func (i *IdentifierTransformFunction) ColumnName() string {
	return i.columnName
}

func (i *IdentifierTransformFunction) ResultMetadata() ResultMetadata {
	return ResultMetadata{
		DataType:      i.columnContext.DataType,
		SingleValue:   i.columnContext.SingleValue,
		HasDictionary: i.columnContext.Dictionary != nil,
	}
}

func (i *IdentifierTransformFunction) Dictionary() dictionary.Dictionary {
	return i.columnContext.Dictionary
}

func (i *IdentifierTransformFunction) TransformToDictIDsSV(blk *block.Block) ([]int32, error) {
	if err := i.checkSingleValue(); err != nil {
		return nil, err
	}
	if i.columnContext.Dictionary == nil {
		return nil, errors.Errorf("column '%s' is not dictionary encoded", i.columnName)
	}
	return blk.ReadDictionaryIDs(i.columnName)
}

func (i *IdentifierTransformFunction) NullBitmap(blk *block.Block) (*roaring.Bitmap, error) {
	if !i.nullHandlingEnabled {
		return nil, nil
	}
	return blk.ReadNullBitmap(i.columnName)
}

func (i *IdentifierTransformFunction) checkSingleValue() error {
	if !i.columnContext.SingleValue {
		return errors.NewUnsupportedTypeErrorf("column '%s' is multi-value, only single-value columns are supported",
			i.columnName)
	}
	return nil
}

func (i *IdentifierTransformFunction) readColumn(blk *block.Block) (values, error) {
	if err := i.checkSingleValue(); err != nil {
		return values{}, err
	}
	n := blk.RowCount
	v := values{storedType: i.storedType, length: n}
	var err error
	switch i.storedType {
	case types.StoredTypeInt:
		v.ints = resize(&i.intValues, n)
		err = blk.ReadIntValues(i.columnName, v.ints)
	case types.StoredTypeLong:
		v.longs = resize(&i.longValues, n)
		err = blk.ReadLongValues(i.columnName, v.longs)
	case types.StoredTypeFloat:
		v.floats = resize(&i.floatValues, n)
		err = blk.ReadFloatValues(i.columnName, v.floats)
	case types.StoredTypeDouble:
		v.doubles = resize(&i.doubleValues, n)
		err = blk.ReadDoubleValues(i.columnName, v.doubles)
	case types.StoredTypeBigDecimal:
		v.bigDecimals = resize(&i.bigDecimalValues, n)
		err = blk.ReadBigDecimalValues(i.columnName, v.bigDecimals)
	case types.StoredTypeString:
		v.strings = resize(&i.stringValues, n)
		err = blk.ReadStringValues(i.columnName, v.strings)
	case types.StoredTypeBytes:
		v.bytes = resize(&i.bytesValues, n)
		err = blk.ReadBytesValues(i.columnName, v.bytes)
	default:
		return values{}, errors.NewUnsupportedTypeErrorf("column '%s' has unsupported stored type %s", i.columnName,
			i.storedType)
	}
	if err != nil {
		return values{}, err
	}
	return v, nil
}

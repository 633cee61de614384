package block

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/shopspring/decimal"
	"github.com/spirit-labs/colcmp/dictionary"
	"github.com/spirit-labs/colcmp/errors"
	"github.com/spirit-labs/colcmp/types"
)

// Block is a batch of rows stored column-wise. Blocks are immutable once built and may be read concurrently.
type Block struct {
	Schema   *Schema
	Columns  []Column
	RowCount int
}

func NewBlockFromBuilders(schema *Schema, builders ...ColumnBuilder) *Block {
	cols := make([]Column, len(builders))
	for i, colBuilder := range builders {
		cols[i] = colBuilder.Build()
	}
	return NewBlock(schema, cols...)
}

func NewBlock(schema *Schema, columns ...Column) *Block {
	if len(columns) != len(schema.columnNames) {
		panic(fmt.Sprintf("schema has %d columns but block has %d", len(schema.columnNames), len(columns)))
	}
	rc := -1
	for i, col := range columns {
		cl := col.Len()
		if rc != -1 && cl != rc {
			panic(fmt.Sprintf("column %s not same length (%d) as others (%d) col_names: %v col_types:%v",
				schema.ColumnNames()[i], cl, rc, schema.ColumnNames(), schema.DataTypes()))
		}
		rc = cl
	}
	if rc == -1 {
		rc = 0
	}
	return &Block{
		Schema:   schema,
		Columns:  columns,
		RowCount: rc,
	}
}

func (b *Block) Column(name string) (Column, error) {
	index := b.Schema.ColumnIndex(name)
	if index == -1 {
		return nil, errors.NewArgumentErrorf("unknown column '%s'", name)
	}
	return b.Columns[index], nil
}

func (b *Block) IsDictionaryEncoded(name string) bool {
	col, err := b.Column(name)
	if err != nil {
		return false
	}
	_, ok := col.(*DictIDColumn)
	return ok
}

// Dictionary returns the dictionary of the named column, or nil if the column is not dictionary encoded.
func (b *Block) Dictionary(name string) dictionary.Dictionary {
	col, err := b.Column(name)
	if err != nil {
		return nil
	}
	if dc, ok := col.(*DictIDColumn); ok {
		return dc.Dictionary()
	}
	return nil
}

// ReadDictionaryIDs returns the ids of a dictionary encoded column. The slice is owned by the column.
func (b *Block) ReadDictionaryIDs(name string) ([]int32, error) {
	col, err := b.Column(name)
	if err != nil {
		return nil, err
	}
	dc, ok := col.(*DictIDColumn)
	if !ok {
		return nil, errors.Errorf("column '%s' is not dictionary encoded", name)
	}
	return dc.IDs(), nil
}

func (b *Block) ReadNullBitmap(name string) (*roaring.Bitmap, error) {
	col, err := b.Column(name)
	if err != nil {
		return nil, err
	}
	return col.NullBitmap(), nil
}

// The Read*Values methods copy the values of a column in its own stored type into out, decoding dictionary ids
// when the column is dictionary encoded. out must have at least RowCount elements.

func (b *Block) ReadIntValues(name string, out []int32) error {
	col, err := b.columnOfType(name, types.StoredTypeInt)
	if err != nil {
		return err
	}
	switch c := col.(type) {
	case *IntColumn:
		copy(out, c.Values())
	case *DictIDColumn:
		c.dict.ReadIntValues(c.IDs(), out)
	}
	return nil
}

func (b *Block) ReadLongValues(name string, out []int64) error {
	col, err := b.columnOfType(name, types.StoredTypeLong)
	if err != nil {
		return err
	}
	switch c := col.(type) {
	case *LongColumn:
		copy(out, c.Values())
	case *DictIDColumn:
		c.dict.ReadLongValues(c.IDs(), out)
	}
	return nil
}

func (b *Block) ReadFloatValues(name string, out []float32) error {
	col, err := b.columnOfType(name, types.StoredTypeFloat)
	if err != nil {
		return err
	}
	switch c := col.(type) {
	case *FloatColumn:
		copy(out, c.Values())
	case *DictIDColumn:
		c.dict.ReadFloatValues(c.IDs(), out)
	}
	return nil
}

func (b *Block) ReadDoubleValues(name string, out []float64) error {
	col, err := b.columnOfType(name, types.StoredTypeDouble)
	if err != nil {
		return err
	}
	switch c := col.(type) {
	case *DoubleColumn:
		copy(out, c.Values())
	case *DictIDColumn:
		c.dict.ReadDoubleValues(c.IDs(), out)
	}
	return nil
}

func (b *Block) ReadBigDecimalValues(name string, out []decimal.Decimal) error {
	col, err := b.columnOfType(name, types.StoredTypeBigDecimal)
	if err != nil {
		return err
	}
	switch c := col.(type) {
	case *BigDecimalColumn:
		for i := 0; i < c.Len(); i++ {
			out[i] = c.Get(i)
		}
	case *DictIDColumn:
		c.dict.ReadBigDecimalValues(c.IDs(), out)
	}
	return nil
}

func (b *Block) ReadStringValues(name string, out []string) error {
	col, err := b.columnOfType(name, types.StoredTypeString)
	if err != nil {
		return err
	}
	switch c := col.(type) {
	case *StringColumn:
		for i := 0; i < c.Len(); i++ {
			out[i] = c.Get(i)
		}
	case *DictIDColumn:
		c.dict.ReadStringValues(c.IDs(), out)
	}
	return nil
}

func (b *Block) ReadBytesValues(name string, out [][]byte) error {
	col, err := b.columnOfType(name, types.StoredTypeBytes)
	if err != nil {
		return err
	}
	switch c := col.(type) {
	case *BytesColumn:
		for i := 0; i < c.Len(); i++ {
			out[i] = c.Get(i)
		}
	case *DictIDColumn:
		c.dict.ReadBytesValues(c.IDs(), out)
	}
	return nil
}

func (b *Block) columnOfType(name string, storedType types.StoredType) (Column, error) {
	col, err := b.Column(name)
	if err != nil {
		return nil, err
	}
	if col.StoredType() != storedType {
		return nil, errors.Errorf("column '%s' has stored type %s, not %s", name, col.StoredType(), storedType)
	}
	return col, nil
}

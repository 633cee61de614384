package segment

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"github.com/spirit-labs/colcmp/block"
	"github.com/spirit-labs/colcmp/conf"
	"github.com/spirit-labs/colcmp/dictionary"
	"github.com/spirit-labs/colcmp/errors"
	log "github.com/spirit-labs/colcmp/logger"
	"github.com/spirit-labs/colcmp/types"
)

type Encoding int

const (
	EncodingRaw Encoding = iota
	EncodingSortedDictionary
	EncodingUnsortedDictionary
)

// ParseEncoding accepts "none" (or the empty string), "sorted" and "unsorted".
func ParseEncoding(s string) (Encoding, error) {
	switch s {
	case "", "none":
		return EncodingRaw, nil
	case "sorted":
		return EncodingSortedDictionary, nil
	case "unsorted":
		return EncodingUnsortedDictionary, nil
	default:
		return 0, errors.NewArgumentErrorf("invalid dictionary encoding '%s', must be one of none, sorted or unsorted", s)
	}
}

func (e Encoding) String() string {
	switch e {
	case EncodingRaw:
		return "none"
	case EncodingSortedDictionary:
		return "sorted"
	case EncodingUnsortedDictionary:
		return "unsorted"
	default:
		panic(fmt.Sprintf("unexpected encoding %d", int(e)))
	}
}

type ColumnDefinition struct {
	Name     string
	DataType types.DataType
	Encoding Encoding
}

// Builder accumulates rows and splits them into blocks of at most MaxBlockRows rows when built.
type Builder struct {
	name             string
	columns          []ColumnDefinition
	schema           *block.Schema
	rows             [][]any
	maxBlockRows     int
	decimalPrecision int
	decimalScale     int
}

func NewBuilder(name string, columns []ColumnDefinition, cfg conf.Config) (*Builder, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	names := make([]string, len(columns))
	dataTypes := make([]types.DataType, len(columns))
	seen := make(map[string]struct{}, len(columns))
	for i, c := range columns {
		if _, exists := seen[c.Name]; exists {
			return nil, errors.NewArgumentErrorf("duplicate column '%s' in segment '%s'", c.Name, name)
		}
		seen[c.Name] = struct{}{}
		if c.DataType.StoredType() == types.StoredTypeUnknown {
			return nil, errors.NewArgumentErrorf("column '%s' cannot be of type %s", c.Name, c.DataType)
		}
		names[i] = c.Name
		dataTypes[i] = c.DataType
	}
	return &Builder{
		name:             name,
		columns:          columns,
		schema:           block.NewSchema(names, dataTypes),
		maxBlockRows:     int(*cfg.MaxBlockRows),
		decimalPrecision: *cfg.DecimalPrecision,
		decimalScale:     *cfg.DecimalScale,
	}, nil
}

// AddRow adds a row with one value per column, nil is a null value. Values are converted to the Go type of the
// column's stored type, see ConvertValue.
func (b *Builder) AddRow(row []any) error {
	if len(row) != len(b.columns) {
		return errors.NewArgumentErrorf("row has %d values but segment '%s' has %d columns", len(row), b.name,
			len(b.columns))
	}
	converted := make([]any, len(row))
	for i, v := range row {
		cv, err := ConvertValue(b.columns[i].DataType, v)
		if err != nil {
			return err
		}
		converted[i] = cv
	}
	b.rows = append(b.rows, converted)
	return nil
}

func (b *Builder) Build() (*Segment, error) {
	dicts := map[string]dictionary.Dictionary{}
	for colIndex, c := range b.columns {
		if c.Encoding == EncodingRaw {
			continue
		}
		dicts[c.Name] = b.buildDictionary(colIndex, c)
	}
	seg := &Segment{Name: b.name, Schema: b.schema, Dictionaries: dicts}
	for start := 0; start < len(b.rows); start += b.maxBlockRows {
		end := start + b.maxBlockRows
		if end > len(b.rows) {
			end = len(b.rows)
		}
		blk, err := b.buildBlock(b.rows[start:end], dicts)
		if err != nil {
			return nil, err
		}
		seg.Blocks = append(seg.Blocks, blk)
	}
	log.Debugf("built segment %s with %d rows in %d blocks, schema %s", b.name, len(b.rows), len(seg.Blocks),
		b.schema)
	return seg, nil
}

// buildDictionary collects the distinct values of the column. The null placeholder is added when the column has
// nulls, null rows are stored with its id.
func (b *Builder) buildDictionary(colIndex int, c ColumnDefinition) dictionary.Dictionary {
	storedType := c.DataType.StoredType()
	builder := dictionary.NewBuilder(storedType)
	for _, row := range b.rows {
		v := row[colIndex]
		if v == nil {
			v = nullPlaceholder(storedType)
		}
		if err := builder.Add(v); err != nil {
			// values were converted to the stored type when added
			panic(err)
		}
	}
	return builder.Build(c.Encoding == EncodingSortedDictionary)
}

func (b *Builder) buildBlock(rows [][]any, dicts map[string]dictionary.Dictionary) (*block.Block, error) {
	builders := make([]block.ColumnBuilder, len(b.columns))
	for colIndex, c := range b.columns {
		if dict, ok := dicts[c.Name]; ok {
			idBuilder := block.NewDictIDColBuilder(dict)
			for _, row := range rows {
				if row[colIndex] == nil {
					idBuilder.AppendNull()
				} else {
					idBuilder.Append(dict.IndexOf(row[colIndex]))
				}
			}
			builders[colIndex] = idBuilder
			continue
		}
		builder := block.NewColBuilder(c.DataType.StoredType(), b.decimalPrecision, b.decimalScale)
		for _, row := range rows {
			if err := appendValue(builder, row[colIndex]); err != nil {
				return nil, errors.NewArgumentErrorf("column '%s': %v", c.Name, err)
			}
		}
		builders[colIndex] = builder
	}
	return block.NewBlockFromBuilders(b.schema, builders...), nil
}

func appendValue(builder block.ColumnBuilder, v any) error {
	if v == nil {
		builder.AppendNull()
		return nil
	}
	switch cb := builder.(type) {
	case *block.IntColBuilder:
		cb.Append(v.(int32))
	case *block.LongColBuilder:
		cb.Append(v.(int64))
	case *block.FloatColBuilder:
		cb.Append(v.(float32))
	case *block.DoubleColBuilder:
		cb.Append(v.(float64))
	case *block.BigDecimalColBuilder:
		return cb.Append(v.(decimal.Decimal))
	case *block.StringColBuilder:
		cb.Append(v.(string))
	case *block.BytesColBuilder:
		cb.Append(v.([]byte))
	default:
		panic(fmt.Sprintf("unexpected column builder %T", builder))
	}
	return nil
}

func nullPlaceholder(storedType types.StoredType) any {
	switch storedType {
	case types.StoredTypeInt:
		return types.NullPlaceholderInt
	case types.StoredTypeLong:
		return types.NullPlaceholderLong
	case types.StoredTypeFloat:
		return types.NullPlaceholderFloat
	case types.StoredTypeDouble:
		return types.NullPlaceholderDouble
	case types.StoredTypeBigDecimal:
		return types.NullPlaceholderBigDecimal
	case types.StoredTypeString:
		return types.NullPlaceholderString
	case types.StoredTypeBytes:
		return types.NullPlaceholderBytes
	default:
		panic(fmt.Sprintf("no null placeholder for %s", storedType))
	}
}

// ConvertValue converts v to the Go type of the stored type of dataType: int32, int64, float32, float64,
// decimal.Decimal, string or []byte. Go integers, floats and text are accepted for the numeric types, booleans for
// BOOLEAN and hex text for BYTES. nil stays nil.
func ConvertValue(dataType types.DataType, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	var res any
	var err error
	switch dataType.StoredType() {
	case types.StoredTypeInt:
		res, err = toInt32(v)
	case types.StoredTypeLong:
		res, err = toInt64(v)
	case types.StoredTypeFloat:
		res, err = toFloat32(v)
	case types.StoredTypeDouble:
		res, err = toFloat64(v)
	case types.StoredTypeBigDecimal:
		res, err = toBigDecimal(v)
	case types.StoredTypeString:
		s, ok := v.(string)
		if !ok {
			return nil, cannotConvert(dataType, v)
		}
		res = s
	case types.StoredTypeBytes:
		switch b := v.(type) {
		case []byte:
			res = b
		case string:
			res, err = types.ParseBytesHex(b)
		default:
			return nil, cannotConvert(dataType, v)
		}
	default:
		return nil, cannotConvert(dataType, v)
	}
	if err != nil || res == nil {
		return nil, cannotConvert(dataType, v)
	}
	return res, nil
}

func cannotConvert(dataType types.DataType, v any) error {
	return errors.NewInvalidLiteralErrorf("cannot convert %v (%T) to %s", v, v, dataType)
}

func toInt32(v any) (any, error) {
	switch x := v.(type) {
	case int32:
		return x, nil
	case int:
		if x < math.MinInt32 || x > math.MaxInt32 {
			return nil, errors.Errorf("%d out of range", x)
		}
		return int32(x), nil
	case int64:
		if x < math.MinInt32 || x > math.MaxInt32 {
			return nil, errors.Errorf("%d out of range", x)
		}
		return int32(x), nil
	case bool:
		if x {
			return int32(1), nil
		}
		return int32(0), nil
	case string:
		return types.ParseInt32(x)
	}
	return nil, nil
}

func toInt64(v any) (any, error) {
	switch x := v.(type) {
	case int64:
		return x, nil
	case int:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case string:
		return types.ParseInt64(x)
	}
	return nil, nil
}

func toFloat32(v any) (any, error) {
	switch x := v.(type) {
	case float32:
		return x, nil
	case float64:
		return float32(x), nil
	case int:
		return float32(x), nil
	case string:
		return types.ParseFloat32(x)
	}
	return nil, nil
}

func toFloat64(v any) (any, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case string:
		return types.ParseFloat64(x)
	}
	return nil, nil
}

func toBigDecimal(v any) (any, error) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, nil
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int64:
		return decimal.NewFromInt(x), nil
	case float64:
		d, ok := types.BigDecimalFromFloat64(x)
		if !ok {
			return nil, errors.Errorf("%v has no decimal value", x)
		}
		return d, nil
	case string:
		return types.ParseBigDecimal(x)
	}
	return nil, nil
}

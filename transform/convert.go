package transform

import (
	"encoding/hex"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spirit-labs/colcmp/errors"
	"github.com/spirit-labs/colcmp/types"
)

// values holds one block of values in a single stored type. Only the slice matching storedType is set. UNKNOWN values
// have no slice and convert to the null placeholder of the target type.
type values struct {
	storedType  types.StoredType
	length      int
	ints        []int32
	longs       []int64
	floats      []float32
	doubles     []float64
	bigDecimals []decimal.Decimal
	strings     []string
	bytes       [][]byte
}

func cannotConvert(from types.StoredType, to types.StoredType) error {
	return errors.NewUnsupportedTypeErrorf("cannot convert %s values to %s", from, to)
}

func (v *values) toInts(out []int32) error {
	switch v.storedType {
	case types.StoredTypeInt:
		copy(out, v.ints)
	case types.StoredTypeLong:
		for i, l := range v.longs {
			out[i] = int32(l)
		}
	case types.StoredTypeFloat:
		for i, f := range v.floats {
			out[i] = int32(saturatingInt64(float64(f), math.MinInt32, math.MaxInt32))
		}
	case types.StoredTypeDouble:
		for i, d := range v.doubles {
			out[i] = int32(saturatingInt64(d, math.MinInt32, math.MaxInt32))
		}
	case types.StoredTypeBigDecimal:
		for i, d := range v.bigDecimals {
			out[i] = int32(d.IntPart())
		}
	case types.StoredTypeString:
		for i, s := range v.strings {
			d, err := parseDecimalValue(s, types.StoredTypeInt)
			if err != nil {
				return err
			}
			out[i] = int32(d.IntPart())
		}
	case types.StoredTypeUnknown:
		fill(out, types.NullPlaceholderInt)
	default:
		return cannotConvert(v.storedType, types.StoredTypeInt)
	}
	return nil
}

func (v *values) toLongs(out []int64) error {
	switch v.storedType {
	case types.StoredTypeInt:
		for i, n := range v.ints {
			out[i] = int64(n)
		}
	case types.StoredTypeLong:
		copy(out, v.longs)
	case types.StoredTypeFloat:
		for i, f := range v.floats {
			out[i] = saturatingInt64(float64(f), math.MinInt64, math.MaxInt64)
		}
	case types.StoredTypeDouble:
		for i, d := range v.doubles {
			out[i] = saturatingInt64(d, math.MinInt64, math.MaxInt64)
		}
	case types.StoredTypeBigDecimal:
		for i, d := range v.bigDecimals {
			out[i] = d.IntPart()
		}
	case types.StoredTypeString:
		for i, s := range v.strings {
			d, err := parseDecimalValue(s, types.StoredTypeLong)
			if err != nil {
				return err
			}
			out[i] = d.IntPart()
		}
	case types.StoredTypeUnknown:
		fill(out, types.NullPlaceholderLong)
	default:
		return cannotConvert(v.storedType, types.StoredTypeLong)
	}
	return nil
}

func (v *values) toFloats(out []float32) error {
	switch v.storedType {
	case types.StoredTypeInt:
		for i, n := range v.ints {
			out[i] = float32(n)
		}
	case types.StoredTypeLong:
		for i, l := range v.longs {
			out[i] = float32(l)
		}
	case types.StoredTypeFloat:
		copy(out, v.floats)
	case types.StoredTypeDouble:
		for i, d := range v.doubles {
			out[i] = float32(d)
		}
	case types.StoredTypeBigDecimal:
		for i, d := range v.bigDecimals {
			out[i] = float32(d.InexactFloat64())
		}
	case types.StoredTypeString:
		for i, s := range v.strings {
			f, err := types.ParseFloat32(s)
			if err != nil {
				return errors.NewInvalidLiteralErrorf("cannot convert '%s' to FLOAT", s)
			}
			out[i] = f
		}
	case types.StoredTypeUnknown:
		fill(out, types.NullPlaceholderFloat)
	default:
		return cannotConvert(v.storedType, types.StoredTypeFloat)
	}
	return nil
}

func (v *values) toDoubles(out []float64) error {
	switch v.storedType {
	case types.StoredTypeInt:
		for i, n := range v.ints {
			out[i] = float64(n)
		}
	case types.StoredTypeLong:
		for i, l := range v.longs {
			out[i] = float64(l)
		}
	case types.StoredTypeFloat:
		for i, f := range v.floats {
			out[i] = float64(f)
		}
	case types.StoredTypeDouble:
		copy(out, v.doubles)
	case types.StoredTypeBigDecimal:
		for i, d := range v.bigDecimals {
			out[i] = d.InexactFloat64()
		}
	case types.StoredTypeString:
		for i, s := range v.strings {
			f, err := types.ParseFloat64(s)
			if err != nil {
				return errors.NewInvalidLiteralErrorf("cannot convert '%s' to DOUBLE", s)
			}
			out[i] = f
		}
	case types.StoredTypeUnknown:
		fill(out, types.NullPlaceholderDouble)
	default:
		return cannotConvert(v.storedType, types.StoredTypeDouble)
	}
	return nil
}

func (v *values) toBigDecimals(out []decimal.Decimal) error {
	switch v.storedType {
	case types.StoredTypeInt:
		for i, n := range v.ints {
			out[i] = decimal.NewFromInt32(n)
		}
	case types.StoredTypeLong:
		for i, l := range v.longs {
			out[i] = decimal.NewFromInt(l)
		}
	case types.StoredTypeFloat:
		for i, f := range v.floats {
			d, ok := types.BigDecimalFromFloat64(float64(f))
			if !ok {
				return errors.NewInvalidLiteralErrorf("cannot convert %s to BIG_DECIMAL", types.FormatFloat32(f))
			}
			out[i] = d
		}
	case types.StoredTypeDouble:
		for i, f := range v.doubles {
			d, ok := types.BigDecimalFromFloat64(f)
			if !ok {
				return errors.NewInvalidLiteralErrorf("cannot convert %s to BIG_DECIMAL", types.FormatFloat64(f))
			}
			out[i] = d
		}
	case types.StoredTypeBigDecimal:
		copy(out, v.bigDecimals)
	case types.StoredTypeString:
		for i, s := range v.strings {
			d, err := parseDecimalValue(s, types.StoredTypeBigDecimal)
			if err != nil {
				return err
			}
			out[i] = d
		}
	case types.StoredTypeUnknown:
		fill(out, types.NullPlaceholderBigDecimal)
	default:
		return cannotConvert(v.storedType, types.StoredTypeBigDecimal)
	}
	return nil
}

func (v *values) toStrings(out []string) error {
	switch v.storedType {
	case types.StoredTypeInt:
		for i, n := range v.ints {
			out[i] = strconv.FormatInt(int64(n), 10)
		}
	case types.StoredTypeLong:
		for i, l := range v.longs {
			out[i] = strconv.FormatInt(l, 10)
		}
	case types.StoredTypeFloat:
		for i, f := range v.floats {
			out[i] = types.FormatFloat32(f)
		}
	case types.StoredTypeDouble:
		for i, d := range v.doubles {
			out[i] = types.FormatFloat64(d)
		}
	case types.StoredTypeBigDecimal:
		for i, d := range v.bigDecimals {
			out[i] = d.String()
		}
	case types.StoredTypeString:
		copy(out, v.strings)
	case types.StoredTypeBytes:
		for i, b := range v.bytes {
			out[i] = hex.EncodeToString(b)
		}
	case types.StoredTypeUnknown:
		fill(out, types.NullPlaceholderString)
	default:
		return cannotConvert(v.storedType, types.StoredTypeString)
	}
	return nil
}

func (v *values) toBytes(out [][]byte) error {
	switch v.storedType {
	case types.StoredTypeString:
		for i, s := range v.strings {
			b, err := types.ParseBytesHex(s)
			if err != nil {
				return errors.NewInvalidLiteralErrorf("cannot convert '%s' to BYTES", s)
			}
			out[i] = b
		}
	case types.StoredTypeBytes:
		copy(out, v.bytes)
	case types.StoredTypeUnknown:
		fill(out, types.NullPlaceholderBytes)
	default:
		return cannotConvert(v.storedType, types.StoredTypeBytes)
	}
	return nil
}

func parseDecimalValue(s string, to types.StoredType) (decimal.Decimal, error) {
	d, err := types.ParseBigDecimal(s)
	if err != nil {
		return decimal.Decimal{}, errors.NewInvalidLiteralErrorf("cannot convert '%s' to %s", s, to)
	}
	return d, nil
}

// saturatingInt64 truncates f towards zero, clamping to [lo, hi]. NaN gives 0.
func saturatingInt64(f float64, lo int64, hi int64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f <= float64(lo):
		return lo
	case f >= float64(hi):
		return hi
	}
	return int64(f)
}

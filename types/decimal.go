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

package types

import (
	"bytes"
	"encoding/hex"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/apache/arrow/go/v11/arrow/decimal128"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	DefaultDecimalPrecision = 38
	DefaultDecimalScale     = 6
)

// maxExactIntegerInDouble is 2^53, the largest magnitude below which every integer is representable as a float64.
const maxExactIntegerInDouble = int64(1) << 53

var (
	NullPlaceholderInt        int32   = 0
	NullPlaceholderLong       int64   = 0
	NullPlaceholderFloat      float32 = 0
	NullPlaceholderDouble     float64 = 0
	NullPlaceholderBigDecimal         = decimal.Zero
	NullPlaceholderString             = ""
	NullPlaceholderBytes              = []byte{}
)

// NullPlaceholderLiteral returns the literal text of the placeholder that stands in for NULL values of the
// stored type.
func NullPlaceholderLiteral(storedType StoredType) string {
	switch storedType {
	case StoredTypeInt:
		return strconv.FormatInt(int64(NullPlaceholderInt), 10)
	case StoredTypeLong:
		return strconv.FormatInt(NullPlaceholderLong, 10)
	case StoredTypeFloat:
		return FormatFloat32(NullPlaceholderFloat)
	case StoredTypeDouble:
		return FormatFloat64(NullPlaceholderDouble)
	case StoredTypeBigDecimal:
		return NullPlaceholderBigDecimal.String()
	case StoredTypeString:
		return NullPlaceholderString
	case StoredTypeBytes:
		return hex.EncodeToString(NullPlaceholderBytes)
	default:
		return ""
	}
}

// ParseBigDecimal parses plain or scientific decimal text. Surrounding whitespace, NaN and infinities are
// rejected.
func ParseBigDecimal(s string) (decimal.Decimal, error) {
	if s == "" || strings.TrimSpace(s) != s {
		return decimal.Decimal{}, errors.Errorf("invalid decimal '%s'", s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, errors.WithStack(err)
	}
	return d, nil
}

// ParseInt32 parses s as an INT value. Decimal text is accepted as long as it is integral and in range, so "3.0"
// parses but "3.5" does not.
func ParseInt32(s string) (int32, error) {
	if v, err := strconv.ParseInt(s, 10, 32); err == nil {
		return int32(v), nil
	}
	d, err := ParseBigDecimal(s)
	if err != nil {
		return 0, err
	}
	if !IsIntegral(d) || d.Cmp(decimal.NewFromInt(math.MaxInt32)) > 0 || d.Cmp(decimal.NewFromInt(math.MinInt32)) < 0 {
		return 0, errors.Errorf("'%s' is not a valid INT value", s)
	}
	return int32(d.IntPart()), nil
}

func ParseInt64(s string) (int64, error) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}
	d, err := ParseBigDecimal(s)
	if err != nil {
		return 0, err
	}
	if !IsIntegral(d) || !d.BigInt().IsInt64() {
		return 0, errors.Errorf("'%s' is not a valid LONG value", s)
	}
	return d.IntPart(), nil
}

func ParseFloat32(s string) (float32, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return float32(f), nil
}

func ParseFloat64(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return f, nil
}

func ParseBytesHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return b, nil
}

func FormatFloat32(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func FormatFloat64(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func IsIntegral(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(0))
}

// ExactlyEqualsFloat reports whether d is exactly the binary value of f, not merely its shortest decimal form.
func ExactlyEqualsFloat(d decimal.Decimal, f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return d.Rat().Cmp(new(big.Rat).SetFloat64(f)) == 0
}

// BigDecimalFromFloat64 converts f using its shortest decimal representation. ok is false for NaN and infinities.
func BigDecimalFromFloat64(f float64) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, false
	}
	return decimal.NewFromFloat(f), true
}

// BigDecimalFromDecimal128 converts an arrow decimal128 with the given scale.
func BigDecimalFromDecimal128(num decimal128.Num, scale int) decimal.Decimal {
	return decimal.NewFromBigInt(num.BigInt(), -int32(scale))
}

// BigDecimalToDecimal128 rescales d to scale. It fails if d has more fractional digits than scale, or if the result
// does not fit in precision.
func BigDecimalToDecimal128(d decimal.Decimal, precision int, scale int) (decimal128.Num, error) {
	rescaled := d.Round(int32(scale))
	if !rescaled.Equal(d) {
		return decimal128.Num{}, errors.Errorf("decimal %s has more than %d fractional digits", d.String(), scale)
	}
	unscaled := rescaled.Shift(int32(scale)).BigInt()
	num := decimal128.FromBigInt(unscaled)
	if !num.FitsInPrecision(int32(precision)) {
		return decimal128.Num{}, errors.Errorf("decimal %s does not fit in precision %d scale %d", d.String(),
			precision, scale)
	}
	return num, nil
}

// CompareFloat64 is a total order: -0 sorts before +0 and NaN sorts after everything, equal only to itself.
func CompareFloat64(a float64, b float64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	}
	aNeg, bNeg := math.Signbit(a), math.Signbit(b)
	if aNeg == bNeg {
		return 0
	}
	if aNeg {
		return -1
	}
	return 1
}

func CompareFloat32(a float32, b float32) int {
	return CompareFloat64(float64(a), float64(b))
}

// CompareLongDouble compares without losing precision: magnitudes above 2^53 are compared exactly as decimals.
func CompareLongDouble(l int64, d float64) int {
	if l >= -maxExactIntegerInDouble && l <= maxExactIntegerInDouble {
		return CompareFloat64(float64(l), d)
	}
	return CompareBigDecimalDouble(decimal.NewFromInt(l), d)
}

func CompareDoubleLong(d float64, l int64) int {
	return -CompareLongDouble(l, d)
}

// CompareBigDecimalDouble compares d against the exact binary value of f. NaN is greater than any decimal.
func CompareBigDecimalDouble(d decimal.Decimal, f float64) int {
	switch {
	case math.IsNaN(f), math.IsInf(f, 1):
		return -1
	case math.IsInf(f, -1):
		return 1
	}
	return d.Rat().Cmp(new(big.Rat).SetFloat64(f))
}

func CompareBytes(a []byte, b []byte) int {
	return bytes.Compare(a, b)
}

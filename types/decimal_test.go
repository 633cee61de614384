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
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParseInt32(t *testing.T) {
	v, err := ParseInt32("3")
	require.NoError(t, err)
	require.Equal(t, int32(3), v)

	v, err = ParseInt32("-3.000")
	require.NoError(t, err)
	require.Equal(t, int32(-3), v)

	_, err = ParseInt32("3.5")
	require.Error(t, err)
	_, err = ParseInt32("2147483648")
	require.Error(t, err)
	_, err = ParseInt32("abc")
	require.Error(t, err)
	_, err = ParseInt32(" 3")
	require.Error(t, err)
}

func TestParseInt64(t *testing.T) {
	v, err := ParseInt64("9007199254740993")
	require.NoError(t, err)
	require.Equal(t, int64(9007199254740993), v)

	v, err = ParseInt64("1e3")
	require.NoError(t, err)
	require.Equal(t, int64(1000), v)

	_, err = ParseInt64("9223372036854775808")
	require.Error(t, err)
}

func TestParseBigDecimal(t *testing.T) {
	d, err := ParseBigDecimal("-12.340")
	require.NoError(t, err)
	require.True(t, d.Equal(decimal.RequireFromString("-12.34")))

	d, err = ParseBigDecimal("1.5e2")
	require.NoError(t, err)
	require.Equal(t, "150", d.String())

	_, err = ParseBigDecimal("")
	require.Error(t, err)
	_, err = ParseBigDecimal("NaN")
	require.Error(t, err)
	_, err = ParseBigDecimal("1.2.3")
	require.Error(t, err)
}

func TestCompareLongDoublePrecision(t *testing.T) {
	twoTo53 := int64(1) << 53
	// a naive float64 cast would make these equal
	require.Equal(t, 1, CompareLongDouble(twoTo53+1, 9007199254740992.0))
	require.Equal(t, -1, CompareDoubleLong(9007199254740992.0, twoTo53+1))
	require.Equal(t, 0, CompareLongDouble(twoTo53, 9007199254740992.0))
	require.Equal(t, -1, CompareLongDouble(3, 3.5))
	require.Equal(t, 1, CompareLongDouble(math.MinInt64, math.Inf(-1)))
	require.Equal(t, -1, CompareLongDouble(math.MaxInt64, math.NaN()))
}

func TestCompareFloat64TotalOrder(t *testing.T) {
	require.Equal(t, 0, CompareFloat64(math.NaN(), math.NaN()))
	require.Equal(t, 1, CompareFloat64(math.NaN(), math.Inf(1)))
	require.Equal(t, -1, CompareFloat64(1, math.NaN()))
	require.Equal(t, -1, CompareFloat64(math.Copysign(0, -1), 0))
	require.Equal(t, 0, CompareFloat64(2.5, 2.5))
	require.Equal(t, 1, CompareFloat32(2.5, 2.25))
}

func TestExactlyEqualsFloat(t *testing.T) {
	require.True(t, ExactlyEqualsFloat(decimal.RequireFromString("0.5"), 0.5))
	require.True(t, ExactlyEqualsFloat(decimal.RequireFromString("16777216"), float64(float32(16777216))))
	require.False(t, ExactlyEqualsFloat(decimal.RequireFromString("0.1"), float64(float32(0.1))))
	require.False(t, ExactlyEqualsFloat(decimal.RequireFromString("16777217"), float64(float32(16777217))))
	require.False(t, ExactlyEqualsFloat(decimal.Zero, math.NaN()))
}

func TestDecimal128RoundTrip(t *testing.T) {
	d := decimal.RequireFromString("-1234.5678")
	num, err := BigDecimalToDecimal128(d, 10, 4)
	require.NoError(t, err)
	require.True(t, d.Equal(BigDecimalFromDecimal128(num, 4)))

	num, err = BigDecimalToDecimal128(decimal.RequireFromString("1.20"), 10, 1)
	require.NoError(t, err)
	require.Equal(t, "1.2", BigDecimalFromDecimal128(num, 1).String())

	// rounding would make the stored value differ from the one given
	_, err = BigDecimalToDecimal128(decimal.RequireFromString("1.25"), 10, 1)
	require.Error(t, err)

	_, err = BigDecimalToDecimal128(decimal.RequireFromString("123456"), 4, 0)
	require.Error(t, err)
}

func TestStoredTypes(t *testing.T) {
	require.Equal(t, StoredTypeInt, DataTypeBoolean.StoredType())
	require.Equal(t, StoredTypeLong, DataTypeTimestamp.StoredType())
	require.Equal(t, StoredTypeString, DataTypeJSON.StoredType())
	require.Equal(t, StoredTypeUnknown, DataTypeUnknown.StoredType())
	require.True(t, StoredTypeBigDecimal.IsNumeric())
	require.False(t, StoredTypeBytes.IsNumeric())

	st, err := ParseStoredType("big_decimal")
	require.NoError(t, err)
	require.Equal(t, StoredTypeBigDecimal, st)
	_, err = ParseStoredType("boolean")
	require.Error(t, err)

	dt, err := ParseDataType("Timestamp")
	require.NoError(t, err)
	require.Equal(t, DataTypeTimestamp, dt)
}

func TestNullPlaceholderLiterals(t *testing.T) {
	require.Equal(t, "0", NullPlaceholderLiteral(StoredTypeInt))
	require.Equal(t, "0", NullPlaceholderLiteral(StoredTypeLong))
	require.Equal(t, "0", NullPlaceholderLiteral(StoredTypeFloat))
	require.Equal(t, "0", NullPlaceholderLiteral(StoredTypeDouble))
	require.Equal(t, "0", NullPlaceholderLiteral(StoredTypeBigDecimal))
	require.Equal(t, "", NullPlaceholderLiteral(StoredTypeString))
	require.Equal(t, "", NullPlaceholderLiteral(StoredTypeBytes))
}

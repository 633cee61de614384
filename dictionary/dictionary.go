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

package dictionary

import (
	"github.com/shopspring/decimal"
	"github.com/spirit-labs/colcmp/types"
)

// Dictionary maps the distinct raw values of a column to dense ids starting at 0. A sorted dictionary assigns
// ids in ascending value order so that a value range corresponds to a contiguous id range.
//
// Values passed to and returned from the untyped methods are of the Go type that represents the dictionary's
// stored type: int32, int64, float32, float64, decimal.Decimal, string or []byte.
//
// Dictionaries are immutable and safe for concurrent use.
type Dictionary interface {
	StoredType() types.StoredType
	IsSorted() bool
	Length() int

	// ParseLiteral parses literal text into a value of the stored type. BYTES literals are hex encoded.
	ParseLiteral(literal string) (any, error)
	// IndexOf returns the id of value, or -1 if the dictionary does not contain it.
	IndexOf(value any) int32
	// IndexOfLiteral is IndexOf for literal text, -1 is also returned when the literal cannot be parsed.
	IndexOfLiteral(literal string) int32
	// InsertionIndexOf has binary search semantics: the id of value when present, otherwise
	// -(insertionPoint)-1. Only valid on sorted dictionaries.
	InsertionIndexOf(value any) int
	// CompareWith compares the value with the given id against value.
	CompareWith(id int32, value any) int
	// CompareValues compares two values of the stored type using the dictionary's ordering.
	CompareValues(a any, b any) int

	Get(id int32) any
	GetInt(id int32) int32
	GetLong(id int32) int64
	GetFloat(id int32) float32
	GetDouble(id int32) float64
	GetBigDecimal(id int32) decimal.Decimal
	GetString(id int32) string
	GetBytes(id int32) []byte

	ReadIntValues(ids []int32, out []int32)
	ReadLongValues(ids []int32, out []int64)
	ReadFloatValues(ids []int32, out []float32)
	ReadDoubleValues(ids []int32, out []float64)
	ReadBigDecimalValues(ids []int32, out []decimal.Decimal)
	ReadStringValues(ids []int32, out []string)
	ReadBytesValues(ids []int32, out [][]byte)
}

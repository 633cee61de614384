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
	"bytes"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spirit-labs/colcmp/errors"
	"github.com/spirit-labs/colcmp/types"
)

// valueOps holds what a dictionary needs to know about the Go type backing a stored type.
type valueOps[T any] struct {
	storedType types.StoredType
	parse      func(string) (T, error)
	compare    func(a T, b T) int
	// key maps a value to a comparable map key, values comparing equal must have equal keys
	key func(T) any
}

var intOps = &valueOps[int32]{
	storedType: types.StoredTypeInt,
	parse:      types.ParseInt32,
	compare:    types.CompareOrdered[int32],
	key:        func(v int32) any { return v },
}

var longOps = &valueOps[int64]{
	storedType: types.StoredTypeLong,
	parse:      types.ParseInt64,
	compare:    types.CompareOrdered[int64],
	key:        func(v int64) any { return v },
}

var floatOps = &valueOps[float32]{
	storedType: types.StoredTypeFloat,
	parse:      types.ParseFloat32,
	compare:    types.CompareFloat32,
	key: func(v float32) any {
		if v != v {
			return "NaN"
		}
		return math.Float32bits(v)
	},
}

var doubleOps = &valueOps[float64]{
	storedType: types.StoredTypeDouble,
	parse:      types.ParseFloat64,
	compare:    types.CompareFloat64,
	key: func(v float64) any {
		if v != v {
			return "NaN"
		}
		return math.Float64bits(v)
	},
}

var bigDecimalOps = &valueOps[decimal.Decimal]{
	storedType: types.StoredTypeBigDecimal,
	parse:      types.ParseBigDecimal,
	compare:    func(a decimal.Decimal, b decimal.Decimal) int { return a.Cmp(b) },
	key:        func(v decimal.Decimal) any { return v.Rat().RatString() },
}

var stringOps = &valueOps[string]{
	storedType: types.StoredTypeString,
	parse:      func(s string) (string, error) { return s, nil },
	compare:    strings.Compare,
	key:        func(v string) any { return v },
}

var bytesOps = &valueOps[[]byte]{
	storedType: types.StoredTypeBytes,
	parse:      types.ParseBytesHex,
	compare:    bytes.Compare,
	key:        func(v []byte) any { return string(v) },
}

func NewIntDictionary(values []int32, sorted bool) Dictionary {
	return newValueDictionary(intOps, values, sorted)
}

func NewLongDictionary(values []int64, sorted bool) Dictionary {
	return newValueDictionary(longOps, values, sorted)
}

func NewFloatDictionary(values []float32, sorted bool) Dictionary {
	return newValueDictionary(floatOps, values, sorted)
}

func NewDoubleDictionary(values []float64, sorted bool) Dictionary {
	return newValueDictionary(doubleOps, values, sorted)
}

func NewBigDecimalDictionary(values []decimal.Decimal, sorted bool) Dictionary {
	return newValueDictionary(bigDecimalOps, values, sorted)
}

func NewStringDictionary(values []string, sorted bool) Dictionary {
	return newValueDictionary(stringOps, values, sorted)
}

func NewBytesDictionary(values [][]byte, sorted bool) Dictionary {
	return newValueDictionary(bytesOps, values, sorted)
}

type valueDictionary[T any] struct {
	ops    *valueOps[T]
	values []T
	sorted bool
	ids    map[any]int32
}

// newValueDictionary panics if values contains duplicates, or if sorted is set and values are not ascending.
func newValueDictionary[T any](ops *valueOps[T], values []T, sorted bool) *valueDictionary[T] {
	ids := make(map[any]int32, len(values))
	for i, v := range values {
		if sorted && i > 0 && ops.compare(values[i-1], v) >= 0 {
			panic(fmt.Sprintf("values of sorted %s dictionary are not strictly ascending at id %d", ops.storedType, i))
		}
		k := ops.key(v)
		if _, exists := ids[k]; exists {
			panic(fmt.Sprintf("duplicate value %v in %s dictionary", v, ops.storedType))
		}
		ids[k] = int32(i)
	}
	return &valueDictionary[T]{
		ops:    ops,
		values: values,
		sorted: sorted,
		ids:    ids,
	}
}

func (d *valueDictionary[T]) StoredType() types.StoredType {
	return d.ops.storedType
}

func (d *valueDictionary[T]) IsSorted() bool {
	return d.sorted
}

func (d *valueDictionary[T]) Length() int {
	return len(d.values)
}

func (d *valueDictionary[T]) ParseLiteral(literal string) (any, error) {
	v, err := d.ops.parse(literal)
	if err != nil {
		return nil, errors.NewInvalidLiteralErrorf("cannot parse '%s' as %s", literal, d.ops.storedType)
	}
	return v, nil
}

func (d *valueDictionary[T]) IndexOf(value any) int32 {
	v, ok := value.(T)
	if !ok {
		return -1
	}
	id, ok := d.ids[d.ops.key(v)]
	if !ok {
		return -1
	}
	return id
}

func (d *valueDictionary[T]) IndexOfLiteral(literal string) int32 {
	v, err := d.ops.parse(literal)
	if err != nil {
		return -1
	}
	return d.IndexOf(v)
}

func (d *valueDictionary[T]) InsertionIndexOf(value any) int {
	if !d.sorted {
		panic("insertion index requested on unsorted dictionary")
	}
	v := value.(T)
	pos := sort.Search(len(d.values), func(i int) bool {
		return d.ops.compare(d.values[i], v) >= 0
	})
	if pos < len(d.values) && d.ops.compare(d.values[pos], v) == 0 {
		return pos
	}
	return -pos - 1
}

func (d *valueDictionary[T]) CompareWith(id int32, value any) int {
	return d.ops.compare(d.values[id], value.(T))
}

func (d *valueDictionary[T]) CompareValues(a any, b any) int {
	return d.ops.compare(a.(T), b.(T))
}

func (d *valueDictionary[T]) Get(id int32) any {
	return d.values[id]
}

func (d *valueDictionary[T]) GetInt(id int32) int32 {
	return any(d.values[id]).(int32)
}

func (d *valueDictionary[T]) GetLong(id int32) int64 {
	return any(d.values[id]).(int64)
}

func (d *valueDictionary[T]) GetFloat(id int32) float32 {
	return any(d.values[id]).(float32)
}

func (d *valueDictionary[T]) GetDouble(id int32) float64 {
	return any(d.values[id]).(float64)
}

func (d *valueDictionary[T]) GetBigDecimal(id int32) decimal.Decimal {
	return any(d.values[id]).(decimal.Decimal)
}

func (d *valueDictionary[T]) GetString(id int32) string {
	return any(d.values[id]).(string)
}

func (d *valueDictionary[T]) GetBytes(id int32) []byte {
	return any(d.values[id]).([]byte)
}

func (d *valueDictionary[T]) ReadIntValues(ids []int32, out []int32) {
	readValues(d, ids, out)
}

func (d *valueDictionary[T]) ReadLongValues(ids []int32, out []int64) {
	readValues(d, ids, out)
}

func (d *valueDictionary[T]) ReadFloatValues(ids []int32, out []float32) {
	readValues(d, ids, out)
}

func (d *valueDictionary[T]) ReadDoubleValues(ids []int32, out []float64) {
	readValues(d, ids, out)
}

func (d *valueDictionary[T]) ReadBigDecimalValues(ids []int32, out []decimal.Decimal) {
	readValues(d, ids, out)
}

func (d *valueDictionary[T]) ReadStringValues(ids []int32, out []string) {
	readValues(d, ids, out)
}

func (d *valueDictionary[T]) ReadBytesValues(ids []int32, out [][]byte) {
	readValues(d, ids, out)
}

func readValues[V any, T any](d *valueDictionary[T], ids []int32, out []V) {
	values, ok := any(d.values).([]V)
	if !ok {
		panic(fmt.Sprintf("cannot read %T values from %s dictionary", out, d.ops.storedType))
	}
	for i, id := range ids {
		out[i] = values[id]
	}
}

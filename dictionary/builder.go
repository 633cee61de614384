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
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/shopspring/decimal"
	"github.com/spirit-labs/colcmp/errors"
	"github.com/spirit-labs/colcmp/types"
)

// Builder collects the distinct values of a column and builds a Dictionary from them.
type Builder struct {
	storedType types.StoredType
	values     valueCollector
}

type valueCollector interface {
	add(value any) error
	len() int
	build(sorted bool) Dictionary
}

func NewBuilder(storedType types.StoredType) *Builder {
	var collector valueCollector
	switch storedType {
	case types.StoredTypeInt:
		collector = newCollector(intOps)
	case types.StoredTypeLong:
		collector = newCollector(longOps)
	case types.StoredTypeFloat:
		collector = newCollector(floatOps)
	case types.StoredTypeDouble:
		collector = newCollector(doubleOps)
	case types.StoredTypeBigDecimal:
		collector = newCollector(bigDecimalOps)
	case types.StoredTypeString:
		collector = newCollector(stringOps)
	case types.StoredTypeBytes:
		collector = newCollector(bytesOps)
	default:
		panic(fmt.Sprintf("cannot build dictionary of type %s", storedType))
	}
	return &Builder{storedType: storedType, values: collector}
}

// Add adds a value, duplicates are ignored. The value must be of the Go type backing the builder's stored type.
func (b *Builder) Add(value any) error {
	return b.values.add(value)
}

// Len is the number of distinct values added so far.
func (b *Builder) Len() int {
	return b.values.len()
}

// Build creates the dictionary. Values of a sorted dictionary get ids in ascending order, otherwise ids are given
// in the order values were first added.
func (b *Builder) Build(sorted bool) Dictionary {
	return b.values.build(sorted)
}

type collector[T any] struct {
	ops    *valueOps[T]
	values []T
	seen   map[any]struct{}
}

func newCollector[T any](ops *valueOps[T]) *collector[T] {
	return &collector[T]{ops: ops, seen: map[any]struct{}{}}
}

func (c *collector[T]) add(value any) error {
	v, ok := value.(T)
	if !ok {
		return errors.Errorf("cannot add value of type %T to %s dictionary", value, c.ops.storedType)
	}
	k := c.ops.key(v)
	if _, exists := c.seen[k]; exists {
		return nil
	}
	c.seen[k] = struct{}{}
	c.values = append(c.values, v)
	return nil
}

func (c *collector[T]) len() int {
	return len(c.values)
}

func (c *collector[T]) build(sorted bool) Dictionary {
	if !sorted {
		values := make([]T, len(c.values))
		copy(values, c.values)
		return newValueDictionary(c.ops, values, false)
	}
	tm := treemap.NewWith(func(a, b interface{}) int {
		return c.ops.compare(a.(T), b.(T))
	})
	for _, v := range c.values {
		tm.Put(v, nil)
	}
	values := make([]T, 0, tm.Size())
	for _, k := range tm.Keys() {
		values = append(values, k.(T))
	}
	return newValueDictionary(c.ops, values, true)
}

// Compile time checks
var (
	_ Dictionary = (*valueDictionary[int32])(nil)
	_ Dictionary = (*valueDictionary[decimal.Decimal])(nil)
)

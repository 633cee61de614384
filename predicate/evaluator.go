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

package predicate

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/shopspring/decimal"
	"github.com/spirit-labs/colcmp/dictionary"
	"github.com/spirit-labs/colcmp/errors"
	"github.com/spirit-labs/colcmp/types"
)

// Evaluator evaluates a predicate against the values of a dictionary encoded column. It is immutable once built and
// can be shared between goroutines.
type Evaluator interface {
	PredicateType() Type
	StoredType() types.StoredType
	IsAlwaysTrue() bool
	IsAlwaysFalse() bool
	// ApplyDictID evaluates the predicate for the value with the given dictionary id
	ApplyDictID(id int32) bool
	ApplyDictIDs(ids []int32, out []int32)

	// The raw value methods evaluate the predicate for a decoded value of the column's stored type

	ApplyInt(value int32) bool
	ApplyLong(value int64) bool
	ApplyFloat(value float32) bool
	ApplyDouble(value float64) bool
	ApplyBigDecimal(value decimal.Decimal) bool
	ApplyString(value string) bool
	ApplyBytes(value []byte) bool
}

type evaluatorImpl interface {
	applyDictID(id int32) bool
	applyValue(value any) bool
}

type baseEvaluator struct {
	impl          evaluatorImpl
	predicateType Type
	dict          dictionary.Dictionary
	alwaysTrue    bool
	alwaysFalse   bool
}

func (b *baseEvaluator) PredicateType() Type {
	return b.predicateType
}

func (b *baseEvaluator) StoredType() types.StoredType {
	return b.dict.StoredType()
}

func (b *baseEvaluator) IsAlwaysTrue() bool {
	return b.alwaysTrue
}

func (b *baseEvaluator) IsAlwaysFalse() bool {
	return b.alwaysFalse
}

func (b *baseEvaluator) ApplyDictID(id int32) bool {
	return b.impl.applyDictID(id)
}

func (b *baseEvaluator) ApplyDictIDs(ids []int32, out []int32) {
	for i, id := range ids {
		if b.impl.applyDictID(id) {
			out[i] = 1
		} else {
			out[i] = 0
		}
	}
}

func (b *baseEvaluator) ApplyInt(value int32) bool {
	return b.impl.applyValue(value)
}

func (b *baseEvaluator) ApplyLong(value int64) bool {
	return b.impl.applyValue(value)
}

func (b *baseEvaluator) ApplyFloat(value float32) bool {
	return b.impl.applyValue(value)
}

func (b *baseEvaluator) ApplyDouble(value float64) bool {
	return b.impl.applyValue(value)
}

func (b *baseEvaluator) ApplyBigDecimal(value decimal.Decimal) bool {
	return b.impl.applyValue(value)
}

func (b *baseEvaluator) ApplyString(value string) bool {
	return b.impl.applyValue(value)
}

func (b *baseEvaluator) ApplyBytes(value []byte) bool {
	return b.impl.applyValue(value)
}

func checkStoredType(dict dictionary.Dictionary, storedType types.StoredType) error {
	if dict.StoredType() != storedType {
		return errors.NewTypeMismatchErrorf("dictionary of type %s cannot evaluate a predicate on %s values",
			dict.StoredType(), storedType)
	}
	return nil
}

func NewEqualsDictionaryEvaluator(p *EqPredicate, dict dictionary.Dictionary, storedType types.StoredType) (Evaluator, error) {
	if err := checkStoredType(dict, storedType); err != nil {
		return nil, err
	}
	value, err := dict.ParseLiteral(p.Value())
	if err != nil {
		return nil, err
	}
	eval := &equalsEvaluator{matchingID: dict.IndexOf(value)}
	eval.baseEvaluator = baseEvaluator{
		impl:          eval,
		predicateType: TypeEq,
		dict:          dict,
		alwaysFalse:   eval.matchingID < 0,
	}
	return eval, nil
}

type equalsEvaluator struct {
	baseEvaluator
	matchingID int32
}

func (e *equalsEvaluator) applyDictID(id int32) bool {
	return e.matchingID >= 0 && id == e.matchingID
}

func (e *equalsEvaluator) applyValue(value any) bool {
	return e.applyDictID(e.dict.IndexOf(value))
}

func NewNotEqualsDictionaryEvaluator(p *NotEqPredicate, dict dictionary.Dictionary, storedType types.StoredType) (Evaluator, error) {
	if err := checkStoredType(dict, storedType); err != nil {
		return nil, err
	}
	value, err := dict.ParseLiteral(p.Value())
	if err != nil {
		return nil, err
	}
	eval := &notEqualsEvaluator{nonMatchingID: dict.IndexOf(value)}
	eval.baseEvaluator = baseEvaluator{
		impl:          eval,
		predicateType: TypeNotEq,
		dict:          dict,
		alwaysTrue:    eval.nonMatchingID < 0,
	}
	return eval, nil
}

type notEqualsEvaluator struct {
	baseEvaluator
	nonMatchingID int32
}

func (n *notEqualsEvaluator) applyDictID(id int32) bool {
	return n.nonMatchingID < 0 || id != n.nonMatchingID
}

func (n *notEqualsEvaluator) applyValue(value any) bool {
	id := n.dict.IndexOf(value)
	if id < 0 {
		// absent from the dictionary so it cannot equal the excluded value
		return true
	}
	return n.applyDictID(id)
}

// NewRangeDictionaryEvaluator creates a range evaluator. On a sorted dictionary the matching values are a contiguous
// interval of ids, on an unsorted one the matching ids are found by scanning the dictionary once.
func NewRangeDictionaryEvaluator(p *RangePredicate, dict dictionary.Dictionary, storedType types.StoredType) (Evaluator, error) {
	if err := checkStoredType(dict, storedType); err != nil {
		return nil, err
	}
	bounds := rangeBounds{
		lowerInclusive: p.LowerInclusive,
		lowerUnbounded: p.LowerUnbounded,
		upperInclusive: p.UpperInclusive,
		upperUnbounded: p.UpperUnbounded,
	}
	var err error
	if !p.LowerUnbounded {
		if bounds.lower, err = dict.ParseLiteral(p.Lower); err != nil {
			return nil, err
		}
	}
	if !p.UpperUnbounded {
		if bounds.upper, err = dict.ParseLiteral(p.Upper); err != nil {
			return nil, err
		}
	}
	if dict.IsSorted() {
		return newSortedRangeEvaluator(bounds, dict), nil
	}
	return newUnsortedRangeEvaluator(bounds, dict), nil
}

type rangeBounds struct {
	lower          any
	lowerInclusive bool
	lowerUnbounded bool
	upper          any
	upperInclusive bool
	upperUnbounded bool
}

func (r *rangeBounds) contains(dict dictionary.Dictionary, value any) bool {
	if !r.lowerUnbounded {
		c := dict.CompareValues(value, r.lower)
		if c < 0 || (c == 0 && !r.lowerInclusive) {
			return false
		}
	}
	if !r.upperUnbounded {
		c := dict.CompareValues(value, r.upper)
		if c > 0 || (c == 0 && !r.upperInclusive) {
			return false
		}
	}
	return true
}

func newSortedRangeEvaluator(bounds rangeBounds, dict dictionary.Dictionary) *sortedRangeEvaluator {
	start, end := int32(0), int32(dict.Length())
	if !bounds.lowerUnbounded {
		ip := dict.InsertionIndexOf(bounds.lower)
		if ip >= 0 {
			start = int32(ip)
			if !bounds.lowerInclusive {
				start++
			}
		} else {
			start = int32(-ip - 1)
		}
	}
	if !bounds.upperUnbounded {
		ip := dict.InsertionIndexOf(bounds.upper)
		if ip >= 0 {
			end = int32(ip)
			if bounds.upperInclusive {
				end++
			}
		} else {
			end = int32(-ip - 1)
		}
	}
	eval := &sortedRangeEvaluator{bounds: bounds, startID: start, endID: end}
	eval.baseEvaluator = baseEvaluator{
		impl:          eval,
		predicateType: TypeRange,
		dict:          dict,
		alwaysFalse:   start >= end,
		alwaysTrue:    start < end && start == 0 && int(end) == dict.Length(),
	}
	return eval
}

type sortedRangeEvaluator struct {
	baseEvaluator
	bounds rangeBounds
	// matching ids are [startID, endID)
	startID int32
	endID   int32
}

func (s *sortedRangeEvaluator) applyDictID(id int32) bool {
	return id >= s.startID && id < s.endID
}

func (s *sortedRangeEvaluator) applyValue(value any) bool {
	return s.bounds.contains(s.dict, value)
}

func newUnsortedRangeEvaluator(bounds rangeBounds, dict dictionary.Dictionary) *unsortedRangeEvaluator {
	matching := roaring.New()
	for id := 0; id < dict.Length(); id++ {
		if bounds.contains(dict, dict.Get(int32(id))) {
			matching.Add(uint32(id))
		}
	}
	card := int(matching.GetCardinality())
	eval := &unsortedRangeEvaluator{bounds: bounds, matchingIDs: matching}
	eval.baseEvaluator = baseEvaluator{
		impl:          eval,
		predicateType: TypeRange,
		dict:          dict,
		alwaysFalse:   card == 0,
		alwaysTrue:    card > 0 && card == dict.Length(),
	}
	return eval
}

type unsortedRangeEvaluator struct {
	baseEvaluator
	bounds      rangeBounds
	matchingIDs *roaring.Bitmap
}

func (u *unsortedRangeEvaluator) applyDictID(id int32) bool {
	return id >= 0 && u.matchingIDs.Contains(uint32(id))
}

func (u *unsortedRangeEvaluator) applyValue(value any) bool {
	return u.bounds.contains(u.dict, value)
}

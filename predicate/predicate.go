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

import "fmt"

type Type int

const (
	TypeEq Type = iota + 1
	TypeNotEq
	TypeRange
)

func (t Type) String() string {
	switch t {
	case TypeEq:
		return "EQ"
	case TypeNotEq:
		return "NOT_EQ"
	case TypeRange:
		return "RANGE"
	default:
		panic("unexpected predicate type")
	}
}

// Predicate describes a filter on a single column with literal operands given as text.
type Predicate interface {
	Type() Type
	Column() string
	String() string
}

type EqPredicate struct {
	column string
	value  string
}

func NewEqPredicate(column string, value string) *EqPredicate {
	return &EqPredicate{column: column, value: value}
}

func (e *EqPredicate) Type() Type {
	return TypeEq
}

func (e *EqPredicate) Column() string {
	return e.column
}

func (e *EqPredicate) Value() string {
	return e.value
}

func (e *EqPredicate) String() string {
	return fmt.Sprintf("%s = '%s'", e.column, e.value)
}

type NotEqPredicate struct {
	column string
	value  string
}

func NewNotEqPredicate(column string, value string) *NotEqPredicate {
	return &NotEqPredicate{column: column, value: value}
}

func (n *NotEqPredicate) Type() Type {
	return TypeNotEq
}

func (n *NotEqPredicate) Column() string {
	return n.column
}

func (n *NotEqPredicate) Value() string {
	return n.value
}

func (n *NotEqPredicate) String() string {
	return fmt.Sprintf("%s != '%s'", n.column, n.value)
}

// Range is an interval over the values of a column. An unbounded side has no bound value.
type Range struct {
	Lower          string
	LowerInclusive bool
	LowerUnbounded bool
	Upper          string
	UpperInclusive bool
	UpperUnbounded bool
}

func GreaterEqualRange(value string) Range {
	return Range{Lower: value, LowerInclusive: true, UpperUnbounded: true}
}

func GreaterRange(value string) Range {
	return Range{Lower: value, UpperUnbounded: true}
}

func LessEqualRange(value string) Range {
	return Range{LowerUnbounded: true, Upper: value, UpperInclusive: true}
}

func LessRange(value string) Range {
	return Range{LowerUnbounded: true, Upper: value}
}

func (r Range) String() string {
	lower, upper := "*", "*"
	open, closing := "(", ")"
	if !r.LowerUnbounded {
		lower = r.Lower
		if r.LowerInclusive {
			open = "["
		}
	}
	if !r.UpperUnbounded {
		upper = r.Upper
		if r.UpperInclusive {
			closing = "]"
		}
	}
	return fmt.Sprintf("%s%s, %s%s", open, lower, upper, closing)
}

type RangePredicate struct {
	column string
	Range
}

func NewRangePredicate(column string, r Range) *RangePredicate {
	return &RangePredicate{column: column, Range: r}
}

func (r *RangePredicate) Type() Type {
	return TypeRange
}

func (r *RangePredicate) Column() string {
	return r.column
}

func (r *RangePredicate) String() string {
	return fmt.Sprintf("%s in %s", r.column, r.Range.String())
}

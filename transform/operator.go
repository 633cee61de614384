package transform

import (
	"fmt"

	"github.com/spirit-labs/colcmp/parser"
)

type Operator int

const (
	OperatorEquals Operator = iota + 1
	OperatorNotEquals
	OperatorGreaterThan
	OperatorGreaterThanOrEqual
	OperatorLessThan
	OperatorLessThanOrEqual
)

var operatorNames = map[Operator]string{
	OperatorEquals:             "equals",
	OperatorNotEquals:          "not_equals",
	OperatorGreaterThan:        "greater_than",
	OperatorGreaterThanOrEqual: "greater_than_or_equal",
	OperatorLessThan:           "less_than",
	OperatorLessThanOrEqual:    "less_than_or_equal",
}

var operatorSymbols = map[Operator]string{
	OperatorEquals:             "=",
	OperatorNotEquals:          "!=",
	OperatorGreaterThan:        ">",
	OperatorGreaterThanOrEqual: ">=",
	OperatorLessThan:           "<",
	OperatorLessThanOrEqual:    "<=",
}

var operatorsByCanonicalName = func() map[string]Operator {
	m := make(map[string]Operator, len(operatorNames))
	for op, name := range operatorNames {
		m[parser.CanonicalizeFunctionName(name)] = op
	}
	return m
}()

// OperatorForFunction returns the operator implementing the named function. The name is matched after
// canonicalization, so "GREATER_THAN" and "greaterThan" both give OperatorGreaterThan.
func OperatorForFunction(functionName string) (Operator, bool) {
	op, ok := operatorsByCanonicalName[parser.CanonicalizeFunctionName(functionName)]
	return op, ok
}

// Name is the function name of the operator, e.g. "greater_than_or_equal".
func (o Operator) Name() string {
	name, ok := operatorNames[o]
	if !ok {
		panic(fmt.Sprintf("unexpected operator %d", int(o)))
	}
	return name
}

func (o Operator) String() string {
	return operatorSymbols[o]
}

// holds converts the result of a three-way comparison into the result of the operator.
func (o Operator) holds(c int) bool {
	switch o {
	case OperatorEquals:
		return c == 0
	case OperatorNotEquals:
		return c != 0
	case OperatorGreaterThan:
		return c > 0
	case OperatorGreaterThanOrEqual:
		return c >= 0
	case OperatorLessThan:
		return c < 0
	case OperatorLessThanOrEqual:
		return c <= 0
	default:
		panic(fmt.Sprintf("unexpected operator %d", int(o)))
	}
}

func (o Operator) result(c int) int32 {
	return boolToInt(o.holds(c))
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

package parser

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/shopspring/decimal"
	"github.com/spirit-labs/colcmp/errors"
	"github.com/spirit-labs/colcmp/types"
)

// ExprDesc is a node of an expression tree: an identifier, a literal or a function call.
type ExprDesc interface {
	ErrorAtPosition(msg string, args ...interface{}) error
	String() string
}

type BaseExprDesc struct {
	tokenInfo tokenInfo
}

// ErrorAtPosition returns a parse error pointing at the token the node was parsed from. Nodes that were not parsed
// get a plain parse error.
func (b *BaseExprDesc) ErrorAtPosition(msg string, args ...interface{}) error {
	msg = fmt.Sprintf(msg, args...)
	if b.tokenInfo.input == "" {
		return errors.NewParseError(msg)
	}
	return errors.NewParseError(MessageWithPosition(msg, b.tokenInfo.token.Pos, b.tokenInfo.input))
}

type tokenInfo struct {
	token lexer.Token
	input string
}

type IdentifierExprDesc struct {
	BaseExprDesc
	IdentifierName string
}

func NewIdentifierExprDesc(name string) *IdentifierExprDesc {
	return &IdentifierExprDesc{IdentifierName: name}
}

func (i *IdentifierExprDesc) String() string {
	return i.IdentifierName
}

type LiteralKind int

const (
	LiteralKindLong LiteralKind = iota + 1
	LiteralKindDouble
	LiteralKindBigDecimal
	LiteralKindBool
	LiteralKindString
	LiteralKindBytes
	LiteralKindNull
)

func (k LiteralKind) String() string {
	switch k {
	case LiteralKindLong:
		return "LONG"
	case LiteralKindDouble:
		return "DOUBLE"
	case LiteralKindBigDecimal:
		return "BIG_DECIMAL"
	case LiteralKindBool:
		return "BOOLEAN"
	case LiteralKindString:
		return "STRING"
	case LiteralKindBytes:
		return "BYTES"
	case LiteralKindNull:
		return "NULL"
	default:
		panic("unexpected literal kind")
	}
}

// LiteralExprDesc is a typed constant. Value holds its text: decimal digits for numbers, "true" or "false" for
// booleans, lower case hex for bytes and the empty string for NULL.
type LiteralExprDesc struct {
	BaseExprDesc
	Kind  LiteralKind
	Value string
}

func newLiteral(kind LiteralKind, value string, info tokenInfo) *LiteralExprDesc {
	return &LiteralExprDesc{BaseExprDesc: BaseExprDesc{tokenInfo: info}, Kind: kind, Value: value}
}

func newIntegerLiteral(text string, info tokenInfo) *LiteralExprDesc {
	text = strings.TrimPrefix(text, "+")
	if _, err := strconv.ParseInt(text, 10, 64); err == nil {
		return newLiteral(LiteralKindLong, text, info)
	}
	// too large for a LONG
	return newLiteral(LiteralKindBigDecimal, text, info)
}

// newDecimalLiteral creates a DOUBLE literal when the closest double has the same value as the text, otherwise the
// literal is kept as a BIG_DECIMAL so that no precision is lost.
func newDecimalLiteral(text string, info tokenInfo) (*LiteralExprDesc, error) {
	text = strings.TrimPrefix(text, "+")
	d, err := types.ParseBigDecimal(text)
	if err != nil {
		return nil, errorAtPosition(fmt.Sprintf("invalid decimal literal '%s'", text), info.token.Pos, info.input)
	}
	f, err := strconv.ParseFloat(text, 64)
	if err == nil {
		if fd, ok := types.BigDecimalFromFloat64(f); ok && fd.Equal(d) {
			return newLiteral(LiteralKindDouble, types.FormatFloat64(f), info), nil
		}
	}
	return newLiteral(LiteralKindBigDecimal, d.String(), info), nil
}

func newBytesLiteral(hexText string, info tokenInfo) (*LiteralExprDesc, error) {
	b, err := hex.DecodeString(hexText)
	if err != nil {
		return nil, errorAtPosition(fmt.Sprintf("invalid bytes literal '%s'", hexText), info.token.Pos, info.input)
	}
	return newLiteral(LiteralKindBytes, hex.EncodeToString(b), info), nil
}

// NewLiteralExprDesc creates a literal from a Go value. nil gives a NULL literal, integers a LONG, floats a DOUBLE and
// byte slices a BYTES literal. Values of any other type become STRING literals of their default format.
func NewLiteralExprDesc(value any) *LiteralExprDesc {
	switch v := value.(type) {
	case nil:
		return &LiteralExprDesc{Kind: LiteralKindNull}
	case int:
		return &LiteralExprDesc{Kind: LiteralKindLong, Value: strconv.FormatInt(int64(v), 10)}
	case int8:
		return &LiteralExprDesc{Kind: LiteralKindLong, Value: strconv.FormatInt(int64(v), 10)}
	case int16:
		return &LiteralExprDesc{Kind: LiteralKindLong, Value: strconv.FormatInt(int64(v), 10)}
	case int32:
		return &LiteralExprDesc{Kind: LiteralKindLong, Value: strconv.FormatInt(int64(v), 10)}
	case int64:
		return &LiteralExprDesc{Kind: LiteralKindLong, Value: strconv.FormatInt(v, 10)}
	case float32:
		return &LiteralExprDesc{Kind: LiteralKindDouble, Value: types.FormatFloat64(float64(v))}
	case float64:
		return &LiteralExprDesc{Kind: LiteralKindDouble, Value: types.FormatFloat64(v)}
	case decimal.Decimal:
		return &LiteralExprDesc{Kind: LiteralKindBigDecimal, Value: v.String()}
	case *big.Int:
		return &LiteralExprDesc{Kind: LiteralKindBigDecimal, Value: v.String()}
	case []byte:
		return &LiteralExprDesc{Kind: LiteralKindBytes, Value: hex.EncodeToString(v)}
	case bool:
		return &LiteralExprDesc{Kind: LiteralKindBool, Value: strconv.FormatBool(v)}
	default:
		return &LiteralExprDesc{Kind: LiteralKindString, Value: fmt.Sprint(v)}
	}
}

func (l *LiteralExprDesc) IsNull() bool {
	return l.Kind == LiteralKindNull
}

func (l *LiteralExprDesc) String() string {
	switch l.Kind {
	case LiteralKindString:
		return "'" + strings.ReplaceAll(l.Value, "'", "''") + "'"
	case LiteralKindBytes:
		return "X'" + l.Value + "'"
	case LiteralKindNull:
		return "null"
	default:
		return l.Value
	}
}

type FunctionExprDesc struct {
	BaseExprDesc
	FunctionName string
	ArgExprs     []ExprDesc
}

func NewFunctionExprDesc(functionName string, args ...ExprDesc) *FunctionExprDesc {
	return &FunctionExprDesc{FunctionName: functionName, ArgExprs: args}
}

func (f *FunctionExprDesc) String() string {
	sb := strings.Builder{}
	sb.WriteString(f.FunctionName)
	sb.WriteRune('(')
	for i, arg := range f.ArgExprs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.String())
	}
	sb.WriteRune(')')
	return sb.String()
}

// CanonicalizeFunctionName removes underscores and lower cases, so "GREATER_THAN" and "greaterThan" are the same
// function.
func CanonicalizeFunctionName(functionName string) string {
	return strings.ToLower(strings.ReplaceAll(functionName, "_", ""))
}

// PrettyPrint renders an expression tree in function call form, e.g. "equals(col, 3)".
func PrettyPrint(expr ExprDesc) string {
	if expr == nil {
		return "null"
	}
	return expr.String()
}

package parser

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/spirit-labs/colcmp/errors"
)

var lex = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "BytesLiteral", Pattern: `[xX]'[^']*'`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_.$]*`},
	{Name: "QuotedIdent", Pattern: `"(?:""|[^"])*"`},
	{Name: "Decimal", Pattern: `[-+]?(?:(?:\d+\.\d*|\.\d+)(?:[eE][-+]?\d+)?|\d+[eE][-+]?\d+)`},
	{Name: "Integer", Pattern: `[-+]?\d+`},
	{Name: "StringLiteral", Pattern: `'(?:''|[^'])*'`},
	{Name: "ComparisonOp", Pattern: `(?:==|!=|<>|<=|>=|=|<|>)`},
	{Name: "ListSeparator", Pattern: `,`},
	{Name: "LParens", Pattern: `\(`},
	{Name: "RParens", Pattern: `\)`},
	{Name: "Whitespace", Pattern: `[ \t\n\r]+`},
})

var BytesLiteralTokenType lexer.TokenType
var IdentTokenType lexer.TokenType
var QuotedIdentTokenType lexer.TokenType
var DecimalTokenType lexer.TokenType
var IntegerTokenType lexer.TokenType
var StringLiteralTokenType lexer.TokenType
var ComparisonOpTokenType lexer.TokenType
var ListSeparatorTokenType lexer.TokenType
var LParensTokenType lexer.TokenType
var RParensTokenType lexer.TokenType
var WhitespaceTokenType lexer.TokenType

func init() {
	BytesLiteralTokenType = lex.Symbols()["BytesLiteral"]
	IdentTokenType = lex.Symbols()["Ident"]
	QuotedIdentTokenType = lex.Symbols()["QuotedIdent"]
	DecimalTokenType = lex.Symbols()["Decimal"]
	IntegerTokenType = lex.Symbols()["Integer"]
	StringLiteralTokenType = lex.Symbols()["StringLiteral"]
	ComparisonOpTokenType = lex.Symbols()["ComparisonOp"]
	ListSeparatorTokenType = lex.Symbols()["ListSeparator"]
	LParensTokenType = lex.Symbols()["LParens"]
	RParensTokenType = lex.Symbols()["RParens"]
	WhitespaceTokenType = lex.Symbols()["Whitespace"]
}

// comparisonFunctionNames maps comparison operator symbols to the function names the operators are compiled to.
var comparisonFunctionNames = map[string]string{
	"=":  "equals",
	"==": "equals",
	"!=": "not_equals",
	"<>": "not_equals",
	">":  "greater_than",
	">=": "greater_than_or_equal",
	"<":  "less_than",
	"<=": "less_than_or_equal",
}

func NewParser() *Parser {
	return &Parser{}
}

// Parser parses filter expressions of the form `operand op operand`, where an operand is an identifier, a literal,
// a function call or a parenthesised expression. Comparisons are compiled to function calls so the result is a tree
// of identifier, literal and function nodes.
type Parser struct {
}

func (p *Parser) ParseExpression(input string) (ExprDesc, error) {
	if strings.TrimSpace(input) == "" {
		return nil, errors.NewParseError("expression is empty")
	}
	tokens, err := Lex(input, true)
	if err != nil {
		return nil, err
	}
	context := NewParseContext(input, tokens)
	expr, err := p.parseComparison(context)
	if err != nil {
		return nil, err
	}
	if token, ok := context.NextToken(); ok {
		return nil, foundUnexpectedTokenError("end of expression", token, input)
	}
	return expr, nil
}

func (p *Parser) parseComparison(context *ParseContext) (ExprDesc, error) {
	left, err := p.parseOperand(context)
	if err != nil {
		return nil, err
	}
	for {
		token, ok := context.PeekToken()
		if !ok || token.Type != ComparisonOpTokenType {
			return left, nil
		}
		context.MoveCursor(1)
		right, err := p.parseOperand(context)
		if err != nil {
			return nil, err
		}
		fe := NewFunctionExprDesc(comparisonFunctionNames[token.Value], left, right)
		fe.tokenInfo = tokenInfo{token: token, input: context.input}
		left = fe
	}
}

func (p *Parser) parseOperand(context *ParseContext) (ExprDesc, error) {
	token, ok := context.NextToken()
	if !ok {
		return nil, endOfInputError()
	}
	info := tokenInfo{token: token, input: context.input}
	switch token.Type {
	case LParensTokenType:
		expr, err := p.parseComparison(context)
		if err != nil {
			return nil, err
		}
		if err := expectToken(context, RParensTokenType, "')'"); err != nil {
			return nil, err
		}
		return expr, nil
	case IdentTokenType:
		switch strings.ToLower(token.Value) {
		case "true", "false":
			return newLiteral(LiteralKindBool, strings.ToLower(token.Value), info), nil
		case "null":
			return newLiteral(LiteralKindNull, "", info), nil
		}
		if next, ok := context.PeekToken(); ok && next.Type == LParensTokenType {
			return p.parseFunction(context, token)
		}
		ie := NewIdentifierExprDesc(token.Value)
		ie.tokenInfo = info
		return ie, nil
	case QuotedIdentTokenType:
		name := strings.ReplaceAll(token.Value[1:len(token.Value)-1], `""`, `"`)
		ie := NewIdentifierExprDesc(name)
		ie.tokenInfo = info
		return ie, nil
	case IntegerTokenType:
		return newIntegerLiteral(token.Value, info), nil
	case DecimalTokenType:
		return newDecimalLiteral(token.Value, info)
	case StringLiteralTokenType:
		value := strings.ReplaceAll(token.Value[1:len(token.Value)-1], "''", "'")
		return newLiteral(LiteralKindString, value, info), nil
	case BytesLiteralTokenType:
		return newBytesLiteral(token.Value[2:len(token.Value)-1], info)
	default:
		return nil, foundUnexpectedTokenError("operand", token, context.input)
	}
}

func (p *Parser) parseFunction(context *ParseContext, nameToken lexer.Token) (ExprDesc, error) {
	// skip the LParens
	context.MoveCursor(1)
	var args []ExprDesc
	if token, ok := context.PeekToken(); ok && token.Type == RParensTokenType {
		context.MoveCursor(1)
	} else {
		for {
			arg, err := p.parseComparison(context)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			token, ok := context.NextToken()
			if !ok {
				return nil, endOfInputError()
			}
			if token.Type == RParensTokenType {
				break
			}
			if token.Type != ListSeparatorTokenType {
				return nil, foundUnexpectedTokenError("',' or ')'", token, context.input)
			}
		}
	}
	fe := NewFunctionExprDesc(nameToken.Value, args...)
	fe.tokenInfo = tokenInfo{token: nameToken, input: context.input}
	return fe, nil
}

func expectToken(context *ParseContext, tokenType lexer.TokenType, expected string) error {
	token, ok := context.NextToken()
	if !ok {
		return endOfInputError()
	}
	if token.Type != tokenType {
		return foundUnexpectedTokenError(expected, token, context.input)
	}
	return nil
}

func Lex(input string, removeWhitespace bool) ([]lexer.Token, error) {
	// We Lex all tokens up-front, expressions are short and this makes it simple to peek ahead
	l, err := lex.Lex("", strings.NewReader(input))
	if err != nil {
		return nil, err
	}
	tokens := make([]lexer.Token, 0, 8)
	for {
		token, err := l.Next()
		if err != nil {
			var le *lexer.Error
			ok := errors.As(err, &le)
			if !ok {
				return nil, err
			}
			if strings.Contains(le.Error(), "invalid input text") {
				return nil, errorAtPosition("invalid expression", le.Pos, input)
			}
			return nil, err
		}
		if token.Type == lexer.EOF {
			break
		}
		if !removeWhitespace || token.Type != WhitespaceTokenType {
			tokens = append(tokens, token)
		}
	}
	return tokens, nil
}

func endOfInputError() error {
	return errors.NewParseError("reached end of expression")
}

func foundUnexpectedTokenError(expectedType string, token lexer.Token, input string) error {
	msg := fmt.Sprintf(`expected %s but found '%s'`, expectedType, token.Value)
	return errorAtPosition(msg, token.Pos, input)
}

func errorAtPosition(msg string, pos lexer.Position, input string) error {
	return errors.NewParseError(MessageWithPosition(msg, pos, input))
}

func MessageWithPosition(msg string, pos lexer.Position, input string) string {
	return fmt.Sprintf("%s (line %d column %d):\n%s", msg, pos.Line, pos.Column, lineWithPosHighlight(input, pos))
}

func lineWithPosHighlight(input string, pos lexer.Position) string {
	if input == "" {
		return ""
	}
	lines := strings.Split(input, "\n")
	line := lines[pos.Line-1]
	line = strings.ReplaceAll(line, "\t", " ")
	line = strings.ReplaceAll(line, "\r", " ")
	sb := strings.Builder{}
	for i := 0; i < pos.Column-1; i++ {
		sb.WriteRune(' ')
	}
	sb.WriteRune('^')
	return fmt.Sprintf("%s\n%s", line, sb.String())
}

type ParseContext struct {
	input  string
	tokens []lexer.Token
	pos    int
}

func NewParseContext(input string, tokens []lexer.Token) *ParseContext {
	return &ParseContext{
		input:  input,
		tokens: tokens,
	}
}

func (pc *ParseContext) HasNext() bool {
	return pc.pos != len(pc.tokens)
}

func (pc *ParseContext) NextToken() (lexer.Token, bool) {
	if pc.pos == len(pc.tokens) {
		return lexer.Token{}, false
	}
	tok := pc.tokens[pc.pos]
	pc.pos++
	return tok, true
}

func (pc *ParseContext) PeekToken() (lexer.Token, bool) {
	if pc.pos == len(pc.tokens) {
		return lexer.Token{}, false
	}
	return pc.tokens[pc.pos], true
}

func (pc *ParseContext) MoveCursor(val int) {
	pc.pos += val
}

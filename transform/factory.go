package transform

import (
	"github.com/spirit-labs/colcmp/conf"
	"github.com/spirit-labs/colcmp/errors"
	"github.com/spirit-labs/colcmp/parser"
)

// Factory binds parsed expressions to the columns of a segment.
type Factory struct {
	cfg conf.Config
}

func NewFactory(cfg conf.Config) *Factory {
	cfg.ApplyDefaults()
	return &Factory{cfg: cfg}
}

// Create builds a bound TransformFunction tree. The tree must only be used for blocks of columns described by
// contexts, and by one goroutine at a time.
func (f *Factory) Create(desc parser.ExprDesc, contexts map[string]ColumnContext) (TransformFunction, error) {
	switch d := desc.(type) {
	case *parser.IdentifierExprDesc:
		ctx, ok := contexts[d.IdentifierName]
		if !ok {
			return nil, errors.NewArgumentErrorf("unknown column '%s'", d.IdentifierName)
		}
		return NewIdentifierTransformFunction(d.IdentifierName, ctx, *f.cfg.NullHandlingEnabled), nil
	case *parser.LiteralExprDesc:
		lit, err := NewLiteralTransformFunction(d)
		if err != nil {
			return nil, err
		}
		return lit, nil
	case *parser.FunctionExprDesc:
		op, ok := OperatorForFunction(d.FunctionName)
		if !ok {
			return nil, errors.NewArgumentErrorf("unsupported function '%s'", d.FunctionName)
		}
		args := make([]TransformFunction, len(d.ArgExprs))
		for i, argDesc := range d.ArgExprs {
			arg, err := f.Create(argDesc, contexts)
			if err != nil {
				return nil, err
			}
			args[i] = arg
		}
		b, err := Bind(op, args, *f.cfg.DictionaryFastPathEnabled)
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, errors.NewInternalError(errors.Errorf("unexpected expression %T", desc))
	}
}

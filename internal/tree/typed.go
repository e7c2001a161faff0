package tree

import (
	"github.com/cwbudde/go-evalx/internal/builtins"
	"github.com/cwbudde/go-evalx/internal/context"
	"github.com/cwbudde/go-evalx/internal/evalerr"
	"github.com/cwbudde/go-evalx/internal/value"
)

// EvalString evaluates t and requires the result to be a *value.String.
func (t *Tree) EvalString(ctx context.Context, reg *builtins.Registry) (string, error) {
	v, err := t.Eval(ctx, reg)
	if err != nil {
		return "", err
	}
	s, ok := v.(*value.String)
	if !ok {
		return "", evalerr.NewExpectedString(v)
	}
	return s.Value, nil
}

// EvalInt evaluates t and requires the result to be a *value.Int.
func (t *Tree) EvalInt(ctx context.Context, reg *builtins.Registry) (int64, error) {
	v, err := t.Eval(ctx, reg)
	if err != nil {
		return 0, err
	}
	i, ok := v.(*value.Int)
	if !ok {
		return 0, evalerr.NewExpectedInt(v)
	}
	return i.Value, nil
}

// EvalFloat evaluates t and requires the result to be a *value.Float.
func (t *Tree) EvalFloat(ctx context.Context, reg *builtins.Registry) (float64, error) {
	v, err := t.Eval(ctx, reg)
	if err != nil {
		return 0, err
	}
	f, ok := v.(*value.Float)
	if !ok {
		return 0, evalerr.NewExpectedFloat(v)
	}
	return f.Value, nil
}

// EvalNumber evaluates t and requires an Int or Float result, coercing Int
// to float64.
func (t *Tree) EvalNumber(ctx context.Context, reg *builtins.Registry) (float64, error) {
	v, err := t.Eval(ctx, reg)
	if err != nil {
		return 0, err
	}
	f, ok := value.AsFloat(v)
	if !ok {
		return 0, evalerr.NewExpectedNumber(v)
	}
	return f, nil
}

// EvalBoolean evaluates t and requires the result to be a *value.Boolean.
func (t *Tree) EvalBoolean(ctx context.Context, reg *builtins.Registry) (bool, error) {
	v, err := t.Eval(ctx, reg)
	if err != nil {
		return false, err
	}
	b, ok := v.(*value.Boolean)
	if !ok {
		return false, evalerr.NewExpectedBoolean(v)
	}
	return b.Value, nil
}

// EvalTuple evaluates t and requires the result to be a *value.Tuple.
func (t *Tree) EvalTuple(ctx context.Context, reg *builtins.Registry) ([]value.Value, error) {
	v, err := t.Eval(ctx, reg)
	if err != nil {
		return nil, err
	}
	tup, ok := v.(*value.Tuple)
	if !ok {
		return nil, evalerr.NewExpectedTuple(v)
	}
	return tup.Values, nil
}

// EvalEmpty evaluates t and requires the result to be Empty.
func (t *Tree) EvalEmpty(ctx context.Context, reg *builtins.Registry) error {
	v, err := t.Eval(ctx, reg)
	if err != nil {
		return err
	}
	if _, ok := v.(value.Empty); !ok {
		return evalerr.NewExpectedEmpty(v)
	}
	return nil
}

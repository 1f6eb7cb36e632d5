package authz

import "context"

// Predicate is an asynchronous boolean authorization check over an
// (actor, object) pair. Implementations may perform I/O through the stores
// they capture; they must represent denial as (false, nil) and reserve errors
// for infrastructure failures.
type Predicate interface {
	Authorize(ctx context.Context, ec *EvalContext, actor Actor, obj Object) (bool, error)
}

// PredicateFunc adapts a function to the Predicate interface.
type PredicateFunc func(ctx context.Context, ec *EvalContext, actor Actor, obj Object) (bool, error)

func (f PredicateFunc) Authorize(ctx context.Context, ec *EvalContext, actor Actor, obj Object) (bool, error) {
	return f(ctx, ec, actor, obj)
}

// All authorizes iff every child authorizes. Children are evaluated left to
// right and evaluation stops at the first false: later children are never
// invoked, which bounds I/O cost and lets policies order cheap checks first.
func All(preds ...Predicate) Predicate {
	return PredicateFunc(func(ctx context.Context, ec *EvalContext, actor Actor, obj Object) (bool, error) {
		for _, p := range preds {
			if err := ctx.Err(); err != nil {
				return false, err
			}
			ok, err := p.Authorize(ctx, ec, actor, obj)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil
	})
}

// Any authorizes iff at least one child authorizes. Children are evaluated
// left to right and evaluation stops at the first true.
func Any(preds ...Predicate) Predicate {
	return PredicateFunc(func(ctx context.Context, ec *EvalContext, actor Actor, obj Object) (bool, error) {
		for _, p := range preds {
			if err := ctx.Err(); err != nil {
				return false, err
			}
			ok, err := p.Authorize(ctx, ec, actor, obj)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	})
}

// Not negates its child. The child is always evaluated.
func Not(p Predicate) Predicate {
	return PredicateFunc(func(ctx context.Context, ec *EvalContext, actor Actor, obj Object) (bool, error) {
		ok, err := p.Authorize(ctx, ec, actor, obj)
		if err != nil {
			return false, err
		}
		return !ok, nil
	})
}

// AllowAny authorizes everyone, useful as an explicit "open" policy entry.
func AllowAny() Predicate {
	return PredicateFunc(func(context.Context, *EvalContext, Actor, Object) (bool, error) {
		return true, nil
	})
}

// DenyAll authorizes no one.
func DenyAll() Predicate {
	return PredicateFunc(func(context.Context, *EvalContext, Actor, Object) (bool, error) {
		return false, nil
	})
}

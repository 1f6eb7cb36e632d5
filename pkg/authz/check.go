package authz

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Check evaluates a policy for one (actor, object) pair with a fresh
// EvalContext. It returns nil when authorized, ErrNotAuthenticated when an
// anonymous actor is denied, ErrForbidden when an authenticated one is, and
// propagates infrastructure errors from the underlying stores unchanged so a
// slow or broken dependency never turns into a silent denial or grant.
//
// Active superusers pass every policy without evaluating it.
func Check(ctx context.Context, policy Predicate, actor Actor, obj Object) error {
	ok, err := Authorized(ctx, policy, actor, obj)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	if actor == nil || actor.IsAnonymous() {
		return ErrNotAuthenticated
	}
	return ErrForbidden
}

// Authorized is the boolean form of Check, used for filtering rather than
// enforcement. Infrastructure errors are still returned as errors.
func Authorized(ctx context.Context, policy Predicate, actor Actor, obj Object) (bool, error) {
	if isAuthenticated(actor) && actor.IsSuperuser() {
		return true, nil
	}
	return policy.Authorize(ctx, NewEvalContext(), actor, obj)
}

// Filter returns the objects the actor passes the policy for, preserving
// input order. Decisions are independent and evaluated concurrently with at
// most limit in flight (unbounded when limit <= 0), each with its own fresh
// EvalContext. The first infrastructure error cancels the remaining
// evaluations and is returned.
func Filter[T Object](ctx context.Context, policy Predicate, actor Actor, objs []T, limit int) ([]T, error) {
	if len(objs) == 0 {
		return nil, nil
	}

	allowed := make([]bool, len(objs))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, obj := range objs {
		i, obj := i, obj
		g.Go(func() error {
			ok, err := Authorized(gctx, policy, actor, obj)
			if err != nil {
				return err
			}
			allowed[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]T, 0, len(objs))
	for i, obj := range objs {
		if allowed[i] {
			result = append(result, obj)
		}
	}
	return result, nil
}

// Checker wraps the package-level entrypoints with optional structured
// logging of denials and infrastructure failures.
type Checker struct {
	log *slog.Logger
}

// CheckerOption configures a Checker.
type CheckerOption func(*Checker)

// WithLogger attaches a logger. Denials are logged at debug level,
// infrastructure failures at error level.
func WithLogger(log *slog.Logger) CheckerOption {
	return func(c *Checker) {
		if log != nil {
			c.log = log
		}
	}
}

// NewChecker creates a Checker.
func NewChecker(opts ...CheckerOption) *Checker {
	c := &Checker{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check behaves like the package-level Check with logging.
func (c *Checker) Check(ctx context.Context, policy Predicate, actor Actor, obj Object) error {
	err := Check(ctx, policy, actor, obj)
	switch {
	case err == nil:
	case errors.Is(err, ErrNotAuthenticated), errors.Is(err, ErrForbidden):
		c.logDebug(ctx, "authorization denied", actor, obj, err)
	default:
		c.logError(ctx, "authorization check failed", actor, obj, err)
	}
	return err
}

// Authorized behaves like the package-level Authorized with logging of
// infrastructure failures.
func (c *Checker) Authorized(ctx context.Context, policy Predicate, actor Actor, obj Object) (bool, error) {
	ok, err := Authorized(ctx, policy, actor, obj)
	if err != nil {
		c.logError(ctx, "authorization check failed", actor, obj, err)
	}
	return ok, err
}

func (c *Checker) logDebug(ctx context.Context, msg string, actor Actor, obj Object, err error) {
	if c.log == nil {
		return
	}
	c.log.DebugContext(ctx, msg, checkAttrs(actor, obj, err)...)
}

func (c *Checker) logError(ctx context.Context, msg string, actor Actor, obj Object, err error) {
	if c.log == nil {
		return
	}
	c.log.ErrorContext(ctx, msg, checkAttrs(actor, obj, err)...)
}

func checkAttrs(actor Actor, obj Object, err error) []any {
	attrs := []any{slog.Any("error", err)}
	if actor != nil {
		attrs = append(attrs, slog.String("actor_id", actor.ID().String()), slog.Bool("anonymous", actor.IsAnonymous()))
	}
	if obj != nil {
		attrs = append(attrs, slog.String("resource_id", accessResource(obj).String()))
	}
	return attrs
}

// Package authz is the authorization policy engine: composable predicates
// over an (actor, object) pair, combinators with short-circuit semantics, and
// the enforcement entrypoint request handlers call before doing anything.
//
// A Predicate answers "may this actor do this to this object". Denial is a
// plain false; infrastructure failures (store unreachable, timeout) are
// returned as errors and never coerced into a decision, so callers can always
// tell "denied" from "broken".
//
// Policies are built once from leaf predicates and combinators:
//
//	deleteMember := authz.All(
//	    authz.Authenticated(),
//	    authz.Any(
//	        authz.All(
//	            authz.HasPermission(roles, permissions.ScopeProject, permissions.DeleteMember),
//	            authz.CanModifyAssociatedRole(roles, permissions.ScopeProject),
//	        ),
//	        authz.RelatedToUser(),
//	    ),
//	)
//
//	if err := authz.Check(ctx, deleteMember, actor, target); err != nil {
//	    // authz.ErrNotAuthenticated, authz.ErrForbidden, or an infra error
//	}
//
// All and Any evaluate children left to right and stop at the first decisive
// answer; predicate order encodes cost, so cheap local checks go before
// I/O-bound ones. Each Check gets a fresh EvalContext that memoizes resolved
// roles for the duration of that one decision and is never shared.
package authz

package permissions

import "slices"

// Validate checks a candidate permission set against the scope's catalog.
//
// It rejects an empty set, any identifier outside the catalog, and any set
// that is not dependency-closed (a permission present without one of its
// prerequisites). The candidate is returned unchanged on success: the
// validator never auto-expands a set, callers must supply the full closure.
func Validate(scope Scope, candidate []Permission) ([]Permission, error) {
	if !scope.Valid() {
		return nil, &ValidationError{Scope: scope, Reason: "unknown scope"}
	}

	if len(candidate) == 0 {
		return nil, &ValidationError{Scope: scope, Reason: "empty permission set"}
	}

	for _, p := range candidate {
		if !Exists(scope, p) {
			return nil, &ValidationError{Scope: scope, Permission: p, Reason: "unknown permission"}
		}
	}

	for _, p := range candidate {
		for _, req := range catalogs[scope][p] {
			if !slices.Contains(candidate, req) {
				return nil, &ValidationError{Scope: scope, Permission: p, Missing: req}
			}
		}
	}

	return candidate, nil
}

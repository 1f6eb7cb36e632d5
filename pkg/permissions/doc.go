// Package permissions defines the static permission catalog and the
// permission-set validator.
//
// Permissions are a fixed, enumerable catalog per scope (project, workspace),
// not user-authored policies. Some permissions require others to be present in
// the same set: a role that can modify a story must also be able to view it,
// and a role that can delete members must also be able to create them. The
// validator rejects any candidate set that is not dependency-closed.
//
// Usage:
//
//	perms, err := permissions.Validate(permissions.ScopeProject, []permissions.Permission{
//	    permissions.ViewStory,
//	    permissions.ModifyStory,
//	})
//	if err != nil {
//	    var verr *permissions.ValidationError
//	    if errors.As(err, &verr) {
//	        // verr.Permission and verr.Missing name the offending identifiers
//	    }
//	}
//
// Validate is pure and synchronous. It runs whenever a role's permission set
// is created or updated, never during authorization evaluation: the engine
// only reads already-validated roles.
package permissions

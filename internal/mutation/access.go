package mutation

import "context"

// CheckAccess fails with ErrInsufficientRights unless the caller may moderate claims.
// The hosting layer calls it once before exposing a workflow; mutations do not re-check.
func CheckAccess(ctx context.Context, authz Authorizer) error {
	if authz == nil || !authz.HasRole(ctx, RoleModerateClaim) {
		return ErrInsufficientRights
	}
	return nil
}

// Package auth answers role checks for the local operator.
package auth

import "context"

// Roles is a fixed set of role ids held by the caller
type Roles struct {
	held map[string]struct{}
}

// NewRoles creates a role set; ids are compared exactly
func NewRoles(ids ...string) *Roles {
	held := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id != "" {
			held[id] = struct{}{}
		}
	}
	return &Roles{held: held}
}

// HasRole reports whether role is in the set
func (r *Roles) HasRole(ctx context.Context, role string) bool {
	if r == nil {
		return false
	}
	_, ok := r.held[role]
	return ok
}

// Package rbac decides which roles may reach a surface.
package rbac

import (
	"errors"
	"fmt"
)

// ErrForbidden is returned by Policy.Check when the role is not allowed.
var ErrForbidden = errors.New("forbidden")

// Policy is a set of roles allowed through.
type Policy struct {
	allowed map[string]bool
}

// HasRole returns a policy that allows only the given roles.
func HasRole(roles ...string) Policy {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return Policy{allowed: allowed}
}

// Permits reports whether role is allowed.
func (p Policy) Permits(role string) bool {
	return p.allowed[role]
}

// Check returns nil when role is allowed and an error wrapping ErrForbidden otherwise.
func (p Policy) Check(role string) error {
	if p.Permits(role) {
		return nil
	}
	return fmt.Errorf("role %q: %w", role, ErrForbidden)
}

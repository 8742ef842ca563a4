package auth

import "github.com/nurpe/dispatch-admin/internal/model"

// Policy is the authorization gate evaluated before every business
// operation. Implementations must fail closed.
type Policy interface {
	Allow(p model.Principal, resource, action string) bool
}

const (
	ActionRead   = "read"
	ActionWrite  = "write"
	ActionDelete = "delete"
)

// RolePolicy grants superusers everything; regular users may read and
// write but not hard-delete records.
type RolePolicy struct{}

func (RolePolicy) Allow(p model.Principal, resource, action string) bool {
	if p.Username == "" {
		return false
	}
	if p.IsSuperuser {
		return true
	}
	return action != ActionDelete
}

package policy

import (
	"chat-gate/domain"
	"chat-gate/errors"
)

// Method is the HTTP-like verb of a request.
type Method int

const (
	MethodRead Method = iota
	MethodCreate
	MethodUpdate
	MethodReplace
	MethodPartialUpdate
	MethodDelete
)

func (m Method) String() string {
	switch m {
	case MethodRead:
		return "GET"
	case MethodCreate:
		return "POST"
	case MethodUpdate, MethodReplace:
		return "PUT"
	case MethodPartialUpdate:
		return "PATCH"
	case MethodDelete:
		return "DELETE"
	default:
		return "UNKNOWN"
	}
}

// IsMutating is true for every method except Read.
func (m Method) IsMutating() bool {
	return m != MethodRead
}

// RequiresElevatedRole is true for mutations of existing resources.
// Creating a resource (posting a message) is open to any participant.
func (m Method) RequiresElevatedRole() bool {
	return m.IsMutating() && m != MethodCreate
}

// RoleGate rejects modify/delete style requests from callers below host.
type RoleGate struct {
	Allowed []domain.Role
}

func NewRoleGate() RoleGate {
	return RoleGate{Allowed: domain.ElevatedRoles}
}

func (g RoleGate) Authorize(user *domain.User, method Method) error {
	if !method.RequiresElevatedRole() {
		return nil
	}
	if user == nil {
		return errors.ErrUnauthenticated
	}
	if !domain.HasRole(user, g.Allowed...) {
		return errors.ForbiddenRole(string(user.Role), method.String())
	}
	return nil
}

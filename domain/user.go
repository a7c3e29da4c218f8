// Package domain contains core concepts of the chat system.
// This file defines User entities and the role rules.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleGuest Role = "guest"
	RoleHost  Role = "host"
	RoleAdmin Role = "admin"
)

// ElevatedRoles may modify or delete existing resources.
var ElevatedRoles = []Role{RoleAdmin, RoleHost}

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleGuest, RoleHost, RoleAdmin:
		return Role(s), nil
	case "":
		return RoleGuest, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

type User struct {
	ID          uuid.UUID
	DisplayName string
	Email       string
	Role        Role
	CreatedAt   time.Time
}

func NewUser(displayName, email string, role Role, at time.Time) User {
	if role == "" {
		role = RoleGuest
	}
	return User{
		ID:          uuid.New(),
		DisplayName: displayName,
		Email:       email,
		Role:        role,
		CreatedAt:   at,
	}
}

// HasRole reports whether the user holds one of the given roles.
// A nil user holds no role.
func HasRole(user *User, roles ...Role) bool {
	if user == nil {
		return false
	}
	return slices.Contains(roles, user.Role)
}

package domain

import (
	"errors"
	"fmt"
)

// Role is the closed set of account roles. Anything else read from
// storage is rejected rather than trusted.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleSecretary Role = "secretary"
)

var ErrUnknownRole = errors.New("unknown role")

// ParseRole validates a stored role string against the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleSecretary:
		return RoleSecretary, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

func (r Role) String() string { return string(r) }

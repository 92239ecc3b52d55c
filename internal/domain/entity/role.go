package entity

import "fmt"

// Role is the closed set of account types.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleCompany   Role = "COMPANY"
	RoleCandidate Role = "CANDIDATE"
)

// ParseRole converts a raw string into a Role, rejecting unknown values.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleAdmin, RoleCompany, RoleCandidate:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

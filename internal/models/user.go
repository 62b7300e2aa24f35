package models

// UserRole represents the closed set of roles the session store recognises.
type UserRole string

const (
	RoleTeacher   UserRole = "teacher"
	RoleClassRep  UserRole = "cr"
	RoleAuthority UserRole = "authority"
)

// Valid reports whether the role belongs to the closed enumeration.
func (r UserRole) Valid() bool {
	switch r {
	case RoleTeacher, RoleClassRep, RoleAuthority:
		return true
	}
	return false
}

// Identity is the authenticated user held by the session store. Qualifier
// carries the role-specific attribute: an employee id for authority users,
// a class label for teachers.
type Identity struct {
	Name      string   `json:"name"`
	Role      UserRole `json:"role"`
	Email     string   `json:"email"`
	Qualifier string   `json:"qualifier,omitempty"`
}

// Credential is one record of the demo credential table. Passwords are
// stored and compared in the clear; this table is a stand-in for a real
// identity provider, not a security boundary.
type Credential struct {
	Email     string
	Password  string
	Name      string
	Role      UserRole
	Qualifier string
}

// LoginRequest holds a role-claimed credential pair.
type LoginRequest struct {
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required"`
	Role     UserRole `json:"role" validate:"required,oneof=teacher cr authority"`
}

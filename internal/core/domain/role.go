package domain

import (
	"errors"
	"regexp"
)

// Role identifies one of the four account kinds on the platform.
type Role string

const (
	RoleStudent           Role = "student"
	RoleInstructor        Role = "instructor"
	RoleCurriculumManager Role = "curriculum_manager"
	RoleAdmin             Role = "admin"
)

var ErrEmailDomainNotAllowed = errors.New("email domain not allowed for role")
var ErrRoleNotPermitted = errors.New("role not permitted on this endpoint")
var ErrUnknownRole = errors.New("unknown role")

// Campus email policy: students register with the gbox host, staff with the
// bare institutional host. The patterns anchor on the full host so that
// ncf.edu.ph never matches a gbox address (or vice versa).
var (
	studentEmailPattern = regexp.MustCompile(`(?i)^[^\s@]+@gbox\.ncf\.edu\.ph$`)
	staffEmailPattern   = regexp.MustCompile(`(?i)^[^\s@]+@ncf\.edu\.ph$`)
)

// ParseRole converts a wire-level role string into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleInstructor, RoleCurriculumManager, RoleAdmin:
		return Role(s), nil
	}
	return "", ErrUnknownRole
}

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleCurriculumManager, RoleAdmin:
		return true
	}
	return false
}

// AllowsEmail reports whether email satisfies the domain policy for r.
// Students require the gbox host; every staff role requires the
// institutional host.
func (r Role) AllowsEmail(email string) bool {
	switch r {
	case RoleStudent:
		return studentEmailPattern.MatchString(email)
	case RoleInstructor, RoleCurriculumManager, RoleAdmin:
		return staffEmailPattern.MatchString(email)
	}
	return false
}

// RoleForEmail derives the role for self-service registration. A gbox
// address registers as a student, a staff address as an instructor; admin
// and curriculum manager accounts are only ever provisioned explicitly
// through the administrative path.
func RoleForEmail(email string) (Role, error) {
	switch {
	case studentEmailPattern.MatchString(email):
		return RoleStudent, nil
	case staffEmailPattern.MatchString(email):
		return RoleInstructor, nil
	}
	return "", ErrEmailDomainNotAllowed
}

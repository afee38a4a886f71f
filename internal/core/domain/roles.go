package domain

// Role represents a user role in the system
type Role string

const (
	RoleEntrepreneur Role = "Entrepreneur"
	RoleInvestor     Role = "Investor"
	RoleMentor       Role = "Mentor"
)

// ParseRole validates a raw role string against the closed role set
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleEntrepreneur, RoleInvestor, RoleMentor:
		return Role(s), true
	}
	return "", false
}

// String returns the role as a plain string
func (r Role) String() string {
	return string(r)
}

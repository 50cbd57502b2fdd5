package user

type Role string

const (
	RoleViewer Role = "viewer"
	RoleAdmin  Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleViewer, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// RoleFor resolves the role granted at login. Roles are not stored per user.
func RoleFor(username string, isAdmin func(string) bool) Role {
	if isAdmin != nil && isAdmin(username) {
		return RoleAdmin
	}
	return RoleViewer
}

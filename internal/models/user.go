package models

type Role string

const (
	RoleNone    Role = ""
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// User is the identity attached to an authenticated session.
type User struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
}

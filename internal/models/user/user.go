package user

import (
	"context"
)

// Role of an account within the service desk.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// RoleFromValue maps the menu's numeric role choice to a Role.
func RoleFromValue(v int) (Role, bool) {
	switch v {
	case 1:
		return RoleAdmin, true
	case 2:
		return RoleUser, true
	default:
		return "", false
	}
}

// Account length limits.
const (
	MaxLoginLength    = 15
	MaxPasswordLength = 15
)

// User is a staff account. Password holds a bcrypt hash, never the
// plaintext value.
type User struct {
	ID       string `json:"id"`
	Login    string `json:"login"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// String renders the account the way user listings show it.
func (u *User) String() string {
	role := "User"
	if u.Role == RoleAdmin {
		role = "Admin"
	}
	return u.Login + " (" + role + ")"
}

// key is an unexported type for keys defined in this package.
// This prevents collisions with keys defined in other packages.
type key int

// userKey is the key for user.User values in Contexts. It is
// unexported; clients use user.NewContext and user.FromContext
// instead of using this key directly.
var userKey key

// NewContext returns a new Context that carries value u.
func NewContext(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// FromContext returns the User value stored in ctx, if any.
func FromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(userKey).(*User)
	return u, ok
}

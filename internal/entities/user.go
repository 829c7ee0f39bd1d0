package entities

// UserRole is the authorization role attached to a user account.
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

// User is a stored account record. Username is the unique key.
//
// Password holds a legacy plaintext credential for hand-seeded records;
// PasswordHash is the bcrypt hash written for every account created through
// registration. Exactly one of the two is expected to be set.
type User struct {
	Username     string   `json:"username"`
	Password     string   `json:"password,omitempty"`
	PasswordHash string   `json:"passwordHash,omitempty"`
	Role         UserRole `json:"role"`
}

// PublicUser is the subset of a user record that is safe to return to
// clients.
type PublicUser struct {
	Username string   `json:"username"`
	Role     UserRole `json:"role"`
}

// Public strips the credential fields from a user record.
func (u User) Public() PublicUser {
	return PublicUser{Username: u.Username, Role: u.Role}
}

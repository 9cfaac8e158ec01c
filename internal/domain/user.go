package domain

// User is an account in the user directory. Only non-sensitive fields are
// serialized when a user appears inside another resource.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	IsStaff      bool   `json:"-"`
}

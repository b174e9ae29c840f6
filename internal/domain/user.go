package domain

// User represents a registered account in the domain model.
// Only populated when per-user ownership is enabled.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
}

// IsValid checks if the user has valid data.
func (u User) IsValid() bool {
	return u.Username != "" && u.PasswordHash != ""
}

// String returns the username for display purposes.
func (u User) String() string {
	return u.Username
}

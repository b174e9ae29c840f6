package auth

// SharedCredential holds the single shared login used in shared auth mode.
// The configured password is hashed once at construction so login checks go
// through the same bcrypt comparison as per-user accounts.
type SharedCredential struct {
	username     string
	passwordHash string
	hasher       *PasswordHasher
}

// NewSharedCredential builds a SharedCredential from the configured
// username and plaintext password.
func NewSharedCredential(username, password string) (*SharedCredential, error) {
	hasher := NewPasswordHasher()
	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	return &SharedCredential{
		username:     username,
		passwordHash: hash,
		hasher:       hasher,
	}, nil
}

// Verify checks a submitted username/password pair against the shared login.
func (c *SharedCredential) Verify(username, password string) bool {
	if c == nil {
		return false
	}
	return username == c.username && c.hasher.Verify(password, c.passwordHash)
}

// Package service declares the ports the use cases depend on: credentials, tokens,
// pickup codes, event publishing and metrics.
package service

// PasswordHasher stores and verifies the secrets of email credentials.
type PasswordHasher interface {
	// Hash returns the salted hash kept in the credential record.
	Hash(password string) (string, error)

	// Check reports whether password matches a stored hash.
	Check(password, hash string) bool

	// ValidatePasswordStrength rejects passwords outside the configured policy.
	ValidatePasswordStrength(password string) error
}

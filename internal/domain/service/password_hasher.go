// Package service defines interfaces for core, stateless domain logic.
package service

// PasswordHasher abstracts the hashing algorithm used to compare the static
// admin credential pair. The admin gate is a UI convenience, not a security
// boundary; hashing just keeps the plaintext password out of config files.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool
}

// Package service defines interfaces for stateless domain services.
package service

// PasswordHasher hashes and verifies plaintext passwords with a salted one-way algorithm.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. A mismatch is (false, nil);
	// an error means the hash itself could not be used.
	Verify(password, hash string) (bool, error)
}

package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
)

// CredentialStore defines the operations the auth flows need from the
// credential store.
type CredentialStore interface {
	Exists(ctx context.Context, username string) (bool, error)
	// Insert must fail with store.ErrAlreadyExists, leaving the store
	// unchanged, when username is already registered.
	Insert(ctx context.Context, username, passwordHash string) error
	Verify(ctx context.Context, username, passwordHash string) (bool, error)
	Snapshot(ctx context.Context) (map[string]string, error)
}

// HashPassword returns the lowercase hex SHA-256 digest of password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

package store

import (
	"context"
	"crypto/subtle"
	"sync"
	"time"

	"github.com/vivek-dahikar/AutoRegisterAgent/types"
)

// CredentialRepository keeps registered credentials in memory for the
// lifetime of the process. It is safe for concurrent use.
type CredentialRepository struct {
	mu    sync.RWMutex
	users map[string]types.Credential
	now   func() time.Time
}

func NewCredentialRepository() *CredentialRepository {
	return &CredentialRepository{
		users: make(map[string]types.Credential),
		now:   time.Now,
	}
}

func (r *CredentialRepository) Exists(ctx context.Context, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[username]
	return ok, nil
}

// Insert adds a credential. The existence check and the write happen under
// the same lock, so two concurrent inserts of one username cannot both win.
func (r *CredentialRepository) Insert(ctx context.Context, username, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[username]; ok {
		return ErrAlreadyExists
	}
	r.users[username] = types.Credential{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    r.now(),
	}
	return nil
}

func (r *CredentialRepository) Verify(ctx context.Context, username, passwordHash string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cred, ok := r.users[username]
	if !ok {
		return false, nil
	}
	return subtle.ConstantTimeCompare([]byte(cred.PasswordHash), []byte(passwordHash)) == 1, nil
}

func (r *CredentialRepository) Get(ctx context.Context, username string) (types.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cred, ok := r.users[username]
	if !ok {
		return types.Credential{}, ErrNotFound
	}
	return cred, nil
}

// Snapshot returns a copy of username -> password hash.
func (r *CredentialRepository) Snapshot(ctx context.Context) (map[string]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]string, len(r.users))
	for name, cred := range r.users {
		out[name] = cred.PasswordHash
	}
	return out, nil
}

func (r *CredentialRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

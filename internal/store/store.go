package store

import (
	"context"
	"fmt"

	"github.com/alkasm1/pixlock/internal/derive"
)

// Store persists the lock's single secret record.
type Store interface {
	// Write persists the secret, overwriting any previous one.
	Write(ctx context.Context, secret derive.Secret) error
	// Read returns the stored secret. The second return is false when
	// no secret is stored; that is not an error.
	Read(ctx context.Context) (derive.Secret, bool, error)
	// Delete removes the stored secret. Deleting when none is stored
	// succeeds silently.
	Delete(ctx context.Context) error
}

// StorageError reports a backend failure. It is distinct from absence:
// a locked keyring or an unreadable vault file must never look like
// "no key set".
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("secret store %s failed: %s", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

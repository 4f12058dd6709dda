package store

import (
	"context"
	"errors"

	"github.com/zalando/go-keyring"

	"github.com/alkasm1/pixlock/internal/derive"
)

const (
	keyringService = "pixlock"
	keyringAccount = "lock-secret"
)

// Keyring stores the secret in the OS keyring: Keychain on macOS,
// Credential Manager on Windows, Secret Service on Linux. This is the
// production backend; confidentiality and at-rest protection are the
// platform's.
type Keyring struct{}

// NewKeyring creates the OS keyring backed store.
func NewKeyring() *Keyring {
	return &Keyring{}
}

func (k *Keyring) Write(ctx context.Context, secret derive.Secret) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := keyring.Set(keyringService, keyringAccount, string(secret)); err != nil {
		return &StorageError{Op: "write", Err: err}
	}
	return nil
}

func (k *Keyring) Read(ctx context.Context) (derive.Secret, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	value, err := keyring.Get(keyringService, keyringAccount)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, &StorageError{Op: "read", Err: err}
	}
	return derive.Secret(value), true, nil
}

func (k *Keyring) Delete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := keyring.Delete(keyringService, keyringAccount)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil // delete is idempotent
	}
	if err != nil {
		return &StorageError{Op: "delete", Err: err}
	}
	return nil
}

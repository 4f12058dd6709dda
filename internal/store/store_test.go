package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/zalando/go-keyring"

	"github.com/alkasm1/pixlock/internal/derive"
)

// testStoreContract runs the single-record contract every backend must
// satisfy: round-trip, overwrite, absence as a non-error, idempotent
// delete.
func testStoreContract(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	// Empty store: absence, not an error
	_, present, err := s.Read(ctx)
	if err != nil {
		t.Fatalf("Read on empty store failed: %v", err)
	}
	if present {
		t.Fatal("Empty store reported a secret present")
	}

	// Delete on empty store is idempotent
	if err := s.Delete(ctx); err != nil {
		t.Fatalf("Delete on empty store failed: %v", err)
	}

	// Round-trip
	first := derive.Secret("vgDxrtrKTfGTpZtA3D+ffb4D2la5e4m59twN2ksFKeo=")
	if err := s.Write(ctx, first); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	got, present, err := s.Read(ctx)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !present {
		t.Fatal("Secret not present after write")
	}
	if !got.Equal(first) {
		t.Errorf("Round-trip mismatch: got %s, want %s", got, first)
	}

	// Overwrite
	second := derive.Secret("KcE1VHPOEXWkktNlJWYR6/il1Z4lA0v4m6PcmZtBzyU=")
	if err := s.Write(ctx, second); err != nil {
		t.Fatalf("Overwrite failed: %v", err)
	}
	got, present, err = s.Read(ctx)
	if err != nil || !present {
		t.Fatalf("Read after overwrite failed: present=%v err=%v", present, err)
	}
	if !got.Equal(second) {
		t.Errorf("Overwrite mismatch: got %s, want %s", got, second)
	}

	// Delete, then absence again
	if err := s.Delete(ctx); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	_, present, err = s.Read(ctx)
	if err != nil {
		t.Fatalf("Read after delete failed: %v", err)
	}
	if present {
		t.Error("Secret still present after delete")
	}

	// Delete again: still idempotent
	if err := s.Delete(ctx); err != nil {
		t.Errorf("Second delete failed: %v", err)
	}
}

func TestMemoryContract(t *testing.T) {
	testStoreContract(t, NewMemory())
}

func TestBoltContract(t *testing.T) {
	b, err := OpenBolt(filepath.Join(t.TempDir(), "test.pixlock"))
	if err != nil {
		t.Fatalf("Failed to open vault: %v", err)
	}
	defer b.Close()

	testStoreContract(t, b)
}

func TestKeyringContract(t *testing.T) {
	keyring.MockInit()
	testStoreContract(t, NewKeyring())
}

func TestBoltPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.pixlock")
	ctx := context.Background()
	secret := derive.Secret("vgDxrtrKTfGTpZtA3D+ffb4D2la5e4m59twN2ksFKeo=")

	b, err := OpenBolt(path)
	if err != nil {
		t.Fatalf("Failed to open vault: %v", err)
	}
	if err := b.Write(ctx, secret); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	firstInfo, err := b.Info()
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	b, err = OpenBolt(path)
	if err != nil {
		t.Fatalf("Failed to reopen vault: %v", err)
	}
	defer b.Close()

	got, present, err := b.Read(ctx)
	if err != nil || !present {
		t.Fatalf("Read after reopen failed: present=%v err=%v", present, err)
	}
	if !got.Equal(secret) {
		t.Errorf("Secret changed across reopen: got %s, want %s", got, secret)
	}

	info, err := b.Info()
	if err != nil {
		t.Fatalf("Info after reopen failed: %v", err)
	}
	if info.InstallID != firstInfo.InstallID {
		t.Errorf("Install id changed across reopen: %s vs %s", info.InstallID, firstInfo.InstallID)
	}
	if info.Version != "1" {
		t.Errorf("Version mismatch: got %s, want 1", info.Version)
	}
	if info.Created.IsZero() || info.Modified.IsZero() {
		t.Error("Vault timestamps not set")
	}
}

func TestKeyringFailureIsNotAbsence(t *testing.T) {
	keyring.MockInitWithError(errors.New("keyring locked"))

	s := NewKeyring()
	_, _, err := s.Read(context.Background())
	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("Expected *StorageError when keyring is unavailable, got %v", err)
	}
	if storageErr.Op != "read" {
		t.Errorf("Op mismatch: got %s, want read", storageErr.Op)
	}

	if err := s.Write(context.Background(), "x"); !errors.As(err, &storageErr) {
		t.Errorf("Expected *StorageError from write, got %v", err)
	}
	if err := s.Delete(context.Background()); !errors.As(err, &storageErr) {
		t.Errorf("Expected *StorageError from delete, got %v", err)
	}
}

func TestStoreCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewMemory()
	if err := s.Write(ctx, "x"); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled from write, got %v", err)
	}
	if _, _, err := s.Read(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled from read, got %v", err)
	}
	if err := s.Delete(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled from delete, got %v", err)
	}
}

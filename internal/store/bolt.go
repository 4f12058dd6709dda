package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/alkasm1/pixlock/internal/derive"
)

// Bucket names
var (
	configBucket = []byte("config") // version, timestamps, install id
	secretBucket = []byte("secret") // the single secret record
)

// Config keys
var (
	configVersion   = []byte("version")
	configCreated   = []byte("created")
	configModified  = []byte("modified")
	configInstallID = []byte("install_id")
)

// secretKey is the fixed identifier of the one stored record.
var secretKey = []byte("lock-secret")

const vaultVersion = "1"

// Bolt stores the secret in a BBolt vault file. It is the fallback for
// hosts without a usable OS keyring; the file is created 0600 and BBolt
// transactions make each write and delete all-or-nothing.
type Bolt struct {
	db *bolt.DB
}

// OpenBolt opens or creates a vault file at path.
func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open vault: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{configBucket, secretBucket} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}

		config := tx.Bucket(configBucket)
		if config.Get(configVersion) != nil {
			return nil // already initialized
		}
		if err := config.Put(configVersion, []byte(vaultVersion)); err != nil {
			return err
		}
		if err := config.Put(configInstallID, []byte(uuid.NewString())); err != nil {
			return err
		}
		now, _ := time.Now().MarshalBinary()
		if err := config.Put(configCreated, now); err != nil {
			return err
		}
		return config.Put(configModified, now)
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize vault: %w", err)
	}

	return &Bolt{db: db}, nil
}

// Close closes the vault file.
func (b *Bolt) Close() error {
	return b.db.Close()
}

func (b *Bolt) Write(ctx context.Context, secret derive.Secret) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := b.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(secretBucket).Put(secretKey, []byte(secret)); err != nil {
			return err
		}
		return touchModified(tx)
	})
	if err != nil {
		return &StorageError{Op: "write", Err: err}
	}
	return nil
}

func (b *Bolt) Read(ctx context.Context) (derive.Secret, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	var secret derive.Secret
	var present bool
	err := b.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(secretBucket).Get(secretKey)
		if data == nil {
			return nil
		}
		// Copy: the slice is only valid during the transaction
		secret = derive.Secret(append([]byte(nil), data...))
		present = true
		return nil
	})
	if err != nil {
		return "", false, &StorageError{Op: "read", Err: err}
	}
	return secret, present, nil
}

func (b *Bolt) Delete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := b.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(secretBucket).Delete(secretKey); err != nil {
			return err
		}
		return touchModified(tx)
	})
	if err != nil {
		return &StorageError{Op: "delete", Err: err}
	}
	return nil
}

func touchModified(tx *bolt.Tx) error {
	now, _ := time.Now().MarshalBinary()
	return tx.Bucket(configBucket).Put(configModified, now)
}

// BoltInfo is the vault's non-sensitive metadata, shown by status
// output. It never includes the secret.
type BoltInfo struct {
	Path      string
	Version   string
	InstallID string
	Created   time.Time
	Modified  time.Time
}

// Info returns the vault metadata.
func (b *Bolt) Info() (BoltInfo, error) {
	info := BoltInfo{Path: b.db.Path()}
	err := b.db.View(func(tx *bolt.Tx) error {
		config := tx.Bucket(configBucket)
		info.Version = string(config.Get(configVersion))
		info.InstallID = string(config.Get(configInstallID))
		if data := config.Get(configCreated); data != nil {
			if err := info.Created.UnmarshalBinary(data); err != nil {
				return err
			}
		}
		if data := config.Get(configModified); data != nil {
			if err := info.Modified.UnmarshalBinary(data); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return BoltInfo{}, &StorageError{Op: "info", Err: err}
	}
	return info, nil
}

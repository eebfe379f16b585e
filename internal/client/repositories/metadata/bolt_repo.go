package metadata

import (
	"context"
	"fmt"
	"time"

	"github.com/boltdb/bolt"
)

var metadataBucket = []byte("metadata")

// BoltRepository keeps metadata in a single BoltDB bucket. It is the
// alternative to SQLite for clients that prefer a plain k/v file.
type BoltRepository struct {
	db *bolt.DB
}

// OpenBoltRepository opens (or creates) the bolt file at path.
func OpenBoltRepository(path string) (*BoltRepository, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(metadataBucket)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create metadata bucket: %w", err)
	}

	return &BoltRepository{db: db}, nil
}

func (r *BoltRepository) Close() error {
	return r.db.Close()
}

func (r *BoltRepository) Get(_ context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.View(func(tx *bolt.Tx) error {
		// bolt values are only valid inside the transaction
		if v := tx.Bucket(metadataBucket).Get([]byte(key)); v != nil {
			value = append([]byte{}, v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return value, nil
}

func (r *BoltRepository) Set(_ context.Context, key string, value []byte) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(metadataBucket).Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

func (r *BoltRepository) Delete(_ context.Context, key string) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(metadataBucket).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete metadata[%s]: %w", key, err)
	}
	return nil
}

var _ Repository = (*BoltRepository)(nil)

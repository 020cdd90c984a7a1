// Package kvstore provides the durable key-value backends behind
// ports.KeyValueStore: an embedded bbolt file (the default), redis for
// shared deployments, and an in-memory map for tests.
package kvstore

import (
	"context"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/ports"
)

var boltBucket = []byte("storefront")

// Bolt is the embedded file-backed store. It is the process-local analog of
// the browser's durable storage: plain string values, no versioning, no
// cross-key transactions exposed.
type Bolt struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) the store file at path.
func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open bolt store: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init bolt bucket: %w", err)
	}
	return &Bolt{db: db}, nil
}

func (b *Bolt) Get(_ context.Context, key string) (string, error) {
	var value []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(boltBucket).Get([]byte(key))
		if v == nil {
			return ports.ErrKeyNotFound
		}
		value = append(value, v...) // copy out of the tx lifetime
		return nil
	})
	if err != nil {
		return "", err
	}
	return string(value), nil
}

func (b *Bolt) Set(_ context.Context, key, value string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Put([]byte(key), []byte(value))
	})
}

func (b *Bolt) Remove(_ context.Context, key string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Delete([]byte(key))
	})
}

func (b *Bolt) Close() error {
	return b.db.Close()
}

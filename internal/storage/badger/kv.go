package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"

	"github.com/amiyamandal-dev/podgrid/internal/storage"
)

const keyPrefix = "kv:"

// KV implements storage.KV on top of BadgerDB
type KV struct {
	db *DB
}

// NewKV creates a BadgerDB-backed key-value store
func NewKV(db *DB) *KV {
	return &KV{db: db}
}

// Get returns a copy of the value stored under key
func (k *KV) Get(ctx context.Context, key string) ([]byte, error) {
	var out []byte
	err := k.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Set stores value under key in a single transaction
func (k *KV) Set(ctx context.Context, key string, value []byte) error {
	return k.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+key), value)
	})
}

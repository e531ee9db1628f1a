package storage

import (
	"fmt"
	"time"

	"go.etcd.io/bbolt"
	"go.uber.org/zap"
)

const snapshotBucket = "snapshots"

// BoltStorage implements the key-value persistence backend on BoltDB.
// Values are opaque snapshot blobs; the store decides what they contain.
type BoltStorage struct {
	db     *bbolt.DB
	logger *zap.Logger
}

// StorageConfig holds configuration for BoltStorage initialization
type StorageConfig struct {
	DBPath string
	Logger *zap.Logger
}

// NewBoltStorage creates a new BoltStorage instance
func NewBoltStorage(config StorageConfig) (*BoltStorage, error) {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := bbolt.Open(config.DBPath, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(snapshotBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	logger.Debug("BoltStorage initialized", zap.String("db_path", config.DBPath))

	return &BoltStorage{db: db, logger: logger}, nil
}

// Get retrieves the value stored under key. The second return value is
// false when no value exists, which is not an error.
func (s *BoltStorage) Get(key string) (string, bool, error) {
	var value string
	var found bool

	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(snapshotBucket))
		v := b.Get([]byte(key))
		if v != nil {
			value = string(v)
			found = true
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}

	return value, found, nil
}

// Set writes value under key, overwriting any prior value.
func (s *BoltStorage) Set(key, value string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(snapshotBucket))
		return b.Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}

	s.logger.Debug("Snapshot written",
		zap.String("key", key),
		zap.Int("size", len(value)))

	return nil
}

// Close closes the database connection
func (s *BoltStorage) Close() error {
	return s.db.Close()
}

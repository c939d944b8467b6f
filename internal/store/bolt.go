package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	bolt "go.etcd.io/bbolt"
)

// BoltOptions configures a BoltStore.
type BoltOptions struct {
	Bucket  string
	Timeout time.Duration
	Logger  zerolog.Logger
}

// BoltStore keeps saves in a single bbolt bucket.
type BoltStore struct {
	db     *bolt.DB
	bucket []byte
	log    zerolog.Logger
}

// OpenBolt opens (creating if needed) the database at path.
func OpenBolt(path string, opts BoltOptions) (*BoltStore, error) {
	if opts.Bucket == "" {
		opts.Bucket = "saves"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = time.Second
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: opts.Timeout})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrUnavailable, path, err)
	}
	s := &BoltStore{db: db, bucket: []byte(opts.Bucket), log: opts.Logger}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(s.bucket)
		return err
	})
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			s.log.Warn().Err(closeErr).Msg("close after bucket creation failure")
		}
		return nil, fmt.Errorf("%w: create bucket %q: %v", ErrUnavailable, opts.Bucket, err)
	}
	s.log.Debug().Str("path", path).Str("bucket", opts.Bucket).Msg("save store opened")
	return s, nil
}

func (s *BoltStore) Get(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(s.bucket).Get([]byte(name)); v != nil {
			// bbolt memory is only valid inside the transaction
			value = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: get %q: %v", ErrUnavailable, name, err)
	}
	if value == nil {
		return "", fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return string(value), nil
}

func (s *BoltStore) Set(ctx context.Context, name, value string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(name), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("%w: set %q: %v", ErrUnavailable, name, err)
	}
	return nil
}

func (s *BoltStore) ListKeys(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	keys := []string{}
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list: %v", ErrUnavailable, err)
	}
	return keys, nil
}

func (s *BoltStore) Remove(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Delete([]byte(name))
	})
	if err != nil {
		return fmt.Errorf("%w: remove %q: %v", ErrUnavailable, name, err)
	}
	return nil
}

// Clear drops and recreates the bucket in one transaction.
func (s *BoltStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(s.bucket); err != nil && err != bolt.ErrBucketNotFound {
			return err
		}
		_, err := tx.CreateBucket(s.bucket)
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: clear: %v", ErrUnavailable, err)
	}
	return nil
}

// Close releases the database file lock.
func (s *BoltStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

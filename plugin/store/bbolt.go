package store

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/twiny/webring"
)

var bucket = []byte("rings")

type (
	// BBoltStore persists ring member lists so a restart serves
	// navigation from the last known memberships before the first
	// refresh completes.
	BBoltStore struct {
		db *bbolt.DB
	}
)

func NewBBoltStore(db *bbolt.DB) (webring.Store, error) {
	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	}); err != nil {
		return nil, err
	}

	return &BBoltStore{
		db: db,
	}, nil
}
func (s *BBoltStore) Put(ctx context.Context, ring string, members []string) error {
	data, err := json.Marshal(members)
	if err != nil {
		return fmt.Errorf("encode members: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(ring), data)
	})
}
func (s *BBoltStore) Get(ctx context.Context, ring string) ([]string, error) {
	var members []string

	if err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucket).Get([]byte(ring))
		if data == nil {
			return webring.ErrRingNotFound
		}
		return json.Unmarshal(data, &members)
	}); err != nil {
		return nil, err
	}

	return members, nil
}
func (s *BBoltStore) Close() error {
	return s.db.Close()
}

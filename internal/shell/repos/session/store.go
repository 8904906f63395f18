// Package session persists suspended-tab captures so the shell can offer to
// restore suspended tabs after a crash. The tab manager writes to it best
// effort; losing the store degrades restore, never correctness.
package session

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	bbolt "go.etcd.io/bbolt"

	"github.com/cometbrowser/comet/internal/shell/domain"
)

var bucketSuspended = []byte("suspended")

// Store persists suspended-tab captures keyed by view identifier.
type Store interface {
	Put(id domain.ViewID, capture domain.SuspendedCapture) error
	Get(id domain.ViewID) (domain.SuspendedCapture, bool, error)
	Delete(id domain.ViewID) error

	// All returns every persisted capture, keyed by view identifier.
	All() (map[domain.ViewID]domain.SuspendedCapture, error)

	Close() error
}

// boltStore implements Store using bbolt.
type boltStore struct {
	db *bbolt.DB
}

// Open opens (or creates) a bolt database at path and ensures the bucket
// exists.
func Open(path string) (Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSuspended)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &boltStore{db: db}, nil
}

func (s *boltStore) Close() error { return s.db.Close() }

func key(id domain.ViewID) []byte {
	var k [8]byte
	binary.BigEndian.PutUint64(k[:], uint64(id))
	return k[:]
}

func (s *boltStore) Put(id domain.ViewID, capture domain.SuspendedCapture) error {
	val, err := json.Marshal(capture)
	if err != nil {
		return fmt.Errorf("encoding capture for %s: %w", id, err)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSuspended).Put(key(id), val)
	})
}

func (s *boltStore) Get(id domain.ViewID) (domain.SuspendedCapture, bool, error) {
	var capture domain.SuspendedCapture
	var found bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketSuspended).Get(key(id))
		if v == nil {
			return nil
		}
		found = true
		return json.Unmarshal(v, &capture)
	})
	return capture, found, err
}

func (s *boltStore) Delete(id domain.ViewID) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSuspended).Delete(key(id))
	})
}

func (s *boltStore) All() (map[domain.ViewID]domain.SuspendedCapture, error) {
	out := make(map[domain.ViewID]domain.SuspendedCapture)
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSuspended).ForEach(func(k, v []byte) error {
			if len(k) != 8 {
				return nil
			}
			var capture domain.SuspendedCapture
			if err := json.Unmarshal(v, &capture); err != nil {
				return err
			}
			out[domain.ViewID(binary.BigEndian.Uint64(k))] = capture
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Package store persists CaseRecords in a local Pebble database keyed by
// CaseRecord.Key, so repeated runs over the same case overwrite one entry.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/cockroachdb/pebble"

	"github.com/gaurav-prasanna/casepipe/core"
)

var (
	// ErrNotFound is returned by Get for an unknown key.
	ErrNotFound = errors.New("record not found")
	// ErrNoKey rejects records with no diary, CNR or case number.
	ErrNoKey = errors.New("record has no key")
)

// keyPrefix namespaces record keys inside the database.
const keyPrefix = "case/"

// PebbleStore implements core.RecordStore using PebbleDB.
type PebbleStore struct {
	db *pebble.DB
}

// Open opens or creates the database in dir.
func Open(dir string) (*PebbleStore, error) {
	db, err := pebble.Open(filepath.Clean(dir), &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("pebble open: %w", err)
	}
	return &PebbleStore{db: db}, nil
}

// Close closes the database.
func (p *PebbleStore) Close() error { return p.db.Close() }

// Put stores rec under its key, replacing any earlier version.
func (p *PebbleStore) Put(rec core.CaseRecord) error {
	key := rec.Key()
	if key == "" {
		return ErrNoKey
	}
	val, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding record %s: %w", key, err)
	}
	if err := p.db.Set([]byte(keyPrefix+key), val, pebble.Sync); err != nil {
		return fmt.Errorf("storing record %s: %w", key, err)
	}
	return nil
}

// Get returns the record stored under key.
func (p *PebbleStore) Get(key string) (core.CaseRecord, error) {
	val, closer, err := p.db.Get([]byte(keyPrefix + key))
	if errors.Is(err, pebble.ErrNotFound) {
		return core.CaseRecord{}, fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	if err != nil {
		return core.CaseRecord{}, fmt.Errorf("reading record %s: %w", key, err)
	}
	defer closer.Close()
	return decode(val)
}

// Range calls fn for every stored record in key order, stopping at the
// first error.
func (p *PebbleStore) Range(fn func(key string, rec core.CaseRecord) error) error {
	it, err := p.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(keyPrefix),
		UpperBound: prefixEnd([]byte(keyPrefix)),
	})
	if err != nil {
		return fmt.Errorf("opening iterator: %w", err)
	}
	defer it.Close()

	for it.First(); it.Valid(); it.Next() {
		key := string(it.Key()[len(keyPrefix):])
		rec, err := decode(it.Value())
		if err != nil {
			return fmt.Errorf("record %s: %w", key, err)
		}
		if err := fn(key, rec); err != nil {
			return err
		}
	}
	return it.Error()
}

func decode(val []byte) (core.CaseRecord, error) {
	var rec core.CaseRecord
	if err := json.Unmarshal(val, &rec); err != nil {
		return core.CaseRecord{}, fmt.Errorf("decoding record: %w", err)
	}
	return rec, nil
}

// prefixEnd returns the smallest key greater than every key with prefix.
func prefixEnd(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}

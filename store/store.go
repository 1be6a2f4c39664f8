package store

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/imscore/sh-profile/subscriber"
)

// provisioningFile is the on-disk YAML shape.
type provisioningFile struct {
	Subscribers []subscriber.Record `yaml:"subscribers"`
}

// Store is a read-mostly map of private identity to validated record.
type Store struct {
	mu   sync.RWMutex
	subs map[string]*subscriber.Record
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{subs: map[string]*subscriber.Record{}}
}

// NewStoreFromFile loads and validates a provisioning file. A single invalid
// record fails the whole load; partially provisioned stores are worse than
// no store.
func NewStoreFromFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return NewStoreFromReader(f)
}

// NewStoreFromReader loads provisioning YAML from any source.
func NewStoreFromReader(r io.Reader) (*Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var pf provisioningFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("unable to parse provisioning file: %w", err)
	}
	s := NewStore()
	for i := range pf.Subscribers {
		rec, err := subscriber.NewRecord(pf.Subscribers[i])
		if err != nil {
			return nil, fmt.Errorf("subscriber %d: %w", i, err)
		}
		s.subs[rec.PrivateIdentity] = rec
	}
	return s, nil
}

// Put validates and stores a record, replacing any existing one with the
// same private identity.
func (s *Store) Put(spec subscriber.Record) error {
	rec, err := subscriber.NewRecord(spec)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.subs[rec.PrivateIdentity] = rec
	s.mu.Unlock()
	return nil
}

// Lookup returns the record for a private identity.
func (s *Store) Lookup(impi string) (*subscriber.Record, bool) {
	s.mu.RLock()
	rec, ok := s.subs[impi]
	s.mu.RUnlock()
	return rec, ok
}

// AllIdentities returns every provisioned private identity, sorted.
func (s *Store) AllIdentities() []string {
	s.mu.RLock()
	ids := make([]string, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	s.mu.RUnlock()
	sort.Strings(ids)
	return ids
}

// Len reports the number of provisioned subscribers.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}

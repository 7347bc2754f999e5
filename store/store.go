// Package store persists trained models under generated identifiers, either in memory or on disk.
package store

import (
	"bytes"
	"encoding/gob"
	"sort"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	"github.com/hscells/bayes/learning"
	"github.com/peterbourgon/diskv"
	"github.com/pkg/errors"
)

// ErrCacheMiss is returned when no model is stored under an id.
var ErrCacheMiss = errors.New("cache miss error")

// BlockTransform determines how diskv should partition folders.
func BlockTransform(blockSize int) func(string) []string {
	return func(s string) []string {
		var (
			sliceSize = len(s) / blockSize
			pathSlice = make([]string, sliceSize)
		)
		for i := 0; i < sliceSize; i++ {
			from, to := i*blockSize, (i*blockSize)+blockSize
			pathSlice[i] = s[from:to]
		}
		return pathSlice
	}
}

// record is the on-disk representation of a model. The model text does not describe its own grid size.
type record struct {
	GridSize int
	Model    []byte
}

// ModelToBytes encodes a model to bytes.
func ModelToBytes(m *learning.NaiveBayes) ([]byte, error) {
	var model bytes.Buffer
	if _, err := m.WriteTo(&model); err != nil {
		return nil, err
	}
	var buff bytes.Buffer
	enc := gob.NewEncoder(&buff)
	err := enc.Encode(record{GridSize: m.GridSize(), Model: model.Bytes()})
	if err != nil {
		return nil, err
	}
	return buff.Bytes(), nil
}

// BytesToModel decodes a model encoded with ModelToBytes.
func BytesToModel(b []byte) (*learning.NaiveBayes, error) {
	var rec record
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&rec); err != nil {
		return nil, errors.Wrap(err, "decoding model record")
	}
	m := learning.NewNaiveBayes(rec.GridSize)
	if _, err := m.ReadFrom(bytes.NewReader(rec.Model)); err != nil {
		return nil, err
	}
	return m, nil
}

// ModelStorer models a way to store (either persistent or not) trained models.
type ModelStorer interface {
	Get(id string) (*learning.NaiveBayes, error)
	Put(m *learning.NaiveBayes) (string, error)
	Delete(id string) error
	Keys() []string
}

// ModelStore embeds a privately defined model storer into a public struct.
type ModelStore struct {
	ModelStorer
}

type mapModelStore struct {
	mu sync.RWMutex
	m  map[string]*learning.NaiveBayes
}

func (s *mapModelStore) Get(id string) (*learning.NaiveBayes, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if m, ok := s.m[id]; ok {
		return m, nil
	}
	return nil, errors.Wrap(ErrCacheMiss, id)
}

func (s *mapModelStore) Put(m *learning.NaiveBayes) (string, error) {
	id := uuid.New().String()
	s.mu.Lock()
	s.m[id] = m
	s.mu.Unlock()
	return id, nil
}

func (s *mapModelStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[id]; !ok {
		return errors.Wrap(ErrCacheMiss, id)
	}
	delete(s.m, id)
	return nil
}

func (s *mapModelStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.m))
	for k := range s.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewMapModelStore creates a model store out of a regular go map.
func NewMapModelStore() ModelStore {
	return ModelStore{&mapModelStore{m: make(map[string]*learning.NaiveBayes)}}
}

type diskvModelStore struct {
	*diskv.Diskv
	models *lru.Cache
}

func (d diskvModelStore) Get(id string) (*learning.NaiveBayes, error) {
	if v, ok := d.models.Get(id); ok {
		return v.(*learning.NaiveBayes), nil
	}
	b, err := d.Read(id)
	if err != nil {
		return nil, errors.Wrap(ErrCacheMiss, id)
	}
	m, err := BytesToModel(b)
	if err != nil {
		return nil, errors.Wrapf(err, "model %s", id)
	}
	d.models.Add(id, m)
	return m, nil
}

func (d diskvModelStore) Put(m *learning.NaiveBayes) (string, error) {
	b, err := ModelToBytes(m)
	if err != nil {
		return "", err
	}
	id := uuid.New().String()
	if err := d.Write(id, b); err != nil {
		return "", errors.Wrapf(err, "writing model %s", id)
	}
	d.models.Add(id, m)
	return id, nil
}

func (d diskvModelStore) Delete(id string) error {
	d.models.Remove(id)
	if !d.Has(id) {
		return errors.Wrap(ErrCacheMiss, id)
	}
	return d.Erase(id)
}

func (d diskvModelStore) Keys() []string {
	var keys []string
	for k := range d.Diskv.Keys(nil) {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewDiskvModelStore creates a new on-disk model store with the specified diskv parameters. Up to cacheSize decoded
// models are kept in memory.
func NewDiskvModelStore(dv *diskv.Diskv, cacheSize int) (ModelStore, error) {
	if cacheSize <= 0 {
		cacheSize = 1
	}
	models, err := lru.New(cacheSize)
	if err != nil {
		return ModelStore{}, err
	}
	return ModelStore{diskvModelStore{Diskv: dv, models: models}}, nil
}

// NewDiskvOptions are the diskv options used by the command-line tools for a store rooted at basePath.
func NewDiskvOptions(basePath string) diskv.Options {
	return diskv.Options{
		BasePath:     basePath,
		Transform:    BlockTransform(8),
		CacheSizeMax: 4096 * 1024,
		Compression:  diskv.NewGzipCompression(),
	}
}

package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-collections/collections/queue"
	"go.uber.org/zap"

	"github.com/vasilii314/kennel/dog"
	"github.com/vasilii314/kennel/post"
)

type InMemoryDogStore struct {
	mu sync.RWMutex
	// Db maps a pk to the record stored under it
	Db map[int]dog.Dog
	// order keeps pks in insertion order so
	// List output is stable between calls
	order  []int
	logger *zap.Logger
}

func NewInMemoryDogStore(logger *zap.Logger, seed ...dog.Dog) *InMemoryDogStore {
	s := &InMemoryDogStore{
		Db:     make(map[int]dog.Dog, len(seed)),
		logger: logger.Named("store.DogStore"),
	}
	for _, d := range seed {
		if _, ok := s.Db[d.PK]; !ok {
			s.order = append(s.order, d.PK)
		}
		s.Db[d.PK] = d
	}
	return s
}

func (s *InMemoryDogStore) List(kind *dog.Kind) []dog.Dog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	dogs := make([]dog.Dog, 0, len(s.order))
	for _, pk := range s.order {
		d := s.Db[pk]
		if kind != nil && d.Kind != *kind {
			continue
		}
		dogs = append(dogs, d)
	}
	return dogs
}

func (s *InMemoryDogStore) Get(pk int) (dog.Dog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.Db[pk]
	if !ok {
		return dog.Dog{}, fmt.Errorf("dog with pk %d: %w", pk, ErrNotFound)
	}
	return d, nil
}

func (s *InMemoryDogStore) Create(d dog.Dog) (dog.Dog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Db[d.PK]; ok {
		return dog.Dog{}, fmt.Errorf("dog with pk %d: %w", d.PK, ErrConflict)
	}
	s.Db[d.PK] = d
	s.order = append(s.order, d.PK)
	s.logger.Debug("created dog", zap.Int("pk", d.PK), zap.String("kind", d.Kind.String()))
	return d, nil
}

// Replace overwrites the whole record stored under pk.
// A body/key mismatch is reported before existence
// so it fails the same way whatever the store holds.
func (s *InMemoryDogStore) Replace(pk int, d dog.Dog) (dog.Dog, error) {
	if d.PK != pk {
		return dog.Dog{}, fmt.Errorf("path pk %d, body pk %d: %w", pk, d.PK, ErrMismatch)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Db[pk]; !ok {
		return dog.Dog{}, fmt.Errorf("dog with pk %d: %w", pk, ErrNotFound)
	}
	s.Db[pk] = d
	s.logger.Debug("replaced dog", zap.Int("pk", pk), zap.String("kind", d.Kind.String()))
	return d, nil
}

func (s *InMemoryDogStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.Db)
}

type PostOption func(*InMemoryPostStore)

// WithClock replaces time.Now as the source of post timestamps.
func WithClock(now func() time.Time) PostOption {
	return func(s *InMemoryPostStore) {
		s.now = now
	}
}

type InMemoryPostStore struct {
	mu sync.Mutex
	// Log holds every post in creation order.
	// Entries are never dequeued.
	Log    *queue.Queue
	nextID int
	now    func() time.Time
	logger *zap.Logger
}

// NewInMemoryPostStore seeds the log and starts the id
// counter one past the highest seeded id, or at 0.
func NewInMemoryPostStore(logger *zap.Logger, seed []post.Timestamp, opts ...PostOption) *InMemoryPostStore {
	s := &InMemoryPostStore{
		Log:    queue.New(),
		now:    time.Now,
		logger: logger.Named("store.PostStore"),
	}
	for _, p := range seed {
		s.Log.Enqueue(p)
		if p.ID+1 > s.nextID {
			s.nextID = p.ID + 1
		}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *InMemoryPostStore) Create() post.Timestamp {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := post.Timestamp{
		ID:        s.nextID,
		Timestamp: s.now().Unix(),
	}
	s.Log.Enqueue(p)
	s.nextID++
	s.logger.Debug("created post", zap.Int("id", p.ID), zap.Int64("timestamp", p.Timestamp))
	return p
}

func (s *InMemoryPostStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Log.Len()
}

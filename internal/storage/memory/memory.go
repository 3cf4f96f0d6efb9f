package memory

import (
	"sync"

	"github.com/mountainmajesty/stays/internal/logger"
)

type Config struct {
	L *logger.Logger
}

// Store is an in-memory key/value store. It backs the transient
// booking lifecycle and tests; contents are lost on shutdown.
type Store struct {
	mu     sync.Mutex
	l      *logger.Logger
	values map[string][]byte
}

func New(conf Config) *Store {
	return &Store{
		l:      conf.L,
		values: make(map[string][]byte),
	}
}

func (s *Store) Read(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}

	cp := make([]byte, len(value))
	copy(cp, value)

	return cp, true, nil
}

func (s *Store) Write(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]byte, len(value))
	copy(cp, value)
	s.values[key] = cp

	return nil
}

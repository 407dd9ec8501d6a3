package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/Ben62534/Shadowstrengthwebsite/internal/port"
)

type memoryStorage struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemory returns a process-local store, used when no backend is configured and in tests.
func NewMemory() port.ClientStorage {
	return &memoryStorage{entries: make(map[string]string)}
}

func (r *memoryStorage) Get(_ context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, fmt.Errorf("key is empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.entries[key]
	return value, ok, nil
}

func (r *memoryStorage) Set(_ context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[key] = value
	return nil
}

func (r *memoryStorage) SetMany(_ context.Context, entries map[string]string) error {
	for key := range entries {
		if key == "" {
			return fmt.Errorf("key is empty")
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for key, value := range entries {
		r.entries[key] = value
	}
	return nil
}

func (r *memoryStorage) Ping(context.Context) error {
	return nil
}

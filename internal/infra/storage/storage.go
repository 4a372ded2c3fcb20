// Package storage keeps binary objects such as barber avatars.
package storage

import (
	"context"
	"sync"

	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
)

type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	// Get returns the object bytes and content type, or a not_found
	// business error.
	Get(ctx context.Context, key string) ([]byte, string, error)
}

type object struct {
	data        []byte
	contentType string
}

// MemoryStore is an ObjectStore for local runs without a bucket.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]object
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]object)}
}

func (m *MemoryStore) Put(_ context.Context, key, contentType string, data []byte) error {
	buf := make([]byte, len(data))
	copy(buf, data)

	m.mu.Lock()
	m.objects[key] = object{data: buf, contentType: contentType}
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, string, error) {
	m.mu.RLock()
	obj, ok := m.objects[key]
	m.mu.RUnlock()

	if !ok {
		return nil, "", httperr.ErrBusinessf(httperr.CodeNotFound, "Imagen no encontrada")
	}
	return obj.data, obj.contentType, nil
}

var _ ObjectStore = (*MemoryStore)(nil)

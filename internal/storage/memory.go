package storage

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"sync"
	"time"
)

// MemoryStorage keeps objects in memory. It serves local development and
// tests.
type MemoryStorage struct {
	baseURL string

	mu      sync.RWMutex
	objects map[string]Object
}

// NewMemoryStorage returns a store whose URLs start with baseURL.
func NewMemoryStorage(baseURL string) *MemoryStorage {
	return &MemoryStorage{
		baseURL: strings.TrimRight(baseURL, "/"),
		objects: make(map[string]Object),
	}
}

// Upload stores a copy of obj.
func (m *MemoryStorage) Upload(ctx context.Context, obj Object) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := ObjectKey(time.Now().UTC(), obj.Ext)
	obj.Data = append([]byte(nil), obj.Data...)

	m.mu.Lock()
	m.objects[key] = obj
	m.mu.Unlock()

	return m.baseURL + "/" + key, nil
}

// Get returns the object stored at url.
func (m *MemoryStorage) Get(url string) (Object, bool) {
	return m.lookup(strings.TrimPrefix(url, m.baseURL+"/"))
}

func (m *MemoryStorage) lookup(key string) (Object, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	obj, ok := m.objects[key]
	return obj, ok
}

// ServeHTTP serves stored objects by key. Mount it under the path of the
// base URL with http.StripPrefix.
func (m *MemoryStorage) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	obj, ok := m.lookup(strings.TrimPrefix(r.URL.Path, "/"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", obj.ContentType)
	http.ServeContent(w, r, "", time.Time{}, bytes.NewReader(obj.Data))
}

// Len reports how many objects are stored.
func (m *MemoryStorage) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}

package dashboardcertmgmt

import (
	"context"
	"io/fs"
	"strings"
	"sync"
	"time"

	"github.com/caddyserver/certmagic"
)

var _ certmagic.Storage = &inMemoryStorage{}

type inMemoryStorageItem struct {
	value        []byte
	mu           *sync.Mutex
	lastModified time.Time
}

// inMemoryStorage keeps the certificates in process memory. Certificates are
// lost on restart and reissued, which keeps it out of production but makes it
// the default for development and tests.
type inMemoryStorage struct {
	mu    sync.RWMutex
	store map[string]inMemoryStorageItem
}

func newInMemoryStorage() *inMemoryStorage {
	return &inMemoryStorage{
		store: map[string]inMemoryStorageItem{},
	}
}

// Lock blocks until the key specific lock is acquired. Obtaining the key
// specific lock is atomic, as required by the certmagic.Locker interface
// documentation.
func (storage *inMemoryStorage) Lock(ctx context.Context, key string) error {
	storage.mu.Lock()
	item, ok := storage.store[key]
	if !ok {
		item = inMemoryStorageItem{
			lastModified: time.Now(),
			mu:           &sync.Mutex{},
		}
		storage.store[key] = item
	}
	storage.mu.Unlock()

	item.mu.Lock()
	return nil
}

func (storage *inMemoryStorage) Unlock(ctx context.Context, key string) error {
	storage.mu.RLock()
	item, ok := storage.store[key]
	storage.mu.RUnlock()
	if !ok {
		return fs.ErrNotExist
	}

	item.mu.Unlock()
	return nil
}

func (storage *inMemoryStorage) Store(ctx context.Context, key string, value []byte) error {
	storage.mu.Lock()
	defer storage.mu.Unlock()

	item, ok := storage.store[key]
	if !ok {
		item = inMemoryStorageItem{
			mu: &sync.Mutex{},
		}
	}
	item.value = value
	item.lastModified = time.Now()
	storage.store[key] = item
	return nil
}

func (storage *inMemoryStorage) Load(ctx context.Context, key string) ([]byte, error) {
	storage.mu.RLock()
	defer storage.mu.RUnlock()

	item, ok := storage.store[key]
	if !ok {
		return nil, fs.ErrNotExist
	}

	return item.value, nil
}

func (storage *inMemoryStorage) Delete(ctx context.Context, key string) error {
	storage.mu.Lock()
	defer storage.mu.Unlock()

	delete(storage.store, key)
	return nil
}

func (storage *inMemoryStorage) Exists(ctx context.Context, key string) bool {
	storage.mu.RLock()
	defer storage.mu.RUnlock()

	_, ok := storage.store[key]
	return ok
}

func (storage *inMemoryStorage) List(ctx context.Context, prefix string, recursive bool) ([]string, error) {
	storage.mu.RLock()
	defer storage.mu.RUnlock()

	keys := make([]string, 0, len(storage.store))
	for k := range storage.store {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}

	return keys, nil
}

func (storage *inMemoryStorage) Stat(ctx context.Context, key string) (certmagic.KeyInfo, error) {
	storage.mu.RLock()
	defer storage.mu.RUnlock()

	item, ok := storage.store[key]
	if !ok {
		return certmagic.KeyInfo{}, fs.ErrNotExist
	}

	return certmagic.KeyInfo{
		Key:        key,
		Modified:   item.lastModified,
		Size:       int64(len(item.value)),
		IsTerminal: strings.HasSuffix(key, "/"),
	}, nil
}

func (storage *inMemoryStorage) String() string {
	return "InMemoryStorage"
}

package alloc

import (
	"errors"
	"sync"

	prom "github.com/prometheus/client_model/go"
)

var ErrUnknownKey = errors.New("unknown key")

type Logger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Warnf(string, ...interface{})  {}

type KeysOption func(*Keys)

func WithLogger(l Logger) KeysOption {
	return func(k *Keys) {
		k.l = l
	}
}

// NewKeys binds string keys to ids of pool. The Keys takes ownership of pool;
// callers must not use pool directly afterwards.
func NewKeys(pool *Pool, opts ...KeysOption) *Keys {
	k := &Keys{
		pool: pool,
		keys: make(map[string]uint32),
		l:    nopLogger{},
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Keys is safe for concurrent use.
type Keys struct {
	pool *Pool
	mu   sync.Mutex
	keys map[string]uint32
	l    Logger
}

func (k *Keys) Acquire(key string) (uint32, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if id, ok := k.keys[key]; ok {
		return id, nil
	}
	id, ok := k.pool.Request()
	if !ok {
		k.l.Warnf("no free id for key %s, %d in use", key, k.pool.Used())
		return 0, ErrNoFreeID
	}
	k.keys[key] = id
	k.l.Debugf("key %s acquired id %d", key, id)
	return id, nil
}

func (k *Keys) Release(key string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	id, ok := k.keys[key]
	if !ok {
		return ErrUnknownKey
	}
	if err := k.pool.Return(id); err != nil {
		k.l.Warnf("key %s released id %d: %v", key, id, err)
		return err
	}
	delete(k.keys, key)
	k.l.Debugf("key %s released id %d", key, id)
	return nil
}

func (k *Keys) Lookup(key string) (uint32, bool) {
	k.mu.Lock()
	id, ok := k.keys[key]
	k.mu.Unlock()
	return id, ok
}

func (k *Keys) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.keys)
}

// Snapshot exports the underlying pool under the lock.
func (k *Keys) Snapshot() Snapshot {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.pool.Snapshot()
}

func (k *Keys) Metrics(prefix string) []*prom.MetricFamily {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.pool.Metrics(prefix)
}

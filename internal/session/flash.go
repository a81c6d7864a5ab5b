package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	LevelSuccess = "success"
	LevelError   = "error"
)

// Flash is a one-shot message shown on the next page the visitor loads.
type Flash struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

// FlashStore queues flashes per session id. Pop drains the queue.
type FlashStore interface {
	Push(ctx context.Context, sid string, f Flash) error
	Pop(ctx context.Context, sid string) ([]Flash, error)
}

const flashKeyPrefix = "rockethub:flash:"

type RedisFlashStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisFlashStore(client *redis.Client, ttl time.Duration) *RedisFlashStore {
	return &RedisFlashStore{client: client, ttl: ttl}
}

func flashKey(sid string) string {
	return flashKeyPrefix + sid
}

// Push appends f and refreshes the list TTL.
func (s *RedisFlashStore) Push(ctx context.Context, sid string, f Flash) error {
	raw, err := json.Marshal(f)
	if err != nil {
		return err
	}
	key := flashKey(sid)
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, raw)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("push flash: %w", err)
	}
	return nil
}

// Pop reads and deletes the queue in one MULTI so a flash is shown once.
func (s *RedisFlashStore) Pop(ctx context.Context, sid string) ([]Flash, error) {
	key := flashKey(sid)
	var lrange *redis.StringSliceCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		lrange = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("pop flash: %w", err)
	}

	out := make([]Flash, 0, len(lrange.Val()))
	for _, raw := range lrange.Val() {
		var f Flash
		if err := json.Unmarshal([]byte(raw), &f); err != nil {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

// MemoryFlashStore keeps flashes in process. Used when no Redis is configured.
type MemoryFlashStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]*memoryEntry
}

type memoryEntry struct {
	flashes []Flash
	expires time.Time
}

func NewMemoryFlashStore(ttl time.Duration) *MemoryFlashStore {
	return &MemoryFlashStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*memoryEntry),
	}
}

func (s *MemoryFlashStore) Push(_ context.Context, sid string, f Flash) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictLocked(now)
	e, ok := s.entries[sid]
	if !ok {
		e = &memoryEntry{}
		s.entries[sid] = e
	}
	e.flashes = append(e.flashes, f)
	e.expires = now.Add(s.ttl)
	return nil
}

func (s *MemoryFlashStore) Pop(_ context.Context, sid string) ([]Flash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[sid]
	delete(s.entries, sid)
	if !ok || !s.now().Before(e.expires) {
		return []Flash{}, nil
	}
	return e.flashes, nil
}

func (s *MemoryFlashStore) evictLocked(now time.Time) {
	for sid, e := range s.entries {
		if !now.Before(e.expires) {
			delete(s.entries, sid)
		}
	}
}

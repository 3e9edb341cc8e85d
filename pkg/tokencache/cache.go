package tokencache

import (
	"sort"
	"sync"
	"time"

	"github.com/dmitrymomot/webgrant/pkg/wire"
)

// sweepEvery sets how often Put runs the full expired-entry sweep.
// Sweeping on every insertion would make hot-path cost proportional to
// cache size; once per N insertions amortizes it.
const sweepEvery = 16

// Entry is the caller-visible cache record. A nil Payload marks an input
// that previously failed decoding (negative caching).
type Entry struct {
	Payload *wire.DecodedClientHeader
}

type record struct {
	payload     *wire.DecodedClientHeader
	expiresAt   time.Time // effective expiry: min(insertion+TTL, token expiry)
	accessCount uint64
	insertedAt  time.Time
}

// Cache is a bounded store of decoded payloads keyed by raw header string.
// The zero value is not usable; construct with New.
type Cache struct {
	mu         sync.Mutex
	cfg        Config
	records    map[string]*record
	insertions uint64
}

// New validates the configuration and returns an empty cache.
func New(cfg Config) (*Cache, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Cache{
		cfg:     cfg,
		records: make(map[string]*record),
	}, nil
}

// Get returns the entry for key if present and still effective at now.
// A hit increments the entry's access count. Observing a stale entry
// evicts it and triggers a full sweep before reporting a miss.
func (c *Cache) Get(key string, now time.Time) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.cfg.Enabled {
		return Entry{}, false
	}
	rec, ok := c.records[key]
	if !ok {
		return Entry{}, false
	}
	if !rec.expiresAt.After(now) {
		delete(c.records, key)
		c.sweepLocked(now)
		return Entry{}, false
	}
	rec.accessCount++
	return Entry{Payload: rec.payload}, true
}

// Put inserts or overwrites the entry for key. The effective expiry is
// the earlier of now+TTL and the token's own expiry; negative entries
// (nil payload) are bounded by TTL alone. No-op while disabled.
func (c *Cache) Put(key string, payload *wire.DecodedClientHeader, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.cfg.Enabled {
		return
	}

	expiry := now.Add(c.cfg.TTL)
	if payload != nil && payload.ExpiresAt.Before(expiry) {
		expiry = payload.ExpiresAt
	}
	c.records[key] = &record{
		payload:     payload,
		expiresAt:   expiry,
		accessCount: 1,
		insertedAt:  now,
	}

	c.insertions++
	if c.insertions%sweepEvery == 0 {
		c.sweepLocked(now)
	}
	c.evictOverCapacityLocked()
}

// Configure replaces the configuration atomically. Disabling clears all
// entries; a smaller capacity is enforced immediately.
func (c *Cache) Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cfg = cfg
	if !cfg.Enabled {
		c.records = make(map[string]*record)
		return nil
	}
	c.evictOverCapacityLocked()
	return nil
}

// Len reports the current number of entries, including not-yet-swept
// expired ones.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = make(map[string]*record)
}

// sweepLocked removes every entry whose effective expiry has passed.
func (c *Cache) sweepLocked(now time.Time) {
	for key, rec := range c.records {
		if !rec.expiresAt.After(now) {
			delete(c.records, key)
		}
	}
}

// evictOverCapacityLocked removes exactly len-MaxSize entries, ascending
// by access count, ties broken by oldest insertion.
func (c *Cache) evictOverCapacityLocked() {
	over := len(c.records) - c.cfg.MaxSize
	if over <= 0 {
		return
	}

	type candidate struct {
		key string
		rec *record
	}
	candidates := make([]candidate, 0, len(c.records))
	for key, rec := range c.records {
		candidates = append(candidates, candidate{key: key, rec: rec})
	}
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i].rec, candidates[j].rec
		if a.accessCount != b.accessCount {
			return a.accessCount < b.accessCount
		}
		return a.insertedAt.Before(b.insertedAt)
	})

	for _, victim := range candidates[:over] {
		delete(c.records, victim.key)
	}
}

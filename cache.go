package twcss

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// store is an insert-or-get map: the first value stored for a key wins.
type store[V any] interface {
	get(key string) (V, bool)
	getOrAdd(key string, value V) V
	len() int
}

// memoryStore never evicts.
type memoryStore[V any] struct {
	cache *gocache.Cache
}

func newMemoryStore[V any]() *memoryStore[V] {
	return &memoryStore[V]{cache: gocache.New(gocache.NoExpiration, 0)}
}

func (s *memoryStore[V]) get(key string) (V, bool) {
	var zero V
	value, found := s.cache.Get(key)
	if !found {
		return zero, false
	}
	v, ok := value.(V)
	return v, ok
}

func (s *memoryStore[V]) getOrAdd(key string, value V) V {
	if err := s.cache.Add(key, value, gocache.NoExpiration); err != nil {
		// Lost the race; keep the first value.
		if existing, ok := s.get(key); ok {
			return existing
		}
	}
	return value
}

func (s *memoryStore[V]) len() int {
	return s.cache.ItemCount()
}

// lruStore evicts the least recently used key past its size.
type lruStore[V any] struct {
	cache *lru.Cache[string, V]
}

func newLRUStore[V any](size int) (*lruStore[V], error) {
	c, err := lru.New[string, V](size)
	if err != nil {
		return nil, err
	}
	return &lruStore[V]{cache: c}, nil
}

func (s *lruStore[V]) get(key string) (V, bool) {
	return s.cache.Get(key)
}

func (s *lruStore[V]) getOrAdd(key string, value V) V {
	if prev, ok, _ := s.cache.PeekOrAdd(key, value); ok {
		return prev
	}
	return value
}

func (s *lruStore[V]) len() int {
	return s.cache.Len()
}

func newStore[V any](size int) (store[V], error) {
	if size > 0 {
		return newLRUStore[V](size)
	}
	return newMemoryStore[V](), nil
}

type tokenEntry struct {
	token ClassToken
	err   error
}

type definitionEntry struct {
	match Match
	found bool
}

// CacheStats counts cache lookups.
type CacheStats struct {
	Hits        uint64 `json:"hits"`
	Misses      uint64 `json:"misses"`
	Tokens      int    `json:"tokens"`
	Definitions int    `json:"definitions"`
}

// Cache memoizes tokenizing and registry lookups across generation calls.
// It is safe for concurrent use. Concurrent misses on one key may both
// compute; the first stored result is the one every caller gets.
type Cache struct {
	tokens      store[tokenEntry]
	definitions store[definitionEntry]
	registry    Resolver
	tokenizer   *Tokenizer
	log         *zap.Logger

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewCache wraps registry and a tokenizer built from variants. size bounds
// each of the token and definition tables with LRU eviction; 0 means no
// eviction.
func NewCache(registry Resolver, variants *VariantResolver, size int, log *zap.Logger) (*Cache, error) {
	if size < 0 {
		return nil, fmt.Errorf("cache size must not be negative, got %d", size)
	}
	if log == nil {
		log = zap.NewNop()
	}

	tokens, err := newStore[tokenEntry](size)
	if err != nil {
		return nil, fmt.Errorf("token cache: %w", err)
	}
	definitions, err := newStore[definitionEntry](size)
	if err != nil {
		return nil, fmt.Errorf("definition cache: %w", err)
	}

	c := &Cache{
		tokens:      tokens,
		definitions: definitions,
		registry:    registry,
		log:         log,
	}
	c.tokenizer = NewTokenizer(c, variants)
	return c, nil
}

// Token returns the parsed token for raw, parsing it on first use. Errors are
// cached alongside tokens.
func (c *Cache) Token(raw string) (ClassToken, error) {
	if e, ok := c.tokens.get(raw); ok {
		c.hits.Add(1)
		return e.token.clone(), e.err
	}
	c.misses.Add(1)

	tok, err := c.tokenizer.Parse(raw)
	e := c.tokens.getOrAdd(raw, tokenEntry{token: tok, err: err})
	c.log.Debug("token cache miss", zap.String("class", raw), zap.Error(err))
	return e.token.clone(), e.err
}

// Resolve implements Resolver over the wrapped registry.
func (c *Cache) Resolve(name string) (Match, bool) {
	if e, ok := c.definitions.get(name); ok {
		return e.match, e.found
	}
	m, found := c.registry.Resolve(name)
	e := c.definitions.getOrAdd(name, definitionEntry{match: m, found: found})
	return e.match, e.found
}

// Stats returns lookup counters and table sizes.
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Hits:        c.hits.Load(),
		Misses:      c.misses.Load(),
		Tokens:      c.tokens.len(),
		Definitions: c.definitions.len(),
	}
}

package twcss

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, size int) *Cache {
	t.Helper()
	theme := DefaultTheme()
	c, err := NewCache(NewRegistry(theme), NewVariantResolver(theme), size, nil)
	require.NoError(t, err)
	return c
}

func TestCacheToken_HitsAndMisses(t *testing.T) {
	c := newTestCache(t, 0)

	first, err := c.Token("md:p-4")
	require.NoError(t, err)
	second, err := c.Token("md:p-4")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	stats := c.Stats()
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, 1, stats.Tokens)
	assert.Positive(t, stats.Definitions)
}

func TestCacheToken_CachesErrors(t *testing.T) {
	c := newTestCache(t, 0)

	_, err1 := c.Token("nope")
	_, err2 := c.Token("nope")
	require.Error(t, err1)
	assert.Equal(t, err1, err2)
	assert.ErrorIs(t, err2, ErrUnknownUtility)
	assert.Equal(t, uint64(1), c.Stats().Hits)
}

func TestCacheToken_ReturnsCopies(t *testing.T) {
	c := newTestCache(t, 0)

	tok, err := c.Token("md:hover:p-4")
	require.NoError(t, err)
	tok.Variants[0].Name = "mutated"
	tok.Properties[0] = "mutated"

	again, err := c.Token("md:hover:p-4")
	require.NoError(t, err)
	assert.Equal(t, "md", again.Variants[0].Name)
	assert.Equal(t, "padding", again.Properties[0])
}

func TestCache_LRUBound(t *testing.T) {
	c := newTestCache(t, 2)

	for _, class := range []string{"p-1", "p-2", "p-3", "p-4"} {
		_, err := c.Token(class)
		require.NoError(t, err)
	}

	stats := c.Stats()
	assert.Equal(t, 2, stats.Tokens)
	assert.LessOrEqual(t, stats.Definitions, 2)

	// Evicted entries are recomputed with the same result.
	tok, err := c.Token("p-1")
	require.NoError(t, err)
	assert.Equal(t, "1", tok.Value)
	assert.Equal(t, uint64(5), c.Stats().Misses)
}

func TestNewCache_NegativeSize(t *testing.T) {
	theme := DefaultTheme()
	_, err := NewCache(NewRegistry(theme), NewVariantResolver(theme), -1, nil)
	require.Error(t, err)
}

func TestCache_ConcurrentAccess(t *testing.T) {
	for _, size := range []int{0, 8} {
		c := newTestCache(t, size)
		classes := []string{"p-4", "md:p-8", "hover:bg-blue-600", "bg-blue-500/50", "unknown-class", "w-[13px]"}

		want := make(map[string]ClassToken, len(classes))
		for _, class := range classes {
			tok, _ := newTestTokenizer().Parse(class)
			want[class] = tok
		}

		const workers = 16
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 50; i++ {
					class := classes[(w+i)%len(classes)]
					tok, _ := c.Token(class)
					assert.Equal(t, want[class], tok)
				}
			}()
		}
		wg.Wait()

		stats := c.Stats()
		assert.Equal(t, uint64(workers*50), stats.Hits+stats.Misses)
		assert.Equal(t, len(classes), stats.Tokens)
	}
}

func TestMemoryStore_FirstValueWins(t *testing.T) {
	s := newMemoryStore[int]()
	assert.Equal(t, 1, s.getOrAdd("k", 1))
	assert.Equal(t, 1, s.getOrAdd("k", 2))

	v, ok := s.get("k")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, s.len())
}

func TestLRUStore_FirstValueWins(t *testing.T) {
	s, err := newLRUStore[int](4)
	require.NoError(t, err)
	assert.Equal(t, 1, s.getOrAdd("k", 1))
	assert.Equal(t, 1, s.getOrAdd("k", 2))
	assert.Equal(t, 1, s.len())
}

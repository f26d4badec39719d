package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutAndGet(t *testing.T) {
	repo := NewBookmarkRepository()

	repo.Put("golang", "https://golang.org")

	uri, ok := repo.Get("golang")
	require.True(t, ok)
	assert.Equal(t, "https://golang.org", uri)
}

func TestGet_AbsentShortName(t *testing.T) {
	repo := NewBookmarkRepository()

	uri, ok := repo.Get("nope")
	assert.False(t, ok)
	assert.Empty(t, uri)
}

func TestPut_LastWriteWins(t *testing.T) {
	repo := NewBookmarkRepository()

	repo.Put("docs", "https://example.com/v1")
	repo.Put("docs", "https://example.com/v2")

	uri, ok := repo.Get("docs")
	require.True(t, ok)
	assert.Equal(t, "https://example.com/v2", uri)

	// Overwriting must not grow the listing
	assert.Len(t, repo.List(), 1)
}

func TestPut_EmptyStringsPermitted(t *testing.T) {
	repo := NewBookmarkRepository()

	repo.Put("", "")

	uri, ok := repo.Get("")
	assert.True(t, ok)
	assert.Empty(t, uri)
}

func TestList_SortedByShortName(t *testing.T) {
	repo := NewBookmarkRepository()

	repo.Put("zebra", "https://z.example.com")
	repo.Put("apple", "https://a.example.com")
	repo.Put("mango", "https://m.example.com")

	bookmarks := repo.List()
	require.Len(t, bookmarks, 3)
	assert.Equal(t, "apple", bookmarks[0].ShortName)
	assert.Equal(t, "mango", bookmarks[1].ShortName)
	assert.Equal(t, "zebra", bookmarks[2].ShortName)
}

func TestList_Empty(t *testing.T) {
	repo := NewBookmarkRepository()

	assert.Empty(t, repo.List())
}

func TestList_NoDuplicateShortNames(t *testing.T) {
	repo := NewBookmarkRepository()

	for i := 0; i < 5; i++ {
		repo.Put("same", fmt.Sprintf("https://example.com/%d", i))
	}

	bookmarks := repo.List()
	require.Len(t, bookmarks, 1)
	assert.Equal(t, "https://example.com/4", bookmarks[0].LongURI)
}

func TestConcurrentPuts_NoLostUpdates(t *testing.T) {
	repo := NewBookmarkRepository()

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)

	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			repo.Put(fmt.Sprintf("name-%03d", i), fmt.Sprintf("https://example.com/%d", i))
		}(i)
	}
	wg.Wait()

	bookmarks := repo.List()
	require.Len(t, bookmarks, n)

	// Every distinct put must be visible afterward
	for i := 0; i < n; i++ {
		uri, ok := repo.Get(fmt.Sprintf("name-%03d", i))
		require.True(t, ok)
		assert.Equal(t, fmt.Sprintf("https://example.com/%d", i), uri)
	}
}

func TestConcurrentReadsAndWrites(t *testing.T) {
	repo := NewBookmarkRepository()
	repo.Put("stable", "https://example.com")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			repo.Put(fmt.Sprintf("w-%d", i), "https://example.com")
		}(i)
		go func() {
			defer wg.Done()
			uri, ok := repo.Get("stable")
			assert.True(t, ok)
			assert.Equal(t, "https://example.com", uri)
			repo.List()
		}()
	}
	wg.Wait()
}

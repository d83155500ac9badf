package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Integration test; needs a reachable redis, e.g.
// TEST_REDIS_URL=redis://localhost:6379/15 go test ./store
func newTestRedis(t *testing.T) *Redis {
	t.Helper()
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	r, err := OpenRedis(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func testPagePath(t *testing.T) string {
	return fmt.Sprintf("/redis-test-%s-%d", t.Name(), time.Now().UnixNano())
}

func TestRedisGetMissingPath(t *testing.T) {
	r := newTestRedis(t)

	page, err := r.Get(context.Background(), testPagePath(t))
	require.NoError(t, err)
	assert.Nil(t, page)
}

func TestRedisRoundTrip(t *testing.T) {
	r := newTestRedis(t)
	ctx := context.Background()
	path := testPagePath(t)

	require.NoError(t, r.Put(ctx, path, "<html>v1</html>", "first"))
	require.NoError(t, r.Put(ctx, path, "<html>v2</html>", "second"))

	page, err := r.Get(ctx, path)
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, "<html>v2</html>", page.Content)
	assert.Equal(t, []string{"first", "second"}, page.PromptHistory)
	assert.Equal(t, page.CreatedAt, page.CreatedAt.UTC(), "timestamps stored in UTC")
}

package mediastore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestCache_Active(t *testing.T) {
	t.Run("should resolve the active engine once per request", func(t *testing.T) {
		engine := newMockEngine("AmazonS3Storage", true)
		registry := NewRegistry(engine)
		cache := NewRequestCache(registry)

		first := cache.Active()
		second := cache.Active()

		assert.Same(t, first, second, "expected the memoized engine on repeat lookups")
		engine.AssertNumberOfCalls(t, "Enabled", 1)
	})

	t.Run("should memoize the absence of an active engine", func(t *testing.T) {
		engine := newMockEngine("AmazonS3Storage", false)
		cache := NewRequestCache(NewRegistry(engine))

		assert.Nil(t, cache.Active(), "expected no active engine")
		assert.Nil(t, cache.Active(), "expected memoized nil")
		engine.AssertNumberOfCalls(t, "Enabled", 1)
	})

	t.Run("should recompute from a fresh cache", func(t *testing.T) {
		engine := newMockEngine("AmazonS3Storage", true)
		registry := NewRegistry(engine)

		assert.NotNil(t, NewRequestCache(registry).Active(), "expected first request to resolve the engine")
		assert.NotNil(t, NewRequestCache(registry).Active(), "expected next request to resolve the engine again")
		engine.AssertNumberOfCalls(t, "Enabled", 2)
	})
}

func TestRequestCache_ActiveRemote(t *testing.T) {
	t.Run("should return the active engine when it is remote", func(t *testing.T) {
		remote := new(MockRemoteEngine)
		remote.On("Enabled").Return(true)
		cache := NewRequestCache(NewRegistry(remote))

		assert.Same(t, remote, cache.ActiveRemote(), "expected the remote engine")
	})

	t.Run("should return nil when the active engine is not remote", func(t *testing.T) {
		cache := NewRequestCache(NewRegistry(newMockEngine("LocalFileStorage", true)))

		assert.Nil(t, cache.ActiveRemote(), "expected no remote engine")
	})

	t.Run("should return nil when no engine is active", func(t *testing.T) {
		cache := NewRequestCache(NewRegistry())

		assert.Nil(t, cache.ActiveRemote(), "expected no remote engine")
	})
}

func TestRequestCache_BucketURL(t *testing.T) {
	t.Run("should memoize the active remote engine's bucket URL", func(t *testing.T) {
		remote := new(MockRemoteEngine)
		remote.On("Enabled").Return(true)
		remote.On("BucketURL").Return("https://b.s3.amazonaws.com/")
		cache := NewRequestCache(NewRegistry(remote))

		assert.Equal(t, "https://b.s3.amazonaws.com/", cache.BucketURL(), "expected the bucket URL")
		assert.Equal(t, "https://b.s3.amazonaws.com/", cache.BucketURL(), "expected the memoized bucket URL")
		remote.AssertNumberOfCalls(t, "BucketURL", 1)
	})

	t.Run("should return empty string when no remote engine is enabled", func(t *testing.T) {
		cache := NewRequestCache(NewRegistry(newMockEngine("LocalFileStorage", true)))

		assert.Empty(t, cache.BucketURL(), "expected no bucket URL")
	})
}

func TestRequestCache_Context(t *testing.T) {
	t.Run("should round-trip the cache through a context", func(t *testing.T) {
		cache := NewRequestCache(NewRegistry())
		ctx := WithRequestCache(context.Background(), cache)

		got, ok := RequestCacheFrom(ctx)

		assert.True(t, ok, "expected a cache on the context")
		assert.Same(t, cache, got, "expected the attached cache")
	})

	t.Run("should report absence on a bare context", func(t *testing.T) {
		got, ok := RequestCacheFrom(context.Background())

		assert.False(t, ok, "expected no cache on a bare context")
		assert.Nil(t, got, "expected nil cache")
	})
}

package mediastore

import "context"

// RequestCache memoizes the "which remote engine is active" and "what is its
// base URL" lookups for the lifetime of one inbound request. Create a fresh
// cache at the start of each request; recomputing is always safe, the memo is
// a performance optimization and not a correctness requirement.
//
// Operations here are synchronous within one request, so the cache is not
// safe for concurrent use.
type RequestCache struct {
	source EngineSource

	engine         Engine
	engineResolved bool

	bucketURL         string
	bucketURLResolved bool
}

// NewRequestCache creates a cache reading fresh engine state from source on
// first use.
func NewRequestCache(source EngineSource) *RequestCache {
	return &RequestCache{source: source}
}

// Active returns the active engine, resolving it at most once per request.
func (c *RequestCache) Active() Engine {
	if !c.engineResolved {
		c.engine = c.source.Active()
		c.engineResolved = true
	}
	return c.engine
}

// ActiveRemote returns the active engine when it is backed by a remote object
// store, or nil otherwise.
func (c *RequestCache) ActiveRemote() RemoteEngine {
	if remote, ok := c.Active().(RemoteEngine); ok {
		return remote
	}
	return nil
}

// BucketURL returns the active remote engine's base URL, or "" when no remote
// engine is enabled.
func (c *RequestCache) BucketURL() string {
	if !c.bucketURLResolved {
		if remote := c.ActiveRemote(); remote != nil {
			c.bucketURL = remote.BucketURL()
		}
		c.bucketURLResolved = true
	}
	return c.bucketURL
}

var _ EngineSource = (*RequestCache)(nil)

type requestCacheKey struct{}

// WithRequestCache attaches a per-request cache to the context. The host's
// request middleware calls this once per inbound request so everything in the
// call chain shares one memo.
func WithRequestCache(ctx context.Context, cache *RequestCache) context.Context {
	return context.WithValue(ctx, requestCacheKey{}, cache)
}

// RequestCacheFrom extracts the per-request cache from the context.
func RequestCacheFrom(ctx context.Context) (*RequestCache, bool) {
	cache, ok := ctx.Value(requestCacheKey{}).(*RequestCache)
	return cache, ok
}

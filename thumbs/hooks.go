package thumbs

import (
	"context"
	"io"
)

// PathOptions adjusts path and URL resolution.
type PathOptions struct {
	// CheckExists queries the backing store; an absent thumbnail resolves
	// to the empty string.
	CheckExists bool

	// Ext overrides the thumbnail extension, which defaults to jpg.
	Ext string
}

// Handler is one link in the thumbnail lifecycle chain. Each method reports
// handled=false to pass the event to the next handler; the host's default
// local-disk handler sits at the end of the chain.
type Handler interface {
	// ThumbPath resolves the relative storage path for an item's
	// thumbnail at the given size.
	ThumbPath(ctx context.Context, item Item, size string, opts PathOptions) (path string, handled bool, err error)

	// ThumbURL resolves the fully qualified URL for an item's thumbnail at
	// the given size.
	ThumbURL(ctx context.Context, item Item, size string, opts PathOptions) (url string, handled bool, err error)

	// CreateThumbs renders and stores every configured size from the open
	// source image. A handler that takes the event owns src and must close
	// it on every exit path.
	CreateThumbs(ctx context.Context, item Item, src io.ReadSeekCloser, filename string) (handled bool, err error)

	// CreateDefaultThumbs stores copies of the pre-rendered default
	// thumbnails under the item's own key, for every configured size.
	CreateDefaultThumbs(ctx context.Context, item Item) (handled bool, err error)

	// DeleteThumbs removes every stored size for the item.
	DeleteThumbs(ctx context.Context, item Item) (handled bool, err error)

	// HasDefaultThumbs reports whether the item's thumbnails are still the
	// defaults.
	HasDefaultThumbs(ctx context.Context, item Item) (isDefault bool, handled bool, err error)
}

// Chain dispatches thumbnail lifecycle events to handlers in registration
// order; the first handler to take an event short-circuits the rest. An
// event no handler takes is reported unhandled so the caller can fall back
// to its default behavior.
type Chain struct {
	handlers []Handler
}

// NewChain builds a chain from handlers in precedence order.
func NewChain(handlers ...Handler) *Chain {
	return &Chain{handlers: handlers}
}

func (c *Chain) ThumbPath(ctx context.Context, item Item, size string, opts PathOptions) (string, bool, error) {
	for _, h := range c.handlers {
		path, handled, err := h.ThumbPath(ctx, item, size, opts)
		if handled || err != nil {
			return path, handled, err
		}
	}
	return "", false, nil
}

func (c *Chain) ThumbURL(ctx context.Context, item Item, size string, opts PathOptions) (string, bool, error) {
	for _, h := range c.handlers {
		url, handled, err := h.ThumbURL(ctx, item, size, opts)
		if handled || err != nil {
			return url, handled, err
		}
	}
	return "", false, nil
}

func (c *Chain) CreateThumbs(ctx context.Context, item Item, src io.ReadSeekCloser, filename string) (bool, error) {
	for _, h := range c.handlers {
		handled, err := h.CreateThumbs(ctx, item, src, filename)
		if handled || err != nil {
			return handled, err
		}
	}
	return false, nil
}

func (c *Chain) CreateDefaultThumbs(ctx context.Context, item Item) (bool, error) {
	for _, h := range c.handlers {
		handled, err := h.CreateDefaultThumbs(ctx, item)
		if handled || err != nil {
			return handled, err
		}
	}
	return false, nil
}

func (c *Chain) DeleteThumbs(ctx context.Context, item Item) (bool, error) {
	for _, h := range c.handlers {
		handled, err := h.DeleteThumbs(ctx, item)
		if handled || err != nil {
			return handled, err
		}
	}
	return false, nil
}

func (c *Chain) HasDefaultThumbs(ctx context.Context, item Item) (bool, bool, error) {
	for _, h := range c.handlers {
		isDefault, handled, err := h.HasDefaultThumbs(ctx, item)
		if handled || err != nil {
			return isDefault, handled, err
		}
	}
	return false, false, nil
}

package thumbs

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChain_ThumbURL(t *testing.T) {
	item := Item{Dir: "media", ID: "abc123"}

	t.Run("should return the first handled result", func(t *testing.T) {
		skipped := false
		chain := NewChain(
			&MockHandler{
				MockThumbURL: func(ctx context.Context, item Item, size string, opts PathOptions) (string, bool, error) {
					return "http://bucket.example.com/media/abc123s.jpg", true, nil
				},
			},
			&MockHandler{
				MockThumbURL: func(ctx context.Context, item Item, size string, opts PathOptions) (string, bool, error) {
					skipped = true
					return "", false, nil
				},
			},
		)

		url, handled, err := chain.ThumbURL(context.Background(), item, "s", PathOptions{})

		assert.NoError(t, err)
		assert.True(t, handled)
		assert.Equal(t, "http://bucket.example.com/media/abc123s.jpg", url)
		assert.False(t, skipped)
	})

	t.Run("should fall through unhandled handlers", func(t *testing.T) {
		chain := NewChain(
			&MockHandler{},
			&MockHandler{
				MockThumbURL: func(ctx context.Context, item Item, size string, opts PathOptions) (string, bool, error) {
					return "/images/media/abc123s.jpg", true, nil
				},
			},
		)

		url, handled, err := chain.ThumbURL(context.Background(), item, "s", PathOptions{})

		assert.NoError(t, err)
		assert.True(t, handled)
		assert.Equal(t, "/images/media/abc123s.jpg", url)
	})

	t.Run("should report an unhandled event", func(t *testing.T) {
		chain := NewChain(&MockHandler{}, &MockHandler{})

		url, handled, err := chain.ThumbURL(context.Background(), item, "s", PathOptions{})

		assert.NoError(t, err)
		assert.False(t, handled)
		assert.Empty(t, url)
	})

	t.Run("should stop on the first error", func(t *testing.T) {
		chain := NewChain(
			&MockHandler{
				MockThumbURL: func(ctx context.Context, item Item, size string, opts PathOptions) (string, bool, error) {
					return "", true, errors.New("store unreachable")
				},
			},
			&MockHandler{
				MockThumbURL: func(ctx context.Context, item Item, size string, opts PathOptions) (string, bool, error) {
					t.Fatal("unexpected call past a failed handler")
					return "", false, nil
				},
			},
		)

		_, _, err := chain.ThumbURL(context.Background(), item, "s", PathOptions{})

		assert.EqualError(t, err, "store unreachable")
	})
}

func TestChain_CreateThumbs(t *testing.T) {
	item := Item{Dir: "media", ID: "abc123"}

	t.Run("should pass the source through untaken handlers", func(t *testing.T) {
		var got string
		chain := NewChain(
			&MockHandler{},
			&MockHandler{
				MockCreateThumbs: func(ctx context.Context, item Item, src io.ReadSeekCloser, filename string) (bool, error) {
					got = filename
					return true, nil
				},
			},
		)

		handled, err := chain.CreateThumbs(context.Background(), item, nil, "poster.jpg")

		assert.NoError(t, err)
		assert.True(t, handled)
		assert.Equal(t, "poster.jpg", got)
	})

	t.Run("should report an unhandled event", func(t *testing.T) {
		chain := NewChain()

		handled, err := chain.CreateThumbs(context.Background(), item, nil, "poster.jpg")

		assert.NoError(t, err)
		assert.False(t, handled)
	})
}

func TestChain_HasDefaultThumbs(t *testing.T) {
	item := Item{Dir: "media", ID: "abc123"}

	t.Run("should return the first handled verdict", func(t *testing.T) {
		chain := NewChain(
			&MockHandler{},
			&MockHandler{
				MockHasDefaultThumbs: func(ctx context.Context, item Item) (bool, bool, error) {
					return true, true, nil
				},
			},
		)

		isDefault, handled, err := chain.HasDefaultThumbs(context.Background(), item)

		assert.NoError(t, err)
		assert.True(t, handled)
		assert.True(t, isDefault)
	})

	t.Run("should report an unhandled event", func(t *testing.T) {
		chain := NewChain(&MockHandler{})

		isDefault, handled, err := chain.HasDefaultThumbs(context.Background(), item)

		assert.NoError(t, err)
		assert.False(t, handled)
		assert.False(t, isDefault)
	})
}

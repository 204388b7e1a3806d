package thumbs

import (
	"context"
	"io"
)

// MockHandler is a mock implementation of the Handler interface.
type MockHandler struct {
	MockThumbPath           func(ctx context.Context, item Item, size string, opts PathOptions) (string, bool, error)
	MockThumbURL            func(ctx context.Context, item Item, size string, opts PathOptions) (string, bool, error)
	MockCreateThumbs        func(ctx context.Context, item Item, src io.ReadSeekCloser, filename string) (bool, error)
	MockCreateDefaultThumbs func(ctx context.Context, item Item) (bool, error)
	MockDeleteThumbs        func(ctx context.Context, item Item) (bool, error)
	MockHasDefaultThumbs    func(ctx context.Context, item Item) (bool, bool, error)
}

// ThumbPath calls the MockThumbPath function.
func (m *MockHandler) ThumbPath(ctx context.Context, item Item, size string, opts PathOptions) (string, bool, error) {
	if m.MockThumbPath != nil {
		return m.MockThumbPath(ctx, item, size, opts)
	}
	return "", false, nil
}

// ThumbURL calls the MockThumbURL function.
func (m *MockHandler) ThumbURL(ctx context.Context, item Item, size string, opts PathOptions) (string, bool, error) {
	if m.MockThumbURL != nil {
		return m.MockThumbURL(ctx, item, size, opts)
	}
	return "", false, nil
}

// CreateThumbs calls the MockCreateThumbs function.
func (m *MockHandler) CreateThumbs(ctx context.Context, item Item, src io.ReadSeekCloser, filename string) (bool, error) {
	if m.MockCreateThumbs != nil {
		return m.MockCreateThumbs(ctx, item, src, filename)
	}
	return false, nil
}

// CreateDefaultThumbs calls the MockCreateDefaultThumbs function.
func (m *MockHandler) CreateDefaultThumbs(ctx context.Context, item Item) (bool, error) {
	if m.MockCreateDefaultThumbs != nil {
		return m.MockCreateDefaultThumbs(ctx, item)
	}
	return false, nil
}

// DeleteThumbs calls the MockDeleteThumbs function.
func (m *MockHandler) DeleteThumbs(ctx context.Context, item Item) (bool, error) {
	if m.MockDeleteThumbs != nil {
		return m.MockDeleteThumbs(ctx, item)
	}
	return false, nil
}

// HasDefaultThumbs calls the MockHasDefaultThumbs function.
func (m *MockHandler) HasDefaultThumbs(ctx context.Context, item Item) (bool, bool, error) {
	if m.MockHasDefaultThumbs != nil {
		return m.MockHasDefaultThumbs(ctx, item)
	}
	return false, false, nil
}

var _ Handler = (*MockHandler)(nil)

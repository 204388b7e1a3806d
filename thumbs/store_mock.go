package thumbs

import (
	"context"
	"io"

	mediastore "github.com/seanbradley/mediacore-aws"
)

// MockObjectStore is a mock implementation of the mediastore.ObjectStore
// interface.
type MockObjectStore struct {
	MockDelete   func(ctx context.Context, key string) error
	MockExists   func(ctx context.Context, key string) (bool, error)
	MockMetadata func(ctx context.Context, key string) (map[string]string, error)
	MockPut      func(ctx context.Context, key string, body io.Reader, contentType string, metadata map[string]string) error
}

// Delete calls the MockDelete function.
func (m *MockObjectStore) Delete(ctx context.Context, key string) error {
	if m.MockDelete != nil {
		return m.MockDelete(ctx, key)
	}
	return nil
}

// Exists calls the MockExists function.
func (m *MockObjectStore) Exists(ctx context.Context, key string) (exists bool, err error) {
	if m.MockExists != nil {
		return m.MockExists(ctx, key)
	}
	return false, nil
}

// Metadata calls the MockMetadata function.
func (m *MockObjectStore) Metadata(ctx context.Context, key string) (map[string]string, error) {
	if m.MockMetadata != nil {
		return m.MockMetadata(ctx, key)
	}
	return map[string]string{}, nil
}

// Put calls the MockPut function.
func (m *MockObjectStore) Put(ctx context.Context, key string, body io.Reader, contentType string, metadata map[string]string) error {
	if m.MockPut != nil {
		return m.MockPut(ctx, key, body, contentType, metadata)
	}
	return nil
}

var _ mediastore.ObjectStore = (*MockObjectStore)(nil)

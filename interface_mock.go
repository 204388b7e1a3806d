package mediastore

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEngine is a testify.Mock implementation of Engine.
type MockEngine struct {
	mock.Mock
}

func (m *MockEngine) EngineType() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockEngine) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockEngine) PrepareForUpload(file *MediaFile, contentType, filename string, filesize int64) (*UploadDirectives, error) {
	args := m.Called(file, contentType, filename, filesize)
	directives, _ := args.Get(0).(*UploadDirectives)
	return directives, args.Error(1)
}

func (m *MockEngine) Delete(ctx context.Context, file *MediaFile) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockEngine) URIs(file *MediaFile) []AccessURI {
	args := m.Called(file)
	uris, _ := args.Get(0).([]AccessURI)
	return uris
}

// MockRemoteEngine is a testify.Mock implementation of RemoteEngine.
type MockRemoteEngine struct {
	MockEngine
}

func (m *MockRemoteEngine) BucketURL() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockRemoteEngine) ObjectStore(ctx context.Context) (ObjectStore, error) {
	args := m.Called(ctx)
	store, _ := args.Get(0).(ObjectStore)
	return store, args.Error(1)
}

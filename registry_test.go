package mediastore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newMockEngine(engineType string, enabled bool) *MockEngine {
	e := new(MockEngine)
	e.On("EngineType").Return(engineType).Maybe()
	e.On("Enabled").Return(enabled).Maybe()
	return e
}

func TestRegistry_Active(t *testing.T) {
	tests := []struct {
		name     string
		engines  []Engine
		expected string
		none     bool
	}{
		{
			name:    "should return nil when no engines are registered",
			engines: nil,
			none:    true,
		},
		{
			name: "should return nil when no engine is enabled",
			engines: []Engine{
				newMockEngine("AmazonS3Storage", false),
				newMockEngine("LocalFileStorage", false),
			},
			none: true,
		},
		{
			name: "should return the first enabled engine in precedence order",
			engines: []Engine{
				newMockEngine("AmazonS3Storage", true),
				newMockEngine("LocalFileStorage", true),
			},
			expected: "AmazonS3Storage",
		},
		{
			name: "should skip disabled engines ahead of an enabled one",
			engines: []Engine{
				newMockEngine("AmazonS3Storage", false),
				newMockEngine("LocalFileStorage", true),
			},
			expected: "LocalFileStorage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewRegistry(tt.engines...)

			active := registry.Active()

			if tt.none {
				assert.Nil(t, active, "expected no active engine")
			} else {
				assert.NotNil(t, active, "expected an active engine")
				assert.Equal(t, tt.expected, active.EngineType(), "expected active engine to match")
			}
		})
	}
}

func TestRegistry_RegisterBefore(t *testing.T) {
	tests := []struct {
		name          string
		existing      []Engine
		before        string
		expectedOrder []string
	}{
		{
			name: "should insert ahead of the named engine",
			existing: []Engine{
				newMockEngine("LocalFileStorage", true),
			},
			before:        "LocalFileStorage",
			expectedOrder: []string{"AmazonS3Storage", "LocalFileStorage"},
		},
		{
			name: "should append when the named engine is not registered",
			existing: []Engine{
				newMockEngine("LocalFileStorage", true),
			},
			before:        "FtpStorage",
			expectedOrder: []string{"LocalFileStorage", "AmazonS3Storage"},
		},
		{
			name:          "should append into an empty registry",
			existing:      nil,
			before:        "LocalFileStorage",
			expectedOrder: []string{"AmazonS3Storage"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewRegistry(tt.existing...)

			registry.RegisterBefore(newMockEngine("AmazonS3Storage", true), tt.before)

			var order []string
			for _, e := range registry.Engines() {
				order = append(order, e.EngineType())
			}
			assert.Equal(t, tt.expectedOrder, order, "expected precedence order to match")
		})
	}
}

func TestRegistry_Register(t *testing.T) {
	registry := NewRegistry(newMockEngine("AmazonS3Storage", false))

	registry.Register(newMockEngine("LocalFileStorage", true))

	engines := registry.Engines()
	assert.Len(t, engines, 2, "expected both engines to be registered")
	assert.Equal(t, "LocalFileStorage", engines[1].EngineType(), "expected appended engine at lowest precedence")
}

package mediastore

import (
	"context"
	"io"
	"strings"
)

// MediaFile is the slice of the host application's media-file record that
// storage engines read and write. Engines only compute new field values;
// persisting them is the caller's responsibility.
type MediaFile struct {
	// UniqueID is the collision-resistant, URL-safe object name assigned at
	// prepare time. Immutable once assigned to a media file.
	UniqueID string

	// Mimetype is the media file's content type (e.g. "video/mp4"), as
	// determined by the host during upload negotiation.
	Mimetype string

	// Storage is the engine the file was bound to at prepare time.
	Storage Engine
}

// UploadDirectives tells a browser how to submit file bytes straight to the
// backing store, bypassing the application server.
type UploadDirectives struct {
	// UploadURL is the multipart POST target.
	UploadURL string

	// ExtraPostData are form fields the client must submit unmodified,
	// including the encoded policy document and its signature.
	ExtraPostData map[string]string

	// FilePostName is the form field the file bytes must be attached under.
	FilePostName string
}

// Protocol tags for AccessURI.
const (
	ProtocolHTTP = "http"
	ProtocolRTMP = "rtmp"
)

// AccessURI is one resolved way to reach a stored file.
type AccessURI struct {
	Protocol string
	FilePath string
	BaseURL  string
}

// String returns the fully qualified URI for the stored file.
func (u AccessURI) String() string {
	return strings.TrimRight(u.BaseURL, "/") + "/" + u.FilePath
}

// Engine is the contract every storage backend must satisfy. The host
// application's upload pipeline and admin UI call through this seam.
type Engine interface {
	// EngineType uniquely identifies the backend implementation.
	EngineType() string

	// Enabled reports whether this engine is configured and ready for use.
	Enabled() bool

	// PrepareForUpload assigns file.UniqueID, binds file.Storage to this
	// engine and returns the directives the browser needs to upload the
	// file bytes. It performs no network calls and persists nothing.
	PrepareForUpload(file *MediaFile, contentType, filename string, filesize int64) (*UploadDirectives, error)

	// Delete removes the stored file. Connection, bucket-access, not-found
	// and post-delete verification failures are distinguishable via
	// errors.Is against the sentinel kinds in this package.
	Delete(ctx context.Context, file *MediaFile) error

	// URIs returns the ordered list of access URIs for the stored file.
	// It never fails; absent CDN configuration simply omits those URIs.
	URIs(file *MediaFile) []AccessURI
}

// ObjectStore is the minimal object-level surface a remote engine exposes to
// collaborators such as the thumbnail mirror. Every successful Put leaves the
// object publicly readable; this system never stores private objects.
type ObjectStore interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string, metadata map[string]string) error
	Exists(ctx context.Context, key string) (bool, error)
	Metadata(ctx context.Context, key string) (map[string]string, error)
	Delete(ctx context.Context, key string) error
}

// RemoteEngine is implemented by engines backed by a remote object store.
type RemoteEngine interface {
	Engine

	// BucketURL returns the base URL stored objects are served from.
	BucketURL() string

	// ObjectStore opens an authenticated connection to the engine's bucket.
	ObjectStore(ctx context.Context) (ObjectStore, error)
}

package s3driver

import (
	"context"
	"path"

	mediastore "github.com/seanbradley/mediacore-aws"
)

// EngineType uniquely identifies this storage engine implementation.
const EngineType = "AmazonS3Storage"

// LocalEngineType names the host's plain local-filesystem engine; the S3
// engine registers ahead of it so it is tried first when enabled.
const LocalEngineType = "LocalFileStorage"

// Engine stores media files in an S3 bucket and authorizes browsers to upload
// file bytes straight to it, so large files bypass the application server
// entirely. It implements mediastore.RemoteEngine.
type Engine struct {
	cfg        mediastore.StorageConfig
	authorizer *Authorizer

	// connect is a swap point for tests.
	connect func(ctx context.Context, cfg mediastore.StorageConfig) (*Client, error)
}

// NewEngine creates an S3 storage engine for the given configuration bundle.
func NewEngine(cfg mediastore.StorageConfig) *Engine {
	return &Engine{
		cfg:        cfg,
		authorizer: NewAuthorizer(),
		connect:    Connect,
	}
}

// Register adds the engine to the registry ahead of the local-filesystem
// engine, so the remote backend wins whenever it is enabled.
func Register(registry *mediastore.Registry, cfg mediastore.StorageConfig) *Engine {
	engine := NewEngine(cfg)
	registry.RegisterBefore(engine, LocalEngineType)
	return engine
}

func (e *Engine) EngineType() string { return EngineType }

// Enabled reports whether the engine is switched on and its configuration is
// usable.
func (e *Engine) Enabled() bool {
	return e.cfg.Enabled && e.cfg.Validate() == nil
}

// PrepareForUpload assigns the file's unique id, binds it to this engine and
// returns the signed directives for a browser-direct upload. Only multipart
// form submissions are supported; a server-mediated upload passthrough is
// not implemented.
func (e *Engine) PrepareForUpload(file *mediastore.MediaFile, contentType, filename string, filesize int64) (*mediastore.UploadDirectives, error) {
	if contentType != "multipart/form-data" {
		return nil, mediastore.NewStorageError(mediastore.ErrUnsupportedUpload,
			"cannot direct upload without using multipart form data and we haven't implemented a file upload pass through")
	}

	file.Storage = e
	file.UniqueID = SafeFileName(filename)

	auth, err := e.authorizer.Authorize(e.cfg, e.objectKey(file.UniqueID), file.Mimetype, filesize)
	if err != nil {
		return nil, err
	}

	return &mediastore.UploadDirectives{
		UploadURL:     auth.UploadURL,
		ExtraPostData: auth.Fields,
		FilePostName:  auth.FilePostName,
	}, nil
}

// Delete removes the stored file from the bucket with a verified delete.
func (e *Engine) Delete(ctx context.Context, file *mediastore.MediaFile) error {
	client, err := e.connect(ctx, e.cfg)
	if err != nil {
		return err
	}
	return client.Delete(ctx, e.objectKey(file.UniqueID))
}

// URIs returns the ordered access URIs for the stored file.
func (e *Engine) URIs(file *mediastore.MediaFile) []mediastore.AccessURI {
	return ResolveURIs(e.cfg, e.objectKey(file.UniqueID))
}

// BucketURL returns the base URL stored objects are served from.
func (e *Engine) BucketURL() string {
	return bucketURL(e.cfg.BucketName)
}

// ObjectStore opens an authenticated connection to the configured bucket.
func (e *Engine) ObjectStore(ctx context.Context) (mediastore.ObjectStore, error) {
	return e.connect(ctx, e.cfg)
}

// objectKey joins the configured subdirectory prefix onto a unique id, or
// returns the id verbatim when no subdirectory is configured.
func (e *Engine) objectKey(uniqueID string) string {
	if e.cfg.BucketDir != "" {
		return path.Join(e.cfg.BucketDir, uniqueID)
	}
	return uniqueID
}

var _ mediastore.RemoteEngine = (*Engine)(nil)

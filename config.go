package mediastore

// StorageConfig is the immutable configuration bundle scoped to one storage
// engine instance. The host application owns the authoritative copy (admin
// form, durable storage); engines receive it fully built.
type StorageConfig struct {
	AccessKey  string `mapstructure:"access_key"`
	SecretKey  string `mapstructure:"secret_key"`
	BucketName string `mapstructure:"bucket_name"`

	// BucketDir is an optional subdirectory prefix joined onto every
	// object key.
	BucketDir string `mapstructure:"bucket_dir"`

	// CDNDownloadDomain optionally fronts the bucket for plain HTTP
	// delivery. CDNStreamingDomain optionally adds a streaming endpoint.
	CDNDownloadDomain  string `mapstructure:"cdn_download_domain"`
	CDNStreamingDomain string `mapstructure:"cdn_streaming_domain"`

	Enabled bool `mapstructure:"enabled"`
}

// Validate reports whether the configuration is usable at all. Engines must
// fail fast on an invalid configuration instead of attempting network calls
// with empty credentials.
func (c StorageConfig) Validate() error {
	if c.AccessKey == "" && c.SecretKey == "" {
		return NewStorageError(ErrInvalidConfig, "storage credentials are not configured")
	}
	if c.BucketName == "" {
		return NewStorageError(ErrInvalidConfig, "storage bucket name is not configured")
	}
	return nil
}

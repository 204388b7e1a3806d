package s3driver

import (
	"fmt"

	mediastore "github.com/seanbradley/mediacore-aws"
)

// ResolveURIs computes the ordered list of access URIs for a stored file
// path. A configured CDN download domain takes precedence over the raw
// bucket URL; a streaming URI is appended, never replacing the first, when a
// CDN streaming domain is configured.
func ResolveURIs(cfg mediastore.StorageConfig, filePath string) []mediastore.AccessURI {
	uris := make([]mediastore.AccessURI, 0, 2)

	if cfg.CDNDownloadDomain != "" {
		uris = append(uris, mediastore.AccessURI{
			Protocol: mediastore.ProtocolHTTP,
			FilePath: filePath,
			BaseURL:  fmt.Sprintf("http://%s", cfg.CDNDownloadDomain),
		})
	} else {
		uris = append(uris, mediastore.AccessURI{
			Protocol: mediastore.ProtocolHTTP,
			FilePath: filePath,
			BaseURL:  bucketURL(cfg.BucketName),
		})
	}

	if cfg.CDNStreamingDomain != "" {
		uris = append(uris, mediastore.AccessURI{
			Protocol: mediastore.ProtocolRTMP,
			FilePath: filePath,
			BaseURL:  fmt.Sprintf("http://%s/cfx/st", cfg.CDNStreamingDomain),
		})
	}

	return uris
}

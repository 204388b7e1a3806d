package s3driver

import (
	"context"
	"strings"

	mediastore "github.com/seanbradley/mediacore-aws"
)

// CrossdomainKey is the well-known bucket-root key browsers fetch the
// cross-origin policy from.
const CrossdomainKey = "crossdomain.xml"

// crossdomainXML permits uploads from any origin. Browser-based direct
// uploads are refused by plugin runtimes until this file is present at the
// bucket root.
const crossdomainXML = `<?xml version="1.0"?>
<!DOCTYPE cross-domain-policy SYSTEM
"http://www.macromedia.com/xml/dtds/cross-domain-policy.dtd">
<cross-domain-policy>
	<allow-access-from domain="*" secure="false" />
</cross-domain-policy>
`

// UploadCrossdomainPolicy uploads the permissive cross-origin policy file to
// the bucket root with public-read access, then verifies it landed.
func UploadCrossdomainPolicy(ctx context.Context, store mediastore.ObjectStore) error {
	if err := store.Put(ctx, CrossdomainKey, strings.NewReader(crossdomainXML), "application/xml", nil); err != nil {
		return err
	}

	exists, err := store.Exists(ctx, CrossdomainKey)
	if err != nil {
		return err
	}
	if !exists {
		return mediastore.NewStorageError(mediastore.ErrVerification,
			"%s is missing after upload", CrossdomainKey)
	}
	return nil
}

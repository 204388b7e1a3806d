package s3driver

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	mediastore "github.com/seanbradley/mediacore-aws"
)

const (
	// uploadACL is applied to every stored object; this system never stores
	// private objects.
	uploadACL = "public-read"

	// successActionStatus makes S3 answer the POST with an XML body instead
	// of redirecting the browser.
	successActionStatus = "201"

	// policyValidity is the expiry window S3 itself enforces on the signed
	// policy.
	policyValidity = 4 * time.Hour

	// maxLengthSlack leaves room for the rest of the multipart form data on
	// top of the file bytes.
	maxLengthSlack = 1048576

	// filePostName is the form field the file bytes must be attached under.
	filePostName = "file"

	expirationFormat = "2006-01-02T15:04:05.000Z"
)

// PolicyDocument is the JSON structure S3 validates a browser's multipart
// POST against. Every condition the store will check must be listed; an
// unlisted condition makes the store reject the upload.
type PolicyDocument struct {
	Expiration string `json:"expiration"`
	Conditions []any  `json:"conditions"`
}

// UploadAuthorization is a time-limited, tamper-evident authorization for one
// browser-direct upload. It is computed on demand and never persisted.
type UploadAuthorization struct {
	// UploadURL is the bucket's public multipart POST endpoint.
	UploadURL string

	// Fields are the form fields the client must submit unmodified,
	// including the encoded policy and its signature.
	Fields map[string]string

	// FilePostName is the form field the file bytes belong under.
	FilePostName string
}

// Authorizer builds signed browser-direct-upload authorizations. The zero
// value is not usable; construct with NewAuthorizer.
type Authorizer struct {
	now func() time.Time
}

// NewAuthorizer returns an Authorizer reading the wall clock.
func NewAuthorizer() *Authorizer {
	return &Authorizer{now: time.Now}
}

// Authorize builds the upload authorization for one upload attempt: a policy
// document pinning bucket, key, ACL, status, content type and a length range
// of [filesize, filesize+1MiB], base64-encoded and signed with the secret
// key. A client cannot alter any pinned condition without invalidating the
// signature, because the store revalidates the signature against the policy
// it receives.
func (a *Authorizer) Authorize(cfg mediastore.StorageConfig, key, contentType string, filesize int64) (*UploadAuthorization, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	expiration := a.now().UTC().Add(policyValidity).Format(expirationFormat)
	doc := PolicyDocument{
		Expiration: expiration,
		Conditions: []any{
			map[string]string{"bucket": cfg.BucketName},

			// Pin the POST data below so the client cannot tamper with it.
			map[string]string{"key": key},
			map[string]string{"acl": uploadACL},
			map[string]string{"success_action_status": successActionStatus},
			map[string]string{"Content-Type": contentType},

			// Allow (and require) the extra Filename var the browser adds.
			[]any{"starts-with", "$Filename", ""},

			// Enforce the filesize we were given, leaving some extra room
			// for the rest of the form data.
			[]any{"content-length-range", filesize, filesize + maxLengthSlack},
		},
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, mediastore.NewStorageError(mediastore.ErrInvalidConfig, "unable to serialize upload policy: %v", err)
	}
	policy := base64.StdEncoding.EncodeToString(raw)
	signature := Sign(cfg.SecretKey, policy)

	return &UploadAuthorization{
		UploadURL: bucketURL(cfg.BucketName),
		Fields: map[string]string{
			"AWSAccessKeyId":        cfg.AccessKey,
			"key":                   key,
			"acl":                   uploadACL,
			"success_action_status": successActionStatus,
			"Policy":                policy,
			"Signature":             signature,
			"Content-Type":          contentType,
		},
		FilePostName: filePostName,
	}, nil
}

// Sign computes the base64 HMAC-SHA1 signature of an encoded policy. It is a
// pure function of the secret key and the encoded policy bytes.
func Sign(secretKey, encodedPolicy string) string {
	mac := hmac.New(sha1.New, []byte(secretKey))
	mac.Write([]byte(encodedPolicy))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// bucketURL returns the bucket's public endpoint.
func bucketURL(bucket string) string {
	return fmt.Sprintf("https://%s.s3.amazonaws.com/", bucket)
}

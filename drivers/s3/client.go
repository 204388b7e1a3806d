package s3driver

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog/log"
	mediastore "github.com/seanbradley/mediacore-aws"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// defaultRegion is used when building the AWS client; the bucket URLs this
// engine produces are region-agnostic.
const defaultRegion = "us-east-1"

type s3API interface {
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Client wraps authenticated object-level requests against one bucket.
// It implements mediastore.ObjectStore.
type Client struct {
	api    s3API
	bucket string
}

// Connect builds an authenticated client for the configured bucket. It fails
// fast on an unusable configuration instead of attempting network calls with
// empty credentials, and reports credential or transport problems as a
// connection error.
func Connect(ctx context.Context, cfg mediastore.StorageConfig) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(defaultRegion),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to load AWS config")
		return nil, mediastore.NewStorageError(mediastore.ErrConnection,
			"there was an error connecting to Amazon S3; please make sure that you have entered the correct credentials in your settings")
	}

	return &Client{
		api:    s3.NewFromConfig(awsCfg),
		bucket: cfg.BucketName,
	}, nil
}

// Put uploads body under key with the given content type and metadata. Every
// stored object is left publicly readable.
func (c *Client) Put(ctx context.Context, key string, body io.Reader, contentType string, metadata map[string]string) error {
	input := &s3.PutObjectInput{
		Bucket:   aws.String(c.bucket),
		Key:      aws.String(key),
		Body:     body,
		ACL:      types.ObjectCannedACLPublicRead,
		Metadata: metadata,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := c.api.PutObject(ctx, input); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to upload object to S3")
		return c.classify(err, mediastore.ErrWrite, "the object store rejected the upload of %q", key)
	}
	return nil
}

// Exists checks whether an object with the given key is present in the bucket.
func (c *Client) Exists(ctx context.Context, key string) (bool, error) {
	_, err := c.api.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		log.Error().Err(err).Str("key", key).Msg("failed to check if object exists in S3")
		return false, c.classify(err, mediastore.ErrConnection, "unable to check %q on S3", key)
	}
	return true, nil
}

// Metadata reads back the metadata of the object stored under key. An absent
// object reports mediastore.ErrNotFound.
func (c *Client) Metadata(ctx context.Context, key string) (map[string]string, error) {
	out, err := c.api.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, mediastore.NewStorageError(mediastore.ErrNotFound, "object %q not found on S3", key)
		}
		log.Error().Err(err).Str("key", key).Msg("failed to read object metadata from S3")
		return nil, c.classify(err, mediastore.ErrConnection, "unable to read metadata of %q on S3", key)
	}
	return out.Metadata, nil
}

// Delete removes the object stored under key and verifies the removal with a
// follow-up existence check; the store's delete acknowledgement is not
// trusted alone. Deleting an absent object reports mediastore.ErrNotFound.
func (c *Client) Delete(ctx context.Context, key string) error {
	exists, err := c.Exists(ctx, key)
	if err != nil {
		return err
	}
	if !exists {
		return mediastore.NewStorageError(mediastore.ErrNotFound, "media not found on S3")
	}

	if _, err := c.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete object from S3")
		return c.classify(err, mediastore.ErrDelete, "failed to delete %q from S3", key)
	}

	exists, err = c.Exists(ctx, key)
	if err != nil {
		return err
	}
	if exists {
		return mediastore.NewStorageError(mediastore.ErrVerification, "failed to delete media from S3")
	}
	return nil
}

// classify maps an AWS SDK error onto the storage error taxonomy: bucket
// access problems keep their own kind so the host can alert administrators,
// API rejections take the supplied kind, and everything else (transport I/O)
// is a connection error a future retry layer may consider retryable.
func (c *Client) classify(err error, kind error, format string, args ...any) error {
	var apiErr interface{ ErrorCode() string }
	if !errors.As(err, &apiErr) {
		return mediastore.NewStorageError(mediastore.ErrConnection,
			"there was an error connecting to Amazon S3; please make sure that you have entered the correct credentials in your settings")
	}
	switch apiErr.ErrorCode() {
	case "NoSuchBucket", "AccessDenied", "AllAccessDisabled":
		return mediastore.NewStorageError(mediastore.ErrBucketAccess, "unable to access S3 bucket %q", c.bucket)
	}
	return mediastore.NewStorageError(kind, format, args...)
}

func isNotFound(err error) bool {
	var apiErr interface{ ErrorCode() string }
	if !errors.As(err, &apiErr) {
		return false
	}
	code := apiErr.ErrorCode()
	return code == "NotFound" || code == "NoSuchKey"
}

var _ mediastore.ObjectStore = (*Client)(nil)

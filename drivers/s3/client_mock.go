package s3driver

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// mockS3API simulates the narrow S3 surface the client consumes.
type mockS3API struct {
	putErr    error
	deleteErr error

	// headErrs are successive HeadObject outcomes (nil = found); the delete
	// flow heads before and after the delete call. When exhausted, headErr
	// is used.
	headErrs []error
	headErr  error
	headOut  *s3.HeadObjectOutput

	putInputs    []*s3.PutObjectInput
	deleteInputs []*s3.DeleteObjectInput
	headInputs   []*s3.HeadObjectInput
}

func (m *mockS3API) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	m.deleteInputs = append(m.deleteInputs, params)
	if m.deleteErr != nil {
		return nil, m.deleteErr
	}
	return &s3.DeleteObjectOutput{}, nil
}

func (m *mockS3API) HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	m.headInputs = append(m.headInputs, params)

	err := m.headErr
	if len(m.headErrs) > 0 {
		err = m.headErrs[0]
		m.headErrs = m.headErrs[1:]
	}
	if err != nil {
		return nil, err
	}
	if m.headOut != nil {
		return m.headOut, nil
	}
	return &s3.HeadObjectOutput{}, nil
}

func (m *mockS3API) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	m.putInputs = append(m.putInputs, params)
	if m.putErr != nil {
		return nil, m.putErr
	}
	return &s3.PutObjectOutput{}, nil
}

// mockAPIError mimics a generic S3 API rejection.
type mockAPIError struct {
	code string
}

func (e *mockAPIError) Error() string     { return e.code }
func (e *mockAPIError) ErrorCode() string { return e.code }

// mockNotFoundError mimics the API error S3 answers HeadObject with for an
// absent object.
type mockNotFoundError struct{}

func (e *mockNotFoundError) Error() string     { return "NotFound" }
func (e *mockNotFoundError) ErrorCode() string { return "NotFound" }

// mockAccessDeniedError mimics the API error S3 answers with when the bucket
// is not accessible to the caller.
type mockAccessDeniedError struct{}

func (e *mockAccessDeniedError) Error() string     { return "AccessDenied" }
func (e *mockAccessDeniedError) ErrorCode() string { return "AccessDenied" }

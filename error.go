package mediastore

import (
	"errors"
	"fmt"
)

var (
	ErrBucketAccess      = errors.New("mediastore: unable to access bucket")
	ErrConnection        = errors.New("mediastore: cannot connect to object store")
	ErrDelete            = errors.New("mediastore: delete failed")
	ErrInvalidConfig     = errors.New("mediastore: invalid configuration")
	ErrNotFound          = errors.New("mediastore: object not found")
	ErrUnsupportedUpload = errors.New("mediastore: unsupported upload content type")
	ErrVerification      = errors.New("mediastore: storage state verification failed")
	ErrWrite             = errors.New("mediastore: object store rejected write")
)

// StorageError is the single user-facing error category all storage failures
// are surfaced as. It carries a human-readable message for the admin UI and
// unwraps to one of the sentinel kinds above, so callers can branch with
// errors.Is (e.g. treat ErrNotFound as already-deleted while alarming on
// ErrVerification).
type StorageError struct {
	Kind    error
	Message string
}

func (e *StorageError) Error() string { return e.Message }

func (e *StorageError) Unwrap() error { return e.Kind }

// NewStorageError builds a StorageError of the given kind with a formatted
// human-readable message.
func NewStorageError(kind error, format string, args ...any) *StorageError {
	return &StorageError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

package cked

import (
	"errors"

	"github.com/pthm/cked/lib/encoding"
	"github.com/pthm/cked/lib/jsenc"
)

// Sentinel errors for editor operations.
var (
	ErrUnknownMethod    = errors.New("cked: unknown creation method")
	ErrMissingName      = errors.New("cked: editor name is required")
	ErrInvalidProfile   = errors.New("cked: invalid profile")
	ErrInvalidSnapshot  = errors.New("cked: invalid configuration snapshot")
	ErrDecryptFailed    = errors.New("cked: snapshot decryption failed")
	ErrSignatureInvalid = errors.New("cked: snapshot signature verification failed")
	ErrTooDeep          = jsenc.ErrTooDeep
	ErrUnsupportedValue = jsenc.ErrUnsupportedValue
)

// IsSnapshotError checks if err came from reading a stored configuration.
func IsSnapshotError(err error) bool {
	return errors.Is(err, ErrInvalidSnapshot) ||
		errors.Is(err, ErrDecryptFailed) ||
		errors.Is(err, ErrSignatureInvalid)
}

// wrapEncodingError wraps encoding package errors with cked sentinel errors.
func wrapEncodingError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, encoding.ErrInvalidFormat) {
		return ErrInvalidSnapshot
	}
	if errors.Is(err, encoding.ErrSignatureInvalid) {
		return ErrSignatureInvalid
	}
	if errors.Is(err, encoding.ErrDecryptFailed) {
		return ErrDecryptFailed
	}
	return err
}

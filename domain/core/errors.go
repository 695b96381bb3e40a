package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Training input errors
	ErrInvalidInput = errors.New("invalid training input")
	ErrNoSamples    = fmt.Errorf("%w: no samples supplied", ErrInvalidInput)

	// Configuration errors
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrUnknownPreset        = fmt.Errorf("%w: unknown preset", ErrInvalidConfiguration)
	ErrUnknownBucket        = fmt.Errorf("%w: unknown bucket", ErrInvalidConfiguration)

	// Capability errors
	ErrMissingCapability = errors.New("missing accessor capability")

	// Statistics errors
	ErrDivideByZero = errors.New("division by zero in bucket statistics")

	// Prediction errors
	ErrNoBuckets = errors.New("no buckets configured")
)

// Error constructors with context
func NewConfigurationError(detail string) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, detail)
}

func NewMissingCapabilityError(kind, accessor string) error {
	return fmt.Errorf("%w: no %s accessor registered for %q", ErrMissingCapability, kind, accessor)
}

func NewEmptyBucketError(bucket string) error {
	return fmt.Errorf("%w: bucket %q has no recorded occurrences", ErrDivideByZero, bucket)
}

// Error checking helpers
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsInvalidConfiguration(err error) bool {
	return errors.Is(err, ErrInvalidConfiguration)
}

func IsDivideByZero(err error) bool {
	return errors.Is(err, ErrDivideByZero)
}

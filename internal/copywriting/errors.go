package copywriting

import (
	"errors"
	"fmt"
)

// ErrValidation is the parent of every client input error in this package.
var ErrValidation = errors.New("validation failed")

var (
	// ErrMissingProductName is returned when productName is absent or empty.
	ErrMissingProductName = fmt.Errorf("%w: product name is required", ErrValidation)

	// ErrMissingTargetCustomer is returned when targetCustomer is absent or empty.
	ErrMissingTargetCustomer = fmt.Errorf("%w: target customer is required", ErrValidation)

	// ErrNoFeatures is returned when features normalizes to zero lines.
	ErrNoFeatures = fmt.Errorf("%w: at least one feature is required", ErrValidation)

	// ErrInvalidTemplate is returned when a prompt template cannot be loaded or parsed.
	ErrInvalidTemplate = errors.New("invalid prompt template")

	// ErrUnknownLocale is returned for a prompt locale with no embedded template.
	ErrUnknownLocale = errors.New("unknown prompt locale")
)

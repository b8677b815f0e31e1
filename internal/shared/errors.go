package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")
	ErrUnknownDevice = fmt.Errorf("unknown device profile")

	// Picker errors
	ErrNoItems     = fmt.Errorf("no items to pick from")
	ErrCanceled    = fmt.Errorf("selection canceled")
	ErrInvalidItem = fmt.Errorf("invalid item")

	// Form errors
	ErrDuplicateField = fmt.Errorf("duplicate field name")

	// Input validation errors
	ErrInvalidInput       = fmt.Errorf("invalid input")
	ErrMissingArgument    = fmt.Errorf("missing required argument")
	ErrInvalidArgument    = fmt.Errorf("invalid argument")
	ErrInvalidFlag        = fmt.Errorf("invalid flag value")
	ErrUnsupportedFormat  = fmt.Errorf("unsupported format")
	ErrUnsupportedFileExt = fmt.Errorf("unsupported file extension")
)

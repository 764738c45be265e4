package tensor

import "errors"

// Contract violations raised synchronously by construction and access
// paths. No partially constructed tensor is observable after a failure.
var (
	ErrInvalidShape     = errors.New("invalid shape")
	ErrShapeMismatch    = errors.New("data length does not match shape")
	ErrUnsupportedDtype = errors.New("unsupported dtype")
	ErrAllocation       = errors.New("buffer allocation failed")
	ErrNotImplemented   = errors.New("not implemented for device")
	ErrDtypeMismatch    = errors.New("element type does not match tensor dtype")
	ErrRaggedNested     = errors.New("nested literal is not rectangular")
	ErrNoData           = errors.New("tensor has no backing buffer")
)

package api

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrPrecondition matches every *PreconditionError with errors.Is.
	ErrPrecondition = errors.New("precondition failed")
	// ErrHTTPStatus matches every *HTTPStatusError with errors.Is.
	ErrHTTPStatus = errors.New("unexpected http status")
)

var _ error = (*PreconditionError)(nil)

// PreconditionError is returned, before any request is sent, when an operation is
// missing required input: identity fields or path parameters.
type PreconditionError struct {
	Operation Operation
	// Missing lists the absent fields, e.g. "session.id" or "feedId".
	Missing []string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: missing required %s", e.Operation, strings.Join(e.Missing, ", "))
}

func (e *PreconditionError) Is(target error) bool {
	return target == ErrPrecondition
}

var _ error = (*HTTPStatusError)(nil)

// HTTPStatusError is returned when the API answers with a non-2xx status.
// The body is kept as received and is never decoded.
type HTTPStatusError struct {
	Operation  Operation
	StatusCode int
	Body       []byte
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("%s failed: %d", e.Operation, e.StatusCode)
}

func (e *HTTPStatusError) Is(target error) bool {
	return target == ErrHTTPStatus
}

package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrBackendProxy reports that the completion proxy failed or returned
	// an unusable reply.
	ErrBackendProxy = errors.New("failed to get response from backend proxy; check server logs for details")

	// ErrResponseFormat reports that the model output could not be reduced
	// to valid structured data.
	ErrResponseFormat = errors.New("could not understand the data format from the AI: the response was not valid JSON")

	// ErrMissingAbstract is returned when an article without an abstract is
	// submitted for analysis.
	ErrMissingAbstract = errors.New("missing abstract")

	errNoChoices = errors.New("response contained no choices")
)

// ProxyError carries the details of a failed proxy call. StatusCode is zero
// when the request never produced an HTTP response.
type ProxyError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *ProxyError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d)", ErrBackendProxy.Error(), e.StatusCode)
	}
	return ErrBackendProxy.Error()
}

func (e *ProxyError) Unwrap() error { return e.Err }

func (e *ProxyError) Is(target error) bool { return target == ErrBackendProxy }

// Transient reports whether a retry could plausibly succeed.
func (e *ProxyError) Transient() bool {
	return e.StatusCode == 0 || e.StatusCode == 429 || e.StatusCode >= 500
}

// FormatError carries the raw model output that failed to parse.
type FormatError struct {
	Raw string
	Err error
}

func (e *FormatError) Error() string { return ErrResponseFormat.Error() }

func (e *FormatError) Unwrap() error { return e.Err }

func (e *FormatError) Is(target error) bool { return target == ErrResponseFormat }

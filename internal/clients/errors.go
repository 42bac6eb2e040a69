package clients

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is the upstream 404: the API has nothing for the query.
	ErrNotFound = errors.New("not found upstream")

	// ErrUpstream matches every *UpstreamError through errors.Is.
	ErrUpstream = errors.New("upstream failure")

	// ErrMalformedItem marks a single result entry that could not be parsed.
	// It is logged and the entry skipped; lookups never return it.
	ErrMalformedItem = errors.New("malformed result item")
)

// UpstreamError covers connectivity failures, timeouts, unexpected status
// codes and undecodable payloads.
type UpstreamError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: upstream returned status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}

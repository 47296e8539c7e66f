package apperr

import (
	"errors"
	"fmt"
)

// ErrMethodNotAllowed is returned for any upload request that is not a POST.
var ErrMethodNotAllowed = errors.New("method not allowed")

// ErrMalformedRequest indicates the body could not be read as multipart.
var ErrMalformedRequest = errors.New("malformed multipart request")

// ErrMissingFile indicates no JPEG/PNG part named "file" was received.
var ErrMissingFile = errors.New("no file uploaded")

// ErrInvalidRecordID indicates a missing, non-numeric or non-positive recordId.
var ErrInvalidRecordID = errors.New("invalid record id")

// ErrFileTooLarge indicates the uploaded part exceeded the size cap.
var ErrFileTooLarge = errors.New("file exceeds the maximum upload size")

// UpstreamError is a non-success response from the upstream table service.
type UpstreamError struct {
	Op      string
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("upstream request failed with status %d", e.Status)
}

// ConfigError reports a required setting that is absent.
type ConfigError struct {
	Var string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing required environment variable %s", e.Var)
}

// IsUpstream reports whether err wraps an UpstreamError and returns it.
func IsUpstream(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

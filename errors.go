package rcv1go

import (
	"errors"
	"fmt"

	"github.com/hupe1980/rcv1go/permutation"
)

var (
	// ErrDownloadDisabled is returned when required artifacts are missing
	// from the cache and downloading was disabled. It wraps the underlying
	// cache not-found error.
	ErrDownloadDisabled = errors.New("dataset not cached and download is disabled")

	// ErrInconsistentDataset indicates the vector files and the topic file
	// do not describe the same document set, so their rows cannot be
	// aligned.
	ErrInconsistentDataset = permutation.ErrInconsistent
)

// ErrMalformedArchive indicates a downloaded archive could not be
// decompressed or parsed.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrMalformedArchive struct {
	Name  string
	cause error
}

func (e *ErrMalformedArchive) Error() string {
	return fmt.Sprintf("malformed archive %s: %v", e.Name, e.cause)
}

func (e *ErrMalformedArchive) Unwrap() error { return e.cause }

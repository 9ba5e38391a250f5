package submit

import (
	"errors"
	"fmt"
)

var (
	// ErrTransientConnection marks node or transport failures that are worth retrying.
	ErrTransientConnection = errors.New("transient connection error")
	// ErrRevertedExtrinsic means the extrinsic was included but did not succeed.
	ErrRevertedExtrinsic = errors.New("extrinsic reverted")
	// ErrAttemptsExhausted means every allowed attempt failed transiently.
	ErrAttemptsExhausted = errors.New("attempts exhausted")
	// ErrReceiptNotFound is returned by ReceiptFinder when the extrinsic is not on chain.
	ErrReceiptNotFound = errors.New("receipt not found")
)

type transientError struct {
	err error
}

func (e *transientError) Error() string {
	return e.err.Error()
}

func (e *transientError) Unwrap() []error {
	return []error{ErrTransientConnection, e.err}
}

// Transient marks err as retryable. It returns nil for a nil err.
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return &transientError{err: err}
}

// IsTransient reports whether err is retryable.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransientConnection)
}

// SubmissionError is the terminal failure of a submission.
type SubmissionError struct {
	Call     string
	Attempts int
	State    State
	Err      error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submit %s: failed in %s after %d attempt(s): %v", e.Call, e.State, e.Attempts, e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

package models

import "fmt"

// FormatError reports an external service response that violates the
// expected shape or count (embedding count mismatch, unparseable model
// JSON). It is always recovered locally by degrading the batch, field or
// turn that hit it.
type FormatError struct {
	Op     string
	Detail string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: malformed response: %s", e.Op, e.Detail)
}

// StorageError reports an unavailable or failed persistence layer. Corpus
// writes surface it to the caller; read paths degrade to empty results.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: storage failure: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

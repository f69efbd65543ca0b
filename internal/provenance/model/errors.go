package model

import "errors"

var (
	// ErrLookupFailure is returned when a prior transaction cannot be retrieved.
	ErrLookupFailure = errors.New("lookup failure")
	// ErrIndexOutOfRange is returned when an input references a missing output.
	ErrIndexOutOfRange = errors.New("output index out of range")
	// ErrAddressDecodeFailure is returned for non-standard or malformed locking scripts.
	ErrAddressDecodeFailure = errors.New("address decode failure")
	// ErrPreconditionViolation is returned when a step runs on data it cannot accept.
	ErrPreconditionViolation = errors.New("precondition violation")
	// ErrReportWriteFailure is returned when the report file cannot be created or written.
	ErrReportWriteFailure = errors.New("report write failure")
)

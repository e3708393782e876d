package serrors

import (
	"errors"
	"fmt"
)

// Kind classifies failures so HTTP handlers and the provisioner can map them
// to stable response codes.
type Kind string

const (
	KindInvalidInput       Kind = "InvalidInput"
	KindEmptyOrInvalidFile Kind = "EmptyOrInvalidFile"
	KindNoValidRecords     Kind = "NoValidRecords"
	KindConflict           Kind = "ConflictError"
	KindConnection         Kind = "ConnectionError"
	KindPartialFailure     Kind = "PartialFailure"
	KindInternal           Kind = "InternalError"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(err error, kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf walks the error chain and returns the outermost classification, or
// KindInternal when no *Error is present.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

package engine

import (
	"errors"
	"fmt"
)

// Error codes for the booking engine taxonomy.
const (
	CodeInvalidRange = "invalidRange"
	CodeNotAvailable = "notAvailable"
	CodeSlotTaken    = "slotTaken"
	CodeParseEmpty   = "parseEmpty"
	CodePartialApply = "partialApply"
)

type EngineError struct {
	Code    string
	Message string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidRangeError(msg string) error {
	return &EngineError{Code: CodeInvalidRange, Message: msg}
}

func NewNotAvailableError(msg string) error {
	return &EngineError{Code: CodeNotAvailable, Message: msg}
}

func NewSlotTakenError(msg string) error {
	return &EngineError{Code: CodeSlotTaken, Message: msg}
}

func NewParseEmptyError(msg string) error {
	return &EngineError{Code: CodeParseEmpty, Message: msg}
}

func NewPartialApplyError(msg string) error {
	return &EngineError{Code: CodePartialApply, Message: msg}
}

// HasCode reports whether err is an EngineError carrying the given code.
func HasCode(err error, code string) bool {
	var ee *EngineError
	return errors.As(err, &ee) && ee.Code == code
}

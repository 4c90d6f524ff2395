package payroll

import "errors"

const invalidInputMessage = "invalid base salary or days worked"

var ErrInvalidInput = errors.New(invalidInputMessage)

// InvalidInputError reports a base salary or days-worked value that gross pay
// cannot be derived from.
type InvalidInputError struct {
	Field string
	Value string
}

func (e *InvalidInputError) Error() string {
	return invalidInputMessage
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

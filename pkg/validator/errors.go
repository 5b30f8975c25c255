package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrNilObject is returned when an engine is constructed without a host object.
	ErrNilObject = errors.New("validated object cannot be nil")

	// ErrNilRegistry is returned when an engine is given a nil validator registry.
	ErrNilRegistry = errors.New("validator registry cannot be nil")
)

// UnknownRuleError indicates a rule name that resolves to no built-in validator
// and carries no explicit validator reference. This is a configuration error in
// the validation spec and surfaces when rules are assigned, before any value is
// inspected.
type UnknownRuleError struct {
	Rule string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("no validator found for rule '%s'", e.Rule)
}

func IsUnknownRuleError(err error) bool {
	var e *UnknownRuleError
	return errors.As(err, &e)
}

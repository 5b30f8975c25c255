package validator

import "strings"

// presenceValidator fails when the attribute has no meaningful value: nil, or
// a string that is empty after trimming whitespace.
type presenceValidator struct {
	enabled bool
	message string
}

func newPresence(opts Options) (Validator, error) {
	v := &presenceValidator{
		enabled: true,
		message: "can't be blank",
	}

	// Primitive false disables the rule without removing it from the spec.
	if b, ok := opts.Bool(); ok {
		v.enabled = b
	}
	if msg, ok := opts.String("message"); ok {
		v.message = msg
	}
	return v, nil
}

func (v *presenceValidator) Validate(errs *Errors, attribute string, value any) {
	if !v.enabled {
		return
	}

	blank := false
	switch s := value.(type) {
	case nil:
		blank = true
	case string:
		blank = strings.TrimSpace(s) == ""
	}

	if blank {
		errs.Add(attribute, v.message)
	}
}

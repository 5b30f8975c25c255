package validator

import (
	"fmt"
	"unicode/utf8"
)

// lengthValidator checks string length in characters against strict bounds
// ("moreThan", "lessThan") and an exact constraint ("is"). A primitive number
// shorthand means "is". Nil and non-string values are skipped; requiring a
// value at all is the presence rule's job.
type lengthValidator struct {
	moreThan *int
	lessThan *int
	is       *int
	message  string
}

func newLength(opts Options) (Validator, error) {
	v := &lengthValidator{}

	if n, ok := asInt(opts.Raw()); ok {
		v.is = &n
	}
	if n, ok := opts.Int("moreThan"); ok {
		v.moreThan = &n
	}
	if n, ok := opts.Int("lessThan"); ok {
		v.lessThan = &n
	}
	if n, ok := opts.Int("is"); ok {
		v.is = &n
	}
	if msg, ok := opts.String("message"); ok {
		v.message = msg
	}
	return v, nil
}

func (v *lengthValidator) Validate(errs *Errors, attribute string, value any) {
	s, ok := value.(string)
	if !ok {
		return
	}

	n := utf8.RuneCountInString(s)

	if v.is != nil && n != *v.is {
		errs.Add(attribute, v.failure(fmt.Sprintf("must be exactly %d characters", *v.is)))
	}
	if v.moreThan != nil && n <= *v.moreThan {
		errs.Add(attribute, v.failure(fmt.Sprintf("must be longer than %d characters", *v.moreThan)))
	}
	if v.lessThan != nil && n >= *v.lessThan {
		errs.Add(attribute, v.failure(fmt.Sprintf("must be shorter than %d characters", *v.lessThan)))
	}
}

func (v *lengthValidator) failure(defaultMessage string) string {
	if v.message != "" {
		return v.message
	}
	return defaultMessage
}

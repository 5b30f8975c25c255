package validator

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Validator is the strategy implementing one rule. It inspects value, the
// current content of one attribute, and records zero or more failure messages
// into the owning object's error collection. Failures are data, never Go
// errors.
type Validator interface {
	Validate(errs *Errors, attribute string, value any)
}

// ValidateFunc adapts a plain function to the Validator interface.
type ValidateFunc func(errs *Errors, attribute string, value any)

func (fn ValidateFunc) Validate(errs *Errors, attribute string, value any) {
	fn(errs, attribute, value)
}

// Factory constructs a validator from its rule options.
type Factory func(opts Options) (Validator, error)

// Ruleset maps rule names to their options for one attribute. Map semantics
// mean a rule name used twice keeps only the last assignment.
type Ruleset map[string]Options

// Spec maps attribute names to their rulesets.
type Spec map[string]Ruleset

// ParseSpec decodes a YAML validation specification of the shape
//
//	name:
//	  presence: true
//	amount:
//	  length:
//	    moreThan: 3
//	    lessThan: 10
//
// Scalar rule options decode to the primitive form, mappings to the
// structured form.
func ParseSpec(data []byte) (Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, err
	}
	return spec, nil
}

// shouldValidateSuffix marks the per-attribute derived flag that gates
// automatic re-validation. Once a bound widget has both received and lost
// focus, its binding sets "<attribute>ShouldValidate" to true on the host
// object, permanently.
const shouldValidateSuffix = "ShouldValidate"

// ShouldValidateKey returns the host-object key of attribute's derived
// touch-gate flag.
func ShouldValidateKey(attribute string) string {
	return attribute + shouldValidateSuffix
}

// AttributeOf strips the touch-gate suffix from key, recovering the base
// attribute name. ok is false when key is not a gate key.
func AttributeOf(key string) (attribute string, ok bool) {
	base, found := strings.CutSuffix(key, shouldValidateSuffix)
	if !found || base == "" {
		return "", false
	}
	return base, true
}

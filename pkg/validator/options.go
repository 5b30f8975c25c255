package validator

import (
	"gopkg.in/yaml.v3"
)

// Options carries one rule's configuration as a tagged variant: a primitive
// value ("enabled with defaults" or a shorthand constraint), a structured
// parameter map, an explicit validator instance, an inline validation
// function, or an explicit factory. At most one form is set; the zero value
// means "enabled with defaults".
//
// Structured parameters may also carry an explicit validator under the
// reserved "validator" key and nested factory options under "options",
// mirroring the configuration format accepted from data files.
type Options struct {
	value   any
	params  map[string]any
	custom  Validator
	inline  ValidateFunc
	factory Factory
}

// Enabled returns options meaning "rule enabled with defaults".
func Enabled() Options {
	return Options{value: true}
}

// Value returns primitive-form options carrying a shorthand constraint value.
func Value(v any) Options {
	return Options{value: v}
}

// Params returns structured-form options carrying constraint fields.
func Params(m map[string]any) Options {
	return Options{params: m}
}

// With returns options carrying an explicit validator instance; the registry
// uses it directly, bypassing built-in lookup.
func With(v Validator) Options {
	return Options{custom: v}
}

// WithFunc returns options wrapping fn as an inline validator.
func WithFunc(fn ValidateFunc) Options {
	return Options{inline: fn}
}

// WithFactory returns options carrying an explicit strategy constructor. The
// factory receives opts (typically built with Params carrying an "options"
// key, or the factory's own configuration) when the rule is resolved.
func WithFactory(f Factory, opts Options) Options {
	return Options{factory: f, value: opts.value, params: opts.params}
}

// Bool reports the primitive form as a bool. ok is false when the options are
// not primitive-bool form.
func (o Options) Bool() (value, ok bool) {
	b, ok := o.value.(bool)
	return b, ok
}

// Raw returns the primitive-form value, or nil for other forms.
func (o Options) Raw() any {
	return o.value
}

// Param returns the structured-form field under key.
func (o Options) Param(key string) (any, bool) {
	v, ok := o.params[key]
	return v, ok
}

// Int returns the structured-form field under key as an int, accepting the
// integer and float shapes produced by YAML and JSON decoding.
func (o Options) Int(key string) (int, bool) {
	return asInt(o.params[key])
}

// String returns the structured-form field under key as a string.
func (o Options) String(key string) (string, bool) {
	s, ok := o.params[key].(string)
	return s, ok
}

// IsZero reports whether no form is set.
func (o Options) IsZero() bool {
	return o.value == nil && o.params == nil && o.custom == nil && o.inline == nil && o.factory == nil
}

// nested returns the options an explicit factory should receive: the value
// under the reserved "options" key if present, otherwise the options as-is.
func (o Options) nested() Options {
	raw, ok := o.params["options"]
	if !ok {
		return o
	}
	if m, ok := raw.(map[string]any); ok {
		return Options{params: m}
	}
	return Options{value: raw}
}

// UnmarshalYAML decodes scalars and sequences into the primitive form and
// mappings into the structured form, so a whole Spec can be loaded from a
// configuration document.
func (o *Options) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case map[string]any:
		*o = Options{params: v}
	default:
		*o = Options{value: v}
	}
	return nil
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

package validator

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/dmitrymomot/liveform/pkg/observable"
)

// Engine binds a validation spec to one observable host object. It owns the
// object's error collection, dispatches each rule to a validator through the
// registry, and installs the two automatic re-validation triggers:
// value-change and focus-out. All validation is synchronous and
// single-threaded; Validate and ValidateProperty run to completion before
// returning.
type Engine struct {
	obj      *observable.Object
	registry *Registry
	logger   *slog.Logger

	rules  Spec
	chains map[string][]resolvedRule

	errs      *Errors
	validated bool // at least one full Validate has run

	validateOnValueChange bool
	validateOnFocusOut    bool

	wired    map[string]wiring
	inFlight map[string]bool

	valid      bool
	validDirty bool

	pending Spec // rules passed via WithRules, applied at the end of New
}

type resolvedRule struct {
	name      string
	validator Validator
}

// wiring tracks which observer kinds are already installed for an attribute,
// so re-assigning rules never registers duplicates.
type wiring struct {
	valueChange bool
	focusOut    bool
}

// Option configures an engine during construction.
type Option func(*Engine) error

// WithRules assigns the validation spec. Equivalent to calling SetRules after
// New; configuration errors in the spec fail construction.
func WithRules(rules Spec) Option {
	return func(e *Engine) error {
		e.pending = rules
		return nil
	}
}

// WithRegistry replaces the default registry (built-ins pre-registered).
func WithRegistry(r *Registry) Option {
	return func(e *Engine) error {
		if r == nil {
			return ErrNilRegistry
		}
		e.registry = r
		return nil
	}
}

// WithValidateOnValueChange enables automatic re-validation of an attribute
// whenever its value changes, once the attribute has been touched or a full
// Validate has run.
func WithValidateOnValueChange() Option {
	return func(e *Engine) error {
		e.validateOnValueChange = true
		return nil
	}
}

// WithValidateOnFocusOut enables automatic re-validation of an attribute when
// its touch gate flips: the first time a bound widget has both received and
// lost focus.
func WithValidateOnFocusOut() Option {
	return func(e *Engine) error {
		e.validateOnFocusOut = true
		return nil
	}
}

// WithLogger sets a logger for debug-level trigger and pass reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger != nil {
			e.logger = logger
		}
		return nil
	}
}

// New creates an engine bound to obj.
func New(obj *observable.Object, opts ...Option) (*Engine, error) {
	if obj == nil {
		return nil, ErrNilObject
	}

	e := &Engine{
		obj:      obj,
		registry: NewRegistry(),
		logger:   slog.New(slog.DiscardHandler),
		chains:   make(map[string][]resolvedRule),
		wired:    make(map[string]wiring),
		inFlight: make(map[string]bool),
		valid:    true,
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	// Rules are applied after every option so trigger flags configured in any
	// order still affect the wiring.
	if e.pending != nil {
		rules := e.pending
		e.pending = nil
		if err := e.SetRules(rules); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// MustNew is like New but panics on error.
func MustNew(obj *observable.Object, opts ...Option) *Engine {
	e, err := New(obj, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create validation engine: %v", err))
	}
	return e
}

// SetRules assigns the validation spec. Every (attribute, rule) pair is
// resolved against the registry eagerly, so an unknown rule name surfaces
// here, before any value is inspected. Assigning rules also installs the
// configured auto-validation observers; re-assignment is idempotent and never
// duplicates an observer already installed for an attribute.
func (e *Engine) SetRules(rules Spec) error {
	chains := make(map[string][]resolvedRule, len(rules))
	for attr, ruleset := range rules {
		chain := make([]resolvedRule, 0, len(ruleset))
		for _, name := range slices.Sorted(maps.Keys(ruleset)) {
			v, err := e.registry.Get(name, ruleset[name])
			if err != nil {
				return fmt.Errorf("attribute '%s': %w", attr, err)
			}
			chain = append(chain, resolvedRule{name: name, validator: v})
		}
		chains[attr] = chain
	}

	e.rules = rules
	e.chains = chains
	e.wire()
	return nil
}

// Rules returns the currently assigned validation spec.
func (e *Engine) Rules() Spec {
	return e.rules
}

// Errors returns the engine's error collection, creating it on first use.
// The collection lives as long as the engine and is mutated only by
// validation passes.
func (e *Engine) Errors() *Errors {
	if e.errs == nil {
		e.errs = NewErrors()
		e.errs.Subscribe(func() { e.validDirty = true })
	}
	return e.errs
}

// Validate clears the error collection and re-runs every attribute's rule
// chain, inside a single change-notification bracket so dependents of the
// collection recompute once, never observing a partially cleared state.
// It returns the resulting overall validity and marks the object as having
// completed at least one full validation, which arms the value-change
// trigger for all attributes.
func (e *Engine) Validate() bool {
	e.validated = true

	errs := e.Errors()
	errs.update(func() {
		errs.Clear()
		for _, attr := range slices.Sorted(maps.Keys(e.chains)) {
			e.runChain(errs, attr)
		}
	})

	valid := e.IsValid()
	e.logger.Debug("full validation pass", slog.Bool("valid", valid), slog.Int("errors", errs.Len()))
	return valid
}

// ValidateProperty removes only attribute's prior errors and re-runs its rule
// chain, inside its own single change-notification bracket. It returns
// whether the attribute is now error-free; an attribute with no configured
// rules is trivially error-free.
func (e *Engine) ValidateProperty(attribute string) bool {
	errs := e.Errors()

	// A validator re-validating its own attribute synchronously would wipe
	// the in-progress pass's messages; the latch makes the nested call
	// report current state without mutating.
	if e.inFlight[attribute] {
		return !errs.Has(attribute)
	}

	errs.update(func() {
		errs.Remove(attribute)
		e.runChain(errs, attribute)
	})

	ok := !errs.Has(attribute)
	e.logger.Debug("attribute validation", slog.String("attribute", attribute), slog.Bool("valid", ok))
	return ok
}

// IsValid reports whether the error collection is empty. The result is
// cached and invalidated by collection changes rather than toggled manually.
func (e *Engine) IsValid() bool {
	if e.validDirty {
		e.valid = e.Errors().Len() == 0
		e.validDirty = false
	}
	return e.valid
}

// runChain executes every rule configured for attribute against its current
// value. A per-attribute latch makes nested synchronous re-validation of the
// same attribute a no-op, bounding validators that mutate the value they are
// validating.
func (e *Engine) runChain(errs *Errors, attribute string) {
	if e.inFlight[attribute] {
		return
	}
	e.inFlight[attribute] = true
	defer delete(e.inFlight, attribute)

	value := e.obj.Get(attribute)
	for _, rule := range e.chains[attribute] {
		rule.validator.Validate(errs, attribute, value)
	}
}

// wire installs the configured auto-validation observers for every attribute
// in the current rules. Per attribute and observer kind, installation happens
// at most once for the engine's lifetime.
func (e *Engine) wire() {
	for attr := range e.chains {
		w := e.wired[attr]

		if e.validateOnValueChange && !w.valueChange {
			attribute := attr
			e.obj.Observe(attribute, func(_ string, _, _ any) {
				e.autoValidate(attribute)
			})
			w.valueChange = true
		}

		if e.validateOnFocusOut && !w.focusOut {
			e.obj.Observe(ShouldValidateKey(attr), func(key string, _, newValue any) {
				flag, ok := newValue.(bool)
				if !ok || !flag {
					return
				}
				if attribute, ok := AttributeOf(key); ok {
					e.autoValidate(attribute)
				}
			})
			w.focusOut = true
		}

		e.wired[attr] = w
	}
}

// autoValidate re-validates attribute iff it has been touched or a full
// Validate has already run; un-touched attributes stay silent until then.
func (e *Engine) autoValidate(attribute string) {
	if !e.obj.GetBool(ShouldValidateKey(attribute)) && !e.validated {
		return
	}
	e.logger.Debug("auto validation trigger", slog.String("attribute", attribute))
	e.ValidateProperty(attribute)
}

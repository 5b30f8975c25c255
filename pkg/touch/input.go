package touch

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/liveform/pkg/observable"
	"github.com/dmitrymomot/liveform/pkg/validator"
)

// Widget-local flag keys. They live on the input's own state, not on the
// bound attribute: several widgets may bind the same attribute and each
// tracks its own focus history.
const (
	focusedInKey  = "hasFocusedIn"
	focusedOutKey = "hasFocusedOut"
)

// Input is one focus-capable widget instance bound to one attribute of a
// target object. Its identity is a generated UUID so multiple inputs bound
// to the same attribute stay distinguishable in logs and tests.
type Input struct {
	id     uuid.UUID
	state  *observable.Object
	target *observable.Object
	source string
}

// NewInput binds a new input to target's attribute named by source and
// installs the binding observer that derives the attribute's touch gate.
func NewInput(target *observable.Object, source string) *Input {
	in := &Input{
		id:     uuid.New(),
		state:  observable.New(),
		target: target,
		source: source,
	}

	derive := func(string, any, any) { in.deriveShouldValidate() }
	in.state.Observe(focusedInKey, derive)
	in.state.Observe(focusedOutKey, derive)
	return in
}

// FocusIn latches the input's "received focus at least once" flag.
func (in *Input) FocusIn() {
	in.state.Set(focusedInKey, true)
}

// FocusOut latches the input's "lost focus at least once" flag.
func (in *Input) FocusOut() {
	in.state.Set(focusedOutKey, true)
}

// Touched reports whether the input has both received and lost focus at
// least once.
func (in *Input) Touched() bool {
	return in.state.GetBool(focusedInKey) && in.state.GetBool(focusedOutKey)
}

// ID returns the input's instance identity.
func (in *Input) ID() uuid.UUID {
	return in.id
}

// Source returns the data-binding source path, the bound attribute name.
func (in *Input) Source() string {
	return in.source
}

// deriveShouldValidate flips the bound attribute's gate the first time both
// widget flags are up. The gate is terminal: it is set exactly once and no
// later focus traffic ever unsets it.
func (in *Input) deriveShouldValidate() {
	if !in.Touched() {
		return
	}

	key := validator.ShouldValidateKey(in.source)
	if in.target.GetBool(key) {
		return
	}
	in.target.Set(key, true)
}

package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/liveform/pkg/observable"
	"github.com/dmitrymomot/liveform/pkg/touch"
	"github.com/dmitrymomot/liveform/pkg/validator"
)

// End-to-end flows: widget focus traffic drives the touch gate, the gate and
// value edits drive the engine, and the engine's error collection drives
// overall validity.

func TestIntegration_FocusOutThenEdit(t *testing.T) {
	obj := observable.New()
	engine := validator.MustNew(obj,
		validator.WithRules(validator.Spec{
			"name": {"presence": validator.Enabled()},
		}),
		validator.WithValidateOnValueChange(),
		validator.WithValidateOnFocusOut(),
	)
	input := touch.NewInput(obj, "name")

	// Tabbing through the empty input: enter, leave, nothing typed.
	input.FocusIn()
	input.FocusOut()

	require.True(t, engine.Errors().Has("name"), "leaving the untouched empty input must surface the presence error")
	assert.Equal(t, []string{"can't be blank"}, engine.Errors().Messages("name"))
	assert.False(t, engine.IsValid())

	// Typing a value now re-validates on change, since the gate is up.
	obj.Set("name", "Ada")
	assert.False(t, engine.Errors().Has("name"))
	assert.True(t, engine.IsValid())

	// Deleting it again re-validates too.
	obj.Set("name", "")
	assert.False(t, engine.IsValid())
}

func TestIntegration_EditBeforeTouchStaysSilent(t *testing.T) {
	obj := observable.New()
	engine := validator.MustNew(obj,
		validator.WithRules(validator.Spec{
			"name": {"presence": validator.Enabled()},
		}),
		validator.WithValidateOnValueChange(),
		validator.WithValidateOnFocusOut(),
	)
	input := touch.NewInput(obj, "name")

	// The user types before ever leaving the field: no auto-validation yet.
	input.FocusIn()
	obj.Set("name", "A")
	obj.Set("name", "")
	assert.True(t, engine.Errors().IsEmpty())
	assert.True(t, engine.IsValid())

	// Leaving the field closes the gate and validates the current state.
	input.FocusOut()
	assert.False(t, engine.IsValid())
}

func TestIntegration_LengthScenario(t *testing.T) {
	obj := observable.New()
	obj.Set("amount", "12345678901") // 11 characters

	engine := validator.MustNew(obj, validator.WithRules(validator.Spec{
		"amount": {"length": validator.Params(map[string]any{"moreThan": 3, "lessThan": 10})},
	}))

	require.False(t, engine.Validate())
	assert.True(t, engine.Errors().Has("amount"))

	obj.Set("amount", "12345")
	assert.True(t, engine.Validate())
	assert.False(t, engine.Errors().Has("amount"))
	assert.True(t, engine.IsValid())
}

func TestIntegration_FullValidateArmsAllTriggers(t *testing.T) {
	obj := observable.New()
	engine := validator.MustNew(obj,
		validator.WithRules(validator.Spec{
			"name":  {"presence": validator.Enabled()},
			"email": {"presence": validator.Enabled()},
		}),
		validator.WithValidateOnValueChange(),
	)

	// Explicit submit-style validation arms the value-change trigger for
	// every attribute, touched or not.
	require.False(t, engine.Validate())

	obj.Set("name", "Ada")
	assert.False(t, engine.Errors().Has("name"))
	assert.True(t, engine.Errors().Has("email"))

	obj.Set("email", "ada@example.com")
	assert.True(t, engine.IsValid())
}

func TestIntegration_MultipleRulesPerAttribute(t *testing.T) {
	obj := observable.New()
	engine := validator.MustNew(obj,
		validator.WithRules(validator.Spec{
			"password": {
				"presence": validator.Enabled(),
				"length":   validator.Params(map[string]any{"moreThan": 7}),
			},
		}),
		validator.WithValidateOnFocusOut(),
	)
	input := touch.NewInput(obj, "password")

	obj.Set("password", "short")
	input.FocusIn()
	input.FocusOut()

	require.True(t, engine.Errors().Has("password"))
	assert.Equal(t, []string{"must be longer than 7 characters"}, engine.Errors().Messages("password"))

	obj.Set("password", "")
	engine.ValidateProperty("password")
	assert.Equal(t, 2, engine.Errors().Len(), "blank password violates both rules")
}

func TestIntegration_FullMessagesRendering(t *testing.T) {
	obj := observable.New()
	engine := validator.MustNew(obj, validator.WithRules(validator.Spec{
		"firstName": {"presence": validator.Enabled()},
	}))

	require.False(t, engine.Validate())
	assert.Equal(t, []string{"First name can't be blank"}, engine.Errors().FullMessages())
}

// Package validator provides a reactive validation engine for live-edited
// objects: any observable object can declare per-attribute rules and get
// automatic error tracking, both on explicit request and in response to
// user-driven state changes such as value edits and losing input focus.
//
// This is not a schema validator for data at rest. Validation failures are
// data, never Go errors: each pass rewrites an attribute-keyed Errors
// collection, and an empty collection is the one and only definition of
// valid.
//
// # Architecture
//
// Core building blocks:
//   - Errors    – ordered, attribute-keyed collection of failure messages,
//     owned exclusively by one engine and rewritten by validation passes
//     inside single change-notification brackets
//   - Options   – tagged variant carrying one rule's configuration: a
//     primitive shorthand, structured parameters, or an explicit validator
//   - Registry  – explicit rule-name-to-factory mapping with presence and
//     length pre-registered; no ambient global registry
//   - Validator – the strategy contract: inspect one attribute's value,
//     append zero or more messages
//   - Engine    – binds a Spec to an observable.Object, exposes Validate,
//     ValidateProperty and IsValid, and wires the automatic triggers
//
// Two automatic triggers decide when a re-validation must fire. The
// value-change trigger observes each declared attribute and re-validates it
// on writes. The focus-out trigger observes the attribute's derived
// "<attribute>ShouldValidate" flag, which a focus-capable widget binding
// (see the touch package) latches to true the first time the user has both
// entered and left the input. Both triggers are gated: nothing fires for an
// attribute the user has never touched, unless a full Validate has already
// run.
//
// # Usage
//
//	obj := observable.New()
//	engine := validator.MustNew(obj,
//		validator.WithRules(validator.Spec{
//			"name":   {"presence": validator.Enabled()},
//			"amount": {"length": validator.Params(map[string]any{"moreThan": 3, "lessThan": 10})},
//		}),
//		validator.WithValidateOnValueChange(),
//		validator.WithValidateOnFocusOut(),
//	)
//
//	if !engine.Validate() {
//		for _, msg := range engine.Errors().FullMessages() {
//			// "Name can't be blank", ...
//		}
//	}
//
// # Error Handling
//
// A rule name that resolves to no built-in and carries no explicit validator
// is a configuration error, not a validation failure: SetRules reports it as
// *UnknownRuleError the moment rules are assigned, before any value is
// inspected. Rule violations never surface as Go errors.
//
// # Concurrency
//
// The model is single-threaded and cooperative. Validation runs synchronously
// on the calling context and to completion; the engine takes no locks and
// must not be shared across goroutines without external serialization.
package validator

// Package touch tracks the "touched" interaction pattern for focus-capable
// inputs bound to observable attributes: the user entering and then leaving
// an input at least once each, in any order.
//
// Each Input keeps two monotonic flags on its own observable state, latched
// by FocusIn and FocusOut. A binding observer installed at construction
// watches both flags; the first time both are true it resolves the input's
// data-binding source path and sets "<attribute>ShouldValidate" to true on
// the bound object — once, permanently. The validation engine only ever
// observes that resolved object-level flag, never the widget flags, because
// one attribute may be bound to several differently named inputs at once.
//
// # Usage
//
//	obj := observable.New()
//	input := touch.NewInput(obj, "email")
//
//	input.FocusIn()
//	input.FocusOut() // obj now has emailShouldValidate = true
package touch

// Package observable provides a minimal synchronous observable property store.
//
// An Object holds named attribute values and an explicit observer registry:
// observers are registered per key, and every write to a key notifies its
// observers synchronously, before Set returns to the writer. This gives
// dependent code (such as a validation engine reacting to value edits) a
// deterministic, single-threaded reactive substrate without any hidden
// framework machinery.
//
// # Architecture
//
// Object is a plain map of values plus a map from key to an ordered list of
// Observer callbacks. There is no goroutine, no channel, and deliberately no
// lock: the package targets a single-threaded cooperative model in which
// observers may themselves call Set re-entrantly, and holding a mutex across
// observer invocation would self-deadlock. Callers that need cross-goroutine
// access must serialize it externally.
//
// # Usage
//
//	obj := observable.New()
//	obj.Observe("email", func(key string, oldValue, newValue any) {
//		// react to the write
//	})
//	obj.Set("email", "user@example.com") // observer runs before Set returns
package observable

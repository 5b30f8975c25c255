package observable

// Observer reacts to a write on a single key. It runs synchronously inside
// Set, before control returns to the writer.
type Observer func(key string, oldValue, newValue any)

// Object is an attribute store with per-key change observation.
// It is not safe for concurrent use; see the package documentation.
type Object struct {
	values    map[string]any
	observers map[string][]Observer
}

// New creates an empty Object.
func New() *Object {
	return &Object{
		values:    make(map[string]any),
		observers: make(map[string][]Observer),
	}
}

// Get returns the current value for key, or nil if the key was never set.
func (o *Object) Get(key string) any {
	return o.values[key]
}

// GetString returns the value for key as a string, or "" if the key is unset
// or holds a non-string value.
func (o *Object) GetString(key string) string {
	s, _ := o.values[key].(string)
	return s
}

// GetBool returns the value for key as a bool, or false if the key is unset
// or holds a non-bool value.
func (o *Object) GetBool(key string) bool {
	b, _ := o.values[key].(bool)
	return b
}

// Set stores value under key and synchronously notifies every observer
// registered for that key, in registration order. Observers fire on every
// write, including writes of an equal value; gating on actual change is the
// observer's concern.
func (o *Object) Set(key string, value any) {
	oldValue := o.values[key]
	o.values[key] = value

	// Observers registered during notification are not invoked for this
	// write; range snapshots the slice header before any re-entrant append.
	for _, fn := range o.observers[key] {
		fn(key, oldValue, value)
	}
}

// Observe registers fn to run on every write to key. Nil observers are
// ignored. Registration is append-only; callers that must avoid duplicate
// registrations track that themselves.
func (o *Object) Observe(key string, fn Observer) {
	if fn == nil {
		return
	}
	o.observers[key] = append(o.observers[key], fn)
}

// Observed reports how many observers are registered for key.
func (o *Object) Observed(key string) int {
	return len(o.observers[key])
}

package validator

// Registry resolves rule names to validator instances. Built-ins are
// pre-registered at construction; there is no ambient process-wide registry,
// each engine owns or is given one explicitly.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates a registry with the built-in rules registered:
// "presence" and "length".
func NewRegistry() *Registry {
	r := &Registry{
		factories: make(map[string]Factory),
	}
	r.Register("presence", newPresence)
	r.Register("length", newLength)
	return r
}

// Register binds name to a factory, replacing any previous binding. Nil
// factories are ignored.
func (r *Registry) Register(name string, factory Factory) {
	if factory == nil {
		return
	}
	r.factories[name] = factory
}

// Get resolves a rule name plus options to a validator instance. Resolution
// order: an explicit validator instance in the options wins, then an inline
// function, then an explicit factory (given the nested "options" value when
// present), then a structured "validator" parameter carrying any of those
// shapes, and finally a built-in looked up by name. An unresolvable name is a
// configuration error, reported immediately as *UnknownRuleError rather than
// silently skipping the rule.
func (r *Registry) Get(name string, opts Options) (Validator, error) {
	if opts.custom != nil {
		return opts.custom, nil
	}
	if opts.inline != nil {
		return opts.inline, nil
	}
	if opts.factory != nil {
		return opts.factory(opts.nested())
	}

	if ref, ok := opts.params["validator"]; ok {
		switch v := ref.(type) {
		case Validator:
			return v, nil
		case func(errs *Errors, attribute string, value any):
			return ValidateFunc(v), nil
		case Factory:
			return v(opts.nested())
		case func(opts Options) (Validator, error):
			return Factory(v)(opts.nested())
		}
	}

	factory, ok := r.factories[name]
	if !ok {
		return nil, &UnknownRuleError{Rule: name}
	}
	return factory(opts)
}

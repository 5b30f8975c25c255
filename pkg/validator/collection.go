package validator

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Errors is an ordered, attribute-keyed collection of validation failure
// messages. It is owned exclusively by one validated object: the engine
// creates it lazily on first use and is the only writer during validation
// passes. An attribute key is present iff it currently has recorded errors,
// and Len() == 0 is the sole definition of "valid".
type Errors struct {
	messages map[string][]string
	order    []string // attributes in first-add order

	listeners []func()
	batching  int
	dirty     bool
}

// NewErrors creates an empty collection.
func NewErrors() *Errors {
	return &Errors{
		messages: make(map[string][]string),
	}
}

// Add appends message to attribute's ordered sequence, creating the sequence
// if absent. It does not trigger validation.
func (e *Errors) Add(attribute, message string) {
	if _, ok := e.messages[attribute]; !ok {
		e.order = append(e.order, attribute)
	}
	e.messages[attribute] = append(e.messages[attribute], message)
	e.changed()
}

// Remove clears only attribute's sequence, leaving other attributes intact.
func (e *Errors) Remove(attribute string) {
	if _, ok := e.messages[attribute]; !ok {
		return
	}
	delete(e.messages, attribute)
	e.order = slices.DeleteFunc(e.order, func(a string) bool { return a == attribute })
	e.changed()
}

// Clear empties every attribute's sequence.
func (e *Errors) Clear() {
	if len(e.messages) == 0 {
		return
	}
	e.messages = make(map[string][]string)
	e.order = nil
	e.changed()
}

// Len returns the total message count across all attributes.
func (e *Errors) Len() int {
	total := 0
	for _, msgs := range e.messages {
		total += len(msgs)
	}
	return total
}

// Messages returns a copy of attribute's recorded messages, in add order.
func (e *Errors) Messages(attribute string) []string {
	return slices.Clone(e.messages[attribute])
}

// Has reports whether attribute currently has any recorded errors.
func (e *Errors) Has(attribute string) bool {
	return len(e.messages[attribute]) > 0
}

// Attributes returns the attributes with recorded errors, in first-add order.
func (e *Errors) Attributes() []string {
	return slices.Clone(e.order)
}

// IsEmpty reports whether no errors are recorded at all.
func (e *Errors) IsEmpty() bool {
	return len(e.messages) == 0
}

// Error implements the error interface.
func (e *Errors) Error() string {
	if e.IsEmpty() {
		return "validation failed"
	}

	var parts []string
	for _, attr := range e.order {
		for _, msg := range e.messages[attr] {
			parts = append(parts, fmt.Sprintf("%s: %s", attr, msg))
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// FullMessages renders every error as "<Humanized attribute> <message>",
// e.g. "First name can't be blank".
func (e *Errors) FullMessages() []string {
	var out []string
	for _, attr := range e.order {
		human := humanize(attr)
		for _, msg := range e.messages[attr] {
			out = append(out, human+" "+msg)
		}
	}
	return out
}

// Subscribe registers fn to run after any change to the collection. Inside an
// update bracket fn runs exactly once per bracket, however many mutations
// happened within it.
func (e *Errors) Subscribe(fn func()) {
	if fn == nil {
		return
	}
	e.listeners = append(e.listeners, fn)
}

// update runs mutate inside a single change-notification bracket: listeners
// fire once after mutate returns, never mid-mutation, so no observer can see
// a partially cleared collection.
func (e *Errors) update(mutate func()) {
	e.batching++
	mutate()
	e.batching--

	if e.batching == 0 && e.dirty {
		e.dirty = false
		e.notify()
	}
}

func (e *Errors) changed() {
	if e.batching > 0 {
		e.dirty = true
		return
	}
	e.notify()
}

func (e *Errors) notify() {
	for _, fn := range e.listeners {
		fn()
	}
}

var titleCaser = cases.Title(language.English)

// humanize splits a camelCase attribute name into lowercase words and
// capitalizes the first one: "firstName" -> "First name".
func humanize(attribute string) string {
	if attribute == "" {
		return ""
	}

	var b strings.Builder
	for i, r := range attribute {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(unicode.ToLower(r))
	}

	words := b.String()
	first, rest, found := strings.Cut(words, " ")
	if !found {
		return titleCaser.String(words)
	}
	return titleCaser.String(first) + " " + rest
}

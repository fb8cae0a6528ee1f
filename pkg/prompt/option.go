package prompt

// Option pairs an opaque value with the label shown for it. The value is
// returned from Interact and never displayed; the label is display-only.
// A hint, when present, is shown dimmed in parentheses while the option has
// focus.
type Option[T any] struct {
	Value T
	Label string
	Hint  string

	// active is the multi-select checked state; it only ever changes on the
	// cloned interaction copy, never on the caller's configuration.
	active bool
}

// Opt creates an option without a hint.
func Opt[T any](value T, label string) Option[T] {
	return Option[T]{Value: value, Label: label}
}

// OptHint creates an option with a hint.
func OptHint[T any](value T, label, hint string) Option[T] {
	return Option[T]{Value: value, Label: label, Hint: hint}
}

func (o *Option[T]) toggle() {
	o.active = !o.active
}

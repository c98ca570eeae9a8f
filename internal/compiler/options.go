package compiler

// Default runtime binding names assumed in scope where generated code runs.
const (
	DefaultFactory  = "h"
	DefaultFragment = "Fragment"
)

type options struct {
	factory  string
	fragment string
}

func defaultOptions() options {
	return options{
		factory:  DefaultFactory,
		fragment: DefaultFragment,
	}
}

// Option configures code emission.
type Option func(*options)

// WithFactory sets the name of the element factory called by generated code.
// An empty name keeps the default "h".
func WithFactory(name string) Option {
	return func(o *options) {
		if name != "" {
			o.factory = name
		}
	}
}

// WithFragment sets the name of the multi-root wrapper passed to the factory.
// An empty name keeps the default "Fragment".
func WithFragment(name string) Option {
	return func(o *options) {
		if name != "" {
			o.fragment = name
		}
	}
}

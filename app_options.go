package selene

import "fmt"

// AppOption is a functional option for configuring an App.
type AppOption func(*App) error

// WithRenderer makes the app render through r, so several apps can share
// one set of listeners.
func WithRenderer(r *DOMRenderer) AppOption {
	return func(a *App) error {
		if r == nil {
			return fmt.Errorf("renderer cannot be nil")
		}
		a.renderer = r
		return nil
	}
}

// WithDebugName sets the name used for the app in debug logs.
// Default is "app".
func WithDebugName(name string) AppOption {
	return func(a *App) error {
		if name == "" {
			return fmt.Errorf("debug name cannot be empty")
		}
		a.name = name
		return nil
	}
}

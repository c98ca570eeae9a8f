// Package selene compiles HTML-like templates into JavaScript render
// functions and provides a small Go runtime for the element descriptors
// those functions describe.
//
// Users import this single package for the public API: template
// compilation, reactive state, element descriptors, HTML rendering and
// DOM reconciliation.
package selene

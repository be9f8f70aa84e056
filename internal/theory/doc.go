// Package theory resolves Roman-numeral harmony against a key and derives
// substitutions, progression scores and the hexagonal chord layout from it.
//
// Every function is pure: inputs are never mutated and results share no
// backing arrays with them, so callers may use the package from any goroutine.
package theory

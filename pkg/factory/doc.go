// Package factory implements the Factory pattern through two toy domains:
// an abstract factory producing platform-matched UI component families, and
// a simple factory producing database connections. Resolution is a pure
// lookup: the same key always yields the same concrete type, and an
// unmapped key is an error.
package factory

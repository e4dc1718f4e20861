// Package decorator implements the Decorator pattern through three toy
// domains: coffee shop beverages, request-handling middleware, and markdown
// text formatting. Each decorator wraps exactly one component, built
// bottom-up at construction, and applies one additional transformation
// around delegation. Middleware decorators may short-circuit instead of
// delegating.
package decorator

// Package state implements the State pattern through three toy domains: a
// music player, a vending machine, and a traffic light. Each state variant
// implements the full operation set of its context; operations not
// meaningful in a state report a rejection instead of mutating anything. A
// handler performs its action against the old state's semantics, then
// replaces the context's state reference synchronously.
package state

// Package strategy implements the Strategy pattern through two toy domains:
// payment processing and integer sorting. A context (Processor, Sorter) holds
// a replaceable reference to one strategy and delegates its single behavioral
// operation to it; invoking the context before a strategy is set fails with
// ErrNoStrategy.
package strategy

// Package template implements the Template Method pattern through two toy
// domains: recipes and build pipelines. A free function fixes the step
// order; variants supply the step content, embedding a base type for the
// overridable defaults. No variant can reorder the sequence.
package template

// Package composite implements the Composite pattern through two toy
// domains: a file system tree and an organization chart. Leaves answer
// aggregate queries with their own value; composites recurse over an
// ordered child list on every call, so totals are always derived from the
// current children. Both node kinds share one query interface.
package composite

// Package adapter implements the Adapter pattern through two toy domains:
// media playback and payment gateways. Each adapter wraps one fixed object
// with an incompatible signature and exposes a uniform target interface,
// translating units and field names in both directions. A dispatching
// adapter selects among concrete adapters by a case-insensitive type tag.
package adapter

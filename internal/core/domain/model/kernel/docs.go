// Package kernel contains shared value objects used across all aggregates:
// UUID identifiers and geographic coordinates. Types here are immutable,
// validated at construction, and carry no dependencies on other domain
// packages.
package kernel

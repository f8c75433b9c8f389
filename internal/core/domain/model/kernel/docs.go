// Package kernel contains shared value objects used across the domain model.
// These are the building blocks that aggregates in other packages are
// composed from.
//
// The package currently provides:
//   - UUID: an immutable identifier value object wrapping github.com/google/uuid
//
// Kernel types follow Domain-Driven Design conventions: they are immutable,
// validate themselves, and can only be created through constructor functions.
package kernel

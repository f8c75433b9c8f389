// Package order provides the domain model for the order lifecycle of the
// pizzeria. It implements the Order aggregate root with its embedded value
// objects and the status lifecycle.
//
// The package includes:
//   - Order: the aggregate root owning line items, customer info, tracking
//     code and the price snapshot
//   - Status: the closed QUEUED/IN_PROGRESS/READY/DELIVERED enumeration
//   - LineItem: one catalog pizza as ordered, with name and price copied at
//     order time
//   - Customer: the per-order customer info with the desired pickup window
//   - GenerateCode: tracking-code generation from clock and customer name
//
// Key business rules:
//   - orders always contain at least one line item
//   - the total price is the sum of the line-item snapshots, recomputed on
//     every create/update and never patched incrementally
//   - content updates and non-forced deletion are allowed only while QUEUED
//   - status transitions are permissive; the shop-wide rule that at most one
//     order is IN_PROGRESS at a time is enforced by the status-update use
//     case, because it spans aggregate boundaries
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced.
package order

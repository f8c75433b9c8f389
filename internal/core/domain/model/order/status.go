package order

import (
	"fmt"
	"strings"

	"pizzeria/internal/pkg/errs"
)

// Status represents the lifecycle state of an order as it moves through the
// shop: queued behind the counter, being prepared, waiting for pickup,
// handed over.
//
// The lifecycle is deliberately permissive: staff may set any valid status
// at any time (including moving an order backwards), with a single hard
// rule enforced at the application layer: at most one order may be
// IN_PROGRESS across the whole shop at any instant.
//
// Content updates and non-forced deletion are only allowed while the order
// is QUEUED; AllowsContentUpdate captures that rule.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Queued is the initial status of every new order. Orders in this
	// status wait their turn and may still be updated or deleted by the
	// customer.
	Queued

	// InProgress indicates the order is being actively prepared.
	// At most one order in the shop may hold this status at a time.
	InProgress

	// Ready indicates the order is prepared and waiting for pickup.
	Ready

	// Delivered indicates the order has been handed over to the customer.
	Delivered
)

// getStatusStrings returns a map of Status values to their string
// representations, including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Queued:     "QUEUED",
		InProgress: "IN_PROGRESS",
		Ready:      "READY",
		Delivered:  "DELIVERED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Queued:     "QUEUED",
		InProgress: "IN_PROGRESS",
		Ready:      "READY",
		Delivered:  "DELIVERED",
	}
}

// StatusFromString parses a status from its wire representation.
// Matching is case-insensitive, mirroring how staff clients submit status
// updates. Returns an error for anything outside the closed enumeration.
func StatusFromString(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks that the Status value belongs to the closed enumeration.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire name of the status ("QUEUED", "IN_PROGRESS",
// "READY", "DELIVERED"), or "UNKNOWN" for invalid values.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// AllowsContentUpdate reports whether an order in this status may have its
// line items and customer info changed, or be deleted without the force
// flag. Only queued orders are still open for changes.
func (s Status) AllowsContentUpdate() bool {
	return s == Queued
}

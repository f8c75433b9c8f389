package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// codePrefix starts every tracking code handed to a customer.
const codePrefix = "ORD"

// GenerateCode builds a human-readable tracking code from the current clock
// and the customer's name, e.g. "ORD-1735065600000-MARIO".
//
// The millisecond timestamp makes collisions possible only when two orders
// for identically named customers land in the same millisecond, so callers
// creating orders must still check the generated code against the store and
// regenerate on collision (see GenerateCodeWithEntropy).
func GenerateCode(customerName string) string {
	return fmt.Sprintf("%s-%d-%s", codePrefix, time.Now().UnixMilli(), normalizeName(customerName))
}

// GenerateCodeWithEntropy builds a tracking code with a random suffix
// appended. Used after GenerateCode produced a code that already exists,
// which only happens in pathological clock scenarios.
func GenerateCodeWithEntropy(customerName string) string {
	return fmt.Sprintf("%s-%s", GenerateCode(customerName), uuid.NewString()[:8])
}

// normalizeName uppercases the customer name and strips all whitespace so
// the fragment is safe inside a single code token.
func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToUpper(name)), "")
}

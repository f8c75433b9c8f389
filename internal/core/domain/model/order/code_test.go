package order_test

import (
	"strings"
	"testing"

	"pizzeria/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCode(t *testing.T) {
	t.Run("combines prefix, timestamp and normalized name", func(t *testing.T) {
		code := order.GenerateCode(" Mario Rossi ")

		assert.True(t, strings.HasPrefix(code, "ORD-"))
		assert.True(t, strings.HasSuffix(code, "-MARIOROSSI"))

		parts := strings.Split(code, "-")
		assert.Len(t, parts, 3)
		assert.NotEmpty(t, parts[1])
	})

	t.Run("uppercases the name fragment", func(t *testing.T) {
		code := order.GenerateCode("luigi")

		assert.True(t, strings.HasSuffix(code, "-LUIGI"))
	})
}

func TestGenerateCodeWithEntropy(t *testing.T) {
	t.Run("appends a random suffix", func(t *testing.T) {
		code := order.GenerateCodeWithEntropy("Mario")

		parts := strings.Split(code, "-")
		assert.Len(t, parts, 4)
		assert.Len(t, parts[3], 8)
	})

	t.Run("two calls differ even within the same millisecond", func(t *testing.T) {
		first := order.GenerateCodeWithEntropy("Mario")
		second := order.GenerateCodeWithEntropy("Mario")

		assert.NotEqual(t, first, second)
	})
}

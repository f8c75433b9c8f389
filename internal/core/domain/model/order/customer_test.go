package order_test

import (
	"testing"
	"time"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestNewCustomer(t *testing.T) {
	pickupFrom := timePtr(time.Now().Add(2 * time.Hour))
	pickupTo := timePtr(time.Now().Add(3 * time.Hour))

	t.Run("creates customer with full pickup window", func(t *testing.T) {
		c, err := order.NewCustomer("Mario Rossi", pickupFrom, pickupTo, "ring the bell")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Mario Rossi", c.Name())
		assert.Equal(t, pickupFrom, c.PickupFrom())
		assert.Equal(t, pickupTo, c.PickupTo())
		assert.Equal(t, "ring the bell", c.Comment())
	})

	t.Run("pickup window is optional", func(t *testing.T) {
		c, err := order.NewCustomer("Mario", nil, nil, "")

		require.NoError(t, err)
		assert.Nil(t, c.PickupFrom())
		assert.Nil(t, c.PickupTo())
	})

	t.Run("half-open window skips the range check", func(t *testing.T) {
		_, err := order.NewCustomer("Mario", pickupFrom, nil, "")

		require.NoError(t, err)
	})

	t.Run("fails without a name", func(t *testing.T) {
		_, err := order.NewCustomer("", pickupFrom, pickupTo, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("fails with inverted window", func(t *testing.T) {
		_, err := order.NewCustomer("Mario", pickupTo, pickupFrom, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidPickupWindow)
	})

	t.Run("fails with window in the past", func(t *testing.T) {
		yesterdayFrom := timePtr(time.Now().AddDate(0, 0, -1))
		yesterdayTo := timePtr(time.Now().AddDate(0, 0, -1).Add(time.Hour))

		_, err := order.NewCustomer("Mario", yesterdayFrom, yesterdayTo, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidPickupWindow)
	})

	t.Run("accepts a window later today", func(t *testing.T) {
		// Same calendar day is not "in the past" even if the clock already
		// moved past the window start.
		todayFrom := timePtr(time.Now().Add(-time.Minute))
		todayTo := timePtr(time.Now().Add(time.Hour))

		_, err := order.NewCustomer("Mario", todayFrom, todayTo, "")

		require.NoError(t, err)
	})
}

func TestRestoreCustomer(t *testing.T) {
	t.Run("accepts windows that have since passed", func(t *testing.T) {
		from := timePtr(time.Now().AddDate(0, 0, -7))
		to := timePtr(time.Now().AddDate(0, 0, -7).Add(time.Hour))

		c, err := order.RestoreCustomer("Mario", from, to, "old order")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
	})

	t.Run("still requires a name", func(t *testing.T) {
		_, err := order.RestoreCustomer("", nil, nil, "")

		require.Error(t, err)
	})
}

func TestCustomer_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var c order.Customer

		err := c.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrCustomerIsNotConstructed, err)
	})
}

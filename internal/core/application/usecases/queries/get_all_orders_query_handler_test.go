package queries

import (
	"math/rand"
	"testing"
	"time"

	"pizzeria/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour int) *time.Time {
	t := time.Date(2025, time.June, 1, hour, 0, 0, 0, time.UTC)
	return &t
}

func boardOrder(code string, pickupFrom, pickupTo *time.Time, createdAt time.Time) OrderResponse {
	return OrderResponse{
		ID:         kernel.NewUUID(),
		Code:       code,
		PickupFrom: pickupFrom,
		PickupTo:   pickupTo,
		CreatedAt:  createdAt,
	}
}

func codes(orders []OrderResponse) []string {
	result := make([]string, 0, len(orders))
	for _, o := range orders {
		result = append(result, o.Code)
	}
	return result
}

func TestSortByPickup(t *testing.T) {
	base := time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)

	t.Run("earliest pickup window first, windowless last", func(t *testing.T) {
		orders := []OrderResponse{
			boardOrder("NO-WINDOW", nil, nil, base),
			boardOrder("LATE", at(18), at(19), base.Add(time.Minute)),
			boardOrder("EARLY", at(12), at(13), base.Add(2*time.Minute)),
		}

		sortByPickup(orders)

		assert.Equal(t, []string{"EARLY", "LATE", "NO-WINDOW"}, codes(orders))
	})

	t.Run("same pickupFrom falls back to pickupTo", func(t *testing.T) {
		orders := []OrderResponse{
			boardOrder("WIDE", at(12), at(15), base),
			boardOrder("TIGHT", at(12), at(13), base.Add(time.Minute)),
		}

		sortByPickup(orders)

		assert.Equal(t, []string{"TIGHT", "WIDE"}, codes(orders))
	})

	t.Run("windowless orders fall back to creation time", func(t *testing.T) {
		orders := []OrderResponse{
			boardOrder("SECOND", nil, nil, base.Add(time.Hour)),
			boardOrder("FIRST", nil, nil, base),
		}

		sortByPickup(orders)

		assert.Equal(t, []string{"FIRST", "SECOND"}, codes(orders))
	})

	t.Run("order is deterministic regardless of input permutation", func(t *testing.T) {
		build := func() []OrderResponse {
			return []OrderResponse{
				boardOrder("A", at(9), at(10), base),
				boardOrder("B", at(9), at(11), base),
				boardOrder("C", at(14), at(15), base),
				boardOrder("D", nil, nil, base),
				boardOrder("E", nil, nil, base.Add(time.Hour)),
			}
		}

		want := []string{"A", "B", "C", "D", "E"}
		rng := rand.New(rand.NewSource(1))
		for range 20 {
			orders := build()
			rng.Shuffle(len(orders), func(i, j int) {
				orders[i], orders[j] = orders[j], orders[i]
			})

			sortByPickup(orders)

			require.Equal(t, want, codes(orders))
		}
	})
}

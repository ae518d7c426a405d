package payment

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChargeValidation(t *testing.T) {
	ctx := context.Background()
	gw := NewSimulatorWithRand(0, 1.0, rand.New(rand.NewSource(1)))

	t.Run("Card requires all three fields", func(t *testing.T) {
		incomplete := []Method{
			{Kind: MethodCard},
			{Kind: MethodCard, Card: CardInfo{Number: "4242424242424242"}},
			{Kind: MethodCard, Card: CardInfo{Number: "4242424242424242", Expiry: "12/30"}},
			{Kind: MethodCard, Card: CardInfo{Expiry: "12/30", CVC: "123"}},
		}

		for _, m := range incomplete {
			_, err := gw.Charge(ctx, 10, m)
			assert.ErrorIs(t, err, ErrCardIncomplete)
		}
	})

	t.Run("Complete card passes validation", func(t *testing.T) {
		m := Method{Kind: MethodCard, Card: CardInfo{Number: "4242424242424242", Expiry: "12/30", CVC: "123"}}

		receipt, err := gw.Charge(ctx, 10, m)

		require.NoError(t, err)
		assert.NotEmpty(t, receipt.Reference)
	})

	t.Run("Cash needs no card details", func(t *testing.T) {
		receipt, err := gw.Charge(ctx, 10, Method{Kind: MethodCash})

		require.NoError(t, err)
		assert.Equal(t, MethodCash, receipt.Method)
	})

	t.Run("Non-positive amount rejected", func(t *testing.T) {
		_, err := gw.Charge(ctx, 0, Method{Kind: MethodCash})
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestChargeOutcome(t *testing.T) {
	ctx := context.Background()

	t.Run("Success rate one always succeeds", func(t *testing.T) {
		gw := NewSimulatorWithRand(0, 1.0, rand.New(rand.NewSource(7)))

		for i := 0; i < 20; i++ {
			receipt, err := gw.Charge(ctx, 31.97, Method{Kind: MethodCash})
			require.NoError(t, err)
			assert.InDelta(t, 31.97, receipt.Amount, 0.001)
		}
	})

	t.Run("Success rate zero always declines", func(t *testing.T) {
		gw := NewSimulatorWithRand(0, 0.0, rand.New(rand.NewSource(7)))

		for i := 0; i < 20; i++ {
			_, err := gw.Charge(ctx, 31.97, Method{Kind: MethodCash})
			require.ErrorIs(t, err, ErrDeclined)

			var decline *DeclineError
			require.True(t, errors.As(err, &decline))
			assert.NotEmpty(t, decline.Reason)
		}
	})

	t.Run("Each invocation is a fresh trial", func(t *testing.T) {
		// With a fixed seed and a 50% gate, a retry loop must see both
		// outcomes eventually.
		gw := NewSimulatorWithRand(0, 0.5, rand.New(rand.NewSource(42)))

		var succeeded, declined bool
		for i := 0; i < 50 && !(succeeded && declined); i++ {
			_, err := gw.Charge(ctx, 10, Method{Kind: MethodCash})
			if err != nil {
				declined = true
			} else {
				succeeded = true
			}
		}

		assert.True(t, succeeded)
		assert.True(t, declined)
	})
}

func TestChargeLatency(t *testing.T) {
	ctx := context.Background()
	gw := NewSimulatorWithRand(30*time.Millisecond, 1.0, rand.New(rand.NewSource(1)))

	start := time.Now()
	_, err := gw.Charge(ctx, 10, Method{Kind: MethodCash})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestChargeLatencySkipsValidationFailures(t *testing.T) {
	// Validation errors must return immediately, before the simulated
	// round trip.
	ctx := context.Background()
	gw := NewSimulatorWithRand(2*time.Second, 1.0, rand.New(rand.NewSource(1)))

	start := time.Now()
	_, err := gw.Charge(ctx, 10, Method{Kind: MethodCard})

	assert.ErrorIs(t, err, ErrCardIncomplete)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

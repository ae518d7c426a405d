package payment

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"nebula-eats-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// declineReasons is the pool of reasons the simulator picks from when a
// charge fails its probabilistic gate.
var declineReasons = []string{
	"issuer rejected the transaction",
	"insufficient funds",
	"processor temporarily unavailable",
}

type simulator struct {
	delay       time.Duration
	successRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulator creates the demo gateway: every charge suspends for
// delay, then succeeds with probability successRate. Cash charges run
// through the same gate, standing in for deferred collection.
func NewSimulator(delay time.Duration, successRate float64) Gateway {
	return NewSimulatorWithRand(delay, successRate, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewSimulatorWithRand is NewSimulator with an explicit random source
// so tests can force outcomes.
func NewSimulatorWithRand(delay time.Duration, successRate float64, rng *rand.Rand) Gateway {
	return &simulator{
		delay:       delay,
		successRate: successRate,
		rng:         rng,
	}
}

// Charge validates the method, waits out the simulated round trip, and
// flips the weighted coin. Each call is a fresh trial; a declined
// charge may be retried and eventually succeed. Once started, the
// charge runs to completion regardless of ctx.
func (s *simulator) Charge(ctx context.Context, amount float64, method Method) (*Receipt, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "payment"),
		zap.Float64("amount", amount),
		zap.String("method", string(method.Kind)),
	)

	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if method.Kind == MethodCard && !method.Card.Complete() {
		log.Warn("charge rejected, incomplete card details")
		return nil, ErrCardIncomplete
	}

	log.Info("charge started")
	time.Sleep(s.delay)

	s.mu.Lock()
	roll := s.rng.Float64()
	reason := declineReasons[s.rng.Intn(len(declineReasons))]
	s.mu.Unlock()

	if roll >= s.successRate {
		log.Warn("charge declined", zap.String("reason", reason))
		return nil, &DeclineError{Reason: reason}
	}

	receipt := &Receipt{
		Reference: uuid.New().String(),
		Amount:    amount,
		Method:    method.Kind,
		ChargedAt: time.Now(),
	}

	log.Info("charge succeeded", zap.String("reference", receipt.Reference))
	return receipt, nil
}

package services

import (
	"context"
	"fmt"
	"log"

	"fuel-route-service/internal/platform/obs"
	"fuel-route-service/internal/ports"
)

// Strategy is one member of an ordered provider fallback chain. Every
// member of a chain shares the same input/output contract; chains replace
// nested try-one-then-the-other control flow with a declarative list.
type Strategy[In, Out any] struct {
	Name string
	Run  func(ctx context.Context, in In) (Out, error)
}

// First tries each strategy in order and returns the first success along
// with the winning strategy's name. A member failure is logged and treated
// as that provider being unavailable; the chain itself only fails when all
// members do.
func First[In, Out any](ctx context.Context, op string, strategies []Strategy[In, Out], in In) (Out, string, error) {
	var zero Out
	var lastErr error

	for _, s := range strategies {
		out, err := s.Run(ctx, in)
		if err == nil {
			return out, s.Name, nil
		}
		lastErr = err
		log.Printf("req_id=%s op=%s provider=%s unavailable err=%v", obs.RequestID(ctx), op, s.Name, err)
	}

	if lastErr == nil {
		lastErr = ports.ErrProviderUnavailable
	}
	return zero, "", fmt.Errorf("%s: all providers failed: %w", op, lastErr)
}

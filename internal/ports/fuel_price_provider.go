package ports

import "context"

// Contract for obtaining a reference diesel price in USD per gallon.
type FuelPriceProvider interface {
	CurrentDieselPrice(ctx context.Context) (float64, error)
}

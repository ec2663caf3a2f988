package calculation

import "context"

// Calculator is the external calculation backend. It is opaque: the gateway
// never recomputes or reinterprets its results.
type Calculator interface {
	Calculate(ctx context.Context, req CalculationRequest) (CalculationResult, error)
}

package inventory

import "context"

// Source loads one inventory snapshot. Implementations do not cache;
// every sync cycle sees the freshest feed available.
type Source interface {
	Load(ctx context.Context) ([]Record, error)
}

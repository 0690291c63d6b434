package mocks

import (
	"context"

	"market-sync/feature/inventory"

	"github.com/stretchr/testify/mock"
)

// Source is a mock implementation of inventory.Source
type Source struct {
	mock.Mock
}

func (m *Source) Load(ctx context.Context) ([]inventory.Record, error) {
	args := m.Called(ctx)
	if records, ok := args.Get(0).([]inventory.Record); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

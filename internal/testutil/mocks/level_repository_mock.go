package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockLevelRepository is a mock implementation of repository.LevelRepository
type MockLevelRepository struct {
	mock.Mock
}

func (m *MockLevelRepository) Load(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockLevelRepository) Save(ctx context.Context, names []string) error {
	args := m.Called(ctx, names)
	return args.Error(0)
}

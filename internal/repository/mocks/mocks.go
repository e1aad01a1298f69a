package mocks

import (
	"context"

	"github.com/rpggio/corkboard/internal/domain/activity"
	"github.com/rpggio/corkboard/internal/repository"
	"github.com/stretchr/testify/mock"
)

// Store is a mock for repository.Store.
type Store struct {
	mock.Mock
}

func (m *Store) Select(ctx context.Context, table string, q repository.Query) ([]repository.Row, error) {
	args := m.Called(ctx, table, q)
	if rows, ok := args.Get(0).([]repository.Row); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Insert(ctx context.Context, table string, row repository.Row) (repository.Row, error) {
	args := m.Called(ctx, table, row)
	if out, ok := args.Get(0).(repository.Row); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Update(ctx context.Context, table string, values repository.Row, eq map[string]any) (int64, error) {
	args := m.Called(ctx, table, values, eq)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Store) Delete(ctx context.Context, table string, eq map[string]any) (int64, error) {
	args := m.Called(ctx, table, eq)
	return args.Get(0).(int64), args.Error(1)
}

// ActivityRepository is a mock for activity.Repository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, entry *activity.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]activity.ActivityEntry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

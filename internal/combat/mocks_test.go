package combat

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/GrandLineBot_Go/internal/domain"
	"github.com/osse101/GrandLineBot_Go/internal/repository"
)

// MockRaidRepo
type MockRaidRepo struct {
	mock.Mock
}

func (m *MockRaidRepo) BeginRaidTx(ctx context.Context) (repository.RaidTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.RaidTx), args.Error(1)
}

// MockRaidTx implements [repository.RaidTx].
type MockRaidTx struct {
	mock.Mock
}

func (m *MockRaidTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRaidTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRaidTx) GetAccountForUpdate(ctx context.Context, userID string) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockRaidTx) UpdateAccount(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockRaidTx) GetOwnedFruitsForUpdate(ctx context.Context, userID string) ([]domain.OwnedFruit, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OwnedFruit), args.Error(1)
}

func (m *MockRaidTx) TransferOwnedFruit(ctx context.Context, rowID uuid.UUID, newOwnerID string) error {
	args := m.Called(ctx, rowID, newOwnerID)
	return args.Error(0)
}

// MockAccountRepo
type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepo) BeginTx(ctx context.Context) (repository.AccountTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.AccountTx), args.Error(1)
}

// MockCollection implements [collection.Service].
type MockCollection struct {
	mock.Mock
}

func (m *MockCollection) ComputeHoldings(ctx context.Context, userID string) (*domain.HoldingsSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HoldingsSummary), args.Error(1)
}

func (m *MockCollection) TotalPower(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockCollection) TopCollectors(ctx context.Context, n int) ([]domain.HoldingsSummary, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HoldingsSummary), args.Error(1)
}

func (m *MockCollection) InvalidatePower(userID string) {
	m.Called(userID)
}

// MockCatalog implements [catalog.Service].
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) GetFruit(id string) (*domain.Fruit, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fruit), args.Error(1)
}

func (m *MockCatalog) AllFruits() []domain.Fruit {
	args := m.Called()
	return args.Get(0).([]domain.Fruit)
}

func (m *MockCatalog) FruitsByRarity(rarity domain.Rarity) []domain.Fruit {
	args := m.Called(rarity)
	return args.Get(0).([]domain.Fruit)
}

// MockCooldown implements [cooldown.Service].
type MockCooldown struct {
	mock.Mock
}

func (m *MockCooldown) CheckCooldown(ctx context.Context, userID, action string) (bool, time.Duration, error) {
	args := m.Called(ctx, userID, action)
	return args.Bool(0), args.Get(1).(time.Duration), args.Error(2)
}

func (m *MockCooldown) EnforceCooldown(ctx context.Context, userID, action string, fn func() error) error {
	args := m.Called(ctx, userID, action, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn()
}

func (m *MockCooldown) StartWindow(ctx context.Context, userID, action string, at time.Time) error {
	args := m.Called(ctx, userID, action, at)
	return args.Error(0)
}

func (m *MockCooldown) ResetCooldown(ctx context.Context, userID, action string) error {
	args := m.Called(ctx, userID, action)
	return args.Error(0)
}

func (m *MockCooldown) GetLastUsed(ctx context.Context, userID, action string) (*time.Time, error) {
	args := m.Called(ctx, userID, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

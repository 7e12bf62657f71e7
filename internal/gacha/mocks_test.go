package gacha

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/GrandLineBot_Go/internal/domain"
)

// MockCollectionRepo is a mock implementation of repository.Collection
type MockCollectionRepo struct {
	mock.Mock
}

func (m *MockCollectionRepo) GetOwnedFruits(ctx context.Context, userID string) ([]domain.OwnedFruit, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OwnedFruit), args.Error(1)
}

func (m *MockCollectionRepo) InsertOwnedFruit(ctx context.Context, fruit *domain.OwnedFruit) error {
	args := m.Called(ctx, fruit)
	return args.Error(0)
}

func (m *MockCollectionRepo) GetOwnerIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockCatalog is a mock implementation of catalog.Service
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
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Fruit)
}

func (m *MockCatalog) FruitsByRarity(rarity domain.Rarity) []domain.Fruit {
	args := m.Called(rarity)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Fruit)
}

// MockCollection is a mock implementation of collection.Service
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

// MockEconomy is a mock implementation of economy.Service
type MockEconomy struct {
	mock.Mock
}

func (m *MockEconomy) TotalPower(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockEconomy) HourlyRate(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockEconomy) Accrue(ctx context.Context, userID string) (*domain.AccrualResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccrualResult), args.Error(1)
}

func (m *MockEconomy) Credit(ctx context.Context, userID string, amount int64, reason string) (int64, error) {
	args := m.Called(ctx, userID, amount, reason)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEconomy) Debit(ctx context.Context, userID string, amount int64, reason string) (int64, error) {
	args := m.Called(ctx, userID, amount, reason)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEconomy) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// MockCooldown is a mock implementation of cooldown.Service.
// EnforceCooldown runs the wrapped action unless an error is stubbed.
type MockCooldown struct {
	mock.Mock
}

func (m *MockCooldown) CheckCooldown(ctx context.Context, userID, action string) (bool, time.Duration, error) {
	args := m.Called(ctx, userID, action)
	return args.Bool(0), args.Get(1).(time.Duration), args.Error(2)
}

func (m *MockCooldown) EnforceCooldown(ctx context.Context, userID, action string, fn func() error) error {
	args := m.Called(ctx, userID, action)
	if err := args.Error(0); err != nil {
		return err
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

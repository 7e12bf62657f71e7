package economy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GrandLineBot_Go/internal/domain"
	"github.com/osse101/GrandLineBot_Go/internal/metrics"
	"github.com/osse101/GrandLineBot_Go/internal/repository"
)

// MockAccountRepo is a mock implementation of repository.Account
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

// MockAccountTx is a mock implementation of repository.AccountTx
type MockAccountTx struct {
	mock.Mock
}

func (m *MockAccountTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountTx) GetAccountForUpdate(ctx context.Context, userID string) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountTx) UpdateAccount(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
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

type economyFixture struct {
	svc        *service
	repo       *MockAccountRepo
	tx         *MockAccountTx
	collection *MockCollection
}

func newEconomyFixture(t *testing.T) *economyFixture {
	t.Helper()
	f := &economyFixture{
		repo:       new(MockAccountRepo),
		tx:         new(MockAccountTx),
		collection: new(MockCollection),
	}
	f.svc = NewService(f.repo, f.collection, testEconomyConfig()).(*service)
	return f
}

func (f *economyFixture) expectTx(ctx context.Context) {
	f.repo.On("BeginTx", ctx).Return(f.tx, nil)
	f.tx.On("Rollback", ctx).Return(errors.New(domain.ErrMsgTxClosed)).Maybe()
}

func TestAccrueFirstTimeAnchorsClock(t *testing.T) {
	f := newEconomyFixture(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return now }

	f.collection.On("TotalPower", ctx, "user-1").Return(300, nil)
	f.expectTx(ctx)
	f.tx.On("GetAccountForUpdate", ctx, "user-1").Return(&domain.Account{UserID: "user-1"}, nil)
	f.tx.On("UpdateAccount", ctx, mock.MatchedBy(func(a *domain.Account) bool {
		return a.LastAccrual.Equal(now) && a.Balance == 0
	})).Return(nil)
	f.tx.On("Commit", ctx).Return(nil)

	result, err := f.svc.Accrue(ctx, "user-1")
	require.NoError(t, err)
	assert.Zero(t, result.Credited)
	f.tx.AssertExpectations(t)
}

func TestAccrueEpochSentinelAnchorsClock(t *testing.T) {
	f := newEconomyFixture(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return now }

	// New rows come back from the repository with last_accrual seeded at the
	// Unix epoch. That must anchor the clock, not pay out decades of income
	// clamped to the storage cap.
	f.collection.On("TotalPower", ctx, "user-1").Return(300, nil)
	f.expectTx(ctx)
	f.tx.On("GetAccountForUpdate", ctx, "user-1").Return(&domain.Account{
		UserID:      "user-1",
		LastAccrual: time.Unix(0, 0).UTC(),
	}, nil)
	f.tx.On("UpdateAccount", ctx, mock.MatchedBy(func(a *domain.Account) bool {
		return a.LastAccrual.Equal(now) && a.Balance == 0 && a.TotalEarned == 0
	})).Return(nil)
	f.tx.On("Commit", ctx).Return(nil)

	result, err := f.svc.Accrue(ctx, "user-1")
	require.NoError(t, err)
	assert.Zero(t, result.Credited)
	f.tx.AssertExpectations(t)
}

func TestAccrueCreditsElapsedIncome(t *testing.T) {
	f := newEconomyFixture(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return now }

	// 300 power -> 130/hour, two hours elapsed -> 260
	f.collection.On("TotalPower", ctx, "user-1").Return(300, nil)
	f.expectTx(ctx)
	f.tx.On("GetAccountForUpdate", ctx, "user-1").Return(&domain.Account{
		UserID:      "user-1",
		Balance:     1000,
		TotalEarned: 1000,
		LastAccrual: now.Add(-2 * time.Hour),
	}, nil)
	f.tx.On("UpdateAccount", ctx, mock.MatchedBy(func(a *domain.Account) bool {
		return a.Balance == 1260 && a.TotalEarned == 1260 && a.LastAccrual.Equal(now)
	})).Return(nil)
	f.tx.On("Commit", ctx).Return(nil)

	creditedBefore := testutil.ToFloat64(metrics.BerriesCredited.WithLabelValues(domain.ReasonAccrual))

	result, err := f.svc.Accrue(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(260), result.Credited)
	assert.Equal(t, int64(1260), result.Balance)

	// Accruals are ledger credits and show up under their reason label.
	assert.Equal(t, creditedBefore+260,
		testutil.ToFloat64(metrics.BerriesCredited.WithLabelValues(domain.ReasonAccrual)))
}

func TestAccrueClampsToMaxStorable(t *testing.T) {
	f := newEconomyFixture(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return now }

	// A week offline still only accrues the 24h cap: 130 * 24 = 3120.
	f.collection.On("TotalPower", ctx, "user-1").Return(300, nil)
	f.expectTx(ctx)
	f.tx.On("GetAccountForUpdate", ctx, "user-1").Return(&domain.Account{
		UserID:      "user-1",
		LastAccrual: now.Add(-7 * 24 * time.Hour),
	}, nil)
	f.tx.On("UpdateAccount", ctx, mock.Anything).Return(nil)
	f.tx.On("Commit", ctx).Return(nil)

	result, err := f.svc.Accrue(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3120), result.Credited)
}

func TestAccrueZeroPowerCreditsNothing(t *testing.T) {
	f := newEconomyFixture(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return now }

	f.collection.On("TotalPower", ctx, "user-1").Return(0, nil)
	f.expectTx(ctx)
	f.tx.On("GetAccountForUpdate", ctx, "user-1").Return(&domain.Account{
		UserID:      "user-1",
		LastAccrual: now.Add(-2 * time.Hour),
	}, nil)
	f.tx.On("UpdateAccount", ctx, mock.Anything).Return(nil)
	f.tx.On("Commit", ctx).Return(nil)

	result, err := f.svc.Accrue(ctx, "user-1")
	require.NoError(t, err)
	assert.Zero(t, result.Credited)
}

func TestCreditUpdatesLedger(t *testing.T) {
	f := newEconomyFixture(t)
	ctx := context.Background()

	f.expectTx(ctx)
	f.tx.On("GetAccountForUpdate", ctx, "user-1").Return(&domain.Account{
		UserID: "user-1", Balance: 100, TotalEarned: 100,
	}, nil)
	f.tx.On("UpdateAccount", ctx, mock.MatchedBy(func(a *domain.Account) bool {
		// Invariant: balance == earned - spent
		return a.Balance == 600 && a.TotalEarned == 600 && a.Balance == a.TotalEarned-a.TotalSpent
	})).Return(nil)
	f.tx.On("Commit", ctx).Return(nil)

	balance, err := f.svc.Credit(ctx, "user-1", 500, domain.ReasonAdminGrant)
	require.NoError(t, err)
	assert.Equal(t, int64(600), balance)
}

func TestCreditRejectsNonPositiveAmount(t *testing.T) {
	f := newEconomyFixture(t)

	_, err := f.svc.Credit(context.Background(), "user-1", 0, domain.ReasonAdminGrant)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = f.svc.Credit(context.Background(), "user-1", -5, domain.ReasonAdminGrant)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestDebitFailsClosed(t *testing.T) {
	f := newEconomyFixture(t)
	ctx := context.Background()

	f.expectTx(ctx)
	f.tx.On("GetAccountForUpdate", ctx, "user-1").Return(&domain.Account{
		UserID: "user-1", Balance: 100, TotalEarned: 100,
	}, nil)

	_, err := f.svc.Debit(ctx, "user-1", 500, domain.ReasonPull)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	// The ledger must never have been written.
	f.tx.AssertNotCalled(t, "UpdateAccount", mock.Anything, mock.Anything)
	f.tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestDebitUpdatesLedger(t *testing.T) {
	f := newEconomyFixture(t)
	ctx := context.Background()

	f.expectTx(ctx)
	f.tx.On("GetAccountForUpdate", ctx, "user-1").Return(&domain.Account{
		UserID: "user-1", Balance: 5000, TotalEarned: 5000,
	}, nil)
	f.tx.On("UpdateAccount", ctx, mock.MatchedBy(func(a *domain.Account) bool {
		return a.Balance == 0 && a.TotalSpent == 5000 && a.Balance == a.TotalEarned-a.TotalSpent
	})).Return(nil)
	f.tx.On("Commit", ctx).Return(nil)

	balance, err := f.svc.Debit(ctx, "user-1", 5000, domain.ReasonPull)
	require.NoError(t, err)
	assert.Zero(t, balance)
}

func TestHourlyRateService(t *testing.T) {
	f := newEconomyFixture(t)
	ctx := context.Background()

	f.collection.On("TotalPower", ctx, "user-1").Return(300, nil)

	rate, err := f.svc.HourlyRate(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 130, rate)
}

func TestHourlyRatePropagatesPowerError(t *testing.T) {
	f := newEconomyFixture(t)
	ctx := context.Background()

	f.collection.On("TotalPower", ctx, "user-1").Return(0, errors.New("db down"))

	_, err := f.svc.HourlyRate(ctx, "user-1")
	assert.Error(t, err)
}

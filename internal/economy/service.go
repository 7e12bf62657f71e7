package economy

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/GrandLineBot_Go/internal/collection"
	"github.com/osse101/GrandLineBot_Go/internal/config"
	"github.com/osse101/GrandLineBot_Go/internal/domain"
	"github.com/osse101/GrandLineBot_Go/internal/logger"
	"github.com/osse101/GrandLineBot_Go/internal/metrics"
	"github.com/osse101/GrandLineBot_Go/internal/repository"
)

// Service defines the interface for ledger and income operations
type Service interface {
	// TotalPower delegates to the collection aggregator.
	TotalPower(ctx context.Context, userID string) (int, error)

	// HourlyRate returns the user's current berry income per hour.
	HourlyRate(ctx context.Context, userID string) (int, error)

	// Accrue credits income for wall-clock time elapsed since the last
	// accrual, clamped to the configured maximum storable duration.
	Accrue(ctx context.Context, userID string) (*domain.AccrualResult, error)

	// Credit adds berries to the ledger.
	Credit(ctx context.Context, userID string, amount int64, reason string) (int64, error)

	// Debit removes berries, failing closed with ErrInsufficientFunds when
	// amount exceeds the balance.
	Debit(ctx context.Context, userID string, amount int64, reason string) (int64, error)

	// GetAccount returns the ledger account, created lazily on first use.
	GetAccount(ctx context.Context, userID string) (*domain.Account, error)
}

type service struct {
	repo       repository.Account
	collection collection.Service
	cfg        config.EconomyConfig
	now        func() time.Time // injectable clock for accrual tests
}

// NewService creates a new economy service
func NewService(repo repository.Account, collectionSvc collection.Service, cfg config.EconomyConfig) Service {
	return &service{
		repo:       repo,
		collection: collectionSvc,
		cfg:        cfg,
		now:        time.Now,
	}
}

// anchored reports whether the account carries a real accrual timestamp.
// Fresh rows are seeded with the Unix epoch sentinel; anything at or before
// it means the clock has never been anchored.
func anchored(t time.Time) bool {
	return t.After(time.Unix(0, 0))
}

func (s *service) TotalPower(ctx context.Context, userID string) (int, error) {
	return s.collection.TotalPower(ctx, userID)
}

func (s *service) HourlyRate(ctx context.Context, userID string) (int, error) {
	power, err := s.collection.TotalPower(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get total power: %w", err)
	}
	return HourlyRate(power, s.cfg), nil
}

func (s *service) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	return s.repo.GetAccount(ctx, userID)
}

func (s *service) Accrue(ctx context.Context, userID string) (*domain.AccrualResult, error) {
	log := logger.FromContext(ctx)

	rate, err := s.HourlyRate(ctx, userID)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Row lock serializes concurrent accruals for the same user; the second
	// caller sees the advanced timestamp and credits nothing.
	account, err := tx.GetAccountForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	now := s.now()
	credited := int64(0)

	if !anchored(account.LastAccrual) {
		// First accrual only anchors the clock.
		account.LastAccrual = now
	} else {
		elapsed := now.Sub(account.LastAccrual)
		maxStorable := time.Duration(s.cfg.MaxAccrualHours * float64(time.Hour))
		if elapsed > maxStorable {
			elapsed = maxStorable
		}
		if elapsed > 0 {
			credited = accrualAmount(rate, elapsed.Seconds())
		}
		account.Balance += credited
		account.TotalEarned += credited
		account.LastAccrual = now
	}

	if err := tx.UpdateAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if credited > 0 {
		metrics.BerriesAccrued.Add(float64(credited))
		metrics.BerriesCredited.WithLabelValues(domain.ReasonAccrual).Add(float64(credited))
		log.Debug("Income accrued", "userID", userID, "credited", credited, "rate", rate)
	}

	return &domain.AccrualResult{Credited: credited, Balance: account.Balance}, nil
}

func (s *service) Credit(ctx context.Context, userID string, amount int64, reason string) (int64, error) {
	log := logger.FromContext(ctx)

	if amount <= 0 {
		return 0, fmt.Errorf("%w: got %d", domain.ErrInvalidAmount, amount)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	account, err := tx.GetAccountForUpdate(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get account: %w", err)
	}

	account.Balance += amount
	account.TotalEarned += amount

	if err := tx.UpdateAccount(ctx, account); err != nil {
		return 0, fmt.Errorf("failed to update account: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.BerriesCredited.WithLabelValues(reason).Add(float64(amount))
	log.Info("Berries credited", "userID", userID, "amount", amount, "reason", reason)
	return account.Balance, nil
}

func (s *service) Debit(ctx context.Context, userID string, amount int64, reason string) (int64, error) {
	log := logger.FromContext(ctx)

	if amount <= 0 {
		return 0, fmt.Errorf("%w: got %d", domain.ErrInvalidAmount, amount)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	account, err := tx.GetAccountForUpdate(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get account: %w", err)
	}

	if amount > account.Balance {
		// Fail closed: the rollback leaves the ledger untouched.
		return 0, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientFunds, amount, account.Balance)
	}

	account.Balance -= amount
	account.TotalSpent += amount

	if err := tx.UpdateAccount(ctx, account); err != nil {
		return 0, fmt.Errorf("failed to update account: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.BerriesDebited.WithLabelValues(reason).Add(float64(amount))
	log.Info("Berries debited", "userID", userID, "amount", amount, "reason", reason)
	return account.Balance, nil
}

package combat_bench

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/GrandLineBot_Go/internal/catalog"
	"github.com/osse101/GrandLineBot_Go/internal/collection"
	"github.com/osse101/GrandLineBot_Go/internal/combat"
	"github.com/osse101/GrandLineBot_Go/internal/config"
	"github.com/osse101/GrandLineBot_Go/internal/domain"
	"github.com/osse101/GrandLineBot_Go/internal/element"
	"github.com/osse101/GrandLineBot_Go/internal/repository"
)

// --- Stubs (Zero-overhead mocks for benchmarking) ---

type StubAccounts struct{}

func (s *StubAccounts) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	return &domain.Account{UserID: userID, Balance: 100000, TotalEarned: 100000}, nil
}

func (s *StubAccounts) BeginTx(ctx context.Context) (repository.AccountTx, error) {
	return &StubTx{}, nil
}

type StubTx struct{}

func (s *StubTx) Commit(ctx context.Context) error   { return nil }
func (s *StubTx) Rollback(ctx context.Context) error { return nil }
func (s *StubTx) GetAccountForUpdate(ctx context.Context, userID string) (*domain.Account, error) {
	return &domain.Account{UserID: userID, Balance: 100000, TotalEarned: 100000}, nil
}
func (s *StubTx) UpdateAccount(ctx context.Context, account *domain.Account) error { return nil }
func (s *StubTx) GetOwnedFruitsForUpdate(ctx context.Context, userID string) ([]domain.OwnedFruit, error) {
	rows := make([]domain.OwnedFruit, 20)
	for i := range rows {
		rows[i] = domain.OwnedFruit{
			ID:         uuid.New(),
			OwnerID:    userID,
			FruitID:    "mera_mera",
			AcquiredAt: time.Now(),
		}
	}
	return rows, nil
}
func (s *StubTx) TransferOwnedFruit(ctx context.Context, rowID uuid.UUID, newOwnerID string) error {
	return nil
}

type StubRaidRepo struct{}

func (s *StubRaidRepo) BeginRaidTx(ctx context.Context) (repository.RaidTx, error) {
	return &StubTx{}, nil
}

// StubCollection hands back a fixed 20-fruit snapshot per combatant,
// sized to exercise the per-fruit turn loop.
type StubCollection struct {
	summary domain.HoldingsSummary
}

func NewStubCollection(fruitCount int) *StubCollection {
	holdings := make([]domain.Holding, fruitCount)
	total := 0
	for i := range holdings {
		holdings[i] = domain.Holding{FruitID: "mera_mera", Count: 1, BasePower: 350, EffectivePower: 350}
		total += 350
	}
	return &StubCollection{summary: domain.HoldingsSummary{TotalPower: total, Holdings: holdings}}
}

func (s *StubCollection) ComputeHoldings(ctx context.Context, userID string) (*domain.HoldingsSummary, error) {
	out := s.summary
	out.UserID = userID
	return &out, nil
}

func (s *StubCollection) TotalPower(ctx context.Context, userID string) (int, error) {
	return s.summary.TotalPower, nil
}

func (s *StubCollection) TopCollectors(ctx context.Context, n int) ([]domain.HoldingsSummary, error) {
	return nil, nil
}

func (s *StubCollection) InvalidatePower(userID string) {}

type StubCooldown struct{}

func (s *StubCooldown) CheckCooldown(ctx context.Context, userID, action string) (bool, time.Duration, error) {
	return false, 0, nil
}

func (s *StubCooldown) EnforceCooldown(ctx context.Context, userID, action string, fn func() error) error {
	return fn()
}

func (s *StubCooldown) StartWindow(ctx context.Context, userID, action string, at time.Time) error {
	return nil
}

func (s *StubCooldown) ResetCooldown(ctx context.Context, userID, action string) error { return nil }

func (s *StubCooldown) GetLastUsed(ctx context.Context, userID, action string) (*time.Time, error) {
	return nil, nil
}

func benchCatalog(b *testing.B) catalog.Service {
	b.Helper()
	svc, err := catalog.NewService(&catalog.Config{
		Version: "bench",
		Fruits: []catalog.Def{
			{ID: "mera_mera", Name: "Mera Mera no Mi", Type: "logia", Rarity: "EPIC", Element: "flame"},
		},
	})
	if err != nil {
		b.Fatal(err)
	}
	return svc
}

func benchMatrix() *element.Matrix {
	return element.NewMatrix(&element.Config{
		Elements: map[string]element.Relations{
			"flame": {StrongAgainst: []string{"ice"}, WeakAgainst: []string{"magma"}},
		},
	})
}

func newBenchService(b *testing.B) combat.Service {
	b.Helper()
	var _ collection.Service = (*StubCollection)(nil)
	return combat.NewService(
		&StubRaidRepo{},
		&StubAccounts{},
		NewStubCollection(20),
		benchCatalog(b),
		benchMatrix(),
		&StubCooldown{},
		config.DefaultGameConfig().Combat,
	)
}

func BenchmarkResolveRaidFull(b *testing.B) {
	svc := newBenchService(b)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.ResolveRaid(ctx, "attacker", "defender", domain.RaidModeFull); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkResolveRaidQuick(b *testing.B) {
	svc := newBenchService(b)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.ResolveRaid(ctx, "attacker", "defender", domain.RaidModeQuick); err != nil {
			b.Fatal(err)
		}
	}
}

package combat

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GrandLineBot_Go/internal/domain"
)

type raidFixture struct {
	repo       *MockRaidRepo
	accounts   *MockAccountRepo
	collection *MockCollection
	catalog    *MockCatalog
	cooldown   *MockCooldown
	svc        *service
}

func newRaidFixture(t *testing.T) *raidFixture {
	t.Helper()
	f := &raidFixture{
		repo:       new(MockRaidRepo),
		accounts:   new(MockAccountRepo),
		collection: new(MockCollection),
		catalog:    new(MockCatalog),
		cooldown:   new(MockCooldown),
	}
	f.svc = NewService(f.repo, f.accounts, f.collection, f.catalog, testMatrix(), f.cooldown, testCombatConfig()).(*service)
	return f
}

func (f *raidFixture) assertExpectations(t *testing.T) {
	f.repo.AssertExpectations(t)
	f.accounts.AssertExpectations(t)
	f.collection.AssertExpectations(t)
	f.catalog.AssertExpectations(t)
	f.cooldown.AssertExpectations(t)
}

func plainHoldings(userID string, powers ...int) *domain.HoldingsSummary {
	summary := &domain.HoldingsSummary{UserID: userID}
	for i, p := range powers {
		summary.Holdings = append(summary.Holdings, domain.Holding{
			FruitID:        userID + "-fruit-" + string(rune('a'+i)),
			Count:          1,
			BasePower:      p,
			EffectivePower: p,
		})
		summary.TotalPower += p
	}
	return summary
}

func (f *raidFixture) expectClearWindows(attackerID, defenderID string) {
	f.cooldown.On("CheckCooldown", mock.Anything, attackerID, domain.ActionRaid).Return(false, time.Duration(0), nil)
	f.cooldown.On("CheckCooldown", mock.Anything, defenderID, domain.ActionProtection).Return(false, time.Duration(0), nil)
}

func (f *raidFixture) expectStampWindows(attackerID, defenderID string) {
	f.cooldown.On("StartWindow", mock.Anything, attackerID, domain.ActionRaid, mock.Anything).Return(nil)
	f.cooldown.On("StartWindow", mock.Anything, defenderID, domain.ActionProtection, mock.Anything).Return(nil)
}

func TestResolveRaidSelfTarget(t *testing.T) {
	f := newRaidFixture(t)

	_, err := f.svc.ResolveRaid(context.Background(), "user1", "user1", domain.RaidModeFull)
	assert.ErrorIs(t, err, domain.ErrSelfTarget)
}

func TestResolveRaidAttackerOnCooldown(t *testing.T) {
	f := newRaidFixture(t)
	f.cooldown.On("CheckCooldown", mock.Anything, "attacker", domain.ActionRaid).Return(true, 5*time.Minute, nil)

	_, err := f.svc.ResolveRaid(context.Background(), "attacker", "defender", domain.RaidModeFull)
	assert.ErrorIs(t, err, domain.ErrRaidOnCooldown)
	f.assertExpectations(t)
}

func TestResolveRaidTargetProtected(t *testing.T) {
	f := newRaidFixture(t)
	f.cooldown.On("CheckCooldown", mock.Anything, "attacker", domain.ActionRaid).Return(false, time.Duration(0), nil)
	f.cooldown.On("CheckCooldown", mock.Anything, "defender", domain.ActionProtection).Return(true, 10*time.Minute, nil)

	_, err := f.svc.ResolveRaid(context.Background(), "attacker", "defender", domain.RaidModeFull)
	assert.ErrorIs(t, err, domain.ErrTargetProtected)
	f.assertExpectations(t)
}

func TestResolveRaidTargetWorthless(t *testing.T) {
	f := newRaidFixture(t)
	f.expectClearWindows("attacker", "defender")
	f.accounts.On("GetAccount", mock.Anything, "defender").Return(&domain.Account{UserID: "defender", Balance: 0}, nil)
	f.collection.On("TotalPower", mock.Anything, "defender").Return(0, nil)

	_, err := f.svc.ResolveRaid(context.Background(), "attacker", "defender", domain.RaidModeFull)
	assert.ErrorIs(t, err, domain.ErrTargetWorthless)
	f.assertExpectations(t)
}

func TestResolveRaidQuickDefeatSkipsLoot(t *testing.T) {
	f := newRaidFixture(t)
	f.expectClearWindows("attacker", "defender")
	f.accounts.On("GetAccount", mock.Anything, "defender").Return(&domain.Account{UserID: "defender", Balance: 50_000}, nil)
	f.collection.On("TotalPower", mock.Anything, "defender").Return(500, nil)
	f.collection.On("ComputeHoldings", mock.Anything, "attacker").Return(plainHoldings("attacker", 100), nil)
	f.collection.On("ComputeHoldings", mock.Anything, "defender").Return(plainHoldings("defender", 500), nil)
	f.catalog.On("GetFruit", mock.Anything).Return(&domain.Fruit{Element: ""}, nil)
	f.expectStampWindows("attacker", "defender")

	// Ratio 0.2 gives the 15% floor; a 0.99 roll loses.
	f.svc.rnd = fixedRnd(0.99)

	result, err := f.svc.ResolveRaid(context.Background(), "attacker", "defender", domain.RaidModeQuick)
	require.NoError(t, err)
	assert.False(t, result.Victory)
	assert.Zero(t, result.StolenBerries)
	assert.Empty(t, result.StolenFruits)
	assert.Equal(t, 100, result.AttackerPower)
	assert.Equal(t, 500, result.DefenderPower)

	// A lost raid still burns the attacker's cooldown and shields the
	// defender, but never opens a loot transaction.
	f.repo.AssertNotCalled(t, "BeginRaidTx", mock.Anything)
	f.assertExpectations(t)
}

func TestResolveRaidFullVictoryTransfersLoot(t *testing.T) {
	f := newRaidFixture(t)
	f.expectClearWindows("attacker", "defender")
	f.accounts.On("GetAccount", mock.Anything, "defender").Return(&domain.Account{UserID: "defender", Balance: 10_000}, nil)
	f.collection.On("TotalPower", mock.Anything, "defender").Return(100, nil)
	f.collection.On("ComputeHoldings", mock.Anything, "attacker").Return(plainHoldings("attacker", 40_000, 30_000, 30_000), nil)
	f.collection.On("ComputeHoldings", mock.Anything, "defender").Return(plainHoldings("defender", 100), nil)
	f.catalog.On("GetFruit", mock.Anything).Return(&domain.Fruit{Element: ""}, nil)

	tx := new(MockRaidTx)
	f.repo.On("BeginRaidTx", mock.Anything).Return(tx, nil)
	tx.On("GetAccountForUpdate", mock.Anything, "attacker").
		Return(&domain.Account{UserID: "attacker", Balance: 1000, TotalEarned: 1000}, nil)
	tx.On("GetAccountForUpdate", mock.Anything, "defender").
		Return(&domain.Account{UserID: "defender", Balance: 10_000, TotalEarned: 10_000}, nil)
	tx.On("GetOwnedFruitsForUpdate", mock.Anything, "defender").
		Return([]domain.OwnedFruit{{ID: uuid.New(), OwnerID: "defender", FruitID: "defender-fruit-a"}}, nil)
	tx.On("UpdateAccount", mock.Anything, mock.MatchedBy(func(a *domain.Account) bool {
		// 0.5 roll picks the midpoint steal fraction: 30% of 10,000.
		return a.UserID == "attacker" && a.Balance == 4000 && a.TotalEarned == 4000
	})).Return(nil)
	tx.On("UpdateAccount", mock.Anything, mock.MatchedBy(func(a *domain.Account) bool {
		return a.UserID == "defender" && a.Balance == 7000 && a.TotalSpent == 3000
	})).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(nil)

	f.collection.On("InvalidatePower", "attacker").Return()
	f.collection.On("InvalidatePower", "defender").Return()
	f.expectStampWindows("attacker", "defender")

	// 0.5 everywhere: variance vanishes, the berry roll lands mid-range and
	// the 0.15 item-steal roll fails, so no fruits move.
	f.svc.rnd = fixedRnd(0.5)

	result, err := f.svc.ResolveRaid(context.Background(), "attacker", "defender", domain.RaidModeFull)
	require.NoError(t, err)
	assert.True(t, result.Victory)
	assert.Equal(t, int64(3000), result.StolenBerries)
	assert.Empty(t, result.StolenFruits)

	tx.AssertNotCalled(t, "TransferOwnedFruit", mock.Anything, mock.Anything, mock.Anything)
	tx.AssertExpectations(t)
	f.assertExpectations(t)
}

func TestTransferLootCapsItemSteals(t *testing.T) {
	f := newRaidFixture(t)

	rows := []domain.OwnedFruit{
		{ID: uuid.New(), OwnerID: "defender", FruitID: "fruit-a"},
		{ID: uuid.New(), OwnerID: "defender", FruitID: "fruit-b"},
		{ID: uuid.New(), OwnerID: "defender", FruitID: "fruit-c"},
		{ID: uuid.New(), OwnerID: "defender", FruitID: "fruit-d"},
		{ID: uuid.New(), OwnerID: "defender", FruitID: "fruit-a"}, // duplicate row
	}

	tx := new(MockRaidTx)
	f.repo.On("BeginRaidTx", mock.Anything).Return(tx, nil)
	tx.On("GetAccountForUpdate", mock.Anything, "attacker").Return(&domain.Account{UserID: "attacker"}, nil)
	tx.On("GetAccountForUpdate", mock.Anything, "defender").Return(&domain.Account{UserID: "defender"}, nil)
	tx.On("GetOwnedFruitsForUpdate", mock.Anything, "defender").Return(rows, nil)
	tx.On("TransferOwnedFruit", mock.Anything, mock.Anything, "attacker").Return(nil)
	tx.On("UpdateAccount", mock.Anything, mock.Anything).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(nil)

	f.collection.On("InvalidatePower", "attacker").Return()
	f.collection.On("InvalidatePower", "defender").Return()

	// Every steal roll succeeds, yet only MaxItemsStolen rows may move.
	f.svc.rnd = fixedRnd(0.0)

	result := &domain.RaidResult{AttackerID: "attacker", DefenderID: "defender", Victory: true}
	err := f.svc.transferLoot(context.Background(), result)
	require.NoError(t, err)

	assert.Len(t, result.StolenFruits, f.svc.cfg.MaxItemsStolen)
	// Distinct fruits are visited in ID order, so the first two win.
	assert.Equal(t, []string{"fruit-a", "fruit-b"}, result.StolenFruits)
	tx.AssertNumberOfCalls(t, "TransferOwnedFruit", f.svc.cfg.MaxItemsStolen)
	tx.AssertExpectations(t)
}

func TestTransferLootRollsBackOnFailure(t *testing.T) {
	f := newRaidFixture(t)

	tx := new(MockRaidTx)
	f.repo.On("BeginRaidTx", mock.Anything).Return(tx, nil)
	tx.On("GetAccountForUpdate", mock.Anything, "attacker").Return(nil, assert.AnError)
	tx.On("Rollback", mock.Anything).Return(nil)

	f.svc.rnd = fixedRnd(0.5)

	result := &domain.RaidResult{AttackerID: "attacker", DefenderID: "defender", Victory: true}
	err := f.svc.transferLoot(context.Background(), result)
	assert.ErrorIs(t, err, domain.ErrTransferFailed)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
	tx.AssertExpectations(t)
}

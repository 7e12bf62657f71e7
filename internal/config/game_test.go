package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGameConfigIsValid(t *testing.T) {
	cfg := DefaultGameConfig()

	assert.NoError(t, validator.New().Struct(cfg))
}

func TestDurationHelpers(t *testing.T) {
	cfg := DefaultGameConfig()

	assert.Equal(t, time.Hour, cfg.Gacha.PullCooldown())
	assert.Equal(t, 30*time.Minute, cfg.Combat.RaidCooldown())
	assert.Equal(t, time.Hour, cfg.Combat.Protection())
}

func writeGameConfig(t *testing.T, cfg *GameConfig) string {
	t.Helper()
	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "game.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestLoadGameConfig(t *testing.T) {
	want := DefaultGameConfig()
	want.Gacha.PullCost = 9000

	got, err := LoadGameConfig(writeGameConfig(t, want))
	require.NoError(t, err)
	assert.Equal(t, int64(9000), got.Gacha.PullCost)
	assert.Equal(t, want.Combat.TurnCap, got.Combat.TurnCap)
}

func TestLoadGameConfigRejectsInvalid(t *testing.T) {
	bad := DefaultGameConfig()
	// Max below min violates the cross-field constraint.
	bad.Combat.BerryStealMin = 0.8
	bad.Combat.BerryStealMax = 0.2

	_, err := LoadGameConfig(writeGameConfig(t, bad))
	assert.Error(t, err)
}

func TestLoadGameConfigMissingFile(t *testing.T) {
	_, err := LoadGameConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadGameConfigMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := LoadGameConfig(path)
	assert.Error(t, err)
}

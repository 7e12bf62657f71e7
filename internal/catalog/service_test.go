package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GrandLineBot_Go/internal/domain"
)

func testCatalogConfig() *Config {
	return &Config{
		Version: "1.0",
		Fruits: []Def{
			{ID: "magu_magu", Name: "Magu Magu no Mi", Type: "logia", Rarity: "LEGENDARY", Element: "magma", BasePower: 550},
			{ID: "sube_sube", Name: "Sube Sube no Mi", Type: "paramecia", Rarity: "COMMON"},
			{ID: "hie_hie", Name: "Hie Hie no Mi", Type: "logia", Rarity: "EPIC", Element: "ice"},
			{ID: "mera_mera", Name: "Mera Mera no Mi", Type: "logia", Rarity: "EPIC", Element: "flame"},
		},
	}
}

func TestGetFruit(t *testing.T) {
	svc, err := NewService(testCatalogConfig())
	require.NoError(t, err)

	fruit, err := svc.GetFruit("magu_magu")
	require.NoError(t, err)
	assert.Equal(t, "Magu Magu no Mi", fruit.Name)
	assert.Equal(t, "magma", fruit.Element)
	assert.Equal(t, 550, fruit.EffectiveBasePower())
}

func TestGetFruitNotFound(t *testing.T) {
	svc, err := NewService(testCatalogConfig())
	require.NoError(t, err)

	_, err = svc.GetFruit("nope")
	assert.ErrorIs(t, err, domain.ErrFruitNotFound)
}

func TestAllFruitsOrderedByRarityThenID(t *testing.T) {
	svc, err := NewService(testCatalogConfig())
	require.NoError(t, err)

	fruits := svc.AllFruits()
	require.Len(t, fruits, 4)

	ids := make([]string, 0, len(fruits))
	for _, f := range fruits {
		ids = append(ids, f.ID)
	}
	assert.Equal(t, []string{"sube_sube", "hie_hie", "mera_mera", "magu_magu"}, ids)
}

func TestFruitsByRarity(t *testing.T) {
	svc, err := NewService(testCatalogConfig())
	require.NoError(t, err)

	epics := svc.FruitsByRarity(domain.RarityEpic)
	require.Len(t, epics, 2)
	assert.Equal(t, "hie_hie", epics[0].ID)
	assert.Equal(t, "mera_mera", epics[1].ID)

	assert.Empty(t, svc.FruitsByRarity(domain.RarityOmnipotent))
}

func TestDefaultBasePowerFallback(t *testing.T) {
	svc, err := NewService(testCatalogConfig())
	require.NoError(t, err)

	fruit, err := svc.GetFruit("sube_sube")
	require.NoError(t, err)
	assert.Zero(t, fruit.BasePower)
	assert.Equal(t, domain.RarityCommon.DefaultBasePower(), fruit.EffectiveBasePower())
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	cfg := testCatalogConfig()
	cfg.Fruits = append(cfg.Fruits, cfg.Fruits[0])

	_, err := NewService(cfg)
	assert.ErrorIs(t, err, ErrDuplicateFruitID)
}

func TestValidateRejectsUnknownRarity(t *testing.T) {
	cfg := testCatalogConfig()
	cfg.Fruits[0].Rarity = "SHINY"

	_, err := NewService(cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidateRejectsEmptyCatalog(t *testing.T) {
	_, err := NewService(&Config{Version: "1.0"})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewServiceFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fruits.json")
	data := `{
		"version": "1.0",
		"fruits": [
			{"id": "mera_mera", "name": "Mera Mera no Mi", "type": "logia", "rarity": "EPIC", "element": "flame"}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	svc, err := NewServiceFromFile(path)
	require.NoError(t, err)

	fruit, err := svc.GetFruit("mera_mera")
	require.NoError(t, err)
	assert.Equal(t, domain.RarityEpic, fruit.Rarity)
}

func TestNewServiceFromFileMissing(t *testing.T) {
	_, err := NewServiceFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/GrandLineBot_Go/internal/domain"
)

// Sentinel errors for the catalog loader
var (
	ErrDuplicateFruitID = errors.New("duplicate fruit id")
	ErrInvalidConfig    = errors.New("invalid configuration")
)

// Config represents the JSON configuration for the fruit catalog
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Fruits []Def `json:"fruits" validate:"required,min=1,dive"`
}

// Def represents a single fruit definition in the JSON
type Def struct {
	ID        string `json:"id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Type      string `json:"type" validate:"required"`
	Rarity    string `json:"rarity" validate:"required"`
	Element   string `json:"element"`
	BasePower int    `json:"base_power" validate:"gte=0"`
}

// Loader handles loading and validating the fruit catalog configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
}

type fruitLoader struct {
	validate *validator.Validate
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &fruitLoader{validate: validator.New()}
}

// Load reads and parses a fruit catalog JSON file
func (l *fruitLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return &config, nil
}

// Validate checks the catalog configuration for errors
func (l *fruitLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}

	if err := l.validate.Struct(config); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	seen := make(map[string]struct{}, len(config.Fruits))
	for _, def := range config.Fruits {
		if _, dup := seen[def.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateFruitID, def.ID)
		}
		seen[def.ID] = struct{}{}

		// Unknown rarities are tolerated at aggregation time (they fall back
		// to the common tier) but rejected at load time, where they are a
		// config mistake rather than a data gap.
		if !domain.Rarity(def.Rarity).Valid() {
			return fmt.Errorf("%w: fruit %s has unknown rarity %q", ErrInvalidConfig, def.ID, def.Rarity)
		}
	}

	return nil
}

// toDomain converts a definition into the immutable domain form.
func (d Def) toDomain() domain.Fruit {
	return domain.Fruit{
		ID:        d.ID,
		Name:      d.Name,
		Type:      d.Type,
		Rarity:    domain.Rarity(d.Rarity),
		Element:   d.Element,
		BasePower: d.BasePower,
	}
}

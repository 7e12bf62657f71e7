package catalog

import (
	"fmt"
	"sort"

	"github.com/osse101/GrandLineBot_Go/internal/domain"
)

// Service provides lookups over the immutable fruit catalog. The catalog is
// built once at process start; all methods are safe for concurrent use.
type Service interface {
	// GetFruit returns the definition for id, or domain.ErrFruitNotFound.
	GetFruit(id string) (*domain.Fruit, error)

	// AllFruits returns every definition, ordered by rarity then id.
	AllFruits() []domain.Fruit

	// FruitsByRarity returns all definitions of the given tier, ordered by id.
	FruitsByRarity(rarity domain.Rarity) []domain.Fruit
}

type service struct {
	byID     map[string]domain.Fruit
	byRarity map[domain.Rarity][]domain.Fruit
	ordered  []domain.Fruit
}

// NewService builds a catalog service from a validated config.
func NewService(config *Config) (Service, error) {
	loader := NewLoader()
	if err := loader.Validate(config); err != nil {
		return nil, err
	}

	s := &service{
		byID:     make(map[string]domain.Fruit, len(config.Fruits)),
		byRarity: make(map[domain.Rarity][]domain.Fruit),
	}

	for _, def := range config.Fruits {
		fruit := def.toDomain()
		s.byID[fruit.ID] = fruit
		s.byRarity[fruit.Rarity] = append(s.byRarity[fruit.Rarity], fruit)
		s.ordered = append(s.ordered, fruit)
	}

	for _, fruits := range s.byRarity {
		sort.Slice(fruits, func(i, j int) bool { return fruits[i].ID < fruits[j].ID })
	}
	sort.Slice(s.ordered, func(i, j int) bool {
		if s.ordered[i].Rarity.Order() != s.ordered[j].Rarity.Order() {
			return s.ordered[i].Rarity.Order() < s.ordered[j].Rarity.Order()
		}
		return s.ordered[i].ID < s.ordered[j].ID
	})

	return s, nil
}

// NewServiceFromFile loads, validates and builds the catalog in one step.
func NewServiceFromFile(path string) (Service, error) {
	loader := NewLoader()
	config, err := loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return NewService(config)
}

func (s *service) GetFruit(id string) (*domain.Fruit, error) {
	fruit, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrFruitNotFound, id)
	}
	return &fruit, nil
}

func (s *service) AllFruits() []domain.Fruit {
	out := make([]domain.Fruit, len(s.ordered))
	copy(out, s.ordered)
	return out
}

func (s *service) FruitsByRarity(rarity domain.Rarity) []domain.Fruit {
	fruits := s.byRarity[rarity]
	out := make([]domain.Fruit, len(fruits))
	copy(out, fruits)
	return out
}

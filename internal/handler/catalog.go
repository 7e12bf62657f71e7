package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/GrandLineBot_Go/internal/catalog"
	"github.com/osse101/GrandLineBot_Go/internal/domain"
)

// FruitsResponse wraps the full fruit catalog
type FruitsResponse struct {
	Fruits []domain.Fruit `json:"fruits"`
}

// HandleGetFruits returns the catalog, optionally filtered by rarity
func HandleGetFruits(service catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rarity := GetOptionalQueryParam(r, "rarity", "")
		if rarity != "" {
			respondJSON(w, http.StatusOK, FruitsResponse{Fruits: service.FruitsByRarity(domain.Rarity(rarity))})
			return
		}
		respondJSON(w, http.StatusOK, FruitsResponse{Fruits: service.AllFruits()})
	}
}

// HandleGetFruit returns one catalog entry by ID
func HandleGetFruit(service catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fruitID, ok := GetQueryParam(r, w, "id")
		if !ok {
			return
		}

		fruit, err := service.GetFruit(fruitID)
		if err != nil {
			if errors.Is(err, domain.ErrFruitNotFound) {
				respondError(w, http.StatusNotFound, ErrMsgFruitNotFoundHTTP)
				return
			}
			respondServiceError(w, r, "get fruit", err)
			return
		}

		respondJSON(w, http.StatusOK, fruit)
	}
}

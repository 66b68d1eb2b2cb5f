package services

import (
	"deskfit/models"

	"gorm.io/gorm"
)

type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

type FoodSuggestion struct {
	Name            string  `json:"name"`
	CaloriesPerGram float64 `json:"calories_per_gram"`
}

// Suggest returns catalog entries whose name contains the query,
// case-insensitively. An empty query suggests nothing rather than
// dumping the whole catalog.
func (s *FoodService) Suggest(query string) ([]FoodSuggestion, error) {
	if query == "" {
		return []FoodSuggestion{}, nil
	}

	var foods []models.Food
	err := s.db.
		Where("LOWER(name) LIKE LOWER(?)", "%"+query+"%").
		Find(&foods).Error
	if err != nil {
		return nil, err
	}

	out := make([]FoodSuggestion, 0, len(foods))
	for _, f := range foods {
		out = append(out, FoodSuggestion{Name: f.Name, CaloriesPerGram: f.CaloriesPerGram})
	}
	return out, nil
}

// Lookup finds a catalog entry by exact name.
func (s *FoodService) Lookup(name string) (*models.Food, error) {
	var food models.Food
	err := s.db.Where("name = ?", name).First(&food).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &food, nil
}

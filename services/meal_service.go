package services

import (
	"errors"

	"deskfit/models"

	"gorm.io/gorm"
)

// ErrUnknownFoodRate means the food is not in the catalog and the
// request did not supply a per-gram rate to add it with.
var ErrUnknownFoodRate = errors.New("unknown food: calories per gram required")

type MealService struct {
	db      *gorm.DB
	foodSvc *FoodService
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db, foodSvc: NewFoodService(db)}
}

// LogMeal records a meal for the user. For catalog foods the calories
// come from the stored rate; for new foods the caller must supply
// caloriesPerGram (> 0), which also adds the food to the catalog.
func (s *MealService) LogMeal(userID uint, foodName string, grams, caloriesPerGram float64) (*models.Meal, error) {
	food, err := s.foodSvc.Lookup(foodName)
	if err != nil {
		return nil, err
	}

	var calories float64
	switch {
	case food != nil:
		calories = food.CaloriesPerGram * grams
	case caloriesPerGram > 0:
		calories = caloriesPerGram * grams
		newFood := models.Food{Name: foodName, CaloriesPerGram: caloriesPerGram}
		if err := s.db.Create(&newFood).Error; err != nil {
			return nil, err
		}
	default:
		return nil, ErrUnknownFoodRate
	}

	meal := models.Meal{
		UserID:   userID,
		Name:     foodName,
		Calories: calories,
		Grams:    grams,
		Date:     today(),
	}
	if err := s.db.Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

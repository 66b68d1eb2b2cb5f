package services

import (
	"errors"

	"deskfit/models"

	"gorm.io/gorm"
)

// Walking burn rate in kcal per minute per kg of body weight.
const BurnRatePerMinutePerKg = 0.035

// ErrProfileIncomplete means the user has no weight on file yet, so
// the calorie burn cannot be computed.
var ErrProfileIncomplete = errors.New("complete onboarding before logging activity")

type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

// LogWalk records a walking session, deriving the calorie burn from
// the user's stored weight.
func (s *ActivityService) LogWalk(user *models.User, durationMinutes float64) (*models.Activity, error) {
	if user.Weight <= 0 {
		return nil, ErrProfileIncomplete
	}

	activity := models.Activity{
		UserID:          user.ID,
		DurationMinutes: durationMinutes,
		CaloriesBurned:  durationMinutes * user.Weight * BurnRatePerMinutePerKg,
		Date:            today(),
	}
	if err := s.db.Create(&activity).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

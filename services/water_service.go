package services

import (
	"deskfit/models"

	"gorm.io/gorm"
)

type WaterService struct {
	db *gorm.DB
}

func NewWaterService(db *gorm.DB) *WaterService {
	return &WaterService{db: db}
}

func (s *WaterService) LogWater(userID uint, amountML float64) (*models.WaterLog, error) {
	log := models.WaterLog{
		UserID:   userID,
		AmountML: amountML,
		Date:     today(),
	}
	if err := s.db.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"deskfit/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CatalogService loads the food lookup table from a CSV export with
// columns FoodItem and Cals_per100grams (values like "52 cal").
type CatalogService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewCatalogService(db *gorm.DB, logger *zap.Logger) *CatalogService {
	return &CatalogService{db: db, logger: logger}
}

// LoadFile ingests the CSV at path. Already-known names are left
// untouched, so re-running against the same file adds nothing.
func (s *CatalogService) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open food catalog: %w", err)
	}
	defer f.Close()
	return s.Load(f)
}

func (s *CatalogService) Load(r io.Reader) error {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read catalog header: %w", err)
	}

	nameCol, calsCol := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case "FoodItem":
			nameCol = i
		case "Cals_per100grams":
			calsCol = i
		}
	}
	if nameCol < 0 || calsCol < 0 {
		return fmt.Errorf("catalog is missing required columns FoodItem/Cals_per100grams, got %v", header)
	}

	loaded, skipped := 0, 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A short or broken row aborts the rest of the load;
			// rows inserted so far are kept.
			s.logger.Warn("catalog load aborted on malformed row", zap.Error(err))
			break
		}

		name := strings.TrimSpace(row[nameCol])
		rate, err := parseCaloriesPer100g(row[calsCol])
		if err != nil {
			s.logger.Warn("skipping catalog row with bad calorie value",
				zap.String("food", name), zap.String("value", row[calsCol]))
			skipped++
			continue
		}

		var existing models.Food
		err = s.db.Where("name = ?", name).First(&existing).Error
		if err == nil {
			continue // already present
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		food := models.Food{Name: name, CaloriesPerGram: rate / 100}
		if err := s.db.Create(&food).Error; err != nil {
			return err
		}
		loaded++
	}

	s.logger.Info("food catalog loaded", zap.Int("added", loaded), zap.Int("skipped", skipped))
	return nil
}

// Values arrive like "52 cal" or plain "52".
func parseCaloriesPer100g(raw string) (float64, error) {
	v := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "cal"))
	return strconv.ParseFloat(strings.TrimSpace(v), 64)
}

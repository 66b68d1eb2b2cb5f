package services

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"deskfit/models"

	"gorm.io/gorm"
)

type SummaryService struct {
	db *gorm.DB
}

func NewSummaryService(db *gorm.DB) *SummaryService {
	return &SummaryService{db: db}
}

// DailySummary carries three per-day series aligned to Dates. A date
// appears once if any series has a record for it; the others are
// zero-filled for that day.
type DailySummary struct {
	Dates          []string  `json:"dates"`
	CalorieIntake  []float64 `json:"calorie_intake"`
	CaloriesBurned []float64 `json:"calories_burned"`
	WaterIntake    []float64 `json:"water_intake"`
}

type dateTotal struct {
	Date  time.Time
	Total float64
}

func (s *SummaryService) sumByDate(ctx context.Context, model interface{}, column string, userID uint) ([]dateTotal, error) {
	var rows []dateTotal
	err := s.db.WithContext(ctx).
		Model(model).
		Select("date, SUM("+column+") AS total").
		Where("user_id = ?", userID).
		Group("date").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Daily aggregates the user's meals, activities and water logs into
// per-date sums for chart rendering.
func (s *SummaryService) Daily(ctx context.Context, userID uint) (*DailySummary, error) {
	mealRows, err := s.sumByDate(ctx, &models.Meal{}, "calories", userID)
	if err != nil {
		return nil, err
	}
	activityRows, err := s.sumByDate(ctx, &models.Activity{}, "calories_burned", userID)
	if err != nil {
		return nil, err
	}
	waterRows, err := s.sumByDate(ctx, &models.WaterLog{}, "amount_ml", userID)
	if err != nil {
		return nil, err
	}

	const day = "2006-01-02"

	intake := map[string]float64{}
	burned := map[string]float64{}
	water := map[string]float64{}
	seen := map[string]bool{}

	for _, r := range mealRows {
		key := r.Date.Format(day)
		intake[key] = r.Total
		seen[key] = true
	}
	for _, r := range activityRows {
		key := r.Date.Format(day)
		burned[key] = r.Total
		seen[key] = true
	}
	for _, r := range waterRows {
		key := r.Date.Format(day)
		water[key] = r.Total
		seen[key] = true
	}

	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	out := &DailySummary{
		Dates:          dates,
		CalorieIntake:  make([]float64, len(dates)),
		CaloriesBurned: make([]float64, len(dates)),
		WaterIntake:    make([]float64, len(dates)),
	}
	for i, d := range dates {
		out.CalorieIntake[i] = intake[d]
		out.CaloriesBurned[i] = burned[d]
		out.WaterIntake[i] = water[d]
	}
	return out, nil
}

// HealthTotals are all-time sums, the input to the advisor prompt.
type HealthTotals struct {
	Calories    float64
	WaterML     float64
	WalkMinutes float64
}

func (s *SummaryService) sumAll(ctx context.Context, model interface{}, column string, userID uint) (float64, error) {
	// SUM over zero rows is NULL, hence the nullable scan target.
	var total sql.NullFloat64
	err := s.db.WithContext(ctx).
		Model(model).
		Select("SUM(" + column + ")").
		Where("user_id = ?", userID).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total.Float64, nil
}

func (s *SummaryService) Totals(ctx context.Context, userID uint) (HealthTotals, error) {
	var t HealthTotals
	var err error

	if t.Calories, err = s.sumAll(ctx, &models.Meal{}, "calories", userID); err != nil {
		return t, err
	}
	if t.WaterML, err = s.sumAll(ctx, &models.WaterLog{}, "amount_ml", userID); err != nil {
		return t, err
	}
	if t.WalkMinutes, err = s.sumAll(ctx, &models.Activity{}, "duration_minutes", userID); err != nil {
		return t, err
	}
	return t, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/pvhao2002/smart-health-sub000/internal/api"
	"github.com/pvhao2002/smart-health-sub000/internal/model"
)

type HealthService struct {
	API *api.Client
}

func NewHealthService(c *api.Client) *HealthService {
	return &HealthService{API: c}
}

func (s *HealthService) Records(ctx context.Context) ([]model.HealthRecord, error) {
	var out []model.HealthRecord
	if err := s.API.Get(ctx, "/health-records/my", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *HealthService) AddRecord(ctx context.Context, rec model.HealthRecord) error {
	if rec.Date == "" {
		return errors.New("date is required")
	}
	return s.API.Post(ctx, "/health-records", rec, nil)
}

func (s *HealthService) MealLogs(ctx context.Context) ([]model.MealLog, error) {
	var out []model.MealLog
	if err := s.API.Get(ctx, "/meal-logs/my", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *HealthService) AddMealLog(ctx context.Context, log model.MealLog) error {
	if log.MealID == 0 {
		return errors.New("meal is required")
	}
	return s.API.Post(ctx, "/meal-logs", log, nil)
}

func (s *HealthService) Meals(ctx context.Context) ([]model.Meal, error) {
	var out []model.Meal
	if err := s.API.Get(ctx, "/meals", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Plans loads both weekly plan lists the plan screen shows side by side.
func (s *HealthService) Plans(ctx context.Context) (*model.WeeklyPlan, error) {
	var plan model.WeeklyPlan

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var out []model.WorkoutSchedule
		if err := s.API.Get(gctx, "/admin/plans/workouts", &out); err != nil {
			return fmt.Errorf("workout plan: %w", err)
		}
		plan.Workouts = out
		return nil
	})
	g.Go(func() error {
		var out []model.MealPlan
		if err := s.API.Get(gctx, "/admin/plans/meals", &out); err != nil {
			return fmt.Errorf("meal plan: %w", err)
		}
		plan.Meals = out
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &plan, nil
}

// CalculateBMI computes weight / (height m)^2 rounded to two decimals.
// Zero when either input is unknown, matching the record screen which
// leaves the field blank without a profile height.
func CalculateBMI(weightKg, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return 0
	}
	h := heightCm / 100
	return math.Round(weightKg/(h*h)*100) / 100
}

package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/pvhao2002/smart-health-sub000/internal/api"
	"github.com/pvhao2002/smart-health-sub000/internal/model"
)

// AdminService covers the staff dashboard calls. The backend enforces
// the role; this layer just issues the requests.
type AdminService struct {
	API *api.Client
}

func NewAdminService(c *api.Client) *AdminService {
	return &AdminService{API: c}
}

func (s *AdminService) CreateProduct(ctx context.Context, med model.Medicine) (*model.Medicine, error) {
	var out model.Medicine
	if err := s.API.Post(ctx, "/admin/products", med, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AdminService) UpdateProduct(ctx context.Context, med model.Medicine) error {
	return s.API.Put(ctx, fmt.Sprintf("/admin/products/%d", med.ID), med, nil)
}

func (s *AdminService) DeleteProduct(ctx context.Context, id int64) error {
	return s.API.Delete(ctx, fmt.Sprintf("/admin/products/%d", id))
}

func (s *AdminService) CreateCategory(ctx context.Context, cat model.Category) error {
	return s.API.Post(ctx, "/admin/categories", cat, nil)
}

func (s *AdminService) UpdateCategory(ctx context.Context, cat model.Category) error {
	return s.API.Put(ctx, fmt.Sprintf("/admin/categories/%d", cat.ID), cat, nil)
}

func (s *AdminService) DeleteCategory(ctx context.Context, id int64) error {
	return s.API.Delete(ctx, fmt.Sprintf("/admin/categories/%d", id))
}

// WorkoutSchedules lists the weekly workout plan entries.
func (s *AdminService) WorkoutSchedules(ctx context.Context) ([]model.WorkoutSchedule, error) {
	var out []model.WorkoutSchedule
	if err := s.API.Get(ctx, "/admin/plans/workouts", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *AdminService) CreateWorkoutSchedule(ctx context.Context, req model.WorkoutScheduleRequest) error {
	return s.API.Post(ctx, "/admin/plans/workouts", req, nil)
}

func (s *AdminService) UpdateWorkoutSchedule(ctx context.Context, id int64, req model.WorkoutScheduleRequest) error {
	return s.API.Patch(ctx, fmt.Sprintf("/admin/plans/workouts/%d", id), req, nil)
}

func (s *AdminService) DeleteWorkoutSchedule(ctx context.Context, id int64) error {
	return s.API.Delete(ctx, fmt.Sprintf("/admin/plans/workouts/%d", id))
}

// MealPlans lists the weekly meal plan entries.
func (s *AdminService) MealPlans(ctx context.Context) ([]model.MealPlan, error) {
	var out []model.MealPlan
	if err := s.API.Get(ctx, "/admin/plans/meals", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *AdminService) CreateMealPlan(ctx context.Context, req model.MealPlanRequest) error {
	return s.API.Post(ctx, "/admin/plans/meals", req, nil)
}

func (s *AdminService) UpdateMealPlan(ctx context.Context, id int64, req model.MealPlanRequest) error {
	return s.API.Patch(ctx, fmt.Sprintf("/admin/plans/meals/%d", id), req, nil)
}

func (s *AdminService) DeleteMealPlan(ctx context.Context, id int64) error {
	return s.API.Delete(ctx, fmt.Sprintf("/admin/plans/meals/%d", id))
}

func (s *AdminService) Meals(ctx context.Context) ([]model.Meal, error) {
	var out []model.Meal
	if err := s.API.Get(ctx, "/admin/meals", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *AdminService) Workouts(ctx context.Context) ([]model.Workout, error) {
	var out []model.Workout
	if err := s.API.Get(ctx, "/admin/workouts", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *AdminService) Orders(ctx context.Context) ([]model.Order, error) {
	var out []model.Order
	if err := s.API.Get(ctx, "/admin/orders", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *AdminService) UpdateOrderStatus(ctx context.Context, id int64, status string) error {
	body := map[string]string{"status": status}
	return s.API.Put(ctx, fmt.Sprintf("/admin/orders/%d/status", id), body, nil)
}

func (s *AdminService) Users(ctx context.Context) ([]model.User, error) {
	var out []model.User
	if err := s.API.Get(ctx, "/admin/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *AdminService) UpdateUserStatus(ctx context.Context, id int64, status string) error {
	body := map[string]string{"status": status}
	return s.API.Put(ctx, fmt.Sprintf("/admin/users/%d/status", id), body, nil)
}

func (s *AdminService) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	var out model.Dashboard
	if err := s.API.Get(ctx, "/admin/dashboard", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Overview fetches everything the dashboard page shows in one shot.
func (s *AdminService) Overview(ctx context.Context) (*model.AdminOverview, error) {
	var out model.AdminOverview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := s.Dashboard(gctx)
		if err != nil {
			return fmt.Errorf("dashboard: %w", err)
		}
		out.Dashboard = *d
		return nil
	})
	g.Go(func() error {
		orders, err := s.Orders(gctx)
		if err != nil {
			return fmt.Errorf("orders: %w", err)
		}
		out.Orders = orders
		return nil
	})
	g.Go(func() error {
		users, err := s.Users(gctx)
		if err != nil {
			return fmt.Errorf("users: %w", err)
		}
		out.Users = users
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/pvhao2002/smart-health-sub000/internal/model"
)

func runAdmin(ctx context.Context, d *deps, args []string) error {
	if len(args) == 0 {
		args = []string{"dashboard"}
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "dashboard":
		ov, err := d.adminSvc.Overview(ctx)
		if err != nil {
			return err
		}
		db := ov.Dashboard
		fmt.Printf("revenue %.0f  orders %d  users %d  products %d\n",
			db.TotalRevenue, db.TotalOrders, db.TotalUsers, db.TotalProducts)
		fmt.Printf("loaded %d orders, %d users\n", len(ov.Orders), len(ov.Users))
		return nil

	case "product-create":
		med, err := parseProductFlags(rest)
		if err != nil {
			return err
		}
		created, err := d.adminSvc.CreateProduct(ctx, *med)
		if err != nil {
			return err
		}
		fmt.Printf("created product #%d\n", created.ID)
		return nil

	case "product-update":
		med, err := parseProductFlags(rest)
		if err != nil {
			return err
		}
		if med.ID == 0 {
			return fmt.Errorf("-id is required")
		}
		if err := d.adminSvc.UpdateProduct(ctx, *med); err != nil {
			return err
		}
		fmt.Println("updated")
		return nil

	case "product-delete":
		if len(rest) == 0 {
			return fmt.Errorf("usage: admin product-delete <id>")
		}
		id, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product id: %s", rest[0])
		}
		if err := d.adminSvc.DeleteProduct(ctx, id); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil

	case "orders":
		orders, err := d.adminSvc.Orders(ctx)
		if err != nil {
			return err
		}
		for _, o := range orders {
			fmt.Printf("#%d %-12s %-8s %10.0f\n", o.ID, o.Status, o.PaymentMethod, o.Total)
		}
		return nil

	case "set-order-status":
		if len(rest) < 2 {
			return fmt.Errorf("usage: admin set-order-status <id> <status>")
		}
		id, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid order id: %s", rest[0])
		}
		if err := d.adminSvc.UpdateOrderStatus(ctx, id, rest[1]); err != nil {
			return err
		}
		fmt.Println("status updated")
		return nil

	case "users":
		users, err := d.adminSvc.Users(ctx)
		if err != nil {
			return err
		}
		for _, u := range users {
			fmt.Printf("#%d %-25s %-30s %s\n", u.ID, u.Name, u.Email, u.Status)
		}
		return nil

	case "set-user-status":
		if len(rest) < 2 {
			return fmt.Errorf("usage: admin set-user-status <id> <status>")
		}
		id, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id: %s", rest[0])
		}
		if err := d.adminSvc.UpdateUserStatus(ctx, id, rest[1]); err != nil {
			return err
		}
		fmt.Println("status updated")
		return nil

	case "category-create", "category-update":
		fs := flag.NewFlagSet("admin category", flag.ContinueOnError)
		id := fs.Int64("id", 0, "category id (update only)")
		name := fs.String("name", "", "category name")
		desc := fs.String("desc", "", "description")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *name == "" {
			return fmt.Errorf("-name is required")
		}
		cat := model.Category{ID: *id, Name: *name, Description: *desc}
		if sub == "category-create" {
			if err := d.adminSvc.CreateCategory(ctx, cat); err != nil {
				return err
			}
			fmt.Println("category created")
			return nil
		}
		if cat.ID == 0 {
			return fmt.Errorf("-id is required")
		}
		if err := d.adminSvc.UpdateCategory(ctx, cat); err != nil {
			return err
		}
		fmt.Println("category updated")
		return nil

	case "category-delete":
		if len(rest) == 0 {
			return fmt.Errorf("usage: admin category-delete <id>")
		}
		id, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid category id: %s", rest[0])
		}
		if err := d.adminSvc.DeleteCategory(ctx, id); err != nil {
			return err
		}
		fmt.Println("category deleted")
		return nil

	case "plans":
		schedules, err := d.adminSvc.WorkoutSchedules(ctx)
		if err != nil {
			return err
		}
		for _, w := range schedules {
			workout := "-"
			if w.Workout != nil {
				workout = w.Workout.Name
			}
			if w.IsRestDay {
				workout = "rest day"
			}
			fmt.Printf("workout #%d %-9s %-25s %s\n", w.ID, w.DayOfWeek, w.Name, workout)
		}
		plans, err := d.adminSvc.MealPlans(ctx)
		if err != nil {
			return err
		}
		for _, m := range plans {
			fmt.Printf("meal    #%d %-9s %-25s %.0f kcal\n", m.ID, m.DayOfWeek, m.Name, m.TotalCalories)
		}
		return nil

	case "plan-workout-set":
		fs := flag.NewFlagSet("admin plan-workout-set", flag.ContinueOnError)
		id := fs.Int64("id", 0, "schedule id (update only)")
		name := fs.String("name", "", "schedule name")
		goal := fs.String("goal", model.GoalMaintain, "LOSE_WEIGHT|GAIN_WEIGHT|MAINTAIN")
		day := fs.String("day", "", "MONDAY..SUNDAY")
		workout := fs.Int64("workout", 0, "workout id")
		restDay := fs.Bool("rest", false, "mark as rest day")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *name == "" || *day == "" {
			return fmt.Errorf("-name and -day are required")
		}
		req := model.WorkoutScheduleRequest{
			Name:      *name,
			Goal:      *goal,
			DayOfWeek: *day,
			WorkoutID: *workout,
			IsRestDay: *restDay,
		}
		if *id == 0 {
			if err := d.adminSvc.CreateWorkoutSchedule(ctx, req); err != nil {
				return err
			}
		} else if err := d.adminSvc.UpdateWorkoutSchedule(ctx, *id, req); err != nil {
			return err
		}
		fmt.Println("workout schedule saved")
		return nil

	case "plan-workout-delete":
		if len(rest) == 0 {
			return fmt.Errorf("usage: admin plan-workout-delete <id>")
		}
		id, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid schedule id: %s", rest[0])
		}
		if err := d.adminSvc.DeleteWorkoutSchedule(ctx, id); err != nil {
			return err
		}
		fmt.Println("workout schedule deleted")
		return nil

	case "plan-meal-set":
		fs := flag.NewFlagSet("admin plan-meal-set", flag.ContinueOnError)
		id := fs.Int64("id", 0, "meal plan id (update only)")
		name := fs.String("name", "", "plan name")
		goal := fs.String("goal", model.GoalMaintain, "LOSE_WEIGHT|GAIN_WEIGHT|MAINTAIN")
		day := fs.String("day", "", "MONDAY..SUNDAY")
		breakfast := fs.Int64("breakfast", 0, "breakfast meal id")
		lunch := fs.Int64("lunch", 0, "lunch meal id")
		dinner := fs.Int64("dinner", 0, "dinner meal id")
		snack := fs.Int64("snack", 0, "snack meal id")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *name == "" || *day == "" {
			return fmt.Errorf("-name and -day are required")
		}
		req := model.MealPlanRequest{
			Name:        *name,
			Goal:        *goal,
			DayOfWeek:   *day,
			BreakfastID: *breakfast,
			LunchID:     *lunch,
			DinnerID:    *dinner,
			SnackID:     *snack,
		}
		if *id == 0 {
			if err := d.adminSvc.CreateMealPlan(ctx, req); err != nil {
				return err
			}
		} else if err := d.adminSvc.UpdateMealPlan(ctx, *id, req); err != nil {
			return err
		}
		fmt.Println("meal plan saved")
		return nil

	case "plan-meal-delete":
		if len(rest) == 0 {
			return fmt.Errorf("usage: admin plan-meal-delete <id>")
		}
		id, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid meal plan id: %s", rest[0])
		}
		if err := d.adminSvc.DeleteMealPlan(ctx, id); err != nil {
			return err
		}
		fmt.Println("meal plan deleted")
		return nil

	case "meals":
		meals, err := d.adminSvc.Meals(ctx)
		if err != nil {
			return err
		}
		for _, m := range meals {
			fmt.Printf("#%d %-25s %.0f kcal\n", m.ID, m.Name, m.Calories)
		}
		return nil

	case "workouts":
		workouts, err := d.adminSvc.Workouts(ctx)
		if err != nil {
			return err
		}
		for _, w := range workouts {
			fmt.Printf("#%d %-25s %d min\n", w.ID, w.Name, w.Duration)
		}
		return nil

	default:
		return fmt.Errorf("unknown admin subcommand: %s", sub)
	}
}

func parseProductFlags(args []string) (*model.Medicine, error) {
	fs := flag.NewFlagSet("admin product", flag.ContinueOnError)
	id := fs.Int64("id", 0, "product id (update only)")
	name := fs.String("name", "", "product name")
	price := fs.Float64("price", 0, "unit price")
	stock := fs.Int("stock", 0, "stock count")
	category := fs.Int64("category", 0, "category id")
	desc := fs.String("desc", "", "description")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *name == "" && *id == 0 {
		return nil, fmt.Errorf("-name is required")
	}
	return &model.Medicine{
		ID:          *id,
		Name:        *name,
		Price:       *price,
		Stock:       *stock,
		CategoryID:  *category,
		Description: *desc,
	}, nil
}

package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/pvhao2002/smart-health-sub000/internal/model"
	"github.com/pvhao2002/smart-health-sub000/internal/services"
)

func runHealth(ctx context.Context, d *deps, args []string) error {
	if len(args) == 0 {
		args = []string{"records"}
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "records":
		recs, err := d.healthSvc.Records(ctx)
		if err != nil {
			return err
		}
		for _, r := range recs {
			fmt.Printf("%s  weight %.1f  bmi %.2f  sleep %.1fh  steps %d\n",
				r.Date, r.Weight, r.BMI, r.SleepHours, r.Steps)
		}
		return nil

	case "add-record":
		fs := flag.NewFlagSet("health add-record", flag.ContinueOnError)
		date := fs.String("date", time.Now().Format("2006-01-02"), "record date")
		weight := fs.Float64("weight", 0, "weight in kg")
		heartRate := fs.Float64("heart-rate", 0, "heart rate")
		sleep := fs.Float64("sleep", 0, "sleep hours")
		steps := fs.Int64("steps", 0, "step count")
		note := fs.String("note", "", "note")
		if err := fs.Parse(rest); err != nil {
			return err
		}

		rec := model.HealthRecord{
			Date:       *date,
			Weight:     *weight,
			HeartRate:  *heartRate,
			SleepHours: *sleep,
			Steps:      *steps,
			Note:       *note,
		}
		// BMI is derived client-side from the profile height.
		if *weight > 0 {
			if user, err := d.authSvc.Profile(ctx); err == nil && user.HeightCm != nil {
				rec.BMI = services.CalculateBMI(*weight, *user.HeightCm)
			}
		}
		if err := d.healthSvc.AddRecord(ctx, rec); err != nil {
			return err
		}
		fmt.Println("record saved")
		return nil

	case "meals":
		logs, err := d.healthSvc.MealLogs(ctx)
		if err != nil {
			return err
		}
		for _, m := range logs {
			fmt.Printf("%s  %-10s meal #%d x%.1f\n", m.Date, m.MealType, m.MealID, m.Quantity)
		}
		return nil

	case "log-meal":
		fs := flag.NewFlagSet("health log-meal", flag.ContinueOnError)
		date := fs.String("date", time.Now().Format("2006-01-02"), "meal date")
		mealID := fs.Int64("meal", 0, "meal id")
		mealType := fs.String("type", "BREAKFAST", "BREAKFAST|LUNCH|DINNER|SNACK")
		qty := fs.Float64("qty", 1, "servings")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		err := d.healthSvc.AddMealLog(ctx, model.MealLog{
			Date:     *date,
			MealID:   *mealID,
			MealType: *mealType,
			Quantity: *qty,
		})
		if err != nil {
			return err
		}
		fmt.Println("meal logged")
		return nil

	case "plan":
		plan, err := d.healthSvc.Plans(ctx)
		if err != nil {
			return err
		}
		fmt.Println("workout schedule:")
		for _, w := range plan.Workouts {
			if w.IsRestDay {
				fmt.Printf("  %-9s rest day\n", w.DayOfWeek)
				continue
			}
			name := w.Name
			if w.Workout != nil {
				name = w.Workout.Name
			}
			fmt.Printf("  %-9s %-25s (%s)\n", w.DayOfWeek, name, w.Goal)
		}
		fmt.Println("meal plan:")
		for _, m := range plan.Meals {
			fmt.Printf("  %-9s %-25s %.0f kcal\n", m.DayOfWeek, m.Name, m.TotalCalories)
		}
		return nil

	case "bmi":
		fs := flag.NewFlagSet("health bmi", flag.ContinueOnError)
		weight := fs.Float64("weight", 0, "weight in kg")
		height := fs.Float64("height", 0, "height in cm (defaults to profile)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *height == 0 {
			if user, err := d.authSvc.Profile(ctx); err == nil && user.HeightCm != nil {
				*height = *user.HeightCm
			}
		}
		bmi := services.CalculateBMI(*weight, *height)
		if bmi == 0 {
			return fmt.Errorf("need both weight and height")
		}
		fmt.Printf("BMI: %.2f\n", bmi)
		return nil

	default:
		return fmt.Errorf("unknown health subcommand: %s", sub)
	}
}

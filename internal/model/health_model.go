package model

// HealthRecord is one day of tracked metrics.
type HealthRecord struct {
	ID             int64   `json:"id,omitempty"`
	Date           string  `json:"date"`
	Weight         float64 `json:"weight,omitempty"`
	BMI            float64 `json:"bmi,omitempty"`
	HeartRate      float64 `json:"heartRate,omitempty"`
	SleepHours     float64 `json:"sleepHours,omitempty"`
	Steps          int64   `json:"steps,omitempty"`
	Distance       float64 `json:"distance,omitempty"`
	CaloriesBurned float64 `json:"caloriesBurned,omitempty"`
	Note           string  `json:"note,omitempty"`
}

// MealLog records a meal eaten on a given date.
type MealLog struct {
	ID       int64   `json:"id,omitempty"`
	Date     string  `json:"date"`
	MealID   int64   `json:"mealId"`
	MealType string  `json:"mealType"`
	Quantity float64 `json:"quantity,omitempty"`
	Note     string  `json:"note,omitempty"`
}

type Meal struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories,omitempty"`
}

type Workout struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Duration int    `json:"duration,omitempty"`
}

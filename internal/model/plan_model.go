package model

// Plan goals shared by workout schedules and meal plans.
const (
	GoalLoseWeight = "LOSE_WEIGHT"
	GoalGainWeight = "GAIN_WEIGHT"
	GoalMaintain   = "MAINTAIN"
)

// WorkoutSchedule is one day of the 7-day workout plan.
type WorkoutSchedule struct {
	ID        int64    `json:"id,omitempty"`
	Name      string   `json:"name"`
	Goal      string   `json:"goal"`
	DayOfWeek string   `json:"dayOfWeek"`
	Workout   *Workout `json:"workout,omitempty"`
	IsRestDay bool     `json:"isRestDay,omitempty"`
}

// WorkoutScheduleRequest is the create/update payload; the workout rides
// as a plain id.
type WorkoutScheduleRequest struct {
	Name      string `json:"name"`
	Goal      string `json:"goal"`
	DayOfWeek string `json:"dayOfWeek"`
	WorkoutID int64  `json:"workoutId,omitempty"`
	IsRestDay bool   `json:"isRestDay,omitempty"`
}

// MealPlan is one day of the meal plan with its four slots and the
// server-computed nutrition totals.
type MealPlan struct {
	ID        int64  `json:"id,omitempty"`
	Name      string `json:"name"`
	Goal      string `json:"goal"`
	DayOfWeek string `json:"dayOfWeek"`
	Breakfast *Meal  `json:"breakfast,omitempty"`
	Lunch     *Meal  `json:"lunch,omitempty"`
	Dinner    *Meal  `json:"dinner,omitempty"`
	Snack     *Meal  `json:"snack,omitempty"`

	TotalCalories float64 `json:"totalCalories,omitempty"`
	TotalProtein  float64 `json:"totalProtein,omitempty"`
	TotalCarbs    float64 `json:"totalCarbs,omitempty"`
	TotalFat      float64 `json:"totalFat,omitempty"`
}

// MealPlanRequest is the create/update payload; meal slots ride as ids.
type MealPlanRequest struct {
	Name        string `json:"name"`
	Goal        string `json:"goal"`
	DayOfWeek   string `json:"dayOfWeek"`
	BreakfastID int64  `json:"breakfastId,omitempty"`
	LunchID     int64  `json:"lunchId,omitempty"`
	DinnerID    int64  `json:"dinnerId,omitempty"`
	SnackID     int64  `json:"snackId,omitempty"`
}

// WeeklyPlan bundles both plan lists the plan screen shows.
type WeeklyPlan struct {
	Workouts []WorkoutSchedule
	Meals    []MealPlan
}

package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyPlanMergesBothLists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/admin/plans/workouts":
			w.Write([]byte(`{"data":[
				{"id":1,"name":"Push","goal":"MAINTAIN","dayOfWeek":"MONDAY","workout":{"id":3,"name":"Push ups"}},
				{"id":2,"name":"Recovery","goal":"MAINTAIN","dayOfWeek":"TUESDAY","isRestDay":true}]}`))
		case "/admin/plans/meals":
			w.Write([]byte(`{"data":[
				{"id":4,"name":"Cut day","goal":"LOSE_WEIGHT","dayOfWeek":"MONDAY",
				 "breakfast":{"id":9,"name":"Oats"},"totalCalories":1800}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	svc := NewHealthService(testClient(srv))
	plan, err := svc.Plans(context.Background())
	require.NoError(t, err)

	require.Len(t, plan.Workouts, 2)
	assert.Equal(t, "Push ups", plan.Workouts[0].Workout.Name)
	assert.True(t, plan.Workouts[1].IsRestDay)

	require.Len(t, plan.Meals, 1)
	assert.Equal(t, "Oats", plan.Meals[0].Breakfast.Name)
	assert.Equal(t, 1800.0, plan.Meals[0].TotalCalories)
}

func TestWeeklyPlanSurfacesEitherFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/admin/plans/meals" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"plans unavailable"}`))
			return
		}
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	svc := NewHealthService(testClient(srv))
	_, err := svc.Plans(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "meal plan")
}

func TestCalculateBMI(t *testing.T) {
	// 70kg at 175cm: 70 / 1.75^2 = 22.86
	assert.Equal(t, 22.86, CalculateBMI(70, 175))
	assert.Equal(t, 24.22, CalculateBMI(62, 160))
}

func TestCalculateBMIUnknownInputs(t *testing.T) {
	assert.Equal(t, 0.0, CalculateBMI(70, 0))
	assert.Equal(t, 0.0, CalculateBMI(0, 175))
	assert.Equal(t, 0.0, CalculateBMI(-1, 175))
}

package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvhao2002/smart-health-sub000/internal/model"
)

// recordingServer captures every request in order.
type recordingServer struct {
	mu    sync.Mutex
	calls []recordedCall
	srv   *httptest.Server
}

type recordedCall struct {
	Method string
	Path   string
	Body   string
}

func newRecordingServer(t *testing.T) *recordingServer {
	rs := &recordingServer{}
	rs.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		rs.mu.Lock()
		rs.calls = append(rs.calls, recordedCall{Method: r.Method, Path: r.URL.Path, Body: string(raw)})
		rs.mu.Unlock()
		w.Write([]byte(`{"data":[]}`))
	}))
	t.Cleanup(rs.srv.Close)
	return rs
}

func TestWorkoutScheduleCRUD(t *testing.T) {
	rs := newRecordingServer(t)
	svc := NewAdminService(testClient(rs.srv))
	ctx := context.Background()

	_, err := svc.WorkoutSchedules(ctx)
	require.NoError(t, err)

	req := model.WorkoutScheduleRequest{Name: "Leg day", Goal: model.GoalLoseWeight, DayOfWeek: "MONDAY", WorkoutID: 3}
	require.NoError(t, svc.CreateWorkoutSchedule(ctx, req))
	require.NoError(t, svc.UpdateWorkoutSchedule(ctx, 5, req))
	require.NoError(t, svc.DeleteWorkoutSchedule(ctx, 5))

	require.Len(t, rs.calls, 4)
	assert.Equal(t, http.MethodGet, rs.calls[0].Method)
	assert.Equal(t, "/admin/plans/workouts", rs.calls[0].Path)

	assert.Equal(t, http.MethodPost, rs.calls[1].Method)
	assert.Equal(t, "/admin/plans/workouts", rs.calls[1].Path)
	assert.Contains(t, rs.calls[1].Body, `"workoutId":3`)
	assert.Contains(t, rs.calls[1].Body, `"goal":"LOSE_WEIGHT"`)

	assert.Equal(t, http.MethodPatch, rs.calls[2].Method)
	assert.Equal(t, "/admin/plans/workouts/5", rs.calls[2].Path)

	assert.Equal(t, http.MethodDelete, rs.calls[3].Method)
	assert.Equal(t, "/admin/plans/workouts/5", rs.calls[3].Path)
}

func TestMealPlanCRUD(t *testing.T) {
	rs := newRecordingServer(t)
	svc := NewAdminService(testClient(rs.srv))
	ctx := context.Background()

	_, err := svc.MealPlans(ctx)
	require.NoError(t, err)

	req := model.MealPlanRequest{Name: "Cut day", Goal: model.GoalLoseWeight, DayOfWeek: "TUESDAY", BreakfastID: 9, DinnerID: 11}
	require.NoError(t, svc.CreateMealPlan(ctx, req))
	require.NoError(t, svc.UpdateMealPlan(ctx, 7, req))
	require.NoError(t, svc.DeleteMealPlan(ctx, 7))

	require.Len(t, rs.calls, 4)
	assert.Equal(t, "/admin/plans/meals", rs.calls[0].Path)

	assert.Equal(t, http.MethodPost, rs.calls[1].Method)
	assert.Contains(t, rs.calls[1].Body, `"breakfastId":9`)
	assert.Contains(t, rs.calls[1].Body, `"dinnerId":11`)
	assert.NotContains(t, rs.calls[1].Body, "lunchId", "unset slots are omitted")

	assert.Equal(t, http.MethodPatch, rs.calls[2].Method)
	assert.Equal(t, "/admin/plans/meals/7", rs.calls[2].Path)

	assert.Equal(t, http.MethodDelete, rs.calls[3].Method)
	assert.Equal(t, "/admin/plans/meals/7", rs.calls[3].Path)
}

func TestCategoryUpdateAndDelete(t *testing.T) {
	rs := newRecordingServer(t)
	svc := NewAdminService(testClient(rs.srv))
	ctx := context.Background()

	cat := model.Category{ID: 9, Name: "Vitamins", Description: "Daily supplements"}
	require.NoError(t, svc.UpdateCategory(ctx, cat))
	require.NoError(t, svc.DeleteCategory(ctx, 9))

	require.Len(t, rs.calls, 2)
	assert.Equal(t, http.MethodPut, rs.calls[0].Method)
	assert.Equal(t, "/admin/categories/9", rs.calls[0].Path)
	assert.Contains(t, rs.calls[0].Body, `"description":"Daily supplements"`)

	assert.Equal(t, http.MethodDelete, rs.calls[1].Method)
	assert.Equal(t, "/admin/categories/9", rs.calls[1].Path)
}

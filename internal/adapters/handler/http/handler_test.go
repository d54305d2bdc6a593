package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/strideworks/stride-engine/internal/adapters/handler/http"
	"github.com/strideworks/stride-engine/internal/adapters/handler/http/middleware"
	"github.com/strideworks/stride-engine/internal/adapters/repository"
	"github.com/strideworks/stride-engine/internal/core/domain"
	"github.com/strideworks/stride-engine/internal/core/services"
	"github.com/strideworks/stride-engine/internal/core/workers"
)

// testEnv wires the full handler stack onto in-memory repositories, with a
// header-based stand-in for the JWT middleware.
type testEnv struct {
	router    *gin.Engine
	goalRepo  *repository.InMemoryGoalRepository
	habitRepo *repository.InMemoryHabitRepository
}

func setupTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	goalRepo := repository.NewInMemoryGoalRepository()
	habitRepo := repository.NewInMemoryHabitRepository()

	goalService := services.NewGoalService(goalRepo)
	habitService := services.NewHabitService(habitRepo, workers.NewStreakWorker(habitRepo))
	statsService := services.NewStatsService(goalRepo, habitRepo)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID := c.GetHeader("X-User-ID"); userID != "" {
			c.Set(middleware.ContextUserIDKey, userID)
		}
		c.Next()
	})

	api := r.Group("/api/v1")
	adapterHTTP.NewGoalHandler(goalService).RegisterRoutes(api)
	adapterHTTP.NewHabitHandler(habitService).RegisterRoutes(api)
	adapterHTTP.NewStatsHandler(statsService).RegisterRoutes(api)

	return &testEnv{router: r, goalRepo: goalRepo, habitRepo: habitRepo}
}

func (e *testEnv) do(t *testing.T, method, path, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewBuffer(raw)
	} else {
		payload = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, payload)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) seedHabit(t *testing.T, userID string, keys ...string) *domain.Habit {
	t.Helper()

	h, err := domain.NewHabit(userID, "Seeded Habit", "")
	require.NoError(t, err)
	today := domain.Today()
	for _, k := range keys {
		d, err := domain.ParseDateKey(k)
		require.NoError(t, err)
		_, err = h.CheckIn(d, today)
		require.NoError(t, err)
	}
	require.NoError(t, e.habitRepo.Create(context.Background(), h))
	return h
}

func (e *testEnv) seedGoal(t *testing.T, userID string, subgoals ...string) *domain.Goal {
	t.Helper()

	g, err := domain.NewGoal(userID, "Seeded Goal", "", "", "")
	require.NoError(t, err)
	for _, title := range subgoals {
		_, err := g.AddSubgoal(title)
		require.NoError(t, err)
	}
	require.NoError(t, e.goalRepo.Create(context.Background(), g))
	return g
}

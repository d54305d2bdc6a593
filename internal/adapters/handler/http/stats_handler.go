package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/strideworks/stride-engine/internal/adapters/handler/http/middleware"
	"github.com/strideworks/stride-engine/internal/core/analytics"
	"github.com/strideworks/stride-engine/internal/core/domain"
	"github.com/strideworks/stride-engine/internal/core/services"
)

type StatsHandler struct {
	svc *services.StatsService
}

func NewStatsHandler(svc *services.StatsService) *StatsHandler {
	return &StatsHandler{
		svc: svc,
	}
}

func (h *StatsHandler) RegisterRoutes(router *gin.RouterGroup) {
	stats := router.Group("/stats")
	{
		stats.GET("/overview", h.Overview)
		stats.GET("/goals", h.Goals)
		stats.GET("/habits", h.Habits)
		stats.GET("/activity", h.Activity)
	}

	router.GET("/tracker/days", h.TrackerDays)
}

// Overview godoc
// @Summary  Dashboard header counts across all goals and habits
// @Tags     stats
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} analytics.OverviewStats
// @Router   /stats/overview [get]
func (h *StatsHandler) Overview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	ref, ok := h.bindRef(c)
	if !ok {
		return
	}

	stats, err := h.svc.Overview(c.Request.Context(), userID, ref)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Goals godoc
// @Summary  Goal statistics scoped to a period
// @Tags     stats
// @Produce  json
// @Security BearerAuth
// @Param    period query string false "week|month|quarter|year|all" default(all)
// @Success  200 {object} analytics.GoalPeriodStats
// @Router   /stats/goals [get]
func (h *StatsHandler) Goals(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	period, ref, ok := h.bindPeriod(c, analytics.PeriodAll)
	if !ok {
		return
	}

	stats, err := h.svc.GoalStats(c.Request.Context(), userID, period, ref)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Habits godoc
// @Summary  Habit statistics scoped to a period
// @Tags     stats
// @Produce  json
// @Security BearerAuth
// @Param    period query string false "week|month|quarter|year|all" default(all)
// @Success  200 {object} analytics.HabitPeriodStats
// @Router   /stats/habits [get]
func (h *StatsHandler) Habits(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	period, ref, ok := h.bindPeriod(c, analytics.PeriodAll)
	if !ok {
		return
	}

	stats, err := h.svc.HabitStats(c.Request.Context(), userID, period, ref)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Activity godoc
// @Summary  Per-day check-in histogram for activity charts
// @Tags     stats
// @Produce  json
// @Security BearerAuth
// @Param    period query string false "week|month|quarter|year|all" default(month)
// @Success  200 {array} analytics.ActivityPoint
// @Router   /stats/activity [get]
func (h *StatsHandler) Activity(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	period, ref, ok := h.bindPeriod(c, analytics.PeriodMonth)
	if !ok {
		return
	}

	points, err := h.svc.Activity(c.Request.Context(), userID, period, ref)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, points)
}

// TrackerDays godoc
// @Summary  Calendar day grid for the tracker page
// @Tags     stats
// @Produce  json
// @Security BearerAuth
// @Param    view query string false "week|month" default(week)
// @Param    date query string false "reference day, YYYY-MM-DD"
// @Success  200 {array} string
// @Router   /tracker/days [get]
func (h *StatsHandler) TrackerDays(c *gin.Context) {
	view, err := analytics.ParsePeriod(c.DefaultQuery("view", string(analytics.PeriodWeek)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown view, expected week|month|quarter|year"})
		return
	}

	ref, ok := h.bindRef(c)
	if !ok {
		return
	}

	days, err := h.svc.TrackerDays(view, ref)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, days)
}

// bindPeriod reads the period and reference-day query params, defaulting the
// period per endpoint and the reference day to today.
func (h *StatsHandler) bindPeriod(c *gin.Context, fallback analytics.Period) (analytics.Period, domain.LocalDate, bool) {
	period, err := analytics.ParsePeriod(c.DefaultQuery("period", string(fallback)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown period, expected week|month|quarter|year|all"})
		return "", domain.LocalDate{}, false
	}

	ref, ok := h.bindRef(c)
	if !ok {
		return "", domain.LocalDate{}, false
	}
	return period, ref, true
}

func (h *StatsHandler) bindRef(c *gin.Context) (domain.LocalDate, bool) {
	raw := c.Query("date")
	if raw == "" {
		return domain.Today(), true
	}

	ref, err := domain.ParseDateKey(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, expected YYYY-MM-DD"})
		return domain.LocalDate{}, false
	}
	return ref, true
}

func (h *StatsHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, analytics.ErrUnknownPeriod):
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown period"})
	case errors.Is(err, analytics.ErrUnboundedPeriod):
		c.JSON(http.StatusBadRequest, gin.H{"error": "period has no bounded day range"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

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

type GoalHandler struct {
	svc *services.GoalService
}

func NewGoalHandler(svc *services.GoalService) *GoalHandler {
	return &GoalHandler{
		svc: svc,
	}
}

type createGoalRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	Complexity  string   `json:"complexity"`
	Subgoals    []string `json:"subgoals"`
}

type updateGoalRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Complexity  string `json:"complexity"`
}

type addSubgoalRequest struct {
	Title string `json:"title" binding:"required"`
}

// goalResponse decorates a goal with its derived progress percentage so
// every list view shows the same number.
type goalResponse struct {
	*domain.Goal
	Progress int `json:"progress"`
}

func toGoalResponse(g *domain.Goal) goalResponse {
	return goalResponse{Goal: g, Progress: analytics.GoalPercent(g)}
}

func (h *GoalHandler) RegisterRoutes(router *gin.RouterGroup) {
	goals := router.Group("/goals")
	{
		goals.GET("", h.List)
		goals.POST("", h.Create)
		goals.PATCH("/:id", h.Update)
		goals.POST("/:id/complete", h.Complete)
		goals.POST("/:id/archive", h.Archive)
		goals.DELETE("/:id", h.Delete)

		goals.POST("/:id/subgoals", h.AddSubgoal)
		goals.POST("/:id/subgoals/:subgoalId/toggle", h.ToggleSubgoal)
		goals.DELETE("/:id/subgoals/:subgoalId", h.RemoveSubgoal)
	}
}

func (h *GoalHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	goals, err := h.svc.ListByUserID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	out := make([]goalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, toGoalResponse(g))
	}

	c.JSON(http.StatusOK, out)
}

func (h *GoalHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req createGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.svc.Create(c.Request.Context(), services.CreateGoalInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complexity:  req.Complexity,
		Subgoals:    req.Subgoals,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toGoalResponse(goal))
}

func (h *GoalHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req updateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.svc.Update(c.Request.Context(), services.UpdateGoalInput{
		ID:          c.Param("id"),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complexity:  req.Complexity,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toGoalResponse(goal))
}

func (h *GoalHandler) Complete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	goal, err := h.svc.Complete(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toGoalResponse(goal))
}

func (h *GoalHandler) Archive(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	goal, err := h.svc.Archive(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toGoalResponse(goal))
}

func (h *GoalHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *GoalHandler) AddSubgoal(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req addSubgoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sg, err := h.svc.AddSubgoal(c.Request.Context(), c.Param("id"), userID, req.Title)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sg)
}

func (h *GoalHandler) ToggleSubgoal(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	goal, err := h.svc.ToggleSubgoal(c.Request.Context(), c.Param("id"), userID, c.Param("subgoalId"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toGoalResponse(goal))
}

func (h *GoalHandler) RemoveSubgoal(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	if err := h.svc.RemoveSubgoal(c.Request.Context(), c.Param("id"), userID, c.Param("subgoalId")); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *GoalHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrGoalNotFound), errors.Is(err, domain.ErrSubgoalNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrGoalTitleEmpty),
		errors.Is(err, domain.ErrGoalTitleTooLong),
		errors.Is(err, domain.ErrSubgoalTitleEmpty):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

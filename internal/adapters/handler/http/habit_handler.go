package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/masnaviev/habit-tracker/internal/adapters/handler/http/middleware"
	"github.com/masnaviev/habit-tracker/internal/core/domain"
	"github.com/masnaviev/habit-tracker/internal/core/services"
)

type HabitHandler struct {
	svc          *services.HabitService
	executionSvc *services.ExecutionService
}

func NewHabitHandler(svc *services.HabitService, executionSvc *services.ExecutionService) *HabitHandler {
	return &HabitHandler{
		svc:          svc,
		executionSvc: executionSvc,
	}
}

type createHabitRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Frequency   string `json:"frequency" binding:"required"`
}

type updateHabitRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Frequency   string `json:"frequency"`
}

func (h *HabitHandler) RegisterRoutes(router *gin.RouterGroup) {
	habits := router.Group("/habits")
	{
		habits.POST("", h.Create)
		habits.GET("", h.List)
		habits.GET("/:id", h.Get)
		habits.PUT("/:id", h.Update)
		habits.DELETE("/:id", h.Delete)
		habits.POST("/:id/executions", h.RecordExecution)
		habits.GET("/:id/executions", h.GetExecutions)
	}
}

func habitID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid habit id"})
		return 0, false
	}
	return id, true
}

func periodParam(c *gin.Context) (domain.Period, bool) {
	period, err := domain.ParsePeriod(c.DefaultQuery("period", string(domain.PeriodWeek)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return period, true
}

func (h *HabitHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetUser(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req createHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	habit, err := h.svc.Create(c.Request.Context(), services.CreateHabitInput{
		OwnerID:     actor.ID,
		Title:       req.Title,
		Description: req.Description,
		Frequency:   req.Frequency,
	})
	if err != nil {
		if isHabitValidationErr(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, habit)
}

func (h *HabitHandler) List(c *gin.Context) {
	actor, ok := middleware.GetUser(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	list, err := h.svc.ListByOwner(c.Request.Context(), actor.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	// an empty habit list is surfaced to the client as not found; the
	// statistics endpoint deliberately does not share this behavior
	if len(list) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "habit list is empty"})
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *HabitHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetUser(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	id, ok := habitID(c)
	if !ok {
		return
	}

	habit, err := h.svc.Get(c.Request.Context(), id, actor.ID)
	if err != nil {
		if errors.Is(err, domain.ErrHabitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, habit)
}

func (h *HabitHandler) Update(c *gin.Context) {
	actor, ok := middleware.GetUser(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	id, ok := habitID(c)
	if !ok {
		return
	}

	var req updateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	habit, err := h.svc.Update(c.Request.Context(), services.UpdateHabitInput{
		ID:          id,
		OwnerID:     actor.ID,
		Title:       req.Title,
		Description: req.Description,
		Frequency:   req.Frequency,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrHabitNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case isHabitValidationErr(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, habit)
}

func (h *HabitHandler) Delete(c *gin.Context) {
	actor, ok := middleware.GetUser(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	id, ok := habitID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id, actor.ID); err != nil {
		if errors.Is(err, domain.ErrHabitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *HabitHandler) RecordExecution(c *gin.Context) {
	actor, ok := middleware.GetUser(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	id, ok := habitID(c)
	if !ok {
		return
	}

	habit, err := h.executionSvc.RecordExecution(c.Request.Context(), id, actor.ID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrHabitNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrAlreadyCompleted):
			// a rule rejection, not a fault: the client tried too soon
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, habit)
}

func (h *HabitHandler) GetExecutions(c *gin.Context) {
	actor, ok := middleware.GetUser(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	id, ok := habitID(c)
	if !ok {
		return
	}

	period, ok := periodParam(c)
	if !ok {
		return
	}

	executions, err := h.executionSvc.GetExecutions(c.Request.Context(), id, actor.ID, period)
	if err != nil {
		if errors.Is(err, domain.ErrHabitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"habit_id":   id,
		"period":     period,
		"executions": executions,
	})
}

func isHabitValidationErr(err error) bool {
	return errors.Is(err, domain.ErrHabitTitleEmpty) ||
		errors.Is(err, domain.ErrHabitDescEmpty) ||
		errors.Is(err, domain.ErrHabitTitleTooLong) ||
		errors.Is(err, domain.ErrHabitDescTooLong) ||
		errors.Is(err, domain.ErrInvalidFrequency)
}

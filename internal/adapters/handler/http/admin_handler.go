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

type AdminHandler struct {
	svc *services.AdminService
}

func NewAdminHandler(svc *services.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	{
		admin.GET("/users", h.ListUsers)
		admin.GET("/habits", h.ListHabits)
		admin.DELETE("/users/:id", h.DeleteUser)
		admin.DELETE("/habits/:id", h.DeleteHabit)
		admin.POST("/users/:id/block", h.BlockUser)
		admin.POST("/users/:id/unblock", h.UnblockUser)
	}
}

func (h *AdminHandler) respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrHabitNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	actor, ok := middleware.GetUser(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	users, err := h.svc.ListUsers(c.Request.Context(), actor)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) ListHabits(c *gin.Context) {
	actor, ok := middleware.GetUser(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	habits, err := h.svc.ListHabits(c.Request.Context(), actor)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, habits)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	actor, ok := middleware.GetUser(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteUser(c.Request.Context(), actor, id); err != nil {
		h.respondErr(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) DeleteHabit(c *gin.Context) {
	actor, ok := middleware.GetUser(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteHabit(c.Request.Context(), actor, id); err != nil {
		h.respondErr(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) BlockUser(c *gin.Context) {
	h.setBlocked(c, true)
}

func (h *AdminHandler) UnblockUser(c *gin.Context) {
	h.setBlocked(c, false)
}

func (h *AdminHandler) setBlocked(c *gin.Context, blocked bool) {
	actor, ok := middleware.GetUser(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.svc.SetBlocked(c.Request.Context(), actor, id, blocked); err != nil {
		h.respondErr(c, err)
		return
	}

	c.Status(http.StatusOK)
}

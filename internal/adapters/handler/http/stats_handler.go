package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/masnaviev/habit-tracker/internal/adapters/handler/http/middleware"
	"github.com/masnaviev/habit-tracker/internal/core/domain"
	"github.com/masnaviev/habit-tracker/internal/core/services"
)

type StatsHandler struct {
	svc *services.StatsService
}

func NewStatsHandler(svc *services.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/stats", h.GetStatistics)
}

func (h *StatsHandler) GetStatistics(c *gin.Context) {
	actor, ok := middleware.GetUser(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	period, ok := periodParam(c)
	if !ok {
		return
	}

	reports, err := h.svc.GetStatistics(c.Request.Context(), domain.StatsInput{
		OwnerID: actor.ID,
		Period:  period,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve statistics"})
		return
	}

	// no habits means an empty report list, not an error
	c.JSON(http.StatusOK, gin.H{
		"period":  period,
		"reports": reports,
	})
}

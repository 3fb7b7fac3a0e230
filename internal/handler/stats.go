package handler

import (
	"errors"
	"net/http"

	"yourlinks/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves per-link statistics
type StatsHandler struct {
	stats service.StatsServiceInterface
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(stats service.StatsServiceInterface) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// GetStats handles GET /api/v1/stats/:username/:linkName
// @Summary Get statistics for a link
// @Description Returns click counter, realtime PV/UV and recent click events
// @Tags stats
// @Param username path string true "Link owner username"
// @Param linkName path string true "Link name"
// @Success 200 {object} Response{data=model.LinkStats}
// @Router /api/v1/stats/{username}/{linkName} [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	username := c.Param("username")
	linkName := c.Param("linkName")

	stats, err := h.stats.GetStats(c.Request.Context(), username, linkName)
	if err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Link not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to get stats",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    stats,
	})
}

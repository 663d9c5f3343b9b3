package feed

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hookedapp/hooked/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetFeed godoc
// @Summary Get the personalized feed
// @Description Scores the catalog against the user's interest profile and returns a diversified selection. Users without a profile get a recency/popularity ranking.
// @Tags feed
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Number of items (default 10, max 50)"
// @Success 200 {object} response.SuccessResponse{data=FeedResponse}
// @Failure 401 {object} response.ErrorResponse
// @Router /feed [get]
func (h *Handler) GetFeed(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.GetString("userID"))
	if err != nil {
		response.Unauthorized(c, "Authentication required", "AUTH_FAILED")
		return
	}

	limit := parseLimit(c.Query("limit"), 0, 50)

	result, err := h.service.GetPersonalizedFeed(c.Request.Context(), userID, limit)
	if err != nil {
		response.InternalServerError(c, "Failed to generate feed", "DATABASE_ERROR")
		return
	}

	response.Success(c, result)
}

// GetTrending godoc
// @Summary Get trending hooks
// @Description Returns the catalog sorted by decayed popularity, truncated to the requested count
// @Tags feed
// @Produce json
// @Param limit query int false "Number of items (default 6, max 50)"
// @Success 200 {object} response.SuccessResponse{data=TrendingResponse}
// @Router /feed/trending [get]
func (h *Handler) GetTrending(c *gin.Context) {
	limit := parseLimit(c.Query("limit"), 0, 50)

	result, err := h.service.GetTrending(c.Request.Context(), limit)
	if err != nil {
		response.InternalServerError(c, "Failed to fetch trending hooks", "DATABASE_ERROR")
		return
	}

	response.Success(c, result)
}

func parseLimit(raw string, fallback, max int) int {
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	if parsed > max {
		return max
	}
	return parsed
}

package users

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hookedapp/hooked/internal/features/auth"
	"github.com/hookedapp/hooked/internal/pkg/response"
	"github.com/hookedapp/hooked/internal/pkg/validator"
)

type Handler struct {
	authRepo *auth.Repository
}

func NewHandler(authRepo *auth.Repository) *Handler {
	return &Handler{authRepo: authRepo}
}

// UpdateTagsRequest is the payload for PUT /users/me/tags.
type UpdateTagsRequest struct {
	Tags []string `json:"tags" binding:"required,min=1,max=10,dive,min=2,max=30"`
}

// GetTags godoc
// @Summary Get declared interest tags
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Router /users/me/tags [get]
func (h *Handler) GetTags(c *gin.Context) {
	user, err := h.authRepo.FindByID(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		response.InternalServerError(c, "Failed to look up user", "DATABASE_ERROR")
		return
	}
	if user == nil {
		response.NotFound(c, "User not found", "USER_NOT_FOUND")
		return
	}

	tags := user.ExplicitTags
	if tags == nil {
		tags = []string{}
	}
	response.Success(c, gin.H{"tags": tags})
}

// UpdateTags godoc
// @Summary Replace declared interest tags
// @Description Replaces the user's explicit topic preferences. The next profile recompute folds them into the interest vector.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateTagsRequest true "Interest tags"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /users/me/tags [put]
func (h *Handler) UpdateTags(c *gin.Context) {
	var req UpdateTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	userID, err := primitive.ObjectIDFromHex(c.GetString("userID"))
	if err != nil {
		response.Unauthorized(c, "Authentication required", "AUTH_FAILED")
		return
	}

	// Tags are lowercase topic strings with duplicates collapsed.
	seen := make(map[string]bool)
	tags := make([]string, 0, len(req.Tags))
	for _, tag := range req.Tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if !validator.IsValidTag(tag) {
			response.BadRequest(c, "Invalid tag: "+tag, "INVALID_TAG")
			return
		}
		if seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	if err := h.authRepo.UpdateExplicitTags(c.Request.Context(), userID, tags); err != nil {
		response.InternalServerError(c, "Failed to save tags", "DATABASE_ERROR")
		return
	}

	response.Success(c, gin.H{"tags": tags})
}

package interactions

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hookedapp/hooked/internal/features/hooks"
	"github.com/hookedapp/hooked/internal/pkg/logger"
	"github.com/hookedapp/hooked/internal/pkg/response"
	apperrors "github.com/hookedapp/hooked/pkg/errors"
)

// counterForAction maps actions onto the engagement counter they bump.
// Clicks have no counter of their own; they only feed the interest model.
var counterForAction = map[string]string{
	ActionView:  "viewCount",
	ActionLike:  "likeCount",
	ActionSave:  "saveCount",
	ActionShare: "shareCount",
}

type Handler struct {
	repo      *Repository
	hooksRepo *hooks.Repository
}

func NewHandler(repo *Repository, hooksRepo *hooks.Repository) *Handler {
	return &Handler{repo: repo, hooksRepo: hooksRepo}
}

// LogInteraction godoc
// @Summary Log an interaction event
// @Description Appends one view/click/like/save/share event for the authenticated user
// @Tags interactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body LogRequest true "Interaction payload"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /interactions/log [post]
func (h *Handler) LogInteraction(c *gin.Context) {
	var req LogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	if err := ValidateLogRequest(&req); err != nil {
		response.BadRequest(c, err.Error(), "INVALID_ACTION")
		return
	}

	userID, err := primitive.ObjectIDFromHex(c.GetString("userID"))
	if err != nil {
		response.Unauthorized(c, "Authentication required", "AUTH_FAILED")
		return
	}

	hookID, err := primitive.ObjectIDFromHex(req.HookID)
	if err != nil {
		response.BadRequest(c, "Invalid hook ID", "INVALID_ID")
		return
	}

	hook, err := h.hooksRepo.GetByID(c.Request.Context(), hookID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Hook not found", "HOOK_NOT_FOUND")
			return
		}
		response.InternalServerError(c, "Failed to resolve hook", "DATABASE_ERROR")
		return
	}

	event := &Event{
		UserID:       userID,
		HookID:       hookID,
		Action:       req.Action,
		Duration:     req.Duration,
		Timestamp:    time.Now().UTC(),
		ImplicitTags: hook.ImplicitTags(),
	}

	if err := h.repo.Append(c.Request.Context(), event); err != nil {
		response.InternalServerError(c, "Failed to log interaction", "DATABASE_ERROR")
		return
	}

	// Counter bump is best-effort; the event itself is the source of truth.
	if counter, ok := counterForAction[req.Action]; ok {
		if err := h.hooksRepo.IncrementCounter(c.Request.Context(), hookID, counter); err != nil {
			logger.Warn("failed to bump %s for hook %s: %v", counter, hookID.Hex(), err)
		}
	}

	logger.Info("interaction logged for user %s", userID.Hex())
	response.Success(c, gin.H{"status": "Interaction logged"})
}

// GetMyInteractions godoc
// @Summary Get own interaction history
// @Description Returns the authenticated user's event log, oldest first
// @Tags interactions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse{data=[]Event}
// @Router /interactions/me [get]
func (h *Handler) GetMyInteractions(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.GetString("userID"))
	if err != nil {
		response.Unauthorized(c, "Authentication required", "AUTH_FAILED")
		return
	}

	events, err := h.repo.GetByUser(c.Request.Context(), userID)
	if err != nil {
		response.InternalServerError(c, "Failed to fetch interactions", "DATABASE_ERROR")
		return
	}
	if events == nil {
		events = []Event{}
	}

	response.Success(c, events)
}

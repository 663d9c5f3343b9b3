package hooks

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hookedapp/hooked/internal/pkg/pagination"
	"github.com/hookedapp/hooked/internal/pkg/response"
	apperrors "github.com/hookedapp/hooked/pkg/errors"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// ListHooks godoc
// @Summary List hooks
// @Description Returns a page of the hook catalog, newest first
// @Tags hooks
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} response.PaginatedResponse
// @Router /hooks [get]
func (h *Handler) ListHooks(c *gin.Context) {
	req := pagination.FromRequest(c.Query("page"), c.Query("limit"))

	page := pagination.New(req.Page, req.Limit, 0)
	items, total, err := h.repo.List(c.Request.Context(), page.Limit, page.Offset)
	if err != nil {
		response.InternalServerError(c, "Failed to fetch hooks", "DATABASE_ERROR")
		return
	}

	response.Paginated(c, items, total, page.Limit, page.Page)
}

// GetHook godoc
// @Summary Get one hook
// @Tags hooks
// @Produce json
// @Param id path string true "Hook ID"
// @Success 200 {object} response.SuccessResponse{data=Hook}
// @Failure 404 {object} response.ErrorResponse
// @Router /hooks/{id} [get]
func (h *Handler) GetHook(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid hook ID", "INVALID_ID")
		return
	}

	hook, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Hook not found", "HOOK_NOT_FOUND")
			return
		}
		response.InternalServerError(c, "Failed to fetch hook", "DATABASE_ERROR")
		return
	}

	response.Success(c, hook)
}

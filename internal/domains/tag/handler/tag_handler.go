package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	tag "foodgram-backend/internal/domains/tag"
	"foodgram-backend/internal/shared/response"
)

type TagHandler struct {
	repo tag.Repository
}

func NewTagHandler(repo tag.Repository) *TagHandler {
	return &TagHandler{repo: repo}
}

// List returns all tags, unpaginated
// GET /api/v1/tags
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "internal server error")
		return
	}

	if tags == nil {
		tags = []tag.Tag{}
	}
	response.Success(c, http.StatusOK, tags)
}

// GetByID returns one tag
// GET /api/v1/tags/:id
func (h *TagHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid tag ID")
		return
	}

	t, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, tag.ErrTagNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, "internal server error")
		return
	}

	response.Success(c, http.StatusOK, t)
}

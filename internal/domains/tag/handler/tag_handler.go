package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"douren-backend/internal/domains/tag"
	"douren-backend/internal/shared/response"
)

type TagHandler struct {
	service tag.Service
}

func NewTagHandler(service tag.Service) *TagHandler {
	return &TagHandler{service: service}
}

// List handles GET /v1/tags
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Tags retrieved successfully", tags)
}

// Create handles POST /v1/tags (admin)
func (h *TagHandler) Create(c *gin.Context) {
	var req tag.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Tag created successfully", created)
}

// Rename handles PUT /v1/tags/:name (admin)
func (h *TagHandler) Rename(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		response.BadRequest(c, "Invalid tag name")
		return
	}

	var req tag.RenameTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	renamed, err := h.service.Rename(c.Request.Context(), name, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Tag renamed successfully", renamed)
}

// Delete handles DELETE /v1/tags/:name (admin)
func (h *TagHandler) Delete(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		response.BadRequest(c, "Invalid tag name")
		return
	}

	if err := h.service.Delete(c.Request.Context(), name); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Tag deleted successfully", nil)
}

// SyncCounts handles POST /v1/admin/tags/sync (admin)
func (h *TagHandler) SyncCounts(c *gin.Context) {
	updated, err := h.service.SyncCounts(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Tag counts synced", gin.H{"updated": updated})
}

func (h *TagHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	if errors.As(err, &validationErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", validationErrs)
		return
	}

	status := tag.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		response.InternalServerError(c, "Something went wrong")
		return
	}
	response.ErrorResponse(c, status, "TAG_ERROR", err.Error())
}

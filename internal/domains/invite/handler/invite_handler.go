package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"douren-backend/internal/domains/invite"
	"douren-backend/internal/shared/response"
)

type InviteHandler struct {
	service invite.Service
}

func NewInviteHandler(service invite.Service) *InviteHandler {
	return &InviteHandler{service: service}
}

// ValidateCode handles POST /v1/invites/validate
// Public pre-check used by the registration form; never consumes.
func (h *InviteHandler) ValidateCode(c *gin.Context) {
	var req invite.ValidateCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Validate(c.Request.Context(), req.Code, invite.ValidateOptions{})
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Invite code checked", result)
}

// MySettings handles GET /v1/invites/me (authenticated)
func (h *InviteHandler) MySettings(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)

	view, err := h.service.MySettings(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Invite settings retrieved", view)
}

// RegenerateCode handles POST /v1/invites/me/regenerate (authenticated)
func (h *InviteHandler) RegenerateCode(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)

	settings, err := h.service.RegenerateCode(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Invite code regenerated", settings)
}

// MyHistory handles GET /v1/invites/me/history (authenticated)
func (h *InviteHandler) MyHistory(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)

	history, err := h.service.MyHistory(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Invite history retrieved", history)
}

// AdminUpdateSettings handles PUT /v1/admin/invites/:userId (admin)
func (h *InviteHandler) AdminUpdateSettings(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "Invalid userId")
		return
	}

	var req invite.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.service.AdminUpdateSettings(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Invite settings updated", settings)
}

func (h *InviteHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	if errors.As(err, &validationErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", validationErrs)
		return
	}

	status := invite.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		response.InternalServerError(c, "Something went wrong")
		return
	}
	response.ErrorResponse(c, status, "INVITE_ERROR", err.Error())
}

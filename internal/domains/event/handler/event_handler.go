package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"douren-backend/internal/domains/event"
	"douren-backend/internal/shared/pagination"
	"douren-backend/internal/shared/response"
)

const maxUploadSize = 10 << 20 // 10 MiB

type EventHandler struct {
	service event.Service
}

func NewEventHandler(service event.Service) *EventHandler {
	return &EventHandler{service: service}
}

// List handles GET /v1/events
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.service.ListEvents(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Events retrieved successfully", events)
}

// Get handles GET /v1/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	e, err := h.service.GetEvent(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Event retrieved successfully", e)
}

// Create handles POST /v1/events (admin)
func (h *EventHandler) Create(c *gin.Context) {
	var req event.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.CreateEvent(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Event created successfully", created)
}

// Update handles PUT /v1/events/:id (admin)
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req event.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateEvent(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Event updated successfully", updated)
}

// Delete handles DELETE /v1/events/:id (admin)
func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteEvent(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Event deleted successfully", nil)
}

// SetDefault handles POST /v1/events/:id/default (admin)
func (h *EventHandler) SetDefault(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.SetDefault(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Default event updated", nil)
}

// ListArtists handles GET /v1/events/:eventName/artists
func (h *EventHandler) ListArtists(c *gin.Context) {
	eventName := c.Param("eventName")
	if eventName == "" {
		response.BadRequest(c, "Invalid event name")
		return
	}

	params := pagination.ParseListParams(c.Query)

	envelope, err := h.service.ListArtists(c.Request.Context(), eventName, params)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope)
}

// CreateAppearance handles POST /v1/events/:id/artists (authenticated)
func (h *EventHandler) CreateAppearance(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req event.UpsertAppearanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.CreateAppearance(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Appearance created successfully", created)
}

// UpdateAppearance handles PUT /v1/events/:id/artists/:artistId (authenticated)
func (h *EventHandler) UpdateAppearance(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	artistID, ok := parseID(c, "artistId")
	if !ok {
		return
	}

	var req event.UpsertAppearanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateAppearance(c.Request.Context(), id, artistID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Appearance updated successfully", updated)
}

// DeleteAppearance handles DELETE /v1/events/:id/artists/:artistId (authenticated)
func (h *EventHandler) DeleteAppearance(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	artistID, ok := parseID(c, "artistId")
	if !ok {
		return
	}

	if err := h.service.DeleteAppearance(c.Request.Context(), id, artistID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Appearance deleted successfully", nil)
}

// UploadDM handles POST /v1/events/:id/artists/:artistId/dm (authenticated)
func (h *EventHandler) UploadDM(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	artistID, ok := parseID(c, "artistId")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Missing file field")
		return
	}
	if fileHeader.Size > maxUploadSize {
		response.BadRequest(c, "File too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalServerError(c, "Failed to read upload")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		response.InternalServerError(c, "Failed to read upload")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	url, err := h.service.UploadDM(c.Request.Context(), id, artistID, data, contentType)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "DM image uploaded successfully", gin.H{"url": url})
}

// Backfill handles POST /v1/admin/events/:id/backfill (admin)
// With ?async=true the pass runs through the worker instead of inline.
func (h *EventHandler) Backfill(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if c.Query("async") == "true" {
		if err := h.service.EnqueueBackfill(c.Request.Context(), id); err != nil {
			h.handleError(c, err)
			return
		}
		response.Success(c, http.StatusAccepted, "Booth backfill enqueued", nil)
		return
	}

	result, err := h.service.BackfillBooths(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Booth backfill completed", result)
}

func (h *EventHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	if errors.As(err, &validationErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", validationErrs)
		return
	}

	status := event.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		response.InternalServerError(c, "Something went wrong")
		return
	}
	response.ErrorResponse(c, status, "EVENT_ERROR", err.Error())
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "Invalid "+param)
		return 0, false
	}
	return id, true
}

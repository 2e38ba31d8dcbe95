package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"douren-backend/internal/domains/artist"
	"douren-backend/internal/shared/pagination"
	"douren-backend/internal/shared/response"
)

const maxUploadSize = 10 << 20 // 10 MiB

type ArtistHandler struct {
	service artist.Service
}

func NewArtistHandler(service artist.Service) *ArtistHandler {
	return &ArtistHandler{service: service}
}

// List handles GET /v1/artists
func (h *ArtistHandler) List(c *gin.Context) {
	params := pagination.ParseListParams(c.Query)

	envelope, err := h.service.List(c.Request.Context(), params)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope)
}

// Get handles GET /v1/artists/:id
func (h *ArtistHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Artist retrieved successfully", a)
}

// Create handles POST /v1/artists (authenticated)
func (h *ArtistHandler) Create(c *gin.Context) {
	var req artist.CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	callerID, isAdmin := callerIdentity(c)

	// Admin-created profiles start unclaimed
	var ownerID *uuid.UUID
	if !isAdmin {
		ownerID = &callerID
	}

	created, err := h.service.Create(c.Request.Context(), &req, ownerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Artist created successfully", created)
}

// Update handles PUT /v1/artists/:id (authenticated)
func (h *ArtistHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req artist.UpdateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	callerID, isAdmin := callerIdentity(c)

	updated, err := h.service.Update(c.Request.Context(), id, &req, callerID, isAdmin)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Artist updated successfully", updated)
}

// Delete handles DELETE /v1/artists/:id (authenticated)
func (h *ArtistHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	callerID, isAdmin := callerIdentity(c)

	if err := h.service.Delete(c.Request.Context(), id, callerID, isAdmin); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Artist deleted successfully", nil)
}

// SetTags handles PUT /v1/artists/:id/tags (authenticated)
func (h *ArtistHandler) SetTags(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req artist.SetTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	callerID, isAdmin := callerIdentity(c)

	if err := h.service.SetTags(c.Request.Context(), id, req.Tags, callerID, isAdmin); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Tags updated successfully", nil)
}

// ListProducts handles GET /v1/artists/:id/products
func (h *ArtistHandler) ListProducts(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	products, err := h.service.ListProducts(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if products == nil {
		products = []artist.Product{}
	}

	response.Success(c, http.StatusOK, "Products retrieved successfully", products)
}

// CreateProduct handles POST /v1/artists/:id/products (authenticated)
func (h *ArtistHandler) CreateProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req artist.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	callerID, isAdmin := callerIdentity(c)

	created, err := h.service.CreateProduct(c.Request.Context(), id, &req, callerID, isAdmin)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Product created successfully", created)
}

// DeleteProduct handles DELETE /v1/artists/:id/products/:productId (authenticated)
func (h *ArtistHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	productID, ok := parseID(c, "productId")
	if !ok {
		return
	}

	callerID, isAdmin := callerIdentity(c)

	if err := h.service.DeleteProduct(c.Request.Context(), id, productID, callerID, isAdmin); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Product deleted successfully", nil)
}

// UploadPhoto handles POST /v1/artists/:id/photo (authenticated, multipart)
func (h *ArtistHandler) UploadPhoto(c *gin.Context) {
	id, ok := parseID(c, "id")
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

	callerID, isAdmin := callerIdentity(c)

	url, err := h.service.UploadPhoto(c.Request.Context(), id, data, contentType, callerID, isAdmin)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Photo uploaded successfully", gin.H{"url": url})
}

func (h *ArtistHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	if errors.As(err, &validationErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", validationErrs)
		return
	}

	status := artist.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		response.InternalServerError(c, "Something went wrong")
		return
	}
	response.ErrorResponse(c, status, "ARTIST_ERROR", err.Error())
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "Invalid "+param)
		return 0, false
	}
	return id, true
}

func callerIdentity(c *gin.Context) (uuid.UUID, bool) {
	callerID, _ := c.MustGet("userID").(uuid.UUID)
	role, _ := c.Get("role")
	isAdmin := role == "admin"
	return callerID, isAdmin
}

package handler

import (
	"errors"

	apperrors "travlr/internal/errors"
	"travlr/internal/models"
	"travlr/internal/service"
	"travlr/pkg/response"

	"github.com/gin-gonic/gin"
)

// TripHandler handles HTTP requests for trip operations.
type TripHandler struct {
	service service.TripServicer
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(service service.TripServicer) *TripHandler {
	return &TripHandler{service: service}
}

// ListTrips godoc
// @Summary      List trips
// @Description  Return trips with optional filtering, sorting and pagination
// @Tags         trips
// @Produce      json
// @Param        page           query     int     false  "Page number (default 1)"
// @Param        limit          query     int     false  "Page size, capped at 100 (default 10)"
// @Param        sortBy         query     string  false  "Sort field"  Enums(name, code, resort, perPerson, start, length, createdAt)
// @Param        sortDirection  query     string  false  "Sort direction"  Enums(asc, desc)
// @Param        destination    query     string  false  "Filter by resort"
// @Param        search         query     string  false  "Case-insensitive name search"
// @Param        minPrice       query     number  false  "Minimum per-person price"
// @Param        maxPrice       query     number  false  "Maximum per-person price"
// @Param        fromDate       query     string  false  "Earliest start date (YYYY-MM-DD)"
// @Param        toDate         query     string  false  "Latest start date (YYYY-MM-DD)"
// @Success      200  {object}  models.TripListResponse
// @Failure      400  {object}  response.ErrorResponse
// @Failure      500  {object}  response.ErrorResponse
// @Router       /api/trips [get]
func (h *TripHandler) ListTrips(c *gin.Context) {
	var req models.ListTripsRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		bindingError(c, err)
		return
	}

	result, err := h.service.ListTrips(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// GetTrip godoc
// @Summary      Get a trip
// @Description  Return a single trip by its code, with a short-lived image URL
// @Tags         trips
// @Produce      json
// @Param        tripId  path      string  true  "Trip code"
// @Success      200     {object}  models.TripDetailResponse
// @Failure      404     {object}  response.ErrorResponse
// @Failure      500     {object}  response.ErrorResponse
// @Router       /api/trips/{tripId} [get]
func (h *TripHandler) GetTrip(c *gin.Context) {
	result, err := h.service.GetTrip(c.Request.Context(), c.Param("tripId"))
	if err != nil {
		if errors.Is(err, apperrors.ErrTripNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// CreateTrip godoc
// @Summary      Create a trip
// @Description  Create a new trip (manager or admin only)
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateTripRequest  true  "Trip details"
// @Success      201      {object}  models.Trip
// @Failure      400      {object}  response.ValidationErrorResponse
// @Failure      401      {object}  response.ErrorResponse
// @Failure      403      {object}  response.ErrorResponse
// @Failure      409      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Security     BearerAuth
// @Router       /api/trips [post]
func (h *TripHandler) CreateTrip(c *gin.Context) {
	var req models.CreateTripRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	result, err := h.service.CreateTrip(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTripCodeTaken) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// UpdateTrip godoc
// @Summary      Update a trip
// @Description  Partially update a trip by its code (manager or admin only)
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        tripId   path      string                    true  "Trip code"
// @Param        request  body      models.UpdateTripRequest  true  "Fields to update"
// @Success      200      {object}  models.Trip
// @Failure      400      {object}  response.ValidationErrorResponse
// @Failure      401      {object}  response.ErrorResponse
// @Failure      403      {object}  response.ErrorResponse
// @Failure      404      {object}  response.ErrorResponse
// @Failure      409      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Security     BearerAuth
// @Router       /api/trips/{tripId} [put]
func (h *TripHandler) UpdateTrip(c *gin.Context) {
	var req models.UpdateTripRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	result, err := h.service.UpdateTrip(c.Request.Context(), c.Param("tripId"), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTripNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrTripCodeTaken) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// DeleteTrip godoc
// @Summary      Delete a trip
// @Description  Remove a trip by its code (admin only)
// @Tags         trips
// @Produce      json
// @Param        tripId  path  string  true  "Trip code"
// @Success      204     "No Content"
// @Failure      401     {object}  response.ErrorResponse
// @Failure      403     {object}  response.ErrorResponse
// @Failure      404     {object}  response.ErrorResponse
// @Failure      500     {object}  response.ErrorResponse
// @Security     BearerAuth
// @Router       /api/trips/{tripId} [delete]
func (h *TripHandler) DeleteTrip(c *gin.Context) {
	if err := h.service.DeleteTrip(c.Request.Context(), c.Param("tripId")); err != nil {
		if errors.Is(err, apperrors.ErrTripNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.NoContent(c)
}

// ImageUpload godoc
// @Summary      Request an image upload URL
// @Description  Issue a presigned upload URL for a trip image (manager or admin only)
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        tripId   path      string                          true  "Trip code"
// @Param        request  body      models.TripImageUploadRequest   true  "File name and content type"
// @Success      200      {object}  models.TripImageUploadResponse
// @Failure      400      {object}  response.ValidationErrorResponse
// @Failure      401      {object}  response.ErrorResponse
// @Failure      403      {object}  response.ErrorResponse
// @Failure      404      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Security     BearerAuth
// @Router       /api/trips/{tripId}/image-upload [post]
func (h *TripHandler) ImageUpload(c *gin.Context) {
	var req models.TripImageUploadRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	result, err := h.service.ImageUploadURL(c.Request.Context(), c.Param("tripId"), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTripNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

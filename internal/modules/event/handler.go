package event

import (
	"net/http"
	"strconv"

	"ticketbooking/internal/pkg/pagination"
	"ticketbooking/internal/pkg/response"
	"ticketbooking/internal/pkg/validator"
	"ticketbooking/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/events", h.Create)
	rg.GET("/events", h.List)
	rg.GET("/events/:id", h.Get)
	rg.GET("/events/:id/bookings", h.Bookings)
	rg.GET("/events/:id/revenue", h.Revenue)
	rg.GET("/events/:id/stats", h.Stats)
	rg.PUT("/events/:id", h.Update)
	rg.DELETE("/events/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, response.CodeValidation, "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, response.CodeValidation, "Invalid event", fields)
		return
	}

	e, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, e)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	e, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, e)
}

func (h *Handler) List(c *gin.Context) {
	skip, limit, err := pagination.Parse(c)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, response.CodeValidation, "Invalid skip/limit parameters")
		return
	}

	f := repository.EventFilters{
		Upcoming: c.Query("upcoming") == "true",
		Skip:     skip,
		Limit:    limit,
	}
	if v := c.Query("venue_id"); v != "" {
		venueID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusUnprocessableEntity, response.CodeValidation, "Invalid venue_id parameter")
			return
		}
		f.VenueID = &venueID
	}

	rows, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) Bookings(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rows, err := h.service.Bookings(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) Revenue(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rev, err := h.service.Revenue(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, rev)
}

func (h *Handler) Stats(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	stats, err := h.service.Stats(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, response.CodeValidation, "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, response.CodeValidation, "Invalid event update", fields)
		return
	}

	e, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, e)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Event not found")
	case ErrVenueNotFound:
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Venue not found")
	case ErrValidation:
		response.Error(c, http.StatusUnprocessableEntity, response.CodeValidation, "Invalid event request")
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to process event")
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Event not found")
		return 0, false
	}
	return id, true
}

package tickettype

import (
	"net/http"
	"strconv"

	"ticketbooking/internal/pkg/pagination"
	"ticketbooking/internal/pkg/response"
	"ticketbooking/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ticket-types", h.Create)
	rg.GET("/ticket-types", h.List)
	rg.GET("/ticket-types/:id", h.Get)
	rg.GET("/ticket-types/:id/bookings", h.GetWithBookings)
	rg.GET("/ticket-types/:id/stats", h.Stats)
	rg.PUT("/ticket-types/:id", h.Update)
	rg.DELETE("/ticket-types/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateTicketTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, response.CodeValidation, "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, response.CodeValidation, "Invalid ticket type", fields)
		return
	}

	t, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, t)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	t, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, t)
}

func (h *Handler) GetWithBookings(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	t, err := h.service.GetWithBookings(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, t)
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

func (h *Handler) List(c *gin.Context) {
	skip, limit, err := pagination.Parse(c)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, response.CodeValidation, "Invalid skip/limit parameters")
		return
	}

	rows, err := h.service.List(c.Request.Context(), skip, limit)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateTicketTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, response.CodeValidation, "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, response.CodeValidation, "Invalid ticket type update", fields)
		return
	}

	t, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, t)
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
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Ticket type not found")
	case ErrDuplicateName:
		response.Error(c, http.StatusUnprocessableEntity, response.CodeValidation, "Ticket type name already exists")
	case ErrValidation:
		response.Error(c, http.StatusUnprocessableEntity, response.CodeValidation, "Invalid ticket type request")
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to process ticket type")
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Ticket type not found")
		return 0, false
	}
	return id, true
}

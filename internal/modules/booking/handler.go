package booking

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
	rg.POST("/bookings", h.Create)
	rg.GET("/bookings", h.List)
	rg.GET("/bookings/customer/:email", h.ListByCustomer)
	rg.GET("/bookings/:id", h.Get)
	rg.PUT("/bookings/:id", h.Update)
	rg.PATCH("/bookings/:id/status", h.UpdateStatus)
	rg.DELETE("/bookings/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, response.CodeValidation, "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, response.CodeValidation, "Invalid booking request", fields)
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

func (h *Handler) List(c *gin.Context) {
	skip, limit, err := pagination.Parse(c)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, response.CodeValidation, "Invalid skip/limit parameters")
		return
	}

	f := repository.BookingFilters{
		CustomerEmail: c.Query("customer_email"),
		Status:        c.Query("status"),
		Skip:          skip,
		Limit:         limit,
	}
	if v := c.Query("event_id"); v != "" {
		eventID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusUnprocessableEntity, response.CodeValidation, "Invalid event_id parameter")
			return
		}
		f.EventID = &eventID
	}

	rows, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) ListByCustomer(c *gin.Context) {
	email := c.Param("email")

	rows, err := h.service.ListByCustomer(c.Request.Context(), email)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, CustomerBookingsResponse{
		CustomerEmail: email,
		TotalBookings: len(rows),
		Bookings:      rows,
	})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, response.CodeValidation, "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, response.CodeValidation, "Invalid booking update", fields)
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, response.CodeValidation, "Invalid request body")
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
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
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Booking not found")
	case ErrEventNotFound:
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Event not found")
	case ErrTicketTypeNotFound:
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Ticket type not found")
	case ErrValidation:
		response.Error(c, http.StatusUnprocessableEntity, response.CodeValidation, "Invalid booking request")
	case ErrCapacityExceeded:
		response.Error(c, http.StatusUnprocessableEntity, response.CodeCapacityExceeded, "Not enough venue capacity")
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to process booking")
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Booking not found")
		return 0, false
	}
	return id, true
}

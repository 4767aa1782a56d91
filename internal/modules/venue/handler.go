package venue

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
	rg.POST("/venues", h.Create)
	rg.GET("/venues", h.List)
	rg.GET("/venues/:id", h.Get)
	rg.GET("/venues/:id/events", h.GetWithEvents)
	rg.PUT("/venues/:id", h.Update)
	rg.DELETE("/venues/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, response.CodeValidation, "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, response.CodeValidation, "Invalid venue", fields)
		return
	}

	v, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, v)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	v, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, v)
}

func (h *Handler) GetWithEvents(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	v, err := h.service.GetWithEvents(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, v)
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

	var req UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, response.CodeValidation, "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, response.CodeValidation, "Invalid venue update", fields)
		return
	}

	v, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, v)
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
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Venue not found")
	case ErrValidation:
		response.Error(c, http.StatusUnprocessableEntity, response.CodeValidation, "Invalid venue request")
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to process venue")
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Venue not found")
		return 0, false
	}
	return id, true
}

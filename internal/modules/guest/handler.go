package guest

import (
	"net/http"
	"strconv"

	"hotelbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/guests", h.CreateGuest)
	rg.GET("/guests", h.GetAllGuests)
	rg.GET("/guests/:id", h.GetGuest)
	rg.DELETE("/guests/:id", h.DeleteGuest)
}

func (h *Handler) CreateGuest(c *gin.Context) {
	var req CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	g, err := h.service.CreateGuest(c.Request.Context(), req)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"guest": g})
}

func (h *Handler) GetGuest(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	g, err := h.service.GetGuest(c.Request.Context(), id)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"guest": g})
}

func (h *Handler) GetAllGuests(c *gin.Context) {
	gs, err := h.service.GetAllGuests(c.Request.Context())
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"guests": gs})
}

func (h *Handler) DeleteGuest(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteGuest(c.Request.Context(), id); err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}

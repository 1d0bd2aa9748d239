package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/Daemon403/housing-platform/internal/domain"
	"github.com/Daemon403/housing-platform/internal/handler/dto"
)

func (h *Handler) CreateMaintenanceRequest(c *ginext.Context) {
	listingID := c.Param("id")
	if _, err := uuid.Parse(listingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid listing id"})
		return
	}

	var req dto.CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	actorID, _ := actor(c)
	input := domain.CreateMaintenanceInput{
		ListingID:   listingID,
		RenterID:    actorID,
		Description: req.Description,
	}

	request, err := h.maintenanceService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMaintenanceResponse(request))
}

func (h *Handler) UpdateMaintenanceStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid maintenance request id"})
		return
	}

	var req dto.UpdateMaintenanceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	actorID, _ := actor(c)
	to := domain.MaintenanceStatus(req.Status)
	if err := h.maintenanceService.SetStatus(c.Request.Context(), id, actorID, to); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": req.Status})
}

func (h *Handler) ListListingMaintenance(c *ginext.Context) {
	listingID := c.Param("id")
	if _, err := uuid.Parse(listingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid listing id"})
		return
	}

	actorID, _ := actor(c)
	requests, err := h.maintenanceService.ListByListing(c.Request.Context(), listingID, actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMaintenanceResponses(requests))
}

func (h *Handler) ListMyMaintenance(c *ginext.Context) {
	actorID, _ := actor(c)
	requests, err := h.maintenanceService.ListByUser(c.Request.Context(), actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMaintenanceResponses(requests))
}

func toMaintenanceResponses(requests []*domain.MaintenanceRequest) []dto.MaintenanceResponse {
	resp := make([]dto.MaintenanceResponse, 0, len(requests))
	for _, r := range requests {
		resp = append(resp, dto.ToMaintenanceResponse(r))
	}
	return resp
}

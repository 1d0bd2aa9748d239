package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/Daemon403/housing-platform/internal/domain"
	"github.com/Daemon403/housing-platform/internal/handler/dto"
)

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_date format, expected YYYY-MM-DD",
		})
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid end_date format, expected YYYY-MM-DD",
		})
		return
	}

	actorID, _ := actor(c)
	input := domain.CreateBookingInput{
		ListingID: req.ListingID,
		RenterID:  actorID,
		StartDate: start,
		EndDate:   end,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	actorID, _ := actor(c)
	booking, err := h.bookingService.GetByID(c.Request.Context(), id, actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// CheckAvailability is public: renters want the answer before signing up.
func (h *Handler) CheckAvailability(c *ginext.Context) {
	listingID := c.Query("listingId")
	if _, err := uuid.Parse(listingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid listingId"})
		return
	}

	start, err := parseDate(c.Query("startDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid startDate format, expected YYYY-MM-DD",
		})
		return
	}
	end, err := parseDate(c.Query("endDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid endDate format, expected YYYY-MM-DD",
		})
		return
	}

	available, err := h.bookingService.IsAvailable(c.Request.Context(), listingID, start, end, "")
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{Available: available})
}

func (h *Handler) ApproveBooking(c *ginext.Context) {
	h.transitionBooking(c, "approved", h.bookingService.Approve)
}

func (h *Handler) RejectBooking(c *ginext.Context) {
	h.transitionBooking(c, "rejected", h.bookingService.Reject)
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	h.transitionBooking(c, "cancelled", h.bookingService.Cancel)
}

func (h *Handler) CompleteBooking(c *ginext.Context) {
	h.transitionBooking(c, "completed", h.bookingService.Complete)
}

func (h *Handler) TerminateBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.TerminateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	actorID, _ := actor(c)
	if err := h.bookingService.Terminate(c.Request.Context(), id, actorID, req.Reason); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "terminated"})
}

func (h *Handler) ListMyBookings(c *ginext.Context) {
	actorID, _ := actor(c)
	bookings, err := h.bookingService.ListByUser(c.Request.Context(), actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *Handler) ListListingBookings(c *ginext.Context) {
	listingID := c.Param("id")
	if _, err := uuid.Parse(listingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid listing id"})
		return
	}

	actorID, _ := actor(c)
	bookings, err := h.bookingService.ListByListing(c.Request.Context(), listingID, actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *Handler) transitionBooking(
	c *ginext.Context,
	status string,
	fn func(ctx context.Context, bookingID, actorID string) error,
) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	actorID, _ := actor(c)
	if err := fn(c.Request.Context(), id, actorID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": status})
}

func toBookingResponses(bookings []*domain.Booking) []dto.BookingResponse {
	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}
	return resp
}

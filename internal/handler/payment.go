package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/Daemon403/housing-platform/internal/handler/dto"
)

func (h *Handler) PayBooking(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	actorID, _ := actor(c)
	payment, err := h.paymentService.Pay(c.Request.Context(), bookingID, actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

func (h *Handler) PaymentReceipt(c *ginext.Context) {
	paymentID := c.Param("id")
	if _, err := uuid.Parse(paymentID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payment id"})
		return
	}

	actorID, actorRole := actor(c)
	pdfBytes, filename, err := h.paymentService.Receipt(c.Request.Context(), paymentID, actorID, actorRole)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func (h *Handler) ListBookingPayments(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	actorID, _ := actor(c)
	payments, err := h.paymentService.ListByBooking(c.Request.Context(), bookingID, actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, dto.ToPaymentResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

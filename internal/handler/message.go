package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/Daemon403/housing-platform/internal/domain"
	"github.com/Daemon403/housing-platform/internal/handler/dto"
)

func (h *Handler) SendMessage(c *ginext.Context) {
	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	actorID, _ := actor(c)
	input := domain.SendMessageInput{
		ListingID:   req.ListingID,
		SenderID:    actorID,
		RecipientID: req.RecipientID,
		Body:        req.Body,
	}

	message, err := h.messageService.Send(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMessageResponse(message))
}

func (h *Handler) GetThread(c *ginext.Context) {
	listingID := c.Param("id")
	if _, err := uuid.Parse(listingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid listing id"})
		return
	}
	withID := c.Query("with")
	if _, err := uuid.Parse(withID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid with user id"})
		return
	}

	actorID, _ := actor(c)
	messages, err := h.messageService.Thread(c.Request.Context(), listingID, actorID, withID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		resp = append(resp, dto.ToMessageResponse(m))
	}

	c.JSON(http.StatusOK, resp)
}

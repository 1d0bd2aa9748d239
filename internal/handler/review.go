package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/Daemon403/housing-platform/internal/domain"
	"github.com/Daemon403/housing-platform/internal/handler/dto"
)

func (h *Handler) CreateReview(c *ginext.Context) {
	listingID := c.Param("id")
	if _, err := uuid.Parse(listingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid listing id"})
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	actorID, _ := actor(c)
	input := domain.CreateReviewInput{
		ListingID: listingID,
		AuthorID:  actorID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	review, err := h.reviewService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}

func (h *Handler) ListListingReviews(c *ginext.Context) {
	listingID := c.Param("id")
	if _, err := uuid.Parse(listingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid listing id"})
		return
	}

	reviews, err := h.reviewService.ListByListing(c.Request.Context(), listingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, dto.ToReviewResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteReview(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid review id"})
		return
	}

	actorID, actorRole := actor(c)
	if err := h.reviewService.Delete(c.Request.Context(), id, actorID, actorRole); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/Daemon403/housing-platform/internal/domain"
	"github.com/Daemon403/housing-platform/internal/handler/dto"
	"github.com/Daemon403/housing-platform/internal/service"
)

func (h *Handler) CreateListing(c *ginext.Context) {
	var req dto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	actorID, _ := actor(c)
	input := domain.CreateListingInput{
		OwnerID:          actorID,
		Title:            req.Title,
		Description:      req.Description,
		Price:            req.Price,
		MaximumOccupancy: req.MaximumOccupancy,
		Lat:              req.Lat,
		Lng:              req.Lng,
	}

	listing, err := h.listingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToListingResponse(listing))
}

func (h *Handler) GetListing(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid listing id"})
		return
	}

	listing, err := h.listingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingResponse(listing))
}

func (h *Handler) ListListings(c *ginext.Context) {
	filter, ok := h.parseListingFilter(c)
	if !ok {
		return
	}

	listings, err := h.listingService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ListingResponse, 0, len(listings))
	for _, l := range listings {
		resp = append(resp, dto.ToListingResponse(l))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateListing(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid listing id"})
		return
	}

	var req dto.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	actorID, _ := actor(c)
	input := domain.UpdateListingInput{
		Title:            req.Title,
		Description:      req.Description,
		Price:            req.Price,
		MaximumOccupancy: req.MaximumOccupancy,
		Lat:              req.Lat,
		Lng:              req.Lng,
	}

	listing, err := h.listingService.Update(c.Request.Context(), id, actorID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingResponse(listing))
}

func (h *Handler) ChangeListingStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid listing id"})
		return
	}

	var req dto.ChangeListingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	actorID, actorRole := actor(c)
	to := domain.ListingStatus(req.Status)
	if err := h.listingService.ChangeStatus(c.Request.Context(), id, actorID, actorRole, to); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": req.Status})
}

func (h *Handler) NearbyListings(c *ginext.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid lat"})
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid lng"})
		return
	}
	radiusKm, err := strconv.ParseFloat(c.Query("radiusKm"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid radiusKm"})
		return
	}

	q := service.NearbyQuery{
		Center:   domain.GeoPoint{Lat: lat, Lng: lng},
		RadiusKm: radiusKm,
	}
	var ok bool
	if q.Page, q.PageSize, ok = h.parsePage(c); !ok {
		return
	}
	if q.MinPrice, ok = h.parsePriceQuery(c, "minPrice"); !ok {
		return
	}
	if q.MaxPrice, ok = h.parsePriceQuery(c, "maxPrice"); !ok {
		return
	}

	results, err := h.listingService.Nearby(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.NearbyItemResponse, 0, len(results))
	for _, r := range results {
		resp = append(resp, dto.ToNearbyItemResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) parseListingFilter(c *ginext.Context) (domain.ListingFilter, bool) {
	var filter domain.ListingFilter

	if s := c.Query("status"); s != "" {
		status := domain.ListingStatus(s)
		filter.Status = &status
	}

	var ok bool
	if filter.MinPrice, ok = h.parsePriceQuery(c, "minPrice"); !ok {
		return filter, false
	}
	if filter.MaxPrice, ok = h.parsePriceQuery(c, "maxPrice"); !ok {
		return filter, false
	}
	if filter.Page, filter.PageSize, ok = h.parsePage(c); !ok {
		return filter, false
	}

	return filter, true
}

func (h *Handler) parsePage(c *ginext.Context) (int, int, bool) {
	page, pageSize := 0, 0

	if s := c.Query("page"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid page"})
			return 0, 0, false
		}
		page = v
	}
	if s := c.Query("pageSize"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid pageSize"})
			return 0, 0, false
		}
		pageSize = v
	}

	return page, pageSize, true
}

func (h *Handler) parsePriceQuery(c *ginext.Context, name string) (*float64, bool) {
	s := c.Query(name)
	if s == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return nil, false
	}
	return &v, true
}

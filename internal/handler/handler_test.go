package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/Daemon403/housing-platform/internal/domain"
	"github.com/Daemon403/housing-platform/internal/handler/dto"
	hmocks "github.com/Daemon403/housing-platform/internal/handler/mocks"
	"github.com/Daemon403/housing-platform/internal/middleware"
	"github.com/Daemon403/housing-platform/internal/service"
)

type svcMocks struct {
	listing *hmocks.MockListingSvc
	booking *hmocks.MockBookingSvc
	user    *hmocks.MockUserSvc
	review  *hmocks.MockReviewSvc
	payment *hmocks.MockPaymentSvc
	message *hmocks.MockMessageSvc
	maint   *hmocks.MockMaintenanceSvc
}

// asUser stands in for the auth middleware.
func asUser(userID string, role domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Set(middleware.ContextRole, string(role))
		c.Next()
	}
}

func setupRouter(t *testing.T, mw ...ginext.HandlerFunc) (svcMocks, http.Handler) {
	t.Helper()
	m := svcMocks{
		listing: hmocks.NewMockListingSvc(t),
		booking: hmocks.NewMockBookingSvc(t),
		user:    hmocks.NewMockUserSvc(t),
		review:  hmocks.NewMockReviewSvc(t),
		payment: hmocks.NewMockPaymentSvc(t),
		message: hmocks.NewMockMessageSvc(t),
		maint:   hmocks.NewMockMaintenanceSvc(t),
	}

	h := NewHandler(m.listing, m.booking, m.user, m.review, m.payment, m.message, m.maint)

	r := ginext.New("test")
	r.Use(mw...)
	api := r.Group("/api")
	{
		api.GET("/listings", h.ListListings)
		api.GET("/listings/nearby", h.NearbyListings)
		api.GET("/listings/:id", h.GetListing)
		api.GET("/availability", h.CheckAvailability)
		api.POST("/listings", h.CreateListing)
		api.POST("/listings/:id/status", h.ChangeListingStatus)
		api.POST("/bookings", h.CreateBooking)
		api.PUT("/bookings/:id/approve", h.ApproveBooking)
		api.PUT("/bookings/:id/terminate", h.TerminateBooking)
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_GetListing(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.listing.EXPECT().GetByID(mock.Anything, id).Return(&domain.Listing{
		ID:     id,
		Title:  "Studio near campus",
		Status: domain.ListingStatusActive,
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/listings/"+id, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, "active", resp.Status)
}

func TestHandler_GetListing_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.listing.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrListingNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/listings/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetListing_BadID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/listings/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CheckAvailability(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.booking.EXPECT().
		IsAvailable(mock.Anything, id, mock.Anything, mock.Anything, "").
		Return(true, nil)

	w := doJSON(t, r, http.MethodGet,
		"/api/availability?listingId="+id+"&startDate=2024-03-01&endDate=2024-04-01", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Available)
}

func TestHandler_CheckAvailability_BadDates(t *testing.T) {
	_, r := setupRouter(t)

	id := uuid.New().String()
	w := doJSON(t, r, http.MethodGet,
		"/api/availability?listingId="+id+"&startDate=03/01/2024&endDate=2024-04-01", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CheckAvailability_InvalidRange(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.booking.EXPECT().
		IsAvailable(mock.Anything, id, mock.Anything, mock.Anything, "").
		Return(false, domain.ErrInvalidRange)

	w := doJSON(t, r, http.MethodGet,
		"/api/availability?listingId="+id+"&startDate=2024-04-01&endDate=2024-03-01", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_NearbyListings(t *testing.T) {
	m, r := setupRouter(t)

	m.listing.EXPECT().Nearby(mock.Anything, mock.MatchedBy(func(q service.NearbyQuery) bool {
		return q.Center.Lat == 34.0522 && q.RadiusKm == 5
	})).Return([]domain.ListingDistance{
		{Listing: &domain.Listing{ID: "a"}, DistanceKm: 1.3},
	}, nil)

	w := doJSON(t, r, http.MethodGet,
		"/api/listings/nearby?lat=34.0522&lng=-118.2437&radiusKm=5", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []dto.NearbyItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.InDelta(t, 1.3, resp[0].DistanceKm, 1e-9)
}

func TestHandler_NearbyListings_MissingParams(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/listings/nearby?lat=34.0522", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking(t *testing.T) {
	m, r := setupRouter(t, asUser("renter-1", domain.RoleStudent))

	listingID := uuid.New().String()
	m.booking.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in domain.CreateBookingInput) bool {
		return in.ListingID == listingID && in.RenterID == "renter-1"
	})).Return(&domain.Booking{
		ID:        uuid.New().String(),
		ListingID: listingID,
		RenterID:  "renter-1",
		Status:    domain.BookingStatusPending,
	}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		ListingID: listingID,
		StartDate: "2024-03-01",
		EndDate:   "2024-04-01",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_CreateBooking_BadDateFormat(t *testing.T) {
	_, r := setupRouter(t, asUser("renter-1", domain.RoleStudent))

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		ListingID: uuid.New().String(),
		StartDate: "March 1, 2024",
		EndDate:   "2024-04-01",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ApproveBooking_Conflict(t *testing.T) {
	m, r := setupRouter(t, asUser("owner-1", domain.RoleLandlord))

	id := uuid.New().String()
	m.booking.EXPECT().Approve(mock.Anything, id, "owner-1").Return(domain.ErrBookingConflict)

	w := doJSON(t, r, http.MethodPut, "/api/bookings/"+id+"/approve", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ApproveBooking_Forbidden(t *testing.T) {
	m, r := setupRouter(t, asUser("stranger", domain.RoleStudent))

	id := uuid.New().String()
	m.booking.EXPECT().Approve(mock.Anything, id, "stranger").Return(domain.ErrUnauthorized)

	w := doJSON(t, r, http.MethodPut, "/api/bookings/"+id+"/approve", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_TerminateBooking_RequiresReason(t *testing.T) {
	_, r := setupRouter(t, asUser("owner-1", domain.RoleLandlord))

	id := uuid.New().String()
	w := doJSON(t, r, http.MethodPut, "/api/bookings/"+id+"/terminate",
		dto.TerminateBookingRequest{Reason: ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ChangeListingStatus_InvalidTransition(t *testing.T) {
	m, r := setupRouter(t, asUser("owner-1", domain.RoleLandlord))

	id := uuid.New().String()
	m.listing.EXPECT().
		ChangeStatus(mock.Anything, id, "owner-1", domain.RoleLandlord, domain.ListingStatusActive).
		Return(&domain.InvalidTransitionError{Entity: "listing", From: "sold", To: "active"})

	w := doJSON(t, r, http.MethodPost, "/api/listings/"+id+"/status",
		dto.ChangeListingStatusRequest{Status: "active"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Register(t *testing.T) {
	m, r := setupRouter(t)

	m.user.EXPECT().Register(mock.Anything, mock.MatchedBy(func(in domain.RegisterInput) bool {
		return in.Email == "alice@example.com" && in.Role == domain.RoleStudent
	})).Return(&domain.User{ID: "u1", Name: "alice", Email: "alice@example.com", Role: domain.RoleStudent}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "correct-horse",
		Role:     "student",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "u1", resp.ID)
}

func TestHandler_Register_EmailTaken(t *testing.T) {
	m, r := setupRouter(t)

	m.user.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "correct-horse",
		Role:     "student",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	m, r := setupRouter(t)

	m.user.EXPECT().Login(mock.Anything, "alice@example.com", "wrong").
		Return("", nil, domain.ErrUnauthorized)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_InternalError(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.listing.EXPECT().GetByID(mock.Anything, id).Return(nil, assert.AnError)

	w := doJSON(t, r, http.MethodGet, "/api/listings/"+id, nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// Internals are not leaked to clients.
	assert.Equal(t, "internal server error", resp.Error)
}

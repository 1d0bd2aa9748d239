package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/Daemon403/housing-platform/internal/domain"
	"github.com/Daemon403/housing-platform/internal/handler/dto"
	"github.com/Daemon403/housing-platform/internal/middleware"
	"github.com/Daemon403/housing-platform/internal/service"
)

type ListingSvc interface {
	Create(ctx context.Context, input domain.CreateListingInput) (*domain.Listing, error)
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	List(ctx context.Context, f domain.ListingFilter) ([]*domain.Listing, error)
	Update(ctx context.Context, id, actorID string, input domain.UpdateListingInput) (*domain.Listing, error)
	ChangeStatus(ctx context.Context, id, actorID string, actorRole domain.Role, to domain.ListingStatus) error
	Nearby(ctx context.Context, q service.NearbyQuery) ([]domain.ListingDistance, error)
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	GetByID(ctx context.Context, bookingID, actorID string) (*domain.Booking, error)
	IsAvailable(ctx context.Context, listingID string, start, end time.Time, excludeBookingID string) (bool, error)
	Approve(ctx context.Context, bookingID, actorID string) error
	Reject(ctx context.Context, bookingID, actorID string) error
	Cancel(ctx context.Context, bookingID, actorID string) error
	Complete(ctx context.Context, bookingID, actorID string) error
	Terminate(ctx context.Context, bookingID, actorID, reason string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListByListing(ctx context.Context, listingID, actorID string) ([]*domain.Booking, error)
}

type UserSvc interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type ReviewSvc interface {
	Create(ctx context.Context, input domain.CreateReviewInput) (*domain.Review, error)
	ListByListing(ctx context.Context, listingID string) ([]*domain.Review, error)
	Delete(ctx context.Context, id, actorID string, actorRole domain.Role) error
}

type PaymentSvc interface {
	Pay(ctx context.Context, bookingID, actorID string) (*domain.Payment, error)
	Receipt(ctx context.Context, paymentID, actorID string, actorRole domain.Role) ([]byte, string, error)
	ListByBooking(ctx context.Context, bookingID, actorID string) ([]*domain.Payment, error)
}

type MessageSvc interface {
	Send(ctx context.Context, input domain.SendMessageInput) (*domain.Message, error)
	Thread(ctx context.Context, listingID, actorID, withID string) ([]*domain.Message, error)
}

type MaintenanceSvc interface {
	Create(ctx context.Context, input domain.CreateMaintenanceInput) (*domain.MaintenanceRequest, error)
	SetStatus(ctx context.Context, id, actorID string, to domain.MaintenanceStatus) error
	ListByListing(ctx context.Context, listingID, actorID string) ([]*domain.MaintenanceRequest, error)
	ListByUser(ctx context.Context, renterID string) ([]*domain.MaintenanceRequest, error)
}

type Handler struct {
	listingService     ListingSvc
	bookingService     BookingSvc
	userService        UserSvc
	reviewService      ReviewSvc
	paymentService     PaymentSvc
	messageService     MessageSvc
	maintenanceService MaintenanceSvc
}

func NewHandler(
	listingService ListingSvc,
	bookingService BookingSvc,
	userService UserSvc,
	reviewService ReviewSvc,
	paymentService PaymentSvc,
	messageService MessageSvc,
	maintenanceService MaintenanceSvc,
) *Handler {
	return &Handler{
		listingService:     listingService,
		bookingService:     bookingService,
		userService:        userService,
		reviewService:      reviewService,
		paymentService:     paymentService,
		messageService:     messageService,
		maintenanceService: maintenanceService,
	}
}

// actor returns the authenticated user's id and role set by the auth middleware.
func actor(c *ginext.Context) (string, domain.Role) {
	return c.GetString(middleware.ContextUserID), domain.Role(c.GetString(middleware.ContextRole))
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(domain.DateFormat, s)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrListingNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrReviewNotFound),
		errors.Is(err, domain.ErrMaintenanceNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrBookingConflict),
		errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

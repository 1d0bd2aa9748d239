package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/Daemon403/housing-platform/internal/domain"
	"github.com/Daemon403/housing-platform/internal/pdf"
	"github.com/Daemon403/housing-platform/internal/service/ports"
)

type PaymentService struct {
	paymentRepo ports.PaymentRepo
	bookingRepo ports.BookingRepo
	listingRepo ports.ListingRepo
	userRepo    ports.UserRepo
	logger      logger.Logger
}

func NewPaymentService(
	paymentRepo ports.PaymentRepo,
	bookingRepo ports.BookingRepo,
	listingRepo ports.ListingRepo,
	userRepo ports.UserRepo,
	logger logger.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		listingRepo: listingRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Pay captures the charge for an approved or active booking. The unpaid→paid
// compare-and-swap runs first, so a double submission records one payment.
func (s *PaymentService) Pay(ctx context.Context, bookingID, actorID string) (*domain.Payment, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.RenterID != actorID {
		return nil, fmt.Errorf("%w: only the renter can pay for a booking", domain.ErrUnauthorized)
	}

	if booking.Status != domain.BookingStatusApproved && booking.Status != domain.BookingStatusActive {
		return nil, fmt.Errorf("%w: booking is not payable in status %q", domain.ErrValidation, booking.Status)
	}

	listing, err := s.listingRepo.GetByID(ctx, booking.ListingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	if err = s.bookingRepo.SetPaymentState(
		ctx, booking.ID, domain.PaymentStateUnpaid, domain.PaymentStatePaid,
	); err != nil {
		return nil, fmt.Errorf("mark paid: %w", err)
	}

	payment := &domain.Payment{
		ID:        uuid.New().String(),
		BookingID: booking.ID,
		PayerID:   actorID,
		Amount:    listing.Price,
		Kind:      domain.PaymentKindCharge,
		CreatedAt: time.Now().UTC(),
	}

	if err = s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	s.logger.Info("payment captured",
		logger.String("payment_id", payment.ID),
		logger.String("booking_id", booking.ID),
	)

	return payment, nil
}

// Receipt renders the payment as a PDF for the payer, the listing owner or
// an admin.
func (s *PaymentService) Receipt(ctx context.Context, paymentID, actorID string, actorRole domain.Role) ([]byte, string, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, "", fmt.Errorf("get payment: %w", err)
	}

	booking, err := s.bookingRepo.GetByID(ctx, payment.BookingID)
	if err != nil {
		return nil, "", fmt.Errorf("get booking: %w", err)
	}

	listing, err := s.listingRepo.GetByID(ctx, booking.ListingID)
	if err != nil {
		return nil, "", fmt.Errorf("get listing: %w", err)
	}

	if actorID != payment.PayerID && actorID != listing.OwnerID && actorRole != domain.RoleAdmin {
		return nil, "", fmt.Errorf("%w: not a party to this payment", domain.ErrUnauthorized)
	}

	payer, err := s.userRepo.GetByID(ctx, payment.PayerID)
	if err != nil {
		return nil, "", fmt.Errorf("get payer: %w", err)
	}

	return pdf.Receipt(pdf.ReceiptData{
		PaymentID:    payment.ID,
		BookingID:    booking.ID,
		PayerName:    payer.Name,
		ListingTitle: listing.Title,
		StartDate:    booking.StartDate.Format(domain.DateFormat),
		EndDate:      booking.EndDate.Format(domain.DateFormat),
		Amount:       payment.Amount,
		Kind:         string(payment.Kind),
		IssuedAt:     payment.CreatedAt,
	})
}

func (s *PaymentService) ListByBooking(ctx context.Context, bookingID, actorID string) ([]*domain.Payment, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	listing, err := s.listingRepo.GetByID(ctx, booking.ListingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	if actorID != booking.RenterID && actorID != listing.OwnerID {
		return nil, fmt.Errorf("%w: not a party to this booking", domain.ErrUnauthorized)
	}

	return s.paymentRepo.ListByBooking(ctx, bookingID)
}

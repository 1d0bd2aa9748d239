package dto

import (
	"time"

	"github.com/Daemon403/housing-platform/internal/domain"
)

type ListingResponse struct {
	ID               string   `json:"id"`
	OwnerID          string   `json:"owner_id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Price            float64  `json:"price"`
	MaximumOccupancy int      `json:"maximum_occupancy"`
	CurrentOccupancy int      `json:"current_occupancy"`
	Lat              *float64 `json:"lat,omitempty"`
	Lng              *float64 `json:"lng,omitempty"`
	Status           string   `json:"status"`
	Rating           float64  `json:"rating"`
	CreatedAt        string   `json:"created_at"`
}

type NearbyItemResponse struct {
	Listing    ListingResponse `json:"listing"`
	DistanceKm float64         `json:"distance_km"`
}

type BookingResponse struct {
	ID                string `json:"id"`
	ListingID         string `json:"listing_id"`
	RenterID          string `json:"renter_id"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
	Status            string `json:"status"`
	PaymentState      string `json:"payment_state"`
	TerminationReason string `json:"termination_reason,omitempty"`
	CreatedAt         string `json:"created_at"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type ReviewResponse struct {
	ID        string `json:"id"`
	ListingID string `json:"listing_id"`
	AuthorID  string `json:"author_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

type PaymentResponse struct {
	ID        string  `json:"id"`
	BookingID string  `json:"booking_id"`
	PayerID   string  `json:"payer_id"`
	Amount    float64 `json:"amount"`
	Kind      string  `json:"kind"`
	CreatedAt string  `json:"created_at"`
}

type MessageResponse struct {
	ID          string `json:"id"`
	ListingID   string `json:"listing_id"`
	SenderID    string `json:"sender_id"`
	RecipientID string `json:"recipient_id"`
	Body        string `json:"body"`
	CreatedAt   string `json:"created_at"`
}

type MaintenanceResponse struct {
	ID          string `json:"id"`
	ListingID   string `json:"listing_id"`
	RenterID    string `json:"renter_id"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToListingResponse(l *domain.Listing) ListingResponse {
	return ListingResponse{
		ID:               l.ID,
		OwnerID:          l.OwnerID,
		Title:            l.Title,
		Description:      l.Description,
		Price:            l.Price,
		MaximumOccupancy: l.MaximumOccupancy,
		CurrentOccupancy: l.CurrentOccupancy,
		Lat:              l.Lat,
		Lng:              l.Lng,
		Status:           string(l.Status),
		Rating:           l.Rating,
		CreatedAt:        l.CreatedAt.Format(time.RFC3339),
	}
}

func ToNearbyItemResponse(d domain.ListingDistance) NearbyItemResponse {
	return NearbyItemResponse{
		Listing:    ToListingResponse(d.Listing),
		DistanceKm: d.DistanceKm,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:                b.ID,
		ListingID:         b.ListingID,
		RenterID:          b.RenterID,
		StartDate:         b.StartDate.Format(domain.DateFormat),
		EndDate:           b.EndDate.Format(domain.DateFormat),
		Status:            string(b.Status),
		PaymentState:      string(b.PaymentState),
		TerminationReason: b.TerminationReason,
		CreatedAt:         b.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToReviewResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		ListingID: r.ListingID,
		AuthorID:  r.AuthorID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID,
		BookingID: p.BookingID,
		PayerID:   p.PayerID,
		Amount:    p.Amount,
		Kind:      string(p.Kind),
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}

func ToMessageResponse(m *domain.Message) MessageResponse {
	return MessageResponse{
		ID:          m.ID,
		ListingID:   m.ListingID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Body:        m.Body,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
	}
}

func ToMaintenanceResponse(m *domain.MaintenanceRequest) MaintenanceResponse {
	return MaintenanceResponse{
		ID:          m.ID,
		ListingID:   m.ListingID,
		RenterID:    m.RenterID,
		Description: m.Description,
		Status:      string(m.Status),
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
	}
}

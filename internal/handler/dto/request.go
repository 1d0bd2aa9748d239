package dto

type RegisterRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required"`
	Role           string `json:"role" binding:"required,oneof=student landlord admin"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateListingRequest struct {
	Title            string   `json:"title" binding:"required"`
	Description      string   `json:"description"`
	Price            float64  `json:"price" binding:"required,gt=0"`
	MaximumOccupancy int      `json:"maximum_occupancy" binding:"required,gt=0"`
	Lat              *float64 `json:"lat"`
	Lng              *float64 `json:"lng"`
}

type UpdateListingRequest struct {
	Title            *string  `json:"title"`
	Description      *string  `json:"description"`
	Price            *float64 `json:"price"`
	MaximumOccupancy *int     `json:"maximum_occupancy"`
	Lat              *float64 `json:"lat"`
	Lng              *float64 `json:"lng"`
}

type ChangeListingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateBookingRequest struct {
	ListingID string `json:"listing_id" binding:"required,uuid"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type TerminateBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type SendMessageRequest struct {
	ListingID   string `json:"listing_id" binding:"required,uuid"`
	RecipientID string `json:"recipient_id" binding:"required,uuid"`
	Body        string `json:"body" binding:"required"`
}

type CreateMaintenanceRequest struct {
	Description string `json:"description" binding:"required"`
}

type UpdateMaintenanceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

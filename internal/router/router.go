package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/Daemon403/housing-platform/internal/domain"
	"github.com/Daemon403/housing-platform/internal/middleware"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	GetUser(c *ginext.Context)
	ListUsers(c *ginext.Context)

	CreateListing(c *ginext.Context)
	GetListing(c *ginext.Context)
	ListListings(c *ginext.Context)
	UpdateListing(c *ginext.Context)
	ChangeListingStatus(c *ginext.Context)
	NearbyListings(c *ginext.Context)

	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	CheckAvailability(c *ginext.Context)
	ApproveBooking(c *ginext.Context)
	RejectBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	CompleteBooking(c *ginext.Context)
	TerminateBooking(c *ginext.Context)
	ListMyBookings(c *ginext.Context)
	ListListingBookings(c *ginext.Context)

	CreateReview(c *ginext.Context)
	ListListingReviews(c *ginext.Context)
	DeleteReview(c *ginext.Context)

	PayBooking(c *ginext.Context)
	PaymentReceipt(c *ginext.Context)
	ListBookingPayments(c *ginext.Context)

	SendMessage(c *ginext.Context)
	GetThread(c *ginext.Context)

	CreateMaintenanceRequest(c *ginext.Context)
	UpdateMaintenanceStatus(c *ginext.Context)
	ListListingMaintenance(c *ginext.Context)
	ListMyMaintenance(c *ginext.Context)
}

func InitRouter(mode, jwtSecret string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Public
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		api.GET("/listings", h.ListListings)
		api.GET("/listings/nearby", h.NearbyListings)
		api.GET("/listings/:id", h.GetListing)
		api.GET("/listings/:id/reviews", h.ListListingReviews)
		api.GET("/availability", h.CheckAvailability)

		// Authenticated
		auth := api.Group("", middleware.Auth(jwtSecret))
		{
			auth.GET("/users/:id", h.GetUser)

			auth.POST("/listings", h.CreateListing)
			auth.PATCH("/listings/:id", h.UpdateListing)
			auth.POST("/listings/:id/status", h.ChangeListingStatus)
			auth.GET("/listings/:id/bookings", h.ListListingBookings)

			auth.POST("/bookings", h.CreateBooking)
			auth.GET("/bookings", h.ListMyBookings)
			auth.GET("/bookings/:id", h.GetBooking)
			auth.PUT("/bookings/:id/approve", h.ApproveBooking)
			auth.PUT("/bookings/:id/reject", h.RejectBooking)
			auth.PUT("/bookings/:id/cancel", h.CancelBooking)
			auth.PUT("/bookings/:id/complete", h.CompleteBooking)
			auth.PUT("/bookings/:id/terminate", h.TerminateBooking)

			auth.POST("/bookings/:id/pay", h.PayBooking)
			auth.GET("/bookings/:id/payments", h.ListBookingPayments)
			auth.GET("/payments/:id/receipt", h.PaymentReceipt)

			auth.POST("/listings/:id/reviews", h.CreateReview)
			auth.DELETE("/reviews/:id", h.DeleteReview)

			auth.POST("/messages", h.SendMessage)
			auth.GET("/listings/:id/messages", h.GetThread)

			auth.POST("/listings/:id/maintenance", h.CreateMaintenanceRequest)
			auth.GET("/listings/:id/maintenance", h.ListListingMaintenance)
			auth.GET("/maintenance", h.ListMyMaintenance)
			auth.POST("/maintenance/:id/status", h.UpdateMaintenanceStatus)

			// Admin
			admin := auth.Group("", middleware.RequireRoles(string(domain.RoleAdmin)))
			{
				admin.GET("/users", h.ListUsers)
			}
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}

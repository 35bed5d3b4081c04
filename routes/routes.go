package routes

import (
	"net/http"

	"partyplan/database/repository/roles"
	"partyplan/handlers"
	"partyplan/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers bundles everything route registration needs.
type Handlers struct {
	Packages *handlers.PackageHandler
	Bookings *handlers.BookingHandler
	Webhooks *handlers.WebhookHandler
	Profiles *handlers.ProfileHandler
	Contacts *handlers.ContactHandler
	Admin    *handlers.AdminHandler
	Roles    roles.RoleRepository
}

// RegisterRoutes wires every endpoint group onto the engine.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	RegisterHealthRoute(r)

	// Public catalog, contact form, and the provider webhook.
	api := r.Group("/api")
	{
		api.GET("/packages", h.Packages.ListPackages)
		api.GET("/packages/:id", h.Packages.GetPackage)
		api.POST("/contact", h.Contacts.SubmitContact)
		api.POST("/webhooks/stripe", h.Webhooks.StripeWebhook)
	}

	// Authenticated user endpoints.
	authed := r.Group("/api")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("/bookings", h.Bookings.CreateBooking)
		authed.GET("/bookings", h.Bookings.ListMyBookings)
		authed.GET("/bookings/:id", h.Bookings.GetBooking)
		authed.POST("/bookings/:id/cancel", h.Bookings.CancelBooking)
		authed.POST("/bookings/:id/checkout", h.Bookings.CreateCheckoutSession)
		authed.POST("/bookings/checkout", h.Bookings.CreateBookingWithPayment)
		authed.GET("/profile", h.Profiles.GetProfile)
		authed.PUT("/profile", h.Profiles.UpdateProfile)
	}

	// Admin back office.
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware(h.Roles))
	{
		admin.GET("/bookings", h.Admin.ListAllBookings)
		admin.PATCH("/bookings/:id/status", h.Admin.UpdateBookingStatus)
		admin.GET("/bookings/export", h.Admin.ExportBookings)
		admin.GET("/analytics", h.Admin.GetAnalytics)

		admin.GET("/packages", h.Packages.ListAllPackages)
		admin.POST("/packages", h.Packages.CreatePackage)
		admin.PUT("/packages/:id", h.Packages.UpdatePackage)
		admin.DELETE("/packages/:id", h.Packages.DeletePackage)

		admin.GET("/contacts", h.Contacts.ListContacts)
		admin.PATCH("/contacts/:id/status", h.Contacts.UpdateContactStatus)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm partyplan"})
	})
}

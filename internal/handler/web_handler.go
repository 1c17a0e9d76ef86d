package handler

import (
	"errors"
	"log"
	"net/http"

	apperrors "travlr/internal/errors"
	"travlr/internal/middleware"
	"travlr/internal/models"
	"travlr/internal/service"

	"github.com/gin-gonic/gin"
)

// WebHandler serves the server-rendered pages. These sit alongside the JSON
// API and authenticate with a cookie session instead of a bearer token.
type WebHandler struct {
	authService      service.AuthServicer
	tripService      service.TripServicer
	travellerService service.TravellerServicer
}

// NewWebHandler creates a new WebHandler.
func NewWebHandler(authService service.AuthServicer, tripService service.TripServicer, travellerService service.TravellerServicer) *WebHandler {
	return &WebHandler{
		authService:      authService,
		tripService:      tripService,
		travellerService: travellerService,
	}
}

// Index renders the landing page.
func (h *WebHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title": "Travlr Getaways",
	})
}

// LoginForm renders the login page.
func (h *WebHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Title": "Sign in",
	})
}

// Login handles the login form submission. On success a session cookie is
// issued and the user lands on the travel page.
func (h *WebHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := h.authService.Authenticate(c.Request.Context(), email, password)
	if err != nil {
		message := "Invalid email or password"
		if errors.Is(err, apperrors.ErrAccountLocked) {
			message = "Account temporarily locked, try again later"
		}
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Title": "Sign in",
			"Error": message,
			"Email": email,
		})
		return
	}

	if err := middleware.SessionLogin(c, user.ID.Hex()); err != nil {
		log.Printf("Failed to save session for %s: %v", user.Email, err)
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Title": "Sign in",
			"Error": "Something went wrong, please try again",
		})
		return
	}

	c.Redirect(http.StatusFound, "/travel")
}

// Logout clears the session and returns to the login page.
func (h *WebHandler) Logout(c *gin.Context) {
	if err := middleware.SessionLogout(c); err != nil {
		log.Printf("Failed to clear session: %v", err)
	}
	c.Redirect(http.StatusFound, "/login")
}

// Travel renders the public trip listing page.
func (h *WebHandler) Travel(c *gin.Context) {
	var req models.ListTripsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		// Malformed filters fall back to the default listing on the page
		req = models.ListTripsRequest{}
	}

	result, err := h.tripService.ListTrips(c.Request.Context(), &req)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "travel.html", gin.H{
			"Title": "Travel",
			"Error": "Could not load trips",
		})
		return
	}

	c.HTML(http.StatusOK, "travel.html", gin.H{
		"Title":      "Travel",
		"Trips":      result.Data,
		"Pagination": result.Pagination,
	})
}

// Travellers renders the traveller list page. The route sits behind the
// session middleware.
func (h *WebHandler) Travellers(c *gin.Context) {
	travellers, err := h.travellerService.ListTravellers(c.Request.Context())
	if err != nil {
		c.HTML(http.StatusInternalServerError, "travellers.html", gin.H{
			"Title": "Travellers",
			"Error": "Could not load travellers",
		})
		return
	}

	c.HTML(http.StatusOK, "travellers.html", gin.H{
		"Title":      "Travellers",
		"Travellers": travellers,
	})
}

// AddTraveller handles the add-traveller form submission.
func (h *WebHandler) AddTraveller(c *gin.Context) {
	var req models.CreateTravellerRequest
	if err := c.ShouldBind(&req); err != nil {
		travellers, listErr := h.travellerService.ListTravellers(c.Request.Context())
		if listErr != nil {
			travellers = []models.Traveller{}
		}
		c.HTML(http.StatusBadRequest, "travellers.html", gin.H{
			"Title":      "Travellers",
			"Error":      "All fields are required; the tour date must be YYYY-MM-DD",
			"Travellers": travellers,
		})
		return
	}

	if _, err := h.travellerService.AddTraveller(c.Request.Context(), &req); err != nil {
		c.HTML(http.StatusInternalServerError, "travellers.html", gin.H{
			"Title": "Travellers",
			"Error": "Could not save traveller",
		})
		return
	}

	c.Redirect(http.StatusFound, "/travellers")
}

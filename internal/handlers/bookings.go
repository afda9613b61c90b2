package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"TOURSANDTRAVELS_BACK-END/internal/dto"
	"TOURSANDTRAVELS_BACK-END/internal/middleware"
	"TOURSANDTRAVELS_BACK-END/internal/models"
	"TOURSANDTRAVELS_BACK-END/internal/reports"
	"TOURSANDTRAVELS_BACK-END/internal/store"
	"TOURSANDTRAVELS_BACK-END/internal/utils"
)

// BookingsHandler manages traveler booking creation and the admin booking
// management endpoints.
type BookingsHandler struct {
	state *store.State
	log   *logrus.Logger
}

// NewBookingsHandler creates a new BookingsHandler instance
func NewBookingsHandler(state *store.State, log *logrus.Logger) *BookingsHandler {
	return &BookingsHandler{state: state, log: log}
}

// Create books a tour for the session's traveler
// @Summary Create booking
// @Description Book a tour; the tour snapshot, end date and amount are derived from the catalog
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking payload"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Tour not found"
// @Router /api/bookings [post]
func (h *BookingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.CreateBookingRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.TourID == "" || req.TravelDate == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "tourId and travelDate are required")
		return
	}
	if req.Guests < 1 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "guests must be at least 1")
		return
	}

	// The booking form only exists on a loaded tour page, so an unknown tour
	// id gets the not-found fallback here. The store itself stays permissive.
	tour, ok := h.state.Tours.Get(req.TourID)
	if !ok {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Tour not found", "No tour with id "+req.TourID)
		return
	}

	travelDate, err := utils.ParseDate(req.TravelDate)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "travelDate must be ISO 8601 format (YYYY-MM-DD or RFC3339)")
		return
	}

	sess, _ := middleware.SessionFromContext(r.Context())
	identity, _ := sess.Identity()

	userID := ""
	userEmail := ""
	if claims, ok := sess.PeekTokenClaims(); ok {
		if sub, err := claims.GetSubject(); err == nil {
			userID = sub
		}
		if v, ok := claims["email"].(string); ok {
			userEmail = v
		}
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "Credit Card"
	}

	now := time.Now()
	booking := models.Booking{
		ID:            uuid.NewString(),
		UserID:        userID,
		TourID:        tour.ID,
		TourTitle:     tour.Title,
		TourImage:     tour.Image,
		Destination:   tour.Destination,
		UserEmail:     userEmail,
		UserName:      strings.TrimSpace(identity.FirstName + " " + identity.LastName),
		BookingDate:   now,
		TravelDate:    travelDate,
		EndDate:       travelDate.AddDate(0, 0, tour.Duration),
		Guests:        req.Guests,
		TotalAmount:   tour.Price * float64(req.Guests),
		Status:        models.BookingStatusConfirmed,
		PaymentStatus: models.PaymentStatusPaid,
		PaymentMethod: paymentMethod,
		CreatedAt:     now,
	}
	h.state.Bookings.Add(booking)

	// A booked tour leaves the session's wishlist.
	if sessState, ok := sessionState(h.state, r); ok && sessState.Wishlist.Contains(tour.ID) {
		sessState.Wishlist.Remove(tour.ID)
	}

	h.log.WithFields(logrus.Fields{"booking_id": booking.ID, "tour_id": tour.ID}).Info("booking created")
	utils.WriteJSONResponse(w, http.StatusCreated, dto.BookingFromModel(booking))
}

// My lists the session traveler's bookings
// @Summary My bookings
// @Tags bookings
// @Produce json
// @Success 200 {object} dto.BookingListResponse
// @Router /api/bookings/my [get]
func (h *BookingsHandler) My(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	mine := h.sessionBookings(r)
	utils.WriteJSONResponse(w, http.StatusOK, dto.BookingListResponse{
		Bookings: dto.BookingsFromModels(mine),
		Total:    len(mine),
	})
}

// Manage dispatches the admin booking-management routes.
func (h *BookingsHandler) Manage(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/bookings/")
	if id == r.URL.Path {
		id = ""
	}

	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPut, http.MethodPatch:
		h.update(w, r, id)
	case http.MethodDelete:
		h.remove(w, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// list returns bookings with the management filters and the revenue accumulator
// @Summary List bookings
// @Tags admin
// @Produce json
// @Param search query string false "Substring match on user name, tour title, or email"
// @Param status query string false "Booking status"
// @Success 200 {object} dto.BookingListResponse
// @Router /api/admin/bookings [get]
func (h *BookingsHandler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filtered := reports.FilterBookings(h.state.Bookings.List(), q.Get("search"), q.Get("status"))
	utils.WriteJSONResponse(w, http.StatusOK, dto.BookingListResponse{
		Bookings:     dto.BookingsFromModels(filtered),
		Total:        len(filtered),
		TotalRevenue: h.state.Bookings.TotalRevenue(),
	})
}

// update sets a booking's status and/or payment status. Any combination is
// accepted; revenue reconciles inside the store on payment-status changes.
// @Summary Update booking status
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Booking identifier"
// @Param request body dto.UpdateBookingRequest true "Status fields"
// @Success 200 {object} dto.BookingResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/bookings/{id} [put]
func (h *BookingsHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	if id == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "Booking id is required")
		return
	}
	booking, ok := h.state.Bookings.Get(id)
	if !ok {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Booking not found", "No booking with id "+id)
		return
	}

	var req dto.UpdateBookingRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.Status != "" {
		booking.Status = req.Status
	}
	if req.PaymentStatus != "" {
		booking.PaymentStatus = req.PaymentStatus
	}
	h.state.Bookings.Update(booking)

	utils.WriteJSONResponse(w, http.StatusOK, dto.BookingFromModel(booking))
}

// remove deletes a booking
// @Summary Delete booking
// @Tags admin
// @Produce json
// @Param id path string true "Booking identifier"
// @Success 200 {object} dto.MessageResponse
// @Router /api/admin/bookings/{id} [delete]
func (h *BookingsHandler) remove(w http.ResponseWriter, id string) {
	if id == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "Booking id is required")
		return
	}
	h.state.Bookings.Remove(id)
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Booking deleted"})
}

// sessionBookings returns the bookings recorded under the session traveler's
// display name. Bookings carry a denormalized user name, so a renamed account
// loses the association; the identity context has no stable user id to match
// on.
func (h *BookingsHandler) sessionBookings(r *http.Request) []models.Booking {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		return nil
	}
	identity, ok := sess.Identity()
	if !ok {
		return nil
	}
	fullName := strings.TrimSpace(identity.FirstName + " " + identity.LastName)

	var mine []models.Booking
	for _, b := range h.state.Bookings.List() {
		if b.UserName == fullName {
			mine = append(mine, b)
		}
	}
	return mine
}

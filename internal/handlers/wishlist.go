package handlers

import (
	"net/http"
	"strings"

	"TOURSANDTRAVELS_BACK-END/internal/dto"
	"TOURSANDTRAVELS_BACK-END/internal/models"
	"TOURSANDTRAVELS_BACK-END/internal/store"
	"TOURSANDTRAVELS_BACK-END/internal/utils"
)

// WishlistHandler manages the saved-tours endpoints. Each browser session has
// its own wishlist; the membership pre-check on add lives here, the store
// itself appends unconditionally.
type WishlistHandler struct {
	state *store.State
}

// NewWishlistHandler creates a new WishlistHandler instance
func NewWishlistHandler(state *store.State) *WishlistHandler {
	return &WishlistHandler{state: state}
}

// Wishlist dispatches the wishlist routes.
func (h *WishlistHandler) Wishlist(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionState(h.state, r)
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "No session")
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/wishlist/")
	if id == r.URL.Path {
		id = ""
	}

	switch r.Method {
	case http.MethodGet:
		h.list(w, sess)
	case http.MethodPost:
		h.add(w, r, sess)
	case http.MethodDelete:
		h.remove(w, sess, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// list returns the session's saved tours
// @Summary List wishlist
// @Tags wishlist
// @Produce json
// @Success 200 {object} dto.WishlistResponse
// @Router /api/wishlist [get]
func (h *WishlistHandler) list(w http.ResponseWriter, sess *store.SessionState) {
	items := sess.Wishlist.Items()
	utils.WriteJSONResponse(w, http.StatusOK, dto.WishlistResponse{
		Items: items,
		Total: len(items),
	})
}

// add saves a tour, snapshotting it from the catalog
// @Summary Add to wishlist
// @Tags wishlist
// @Accept json
// @Produce json
// @Param request body dto.WishlistAddRequest true "Tour reference"
// @Success 201 {object} models.WishlistItem
// @Failure 404 {object} dto.ErrorResponse "Tour not found"
// @Failure 409 {object} dto.ErrorResponse "Already saved"
// @Router /api/wishlist [post]
func (h *WishlistHandler) add(w http.ResponseWriter, r *http.Request, sess *store.SessionState) {
	var req dto.WishlistAddRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.TourID == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "tourId is required")
		return
	}
	if sess.Wishlist.Contains(req.TourID) {
		utils.WriteErrorResponse(w, http.StatusConflict, "Already saved", "Tour is already in the wishlist")
		return
	}
	tour, ok := h.state.Tours.Get(req.TourID)
	if !ok {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Tour not found", "No tour with id "+req.TourID)
		return
	}

	item := models.WishlistItem{
		ID:          tour.ID,
		Title:       tour.Title,
		Price:       tour.Price,
		Image:       tour.Image,
		Destination: tour.Destination,
		Duration:    tour.Duration,
	}
	sess.Wishlist.Add(item)
	utils.WriteJSONResponse(w, http.StatusCreated, item)
}

// remove drops a saved tour
// @Summary Remove from wishlist
// @Tags wishlist
// @Produce json
// @Param id path string true "Tour identifier"
// @Success 200 {object} dto.MessageResponse
// @Router /api/wishlist/{id} [delete]
func (h *WishlistHandler) remove(w http.ResponseWriter, sess *store.SessionState, id string) {
	if id == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "Tour id is required")
		return
	}
	sess.Wishlist.Remove(id)
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Removed from wishlist"})
}

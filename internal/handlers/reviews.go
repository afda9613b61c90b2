package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"TOURSANDTRAVELS_BACK-END/internal/dto"
	"TOURSANDTRAVELS_BACK-END/internal/models"
	"TOURSANDTRAVELS_BACK-END/internal/store"
	"TOURSANDTRAVELS_BACK-END/internal/utils"
)

// ReviewsHandler manages the my-reviews endpoints. Reviews are written and read
// per browser session.
type ReviewsHandler struct {
	state *store.State
}

// NewReviewsHandler creates a new ReviewsHandler instance
func NewReviewsHandler(state *store.State) *ReviewsHandler {
	return &ReviewsHandler{state: state}
}

// Reviews dispatches the review routes.
func (h *ReviewsHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionState(h.state, r)
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "No session")
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/reviews/")
	if id == r.URL.Path {
		id = ""
	}

	switch r.Method {
	case http.MethodGet:
		h.list(w, sess)
	case http.MethodPost:
		h.create(w, r, sess)
	case http.MethodPut, http.MethodPatch:
		h.update(w, r, sess, id)
	case http.MethodDelete:
		h.remove(w, sess, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// list returns the session's reviews, most recent first
// @Summary List reviews
// @Tags reviews
// @Produce json
// @Success 200 {object} dto.ReviewListResponse
// @Router /api/reviews [get]
func (h *ReviewsHandler) list(w http.ResponseWriter, sess *store.SessionState) {
	reviews := sess.Reviews.Items()
	utils.WriteJSONResponse(w, http.StatusOK, dto.ReviewListResponse{
		Reviews: dto.ReviewsFromModels(reviews),
		Total:   len(reviews),
	})
}

// create adds a review
// @Summary Write review
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body dto.ReviewRequest true "Review payload"
// @Success 201 {object} dto.ReviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/reviews [post]
func (h *ReviewsHandler) create(w http.ResponseWriter, r *http.Request, sess *store.SessionState) {
	var req dto.ReviewRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if msg := validateReviewRequest(req); msg != "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", msg)
		return
	}

	review := models.Review{
		ID:          uuid.NewString(),
		TourTitle:   req.TourTitle,
		Destination: req.Destination,
		TourImage:   req.TourImage,
		Rating:      req.Rating,
		Comment:     req.Comment,
		ReviewDate:  time.Now(),
	}
	sess.Reviews.Add(review)
	utils.WriteJSONResponse(w, http.StatusCreated, dto.ReviewFromModel(review))
}

// update edits a review, keeping its original date
// @Summary Edit review
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Review identifier"
// @Param request body dto.ReviewRequest true "Review payload"
// @Success 200 {object} dto.ReviewResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/reviews/{id} [put]
func (h *ReviewsHandler) update(w http.ResponseWriter, r *http.Request, sess *store.SessionState, id string) {
	if id == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "Review id is required")
		return
	}

	var existing *models.Review
	for _, rev := range sess.Reviews.Items() {
		if rev.ID == id {
			existing = &rev
			break
		}
	}
	if existing == nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Review not found", "No review with id "+id)
		return
	}

	var req dto.ReviewRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if msg := validateReviewRequest(req); msg != "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", msg)
		return
	}

	review := models.Review{
		ID:          existing.ID,
		TourTitle:   req.TourTitle,
		Destination: req.Destination,
		TourImage:   req.TourImage,
		Rating:      req.Rating,
		Comment:     req.Comment,
		ReviewDate:  existing.ReviewDate,
	}
	sess.Reviews.Update(review)
	utils.WriteJSONResponse(w, http.StatusOK, dto.ReviewFromModel(review))
}

// remove deletes a review
// @Summary Delete review
// @Tags reviews
// @Produce json
// @Param id path string true "Review identifier"
// @Success 200 {object} dto.MessageResponse
// @Router /api/reviews/{id} [delete]
func (h *ReviewsHandler) remove(w http.ResponseWriter, sess *store.SessionState, id string) {
	if id == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "Review id is required")
		return
	}
	sess.Reviews.Remove(id)
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Review deleted"})
}

func validateReviewRequest(req dto.ReviewRequest) string {
	if strings.TrimSpace(req.TourTitle) == "" {
		return "tourTitle is required"
	}
	if req.Rating < 1 || req.Rating > 5 {
		return "rating must be between 1 and 5"
	}
	return ""
}

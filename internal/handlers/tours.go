package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"TOURSANDTRAVELS_BACK-END/internal/dto"
	"TOURSANDTRAVELS_BACK-END/internal/models"
	"TOURSANDTRAVELS_BACK-END/internal/reports"
	"TOURSANDTRAVELS_BACK-END/internal/store"
	"TOURSANDTRAVELS_BACK-END/internal/utils"
)

// ToursHandler manages the public catalog endpoints and the admin package
// management endpoints.
type ToursHandler struct {
	state *store.State
	log   *logrus.Logger
}

// NewToursHandler creates a new ToursHandler instance
func NewToursHandler(state *store.State, log *logrus.Logger) *ToursHandler {
	return &ToursHandler{state: state, log: log}
}

// Tours dispatches the public catalog routes: list with filters, or detail when
// the path carries an identifier.
func (h *ToursHandler) Tours(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if id := strings.TrimPrefix(r.URL.Path, "/api/tours/"); id != "" && id != r.URL.Path {
		h.detail(w, id)
		return
	}
	h.browse(w, r)
}

// browse lists tours with the browse-page filters
// @Summary Browse tours
// @Description List tours, optionally filtered by search query, category, and price band
// @Tags tours
// @Produce json
// @Param search query string false "Substring match on title/destination"
// @Param category query string false "Tour category"
// @Param price query string false "Price band: low, medium, high"
// @Success 200 {object} dto.TourListResponse
// @Router /api/tours [get]
func (h *ToursHandler) browse(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filtered := reports.FilterTours(
		h.state.Tours.List(),
		q.Get("search"),
		q.Get("category"),
		q.Get("price"),
	)
	utils.WriteJSONResponse(w, http.StatusOK, dto.TourListResponse{
		Tours: dto.ToursFromModels(filtered),
		Total: len(filtered),
	})
}

// detail returns one tour or the not-found fallback
// @Summary Tour detail
// @Tags tours
// @Produce json
// @Param id path string true "Tour identifier"
// @Success 200 {object} dto.TourResponse
// @Failure 404 {object} dto.ErrorResponse "Tour not found"
// @Router /api/tours/{id} [get]
func (h *ToursHandler) detail(w http.ResponseWriter, id string) {
	tour, ok := h.state.Tours.Get(id)
	if !ok {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Tour not found", "No tour with id "+id)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.TourFromModel(tour))
}

// Manage dispatches the admin package-management routes.
func (h *ToursHandler) Manage(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/tours/")
	if id == r.URL.Path {
		id = ""
	}

	switch r.Method {
	case http.MethodPost:
		h.create(w, r)
	case http.MethodGet:
		h.browse(w, r)
	case http.MethodPut, http.MethodPatch:
		h.update(w, r, id)
	case http.MethodDelete:
		h.remove(w, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// create adds a tour package
// @Summary Create tour package
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.TourRequest true "Tour payload"
// @Success 201 {object} dto.TourResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/admin/tours [post]
func (h *ToursHandler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.TourRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if msg := validateTourRequest(&req); msg != "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", msg)
		return
	}

	tour := tourFromRequest(req)
	tour.ID = uuid.NewString()
	tour.CreatedAt = time.Now()
	h.state.Tours.Add(tour)

	h.log.WithFields(logrus.Fields{"tour_id": tour.ID, "title": tour.Title}).Info("tour created")
	utils.WriteJSONResponse(w, http.StatusCreated, dto.TourFromModel(tour))
}

// update edits a tour package
// @Summary Update tour package
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Tour identifier"
// @Param request body dto.TourRequest true "Tour payload"
// @Success 200 {object} dto.TourResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/tours/{id} [put]
func (h *ToursHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	if id == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "Tour id is required")
		return
	}
	existing, ok := h.state.Tours.Get(id)
	if !ok {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Tour not found", "No tour with id "+id)
		return
	}

	var req dto.TourRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if msg := validateTourRequest(&req); msg != "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", msg)
		return
	}

	// Rating, review count and creation date are not editable.
	tour := tourFromRequest(req)
	tour.ID = existing.ID
	tour.Rating = existing.Rating
	tour.ReviewCount = existing.ReviewCount
	tour.CreatedAt = existing.CreatedAt
	h.state.Tours.Update(tour)

	utils.WriteJSONResponse(w, http.StatusOK, dto.TourFromModel(tour))
}

// remove deletes a tour package. Existing bookings and wishlist snapshots that
// reference it are left untouched.
// @Summary Delete tour package
// @Tags admin
// @Produce json
// @Param id path string true "Tour identifier"
// @Success 200 {object} dto.MessageResponse
// @Router /api/admin/tours/{id} [delete]
func (h *ToursHandler) remove(w http.ResponseWriter, id string) {
	if id == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "Tour id is required")
		return
	}
	h.state.Tours.Remove(id)
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Tour deleted"})
}

func validateTourRequest(req *dto.TourRequest) string {
	req.Title = strings.TrimSpace(req.Title)
	req.Destination = strings.TrimSpace(req.Destination)
	if req.Title == "" || req.Destination == "" {
		return "title and destination are required"
	}
	if req.Price < 0 {
		return "price must not be negative"
	}
	if req.Duration < 1 {
		return "duration must be at least 1 day"
	}
	if req.MaxGroupSize < 1 {
		return "maxGroupSize must be at least 1"
	}
	validCategory := false
	for _, c := range models.Categories {
		if req.Category == c {
			validCategory = true
			break
		}
	}
	if !validCategory {
		return "category must be one of Beach, Adventure, Cultural, Wildlife, City, Mountain"
	}
	switch req.Difficulty {
	case "", models.DifficultyEasy, models.DifficultyModerate, models.DifficultyDifficult:
		if req.Difficulty == "" {
			req.Difficulty = models.DifficultyEasy
		}
	default:
		return "difficulty must be easy, moderate, or difficult"
	}
	return ""
}

func tourFromRequest(req dto.TourRequest) models.Tour {
	return models.Tour{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Duration:     req.Duration,
		Destination:  req.Destination,
		Category:     req.Category,
		Image:        req.Image,
		Includes:     req.Includes,
		MaxGroupSize: req.MaxGroupSize,
		Difficulty:   req.Difficulty,
		IsActive:     req.IsActive,
	}
}

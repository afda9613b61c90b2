package handlers

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"TOURSANDTRAVELS_BACK-END/internal/dto"
	"TOURSANDTRAVELS_BACK-END/internal/store"
	"TOURSANDTRAVELS_BACK-END/internal/utils"
)

// UsersHandler manages the admin user-directory endpoints.
type UsersHandler struct {
	state *store.State
	log   *logrus.Logger
}

// NewUsersHandler creates a new UsersHandler instance
func NewUsersHandler(state *store.State, log *logrus.Logger) *UsersHandler {
	return &UsersHandler{state: state, log: log}
}

// Manage dispatches the admin user-directory routes.
func (h *UsersHandler) Manage(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/users/")
	if id == r.URL.Path {
		id = ""
	}

	switch r.Method {
	case http.MethodGet:
		h.list(w)
	case http.MethodPut, http.MethodPatch:
		h.update(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// list returns the directory with its counters
// @Summary List users
// @Tags admin
// @Produce json
// @Success 200 {object} dto.UserListResponse
// @Router /api/admin/users [get]
func (h *UsersHandler) list(w http.ResponseWriter) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.UserListResponse{
		Users:       dto.UsersFromModels(h.state.Users.List()),
		TotalUsers:  h.state.Users.TotalUsers(),
		ActiveUsers: h.state.Users.ActiveUsers(),
	})
}

// update edits a directory account; the seeded travel-history aggregates are
// not editable here.
// @Summary Update user
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User identifier"
// @Param request body dto.UpdateUserRequest true "Account fields"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/users/{id} [put]
func (h *UsersHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	if id == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "User id is required")
		return
	}
	user, ok := h.state.Users.Get(id)
	if !ok {
		utils.WriteErrorResponse(w, http.StatusNotFound, "User not found", "No user with id "+id)
		return
	}

	var req dto.UpdateUserRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	h.state.Users.Update(user)

	h.log.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("user updated")
	utils.WriteJSONResponse(w, http.StatusOK, dto.UserFromModel(user))
}

package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"TOURSANDTRAVELS_BACK-END/internal/apiclient"
	"TOURSANDTRAVELS_BACK-END/internal/dto"
	"TOURSANDTRAVELS_BACK-END/internal/middleware"
	"TOURSANDTRAVELS_BACK-END/internal/utils"
)

// ProfileHandler forwards profile updates to the upstream service with the
// session's bearer token.
type ProfileHandler struct {
	client *apiclient.Client
	log    *logrus.Logger
}

// NewProfileHandler creates a new ProfileHandler instance
func NewProfileHandler(client *apiclient.Client, log *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{client: client, log: log}
}

// Update forwards a profile update upstream
// @Summary Update profile
// @Description Forward the profile update upstream with the session's bearer token
// @Tags profile
// @Accept json
// @Produce json
// @Param request body dto.ProfileUpdateRequest true "Profile fields"
// @Success 200 {object} map[string]any "Upstream response"
// @Failure 401 {object} dto.ErrorResponse "No session token"
// @Router /api/auth/profile [put]
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.ProfileUpdateRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "No session")
		return
	}
	token := sess.Token()
	if token == "" {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "No session token")
		return
	}

	out, err := h.client.UpdateProfile(r.Context(), apiclient.ProfilePayload{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		AvatarURL:   req.AvatarURL,
	}, token)
	if err != nil {
		h.log.WithError(err).Warn("profile update failed")
		writeUpstreamError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, out)
}

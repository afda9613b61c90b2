package handlers

import (
	"net/http"

	"TOURSANDTRAVELS_BACK-END/internal/dto"
	"TOURSANDTRAVELS_BACK-END/internal/store"
	"TOURSANDTRAVELS_BACK-END/internal/utils"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	state *store.State
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(state *store.State) *HealthHandler {
	return &HealthHandler{state: state}
}

// Health reports overall service health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// Live reports process liveness
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /livez [get]
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "alive"})
}

// Ready reports readiness with the in-memory record counts
// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /readyz [get]
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{
		Status: "ready",
		Details: map[string]any{
			"tours":    h.state.Tours.Len(),
			"bookings": h.state.Bookings.Len(),
			"users":    h.state.Users.Len(),
			"sessions": h.state.Sessions.Len(),
		},
	})
}

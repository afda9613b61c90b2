package handlers

import (
	"errors"
	"net/http"

	"TOURSANDTRAVELS_BACK-END/internal/apiclient"
	"TOURSANDTRAVELS_BACK-END/internal/middleware"
	"TOURSANDTRAVELS_BACK-END/internal/store"
	"TOURSANDTRAVELS_BACK-END/internal/utils"
)

// writeUpstreamError converts an upstream client failure into a single
// human-readable error response. API errors keep their upstream status code;
// transport failures become a 502.
func writeUpstreamError(w http.ResponseWriter, err error) {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		utils.WriteErrorResponse(w, apiErr.StatusCode, "Upstream error", apiErr.Message)
		return
	}
	utils.WriteErrorResponse(w, http.StatusBadGateway, "Upstream unreachable", err.Error())
}

// stringField pulls a string out of a loosely typed upstream response body.
func stringField(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// sessionState resolves the request's per-session wishlist/review state. A
// missing session id means the route was mounted without the session resolver.
func sessionState(state *store.State, r *http.Request) (*store.SessionState, bool) {
	id, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		return nil, false
	}
	return state.Sessions.For(id), true
}

package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"TOURSANDTRAVELS_BACK-END/internal/apiclient"
	"TOURSANDTRAVELS_BACK-END/internal/dto"
	"TOURSANDTRAVELS_BACK-END/internal/middleware"
	"TOURSANDTRAVELS_BACK-END/internal/session"
	"TOURSANDTRAVELS_BACK-END/internal/store"
	"TOURSANDTRAVELS_BACK-END/internal/utils"
)

// AuthHandler proxies registration and login to the upstream auth service and
// maintains the browser session's claimed identity. Logout also discards the
// session's wishlist/review state.
type AuthHandler struct {
	client   *apiclient.Client
	sessions *session.Manager
	state    *store.State
	log      *logrus.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(client *apiclient.Client, sessions *session.Manager, state *store.State, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{client: client, sessions: sessions, state: state, log: log}
}

// Register handles user registration
// @Summary Register a new user
// @Description Validate the form locally, then forward the registration to the upstream auth service
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration data"
// @Success 201 {object} map[string]any "Upstream response"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 502 {object} dto.ErrorResponse "Upstream unreachable"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.RegisterRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	// Local validation happens before any network call.
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "First name, last name, and email are required")
		return
	}
	if req.Password == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Please enter password")
		return
	}
	if req.ConfirmPassword == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Please confirm password")
		return
	}
	if req.Password != req.ConfirmPassword {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "Passwords do not match")
		return
	}

	out, err := h.client.Register(r.Context(), apiclient.RegisterPayload{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		h.log.WithError(err).Warn("registration failed")
		writeUpstreamError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, out)
}

// Login handles user login
// @Summary Login user
// @Description Forward credentials upstream and establish the browser session from the response
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.SessionResponse "Session established"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.LoginRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Email and password are required")
		return
	}

	out, err := h.client.Login(r.Context(), apiclient.LoginPayload{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.log.WithError(err).Warn("login failed")
		writeUpstreamError(w, err)
		return
	}

	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Session error", "No session on request")
		return
	}

	// Write the identity keys from the upstream response, then re-apply the
	// all-keys-present gate: an incomplete response leaves the session
	// anonymous rather than half-identified.
	sess.Establish(
		stringField(out, "firstName"),
		stringField(out, "lastName"),
		stringField(out, "role"),
		stringField(out, "token"),
	)
	sess.Load()

	utils.WriteJSONResponse(w, http.StatusOK, sessionResponse(sess))
}

// Logout clears the session
// @Summary Logout
// @Tags authentication
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if sess, ok := middleware.SessionFromContext(r.Context()); ok {
		sess.Clear()
	}
	if id, ok := middleware.SessionIDFromContext(r.Context()); ok {
		h.sessions.Drop(id)
		h.state.Sessions.Drop(id)
	}
	http.SetCookie(w, &http.Cookie{
		Name:   middleware.SessionCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

// Session reports the session's claimed identity
// @Summary Current session
// @Tags authentication
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Router /api/session [get]
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		utils.WriteJSONResponse(w, http.StatusOK, dto.SessionResponse{})
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, sessionResponse(sess))
}

func sessionResponse(sess *session.Context) dto.SessionResponse {
	identity, ok := sess.Identity()
	if !ok {
		return dto.SessionResponse{}
	}
	return dto.SessionResponse{
		Identified: true,
		FirstName:  identity.FirstName,
		LastName:   identity.LastName,
		Role:       identity.Role,
	}
}

package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TOURSANDTRAVELS_BACK-END/internal/middleware"
	"TOURSANDTRAVELS_BACK-END/internal/models"
	"TOURSANDTRAVELS_BACK-END/internal/session"
)

func TestProfileHandler_RequiresToken(t *testing.T) {
	manager := session.NewManager()
	id := manager.NewID()
	manager.Context(id).Establish("Ada", "Lovelace", models.RoleUser, "")

	h := NewProfileHandler(nil, testLogger())
	handler := middleware.NewResolver(manager).WithSession(h.Update)

	req := httptest.NewRequest(http.MethodPut, "/api/auth/profile", strings.NewReader(`{"firstName":"Ada"}`))
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: id})
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "No session token")
}

func TestProfileHandler_ForwardsBearerToken(t *testing.T) {
	var gotAuth string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"updated"}`))
	}))
	defer srv.Close()

	manager := session.NewManager()
	id := manager.NewID()
	manager.Context(id).Establish("Ada", "Lovelace", models.RoleUser, "tok-42")

	h := NewProfileHandler(testClient(t, srv.URL), testLogger())
	handler := middleware.NewResolver(manager).WithSession(h.Update)

	req := httptest.NewRequest(http.MethodPut, "/api/auth/profile", strings.NewReader(`{"firstName":"Ada"}`))
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: id})
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer tok-42", gotAuth)
	assert.Empty(t, gotBody, "profile payload is not attached upstream")
}

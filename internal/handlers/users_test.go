package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TOURSANDTRAVELS_BACK-END/internal/dto"
)

func TestUsersHandler_ListWithCounters(t *testing.T) {
	h := NewUsersHandler(seededState(), testLogger())

	rec := httptest.NewRecorder()
	h.Manage(rec, httptest.NewRequest(http.MethodGet, "/api/admin/users", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var out dto.UserListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out.Users, 4)
	assert.Equal(t, 3, out.TotalUsers, "travelers only")
	assert.Equal(t, 3, out.ActiveUsers)
}

func TestUsersHandler_UpdatePreservesAggregates(t *testing.T) {
	state := seededState()
	h := NewUsersHandler(state, testLogger())

	body := `{"firstName":"Johnny","isActive":true}`
	rec := httptest.NewRecorder()
	h.Manage(rec, httptest.NewRequest(http.MethodPut, "/api/admin/users/user1", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	user, ok := state.Users.Get("user1")
	require.True(t, ok)
	assert.Equal(t, "Johnny", user.FirstName)
	assert.Equal(t, "Doe", user.LastName, "omitted fields keep their value")
	assert.Equal(t, 3, user.TotalBookings)
	assert.Equal(t, float64(4250), user.TotalSpent)
}

func TestUsersHandler_PartialUpdateKeepsActiveFlag(t *testing.T) {
	state := seededState()
	h := NewUsersHandler(state, testLogger())

	// No isActive in the body: the flag and the counter stay untouched.
	rec := httptest.NewRecorder()
	h.Manage(rec, httptest.NewRequest(http.MethodPut, "/api/admin/users/user1", strings.NewReader(`{"phone":"+1999999999"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	user, ok := state.Users.Get("user1")
	require.True(t, ok)
	assert.Equal(t, "+1999999999", user.Phone)
	assert.True(t, user.IsActive)
	assert.Equal(t, 3, state.Users.ActiveUsers())
}

func TestUsersHandler_DeactivateAdjustsCounter(t *testing.T) {
	state := seededState()
	h := NewUsersHandler(state, testLogger())

	rec := httptest.NewRecorder()
	h.Manage(rec, httptest.NewRequest(http.MethodPut, "/api/admin/users/user2", strings.NewReader(`{"isActive":false}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, state.Users.ActiveUsers())
	assert.Equal(t, 3, state.Users.TotalUsers())
}

func TestUsersHandler_UpdateUnknown(t *testing.T) {
	h := NewUsersHandler(seededState(), testLogger())

	rec := httptest.NewRecorder()
	h.Manage(rec, httptest.NewRequest(http.MethodPut, "/api/admin/users/nope", strings.NewReader(`{"isActive":true}`)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

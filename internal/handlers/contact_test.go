package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"TOURSANDTRAVELS_BACK-END/internal/config"
	"TOURSANDTRAVELS_BACK-END/internal/utils"
)

func TestContactHandler_Validation(t *testing.T) {
	h := NewContactHandler(utils.NewEmailService(&config.EmailConfig{}), false, testLogger())

	rec := httptest.NewRecorder()
	h.Contact(rec, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":"","email":"a@b.c","message":"hi"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactHandler_AcceptsWithoutMailer(t *testing.T) {
	h := NewContactHandler(utils.NewEmailService(&config.EmailConfig{}), false, testLogger())

	body := `{"name":"Ada","email":"ada@example.com","subject":"Question","message":"When is the next departure?"}`
	rec := httptest.NewRecorder()
	h.Contact(rec, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Message received")
}

func TestContactHandler_SendFailure(t *testing.T) {
	// Configured mailer pointing at nothing: delivery fails with a 500.
	cfg := &config.EmailConfig{
		SMTPHost:     "127.0.0.1",
		SMTPPort:     "1",
		SMTPUsername: "user",
		SMTPPassword: "pass",
		FromEmail:    "noreply@example.com",
		ContactEmail: "support@example.com",
	}
	h := NewContactHandler(utils.NewEmailService(cfg), true, testLogger())

	body := `{"name":"Ada","email":"ada@example.com","message":"hello"}`
	rec := httptest.NewRecorder()
	h.Contact(rec, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"TOURSANDTRAVELS_BACK-END/internal/dto"
	"TOURSANDTRAVELS_BACK-END/internal/utils"
)

// ContactHandler forwards contact-us submissions to the operator inbox.
type ContactHandler struct {
	mailer          *utils.EmailService
	emailConfigured bool
	log             *logrus.Logger
}

// NewContactHandler creates a new ContactHandler instance
func NewContactHandler(mailer *utils.EmailService, emailConfigured bool, log *logrus.Logger) *ContactHandler {
	return &ContactHandler{mailer: mailer, emailConfigured: emailConfigured, log: log}
}

// Contact accepts a contact-us submission
// @Summary Contact us
// @Description Validates the form and emails it to the support inbox
// @Tags contact
// @Accept json
// @Produce json
// @Param request body dto.ContactRequest true "Contact form"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/contact [post]
func (h *ContactHandler) Contact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.ContactRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "name, email and message are required")
		return
	}

	if !h.emailConfigured {
		// Accept the submission even without SMTP so the form keeps working in
		// local setups.
		h.log.WithFields(logrus.Fields{"from": req.Email}).Warn("email not configured, contact message logged only")
		utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Message received"})
		return
	}

	if err := h.mailer.SendContactMessage(req.Name, req.Email, req.Subject, req.Message); err != nil {
		h.log.WithError(err).Error("failed to send contact message")
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Delivery failed", "Could not send your message, please try again later")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Message sent"})
}

package handler

import (
	"fmt"
	"html"
	"log"
	"net/http"
	"strings"

	"github.com/autoreport/backend/pkg/mail"
	"github.com/go-playground/validator/v10"
)

// ContactHandler relays validated contact-form payloads to email.
type ContactHandler struct {
	sender   mail.Sender
	receiver string
	validate *validator.Validate
}

// NewContactHandler creates a new ContactHandler. sender may be nil when
// SMTP credentials are not configured; sends then fail with a transport error.
func NewContactHandler(sender mail.Sender, receiver string) *ContactHandler {
	return &ContactHandler{
		sender:   sender,
		receiver: receiver,
		validate: validator.New(),
	}
}

// contactRequest is a contact form submission. Phone is optional.
type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required"`
}

// Send handles POST /api/send-email.
func (h *ContactHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := DecodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		JSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": "Name, email, and message are required.",
		})
		return
	}

	if h.sender == nil {
		JSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"message": "Cannot connect to SMTP server.",
		})
		return
	}

	msg := mail.Message{
		To:      h.receiver,
		ReplyTo: req.Email,
		Subject: "New Contact Form: " + req.Name,
		HTML:    contactHTML(req),
		Text:    contactText(req),
	}

	result, err := h.sender.Send(r.Context(), msg)
	if err != nil {
		log.Printf("contact relay failed: %v", err)
		JSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"message": mail.ClassifyError(err),
		})
		return
	}

	log.Printf("contact email sent: %s", result.MessageID)
	JSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"message":   "Email sent successfully!",
		"messageId": result.MessageID,
	})
}

func contactHTML(req contactRequest) string {
	phone := req.Phone
	if phone == "" {
		phone = "Not provided"
	}
	message := strings.ReplaceAll(html.EscapeString(req.Message), "\n", "<br>")
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; padding: 20px;">
  <h2 style="color: #333;">📧 New Contact Form Submission</h2>
  <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>👤 Name:</strong> %s</p>
    <p><strong>📧 Email:</strong> <a href="mailto:%s">%s</a></p>
    <p><strong>📞 Phone:</strong> %s</p>
    <p><strong>💬 Message:</strong></p>
    <div style="background: white; padding: 15px; border-radius: 5px; border-left: 4px solid #007bff;">
      %s
    </div>
  </div>
  <p style="color: #666; font-size: 12px; margin-top: 20px;">
    Sent from your website contact form
  </p>
</div>`,
		html.EscapeString(req.Name),
		html.EscapeString(req.Email), html.EscapeString(req.Email),
		html.EscapeString(phone),
		message,
	)
}

func contactText(req contactRequest) string {
	phone := req.Phone
	if phone == "" {
		phone = "Not provided"
	}
	return fmt.Sprintf("New Contact Form Submission\n\nName: %s\nEmail: %s\nPhone: %s\nMessage: %s\n\nSent from your website contact form.",
		req.Name, req.Email, phone, req.Message)
}

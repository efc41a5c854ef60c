package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/autoreport/backend/pkg/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSender records the last message and returns a canned result or error.
type fakeSender struct {
	last mail.Message
	err  error
}

func (f *fakeSender) Send(ctx context.Context, msg mail.Message) (mail.SendResult, error) {
	f.last = msg
	if f.err != nil {
		return mail.SendResult{}, f.err
	}
	return mail.SendResult{MessageID: "smtp-12345", SentAt: time.Now()}, nil
}

func postContact(t *testing.T, h *ContactHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/send-email", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Send(rec, req)
	return rec
}

func TestContactSendSuccess(t *testing.T) {
	sender := &fakeSender{}
	h := NewContactHandler(sender, "owner@autoreport.com")

	rec := postContact(t, h, `{"name":"Jane Doe","email":"jane@example.com","phone":"555-0100","message":"Is the report instant?"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "smtp-12345", resp["messageId"])

	assert.Equal(t, "owner@autoreport.com", sender.last.To)
	assert.Equal(t, "jane@example.com", sender.last.ReplyTo)
	assert.Equal(t, "New Contact Form: Jane Doe", sender.last.Subject)
	assert.Contains(t, sender.last.HTML, "Is the report instant?")
}

func TestContactSendMissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"jane@example.com","message":"hi"}`},
		{"missing email", `{"name":"Jane","message":"hi"}`},
		{"missing message", `{"name":"Jane","email":"jane@example.com"}`},
		{"empty body", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{}
			h := NewContactHandler(sender, "owner@autoreport.com")
			rec := postContact(t, h, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "Name, email, and message are required.")
			assert.Empty(t, sender.last.To, "nothing should be sent")
		})
	}
}

func TestContactSendPhoneOptional(t *testing.T) {
	sender := &fakeSender{}
	h := NewContactHandler(sender, "owner@autoreport.com")

	rec := postContact(t, h, `{"name":"Jane","email":"jane@example.com","message":"hi"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, sender.last.HTML, "Not provided")
}

func TestContactSendTransportFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("dial tcp: connection refused")}
	h := NewContactHandler(sender, "owner@autoreport.com")

	rec := postContact(t, h, `{"name":"Jane","email":"jane@example.com","message":"hi"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Cannot connect to SMTP server.", resp["message"])
}

func TestContactSendAuthFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp send failed: 535 5.7.8 authentication failed")}
	h := NewContactHandler(sender, "owner@autoreport.com")

	rec := postContact(t, h, `{"name":"Jane","email":"jane@example.com","message":"hi"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authentication failed")
}

func TestContactSendWithoutSender(t *testing.T) {
	h := NewContactHandler(nil, "owner@autoreport.com")
	rec := postContact(t, h, `{"name":"Jane","email":"jane@example.com","message":"hi"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SMTP")
}

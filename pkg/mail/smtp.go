// Package mail sends outbound email over SMTP.
package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"
)

// Message is a single outbound email.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// SendResult reports a successful delivery.
type SendResult struct {
	MessageID string
	SentAt    time.Time
}

// Sender delivers messages.
type Sender interface {
	Send(ctx context.Context, msg Message) (SendResult, error)
}

// SMTPSender sends mail through a configured SMTP relay with PLAIN auth.
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
}

// NewSMTPSender builds a sender from SMTP credentials.
func NewSMTPSender(host, port, username, password string) (*SMTPSender, error) {
	if host == "" {
		return nil, fmt.Errorf("smtp host not set")
	}
	if port == "" {
		return nil, fmt.Errorf("smtp port not set")
	}
	if username == "" {
		return nil, fmt.Errorf("smtp user not set")
	}
	if password == "" {
		return nil, fmt.Errorf("smtp password not set")
	}
	return &SMTPSender{host: host, port: port, username: username, password: password}, nil
}

// Send delivers the message. The returned MessageID is generated locally.
func (s *SMTPSender) Send(ctx context.Context, msg Message) (SendResult, error) {
	addr := net.JoinHostPort(s.host, s.port)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	var b strings.Builder
	b.WriteString("From: " + s.username + "\r\n")
	b.WriteString("To: " + msg.To + "\r\n")
	if msg.ReplyTo != "" {
		b.WriteString("Reply-To: " + msg.ReplyTo + "\r\n")
	}
	b.WriteString("Subject: " + msg.Subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	if msg.HTML != "" {
		b.WriteString(msg.HTML)
	} else {
		b.WriteString(msg.Text)
	}

	if err := smtp.SendMail(addr, auth, s.username, []string{msg.To}, []byte(b.String())); err != nil {
		return SendResult{}, fmt.Errorf("smtp send failed: %w", err)
	}

	return SendResult{
		MessageID: fmt.Sprintf("smtp-%d", time.Now().UnixNano()),
		SentAt:    time.Now(),
	}, nil
}

// ClassifyError maps a send failure to a user-presentable message.
func ClassifyError(err error) string {
	if err == nil {
		return ""
	}
	s := err.Error()
	switch {
	case strings.Contains(s, "535") || strings.Contains(strings.ToLower(s), "auth"):
		return "Authentication failed. Check your email and password."
	case strings.Contains(strings.ToLower(s), "connection") || strings.Contains(strings.ToLower(s), "dial"):
		return "Cannot connect to SMTP server."
	case strings.Contains(s, "553") || strings.Contains(strings.ToLower(s), "address"):
		return "Invalid email address."
	default:
		return "Failed to send email."
	}
}

package handler

import (
	"net/http"

	"github.com/autoreport/backend/internal/config"
)

// HealthHandler handles the liveness endpoint.
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Check handles GET /api/health. It reports whether outbound mail
// credentials are configured; it never fails.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	user := "Missing"
	if h.cfg.SMTPUser != "" && h.cfg.SMTPPass != "" {
		user = "Configured"
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"status": "OK",
		"smtp": map[string]string{
			"host":     h.cfg.SMTPHost,
			"port":     h.cfg.SMTPPort,
			"user":     user,
			"receiver": h.cfg.ReceiverEmail,
		},
	})
}

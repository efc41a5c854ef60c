package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/autoreport/backend/internal/config"
	"github.com/autoreport/backend/internal/handler"
	appMiddleware "github.com/autoreport/backend/internal/middleware"
	"github.com/autoreport/backend/internal/report"
	"github.com/autoreport/backend/internal/service"
	"github.com/autoreport/backend/internal/ws"
	"github.com/autoreport/backend/pkg/geoip"
	"github.com/autoreport/backend/pkg/mail"
	"github.com/autoreport/backend/pkg/payment"
	"github.com/autoreport/backend/pkg/vpic"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if present (for local development)
	_ = godotenv.Load()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	// Outbound clients
	decoder := vpic.NewClient(cfg.VPICBaseURL)
	geo := geoip.NewClient(cfg.GeoBaseURL)

	// SMTP relay is optional: without credentials the contact endpoint
	// reports the failure instead of the process refusing to start.
	var sender mail.Sender
	if s, err := mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass); err != nil {
		log.Printf("⚠️  SMTP not configured: %v (contact relay disabled)", err)
	} else {
		sender = s
		log.Printf("✅ SMTP: %s → %s", cfg.SMTPUser, cfg.ReceiverEmail)
	}

	// Initialize services
	vehicleSvc := service.NewVehicleService(decoder)
	flows := report.NewRegistry(vehicleSvc, report.DefaultTimings())
	gateway := payment.NewSimulatedGateway(0)
	invoiceSvc := service.NewInvoiceService()
	checkoutSvc := service.NewCheckoutService(flows, gateway, invoiceSvc)

	// Initialize handlers
	reportsHandler := handler.NewReportsHandler(flows)
	plansHandler := handler.NewPlansHandler(geo)
	checkoutHandler := handler.NewCheckoutHandler(checkoutSvc, invoiceSvc)
	contactHandler := handler.NewContactHandler(sender, cfg.ReceiverEmail)
	healthHandler := handler.NewHealthHandler(cfg)
	streamHandler := ws.NewStreamHandler(flows)

	// Build router
	r := chi.NewRouter()

	// Global middleware
	r.Use(appMiddleware.Recovery)
	r.Use(appMiddleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Global rate limiter (20 req/sec per IP, burst of 40)
	globalRL := appMiddleware.NewRateLimiter(20, 40)
	r.Use(globalRL.Middleware())

	// Public API
	r.Get("/api/health", healthHandler.Check)
	r.Get("/api/plans", plansHandler.List)

	r.Post("/api/reports", reportsHandler.Create)
	r.Get("/api/reports/{id}", reportsHandler.Get)

	r.Post("/api/checkout", checkoutHandler.Create)
	r.Get("/api/invoices/{order}/pdf", checkoutHandler.Export)

	// Contact relay gets the strict limiter
	r.Group(func(r chi.Router) {
		r.Use(appMiddleware.StrictRateLimiter())
		r.Post("/api/send-email", contactHandler.Send)
	})

	// WebSocket progress stream
	r.Get("/reports/{id}/stream", streamHandler.Handle)

	// Start server
	addr := fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	server := &http.Server{
		Addr:        addr,
		Handler:     r,
		ReadTimeout: 30 * time.Second,
		// WriteTimeout must be 0 for WebSocket connections (they are long-lived)
		IdleTimeout: 120 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		log.Println("🛑 Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("🚀 AutoReport Backend (Go) listening at http://%s", addr)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("❌ Server error: %v", err)
	}
}

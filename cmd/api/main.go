// Command api serves the Gotham AI website backend.
//
//	@title						Gotham AI API
//	@version					1.0
//	@description				Contact form, events and learning resources for the Gotham AI club website.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the admin token.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"gothamai/config"
	_ "gothamai/docs"
	"gothamai/internal/adapters/auth"
	"gothamai/internal/adapters/email"
	"gothamai/internal/adapters/ratelimit"
	deliveryhttp "gothamai/internal/delivery/http"
	"gothamai/internal/delivery/http/controllers"
	"gothamai/internal/delivery/http/helpers"
	"gothamai/internal/domain"
	"gothamai/internal/services"
	"gothamai/internal/store"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger(cfg.Environment, cfg.LogLevel)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			logger.Error("close store", "error", err)
		}
	}()
	logger.Info("database connected", "driver", st.Driver)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Mail.Provider,
		FromAddress: cfg.Mail.FromAddress,
		FromName:    cfg.Mail.FromName,
		SES: email.SESConfig{
			Region:             cfg.Mail.SESRegion,
			AccessKeyID:        cfg.Mail.SESAccessKeyID,
			SecretAccessKey:    cfg.Mail.SESSecretAccessKey,
			InsecureSkipVerify: cfg.Mail.SESInsecureSkipVerify,
		},
		SMTP: email.SMTPConfig{
			Host:     cfg.Mail.SMTPHost,
			Port:     cfg.Mail.SMTPPort,
			Username: cfg.Mail.SMTPUsername,
			Password: cfg.Mail.SMTPPassword,
		},
	}, logger)
	if err != nil {
		return fmt.Errorf("create mailer: %w", err)
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return fmt.Errorf("load email templates: %w", err)
	}
	notifier := services.NewContactNotifier(
		services.NewEmailService(mailer, renderer, logger),
		services.NotifierConfig{AdminEmail: cfg.Mail.AdminEmail, SiteURL: cfg.SiteURL()},
		logger,
	)

	contactSvc := services.NewContactService(st.Contacts, notifier, logger, cfg.RequestTimeout)
	eventSvc := services.NewEventService(st.Events, logger, cfg.RequestTimeout)
	resourceSvc := services.NewResourceService(st.Resources, logger, cfg.RequestTimeout)

	limiter, closeLimiter, err := contactLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}
	defer closeLimiter()

	var verifier domain.TokenVerifier
	if cfg.AdminTokenSecret != "" {
		verifier = auth.NewJWT(cfg.AdminTokenSecret)
	} else {
		logger.Warn("ADMIN_TOKEN_SECRET not set, admin routes are unauthenticated")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	errs := helpers.ErrorWriter{Logger: logger, ExposeInternal: !cfg.IsProduction()}
	router := deliveryhttp.NewRouter(deliveryhttp.RouterConfig{
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins(),
		Contacts:       controllers.NewContactController(logger, contactSvc, errs),
		Events:         controllers.NewEventController(logger, eventSvc, errs),
		Resources:      controllers.NewResourceController(logger, resourceSvc, errs),
		Health:         controllers.NewHealthController(logger, st.Health, cfg.Environment),
		ContactLimiter: limiter,
		ContactLimit:   cfg.RateLimit.ContactLimit,
		AdminVerifier:  verifier,
		Registry:       registry,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
	if err := notifier.Shutdown(shutdownCtx); err != nil {
		logger.Warn("pending contact emails abandoned", "error", err)
	}
	return nil
}

// contactLimiter shares the quota through Redis when REDIS_URL is set and
// keeps it in process otherwise.
func contactLimiter(cfg config.RateLimit) (domain.RateLimiter, func(), error) {
	if cfg.RedisURL == "" {
		return ratelimit.NewMemory(cfg.ContactLimit, cfg.ContactWindow), func() {}, nil
	}
	client, err := ratelimit.NewRedisClient(cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	limiter := ratelimit.NewRedis(client, "gothamai:contact:", cfg.ContactLimit, cfg.ContactWindow)
	return limiter, func() { _ = client.Close() }, nil
}

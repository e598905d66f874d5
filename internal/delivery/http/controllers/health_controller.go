package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"gothamai/internal/delivery/http/helpers"
	"gothamai/internal/domain"
)

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Success     bool      `json:"success" example:"true"`
	Message     string    `json:"message" example:"Server is running"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment" example:"development"`
	Database    string    `json:"database" enums:"connected,disconnected"`
}

type HealthController struct {
	Logger      *slog.Logger
	Store       domain.HealthChecker
	Environment string
	// PingTimeout bounds the store check.
	PingTimeout time.Duration
	now         func() time.Time
}

func NewHealthController(logger *slog.Logger, store domain.HealthChecker, environment string) *HealthController {
	return &HealthController{
		Logger:      logger,
		Store:       store,
		Environment: environment,
		PingTimeout: 2 * time.Second,
		now:         time.Now,
	}
}

// Health godoc
// @Summary Liveness and store connectivity
// @Description Always 200 while the process serves requests; database reports whether the store answered a ping.
// @Tags health
// @Produce json
// @Success 200 {object} controllers.HealthResponse
// @Router /health [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	database := "connected"
	ctx, cancel := context.WithTimeout(r.Context(), c.PingTimeout)
	defer cancel()
	if err := c.Store.Ping(ctx); err != nil {
		c.Logger.WarnContext(r.Context(), "store ping failed", "err", err)
		database = "disconnected"
	}
	helpers.WriteJSON(w, http.StatusOK, HealthResponse{
		Success:     true,
		Message:     "Server is running",
		Timestamp:   c.now().UTC(),
		Environment: c.Environment,
		Database:    database,
	})
}

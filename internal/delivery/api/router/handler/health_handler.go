package handler

import (
	"context"
	"net/http"
	"time"

	"pantry/config"
	"pantry/internal/delivery/api/response"
	"pantry/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const statusPingTimeout = 2 * time.Second

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	DB     *gorm.DB
	Config *config.Config
}

// HealthHandler reports liveness and readiness of the service
type HealthHandler struct {
	db        *gorm.DB
	cfg       *config.Config
	startedAt time.Time
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		db:        params.DB,
		cfg:       params.Config,
		startedAt: time.Now(),
	}
}

// StatusResponse describes the running service and its database
type StatusResponse struct {
	Service  string `json:"service"`
	Env      string `json:"env"`
	Database string `json:"database"`
	Uptime   string `json:"uptime"`
}

// HealthCheck is a simple handler to check if the service is up.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// Status reports service metadata and whether the primary database answers.
func (h *HealthHandler) Status(c echo.Context) error {
	status := StatusResponse{
		Service:  h.cfg.Env.ServiceName,
		Env:      h.cfg.Env.Env,
		Database: "up",
		Uptime:   util.FormatDuration(time.Since(h.startedAt)),
	}

	code := http.StatusOK
	if err := h.pingDB(c.Request().Context()); err != nil {
		status.Database = "down"
		code = http.StatusServiceUnavailable
	}

	return response.Success(c, code, status)
}

func (h *HealthHandler) pingDB(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, statusPingTimeout)
	defer cancel()

	return sqlDB.PingContext(ctx)
}

// Package handler contains the worker's HTTP handlers.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"pindrop/config"
	deliverycontext "pindrop/internal/delivery/context"
	"pindrop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReapHandler triggers retention sweeps, either from the periodic ticker or
// from an explicit HTTP push.
type ReapHandler struct {
	reaperUC usecase.ReaperUsecase
	interval time.Duration
	logger   *slog.Logger
}

// ReapHandlerParams holds dependencies for ReapHandler, injected by Fx.
type ReapHandlerParams struct {
	fx.In

	ReaperUC usecase.ReaperUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// NewReapHandler creates a new ReapHandler instance
func NewReapHandler(params ReapHandlerParams) *ReapHandler {
	interval := config.DefaultReaperInterval
	if params.Config.Reaper != nil && params.Config.Reaper.Interval > 0 {
		interval = params.Config.Reaper.Interval
	}

	return &ReapHandler{
		reaperUC: params.ReaperUC,
		interval: interval,
		logger:   params.Logger,
	}
}

// SweepResponse reports the outcome of a sweep.
type SweepResponse struct {
	Deleted int64 `json:"deleted"`
}

// HandleSweep runs one sweep on demand.
func (h *ReapHandler) HandleSweep(c echo.Context) error {
	deleted, err := h.reaperUC.Sweep(c.Request().Context())
	if err != nil {
		h.logger.Error("On-demand sweep failed",
			slog.Any("error", err),
		)

		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "sweep failed"})
	}

	return c.JSON(http.StatusOK, SweepResponse{Deleted: deleted})
}

// RunPeriodic sweeps on the configured interval until the context is
// canceled. Errors are logged and the ticker keeps going; a failed sweep
// just leaves work for the next one.
func (h *ReapHandler) RunPeriodic(ctx context.Context) {
	h.logger.Info("Starting periodic reaper",
		slog.Duration("interval", h.interval),
	)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info("Stopping periodic reaper")

			return
		case <-ticker.C:
			sweepCtx := deliverycontext.WithRequestID(ctx, uuid.New().String())
			if _, err := h.reaperUC.Sweep(sweepCtx); err != nil {
				h.logger.Error("Periodic sweep failed",
					slog.Any("error", err),
				)
			}
		}
	}
}

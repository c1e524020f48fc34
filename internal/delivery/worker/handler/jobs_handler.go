// Package handler contains the HTTP handlers of the worker server.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "graze/internal/delivery/context"
	"graze/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// JobsHandler exposes on-demand triggers for the background jobs, mostly for
// operations and backfills. The scheduler drives the same use cases on
// cadence; the store-level conditional updates keep a manual trigger racing a
// scheduled run harmless.
type JobsHandler struct {
	logger     *slog.Logger
	activation usecase.ActivationUsecase
	quality    usecase.QualityUsecase
}

// JobsHandlerParams holds dependencies for the JobsHandler
type JobsHandlerParams struct {
	fx.In

	Logger     *slog.Logger
	Activation usecase.ActivationUsecase
	Quality    usecase.QualityUsecase
}

// NewJobsHandler creates a new jobs handler
func NewJobsHandler(params JobsHandlerParams) *JobsHandler {
	return &JobsHandler{
		logger:     params.Logger,
		activation: params.Activation,
		quality:    params.Quality,
	}
}

// RunActivation triggers one activation tick.
func (h *JobsHandler) RunActivation(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	summary, err := h.activation.RunTick(ctx)
	if err != nil {
		logger.Error("Manual activation tick failed", slog.Any("error", err))

		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "activation tick failed"})
	}

	return c.JSON(http.StatusOK, summary)
}

// RunQuality triggers a full quality recompute.
func (h *JobsHandler) RunQuality(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	summary, err := h.quality.RunAll(ctx)
	if err != nil {
		logger.Error("Manual quality run failed", slog.Any("error", err))

		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "quality run failed"})
	}

	return c.JSON(http.StatusOK, summary)
}

// RunQualityForVendor triggers scoring for a single vendor.
func (h *JobsHandler) RunQualityForVendor(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	vendorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid vendor id"})
	}

	metrics, err := h.quality.RunForVendor(ctx, vendorID)
	if err != nil {
		logger.Error("Manual vendor scoring failed",
			slog.Int64("vendor_id", vendorID),
			slog.Any("error", err),
		)

		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "vendor scoring failed"})
	}

	return c.JSON(http.StatusOK, metrics)
}

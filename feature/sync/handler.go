package sync

import (
	"errors"

	"market-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the sync service over HTTP.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/healthz", h.HandleHealth)
	app.Get("/status", h.HandleStatus)
	group := app.Group("/sync")
	group.Post("/run", h.HandleRun)
}

// HandleHealth reports process liveness.
// @Summary Health Check
// @Description Returns 200 while the process is up.
// @Tags ops
// @Produce json
// @Success 200 {object} map[string]string "Status"
// @Router /healthz [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandleStatus reports the sync service state.
// @Summary Sync Status
// @Description Returns whether a run is active and the last finished run report.
// @Tags sync
// @Produce json
// @Success 200 {object} map[string]interface{} "Status"
// @Router /status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	running, last := h.service.Status()

	resp := fiber.Map{
		"running":   running,
		"campaigns": len(h.service.Campaigns()),
	}
	if last != nil {
		resp["last_run"] = last
	}
	return c.JSON(resp)
}

// HandleRun triggers a sync run.
// @Summary Run Sync
// @Description Executes one full reconciliation+upload cycle across all configured campaigns. Returns the run report.
// @Tags sync
// @Accept json
// @Produce json
// @Success 200 {object} RunReport "Run Report"
// @Failure 409 {object} map[string]string "Run Already In Progress"
// @Failure 500 {object} map[string]interface{} "Run Failed"
// @Router /sync/run [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	l.Info("Manual sync run triggered")

	report, err := h.service.Run(c.Context(), RunOptions{})
	if errors.Is(err, ErrAlreadyRunning) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Manual sync run failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":  err.Error(),
			"report": report,
		})
	}
	return c.JSON(report)
}

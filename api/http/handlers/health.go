package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/jobseeker/api/http/presenter"
	"github.com/artem13815/jobseeker/pkg/health"
)

const readyTimeout = 3 * time.Second

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	svc     health.ReadinessUseCase
	started time.Time
}

func NewHealthHandler(svc health.ReadinessUseCase) *HealthHandler {
	return &HealthHandler{svc: svc, started: time.Now()}
}

type LivenessResponse struct {
	Status string `json:"status" example:"ok"`
	Uptime string `json:"uptime" example:"1h2m3s"`
}

type ReadinessResponse struct {
	Status string          `json:"status" example:"ready"`
	Checks []health.Status `json:"checks"`
}

// Health: процесс жив, зависимости не проверяются.
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} LivenessResponse
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, LivenessResponse{
		Status: "ok",
		Uptime: time.Since(h.started).Truncate(time.Second).String(),
	})
}

// Ready reports every dependency: postgres and, when configured, object
// storage and the broker.
// @Summary Readiness probe
// @Tags    health
// @Produce json
// @Success 200 {object} ReadinessResponse
// @Failure 503 {object} ReadinessResponse
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), readyTimeout)
	defer cancel()

	rep := h.svc.Check(ctx)
	if !rep.Ready {
		return presenter.JSON(c, http.StatusServiceUnavailable, ReadinessResponse{Status: "not_ready", Checks: rep.Checks})
	}
	return presenter.JSON(c, http.StatusOK, ReadinessResponse{Status: "ready", Checks: rep.Checks})
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/jobseeker/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
// authMW may be nil, then ingest and profile routes are open.
func Register(app *fiber.App, health *handlers.HealthHandler, ingest *handlers.IngestHandler, jobseekers *handlers.JobseekersHandler, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	protected := []fiber.Handler{}
	if authMW != nil {
		protected = append(protected, authMW)
	}

	rg := v1.Group("/resume", protected...)
	rg.Post("/ingest", ingest.Ingest)

	js := v1.Group("/jobseekers", protected...)
	js.Get("/", jobseekers.List)
	js.Get("/:id", jobseekers.Get)
}

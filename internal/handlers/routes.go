package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Candidates *CandidateHandler
	Jobs       *JobHandler
	Matches    *MatchHandler
}

// RegisterRoutes mounts the API under router. The skills facet is
// registered before /candidates/:id so it is not read as an id.
func RegisterRoutes(router fiber.Router, h Handlers) {
	api := router.Group("/api/v1", Identity())

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	candidates := api.Group("/candidates")
	candidates.Get("/", h.Candidates.HandleList)
	candidates.Post("/", h.Candidates.HandleCreate)
	candidates.Get("/skills", h.Candidates.HandleSkills)
	candidates.Get("/:id", h.Candidates.HandleGet)
	candidates.Patch("/:id", h.Candidates.HandleUpdate)
	candidates.Post("/:id/resume", h.Candidates.HandleUploadResume)

	jobs := api.Group("/jobs")
	jobs.Get("/", h.Jobs.HandleList)
	jobs.Post("/", h.Jobs.HandleCreate)
	jobs.Get("/:id", h.Jobs.HandleGet)
	jobs.Patch("/:id", h.Jobs.HandleUpdate)

	matches := api.Group("/matches")
	matches.Get("/find", h.Matches.HandleFind)
	matches.Get("/", h.Matches.HandleList)
	matches.Post("/", h.Matches.HandleCreate)
	matches.Get("/:id", h.Matches.HandleGet)
	matches.Patch("/:id/status", h.Matches.HandleUpdateStatus)

	api.Get("/stats", h.Matches.HandleStats)
}

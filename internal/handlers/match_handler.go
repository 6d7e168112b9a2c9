package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/talent-matcher/internal/models"
	"alfredoptarigan/talent-matcher/internal/services"
)

type MatchHandler struct {
	matchService services.MatchService
}

func NewMatchHandler(matchService services.MatchService) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
	}
}

// HandleFind handles GET /matches/find
func (h *MatchHandler) HandleFind(c *fiber.Ctx) error {
	candidateID, err := optionalID(c, "candidate_id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	jobID, err := optionalID(c, "job_id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	results, err := h.matchService.FindMatches(c.UserContext(), services.Anchor{
		CandidateID: candidateID,
		JobID:       jobID,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(results)
}

// HandleCreate handles POST /matches
func (h *MatchHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateMatchRequest

	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	candidateID, err := uuid.Parse(req.CandidateID)
	if err != nil {
		return badRequest(c, "Invalid candidate_id format")
	}

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return badRequest(c, "Invalid job_id format")
	}

	match, err := h.matchService.Create(c.UserContext(), currentUser(c), services.NewMatch{
		CandidateID:  candidateID,
		JobID:        jobID,
		MatchScore:   req.MatchScore,
		SkillMatches: req.SkillMatches,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(match)
}

// HandleList handles GET /matches
func (h *MatchHandler) HandleList(c *fiber.Ctx) error {
	candidateID, err := optionalID(c, "candidate_id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	jobID, err := optionalID(c, "job_id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	matches, err := h.matchService.List(c.UserContext(), services.MatchQuery{
		CandidateID: candidateID,
		JobID:       jobID,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(matches)
}

// HandleGet handles GET /matches/:id
func (h *MatchHandler) HandleGet(c *fiber.Ctx) error {
	id, err := parseID(c, "match")
	if err != nil {
		return badRequest(c, err.Error())
	}

	match, err := h.matchService.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(match)
}

// HandleUpdateStatus handles PATCH /matches/:id/status
func (h *MatchHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "match")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req models.UpdateMatchStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	status, err := models.ParseMatchStatus(req.Status)
	if err != nil {
		return badRequest(c, err.Error())
	}

	match, err := h.matchService.UpdateStatus(c.UserContext(), currentUser(c), id, status)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(match)
}

// HandleStats handles GET /stats
func (h *MatchHandler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.matchService.Stats(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(stats)
}

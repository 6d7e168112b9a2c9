package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/talent-matcher/internal/models"
	"alfredoptarigan/talent-matcher/internal/services"
)

type CandidateHandler struct {
	candidateService services.CandidateService
	maxFileSize      int64
}

func NewCandidateHandler(candidateService services.CandidateService, maxFileSize int64) *CandidateHandler {
	return &CandidateHandler{
		candidateService: candidateService,
		maxFileSize:      maxFileSize,
	}
}

// HandleList handles GET /candidates
func (h *CandidateHandler) HandleList(c *fiber.Ctx) error {
	criteria, err := candidateCriteria(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	candidates, err := h.candidateService.List(c.UserContext(), criteria)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(candidates)
}

// HandleSkills handles GET /candidates/skills
func (h *CandidateHandler) HandleSkills(c *fiber.Ctx) error {
	skills, err := h.candidateService.Skills(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(skills)
}

// HandleGet handles GET /candidates/:id
func (h *CandidateHandler) HandleGet(c *fiber.Ctx) error {
	id, err := parseID(c, "candidate")
	if err != nil {
		return badRequest(c, err.Error())
	}

	candidate, err := h.candidateService.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(candidate)
}

// HandleCreate handles POST /candidates
func (h *CandidateHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateCandidateRequest

	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	if strings.TrimSpace(req.Name) == "" {
		return badRequest(c, "name is required")
	}

	if strings.TrimSpace(req.Email) == "" {
		return badRequest(c, "email is required")
	}

	if len(req.Skills) == 0 {
		return badRequest(c, "at least one skill is required")
	}

	availability := models.AvailabilityAvailable
	if req.Availability != "" {
		parsed, err := models.ParseAvailability(req.Availability)
		if err != nil {
			return badRequest(c, err.Error())
		}
		availability = parsed
	}

	candidate := &models.Candidate{
		Name:              req.Name,
		Email:             req.Email,
		Title:             req.Title,
		Bio:               req.Bio,
		Location:          req.Location,
		Experience:        req.Experience,
		Skills:            req.Skills,
		Availability:      availability,
		SalaryExpectation: req.SalaryExpectation,
		PortfolioURL:      req.PortfolioURL,
		LinkedInURL:       req.LinkedInURL,
		GithubURL:         req.GithubURL,
	}

	if err := h.candidateService.Create(c.UserContext(), currentUser(c), candidate); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.CreatedResponse{ID: candidate.ID.String()})
}

// HandleUpdate handles PATCH /candidates/:id
func (h *CandidateHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseID(c, "candidate")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var patch models.CandidatePatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	candidate, err := h.candidateService.Update(c.UserContext(), currentUser(c), id, patch)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(candidate)
}

// HandleUploadResume handles POST /candidates/:id/resume
func (h *CandidateHandler) HandleUploadResume(c *fiber.Ctx) error {
	id, err := parseID(c, "candidate")
	if err != nil {
		return badRequest(c, err.Error())
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return badRequest(c, "No résumé uploaded. Please upload 'resume' as a PDF file.")
	}

	if file.Size > h.maxFileSize {
		return badRequest(c, fmt.Sprintf("Résumé file too large. Max size: %d bytes", h.maxFileSize))
	}

	upload, err := h.candidateService.AttachResume(c.UserContext(), currentUser(c), id, file)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Résumé uploaded successfully",
		"document": upload,
	})
}

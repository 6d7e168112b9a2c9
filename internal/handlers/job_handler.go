package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/talent-matcher/internal/models"
	"alfredoptarigan/talent-matcher/internal/services"
)

type JobHandler struct {
	jobService services.JobService
}

func NewJobHandler(jobService services.JobService) *JobHandler {
	return &JobHandler{
		jobService: jobService,
	}
}

// HandleList handles GET /jobs
func (h *JobHandler) HandleList(c *fiber.Ctx) error {
	criteria, err := jobCriteria(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	jobs, err := h.jobService.List(c.UserContext(), criteria)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(jobs)
}

// HandleGet handles GET /jobs/:id
func (h *JobHandler) HandleGet(c *fiber.Ctx) error {
	id, err := parseID(c, "job")
	if err != nil {
		return badRequest(c, err.Error())
	}

	job, err := h.jobService.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(job)
}

// HandleCreate handles POST /jobs
func (h *JobHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateJobRequest

	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	if strings.TrimSpace(req.Title) == "" {
		return badRequest(c, "title is required")
	}

	jobType, err := models.ParseJobType(req.Type)
	if err != nil {
		return badRequest(c, err.Error())
	}

	level, err := models.ParseExperienceLevel(req.ExperienceLevel)
	if err != nil {
		return badRequest(c, err.Error())
	}

	job := &models.Job{
		Title:           req.Title,
		Company:         req.Company,
		Location:        req.Location,
		Type:            jobType,
		Description:     req.Description,
		RequiredSkills:  req.RequiredSkills,
		PreferredSkills: req.PreferredSkills,
		ExperienceLevel: level,
		SalaryRange:     req.SalaryRange,
	}

	if err := h.jobService.Create(c.UserContext(), currentUser(c), job); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.CreatedResponse{ID: job.ID.String()})
}

// HandleUpdate handles PATCH /jobs/:id
func (h *JobHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseID(c, "job")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var patch models.JobPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	job, err := h.jobService.Update(c.UserContext(), currentUser(c), id, patch)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(job)
}

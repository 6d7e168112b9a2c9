package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/talent-matcher/internal/matching"
	"alfredoptarigan/talent-matcher/internal/models"
)

func parseID(c *fiber.Ctx, kind string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s ID format", kind)
	}
	return id, nil
}

// optionalID parses an optional uuid query value. Empty means absent.
func optionalID(c *fiber.Ctx, key string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s format", key)
	}
	return &id, nil
}

// splitSkills reads a comma separated skill list.
func splitSkills(raw string) []string {
	var skills []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

func candidateCriteria(c *fiber.Ctx) (matching.CandidateCriteria, error) {
	criteria := matching.CandidateCriteria{
		Search:   matching.Optional(c.Query("search")),
		Skills:   splitSkills(c.Query("skills")),
		Location: matching.Optional(c.Query("location")),
	}

	if raw := c.Query("availability"); raw != "" {
		availability, err := models.ParseAvailability(raw)
		if err != nil {
			return criteria, err
		}
		criteria.Availability = &availability
	}

	return criteria, nil
}

func jobCriteria(c *fiber.Ctx) (matching.JobCriteria, error) {
	criteria := matching.JobCriteria{
		Search:   matching.Optional(c.Query("search")),
		Skills:   splitSkills(c.Query("skills")),
		Location: matching.Optional(c.Query("location")),
	}

	if raw := c.Query("type"); raw != "" {
		jobType, err := models.ParseJobType(raw)
		if err != nil {
			return criteria, err
		}
		criteria.Type = &jobType
	}

	return criteria, nil
}

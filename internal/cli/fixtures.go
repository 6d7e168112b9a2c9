package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"alfredoptarigan/talent-matcher/internal/models"
	"alfredoptarigan/talent-matcher/internal/services"
)

// Fixtures is the seed file layout.
type Fixtures struct {
	Candidates []CandidateFixture `toml:"candidates"`
	Jobs       []JobFixture       `toml:"jobs"`
}

type CandidateFixture struct {
	Name              string   `toml:"name"`
	Email             string   `toml:"email"`
	Title             string   `toml:"title"`
	Bio               string   `toml:"bio"`
	Location          string   `toml:"location"`
	Experience        int      `toml:"experience"`
	Skills            []string `toml:"skills"`
	Availability      string   `toml:"availability"`
	SalaryExpectation *float64 `toml:"salary_expectation"`
	PortfolioURL      *string  `toml:"portfolio_url"`
	LinkedInURL       *string  `toml:"linkedin_url"`
	GithubURL         *string  `toml:"github_url"`
}

type JobFixture struct {
	Title           string   `toml:"title"`
	Company         string   `toml:"company"`
	Location        string   `toml:"location"`
	Type            string   `toml:"type"`
	Description     string   `toml:"description"`
	RequiredSkills  []string `toml:"required_skills"`
	PreferredSkills []string `toml:"preferred_skills"`
	ExperienceLevel string   `toml:"experience_level"`
	SalaryMin       float64  `toml:"salary_min"`
	SalaryMax       float64  `toml:"salary_max"`
}

// LoadFixtures reads and parses a TOML seed file.
func LoadFixtures(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("fixture file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read fixtures: %w", err)
	}

	return ParseFixtures(data)
}

func ParseFixtures(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	return &f, nil
}

func (c CandidateFixture) toModel() (*models.Candidate, error) {
	availability := models.AvailabilityAvailable
	if c.Availability != "" {
		parsed, err := models.ParseAvailability(c.Availability)
		if err != nil {
			return nil, fmt.Errorf("candidate %q: %w", c.Name, err)
		}
		availability = parsed
	}

	return &models.Candidate{
		Name:              c.Name,
		Email:             c.Email,
		Title:             c.Title,
		Bio:               c.Bio,
		Location:          c.Location,
		Experience:        c.Experience,
		Skills:            c.Skills,
		Availability:      availability,
		SalaryExpectation: c.SalaryExpectation,
		PortfolioURL:      c.PortfolioURL,
		LinkedInURL:       c.LinkedInURL,
		GithubURL:         c.GithubURL,
	}, nil
}

func (j JobFixture) toModel() (*models.Job, error) {
	jobType, err := models.ParseJobType(j.Type)
	if err != nil {
		return nil, fmt.Errorf("job %q: %w", j.Title, err)
	}

	level, err := models.ParseExperienceLevel(j.ExperienceLevel)
	if err != nil {
		return nil, fmt.Errorf("job %q: %w", j.Title, err)
	}

	return &models.Job{
		Title:           j.Title,
		Company:         j.Company,
		Location:        j.Location,
		Type:            jobType,
		Description:     j.Description,
		RequiredSkills:  j.RequiredSkills,
		PreferredSkills: j.PreferredSkills,
		ExperienceLevel: level,
		SalaryRange:     models.SalaryRange{Min: j.SalaryMin, Max: j.SalaryMax},
	}, nil
}

// SeedResult counts the records created by Apply.
type SeedResult struct {
	Candidates int
	Jobs       int
}

// Apply creates every fixture record as owner. It stops at the first error;
// records created before it are kept.
func (f *Fixtures) Apply(ctx context.Context, owner string, candidates services.CandidateService, jobs services.JobService) (SeedResult, error) {
	var res SeedResult

	for _, cf := range f.Candidates {
		c, err := cf.toModel()
		if err != nil {
			return res, err
		}
		if err := candidates.Create(ctx, owner, c); err != nil {
			return res, fmt.Errorf("failed to create candidate %q: %w", cf.Name, err)
		}
		res.Candidates++
	}

	for _, jf := range f.Jobs {
		j, err := jf.toModel()
		if err != nil {
			return res, err
		}
		if err := jobs.Create(ctx, owner, j); err != nil {
			return res, fmt.Errorf("failed to create job %q: %w", jf.Title, err)
		}
		res.Jobs++
	}

	return res, nil
}

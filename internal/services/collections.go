package services

import (
	"context"
	"fmt"

	"alfredoptarigan/talent-matcher/internal/cache"
	"alfredoptarigan/talent-matcher/internal/models"
	"alfredoptarigan/talent-matcher/internal/repositories"
)

// collections loads the base collections the filter and scorer run over,
// going through the snapshot cache first.
type collections struct {
	candidateRepo repositories.CandidateRepository
	jobRepo       repositories.JobRepository
	snapshots     cache.Snapshots
}

func newCollections(candidateRepo repositories.CandidateRepository, jobRepo repositories.JobRepository, snapshots cache.Snapshots) *collections {
	return &collections{candidateRepo: candidateRepo, jobRepo: jobRepo, snapshots: snapshots}
}

func (c *collections) candidates(ctx context.Context) ([]models.Candidate, error) {
	return c.snapshots.Candidates(ctx, func(ctx context.Context) ([]models.Candidate, error) {
		candidates, err := c.candidateRepo.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load candidates: %w", err)
		}
		return candidates, nil
	})
}

func (c *collections) openJobs(ctx context.Context) ([]models.Job, error) {
	return c.snapshots.OpenJobs(ctx, func(ctx context.Context) ([]models.Job, error) {
		jobs, err := c.jobRepo.FindByStatus(ctx, models.JobStatusOpen)
		if err != nil {
			return nil, fmt.Errorf("failed to load open jobs: %w", err)
		}
		return jobs, nil
	})
}

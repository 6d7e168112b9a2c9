package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/talent-matcher/internal/cache"
	"alfredoptarigan/talent-matcher/internal/matching"
	"alfredoptarigan/talent-matcher/internal/models"
	"alfredoptarigan/talent-matcher/internal/repositories"
)

type JobService interface {
	Create(ctx context.Context, userID string, job *models.Job) error
	Get(ctx context.Context, id uuid.UUID) (*models.Job, error)
	List(ctx context.Context, criteria matching.JobCriteria) ([]models.Job, error)
	Update(ctx context.Context, userID string, id uuid.UUID, patch models.JobPatch) (*models.Job, error)
}

type jobService struct {
	jobRepo     repositories.JobRepository
	snapshots   cache.Snapshots
	collections *collections
	logger      *zap.Logger
}

func NewJobService(
	candidateRepo repositories.CandidateRepository,
	jobRepo repositories.JobRepository,
	snapshots cache.Snapshots,
	logger *zap.Logger,
) JobService {
	return &jobService{
		jobRepo:     jobRepo,
		snapshots:   snapshots,
		collections: newCollections(candidateRepo, jobRepo, snapshots),
		logger:      logger,
	}
}

// Create posts a new job. Jobs always start open.
func (s *jobService) Create(ctx context.Context, userID string, job *models.Job) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	if err := validateJob(job); err != nil {
		return err
	}

	job.ID = uuid.Nil
	job.Status = models.JobStatusOpen
	job.PostedBy = userID
	if job.RequiredSkills == nil {
		job.RequiredSkills = models.StringList{}
	}
	if job.PreferredSkills == nil {
		job.PreferredSkills = models.StringList{}
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return err
	}
	s.snapshots.InvalidateJobs(ctx)

	s.logger.Info("💼 Job created", zap.Stringer("job_id", job.ID), zap.String("user_id", userID))
	return nil
}

func (s *jobService) Get(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	return s.jobRepo.FindByID(ctx, id)
}

// List filters open jobs only.
func (s *jobService) List(ctx context.Context, criteria matching.JobCriteria) ([]models.Job, error) {
	jobs, err := s.collections.openJobs(ctx)
	if err != nil {
		return nil, err
	}
	return matching.FilterJobs(jobs, criteria), nil
}

func (s *jobService) Update(ctx context.Context, userID string, id uuid.UUID, patch models.JobPatch) (*models.Job, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	existing, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(userID, existing.PostedBy); err != nil {
		return nil, err
	}
	if err := validateJobPatch(patch); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	s.snapshots.InvalidateJobs(ctx)

	return s.jobRepo.FindByID(ctx, id)
}

func validateJob(j *models.Job) error {
	if strings.TrimSpace(j.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if !j.Type.Valid() {
		return fmt.Errorf("%w: unknown job type %q", ErrInvalidInput, j.Type)
	}
	if !j.ExperienceLevel.Valid() {
		return fmt.Errorf("%w: unknown experience level %q", ErrInvalidInput, j.ExperienceLevel)
	}
	return nil
}

func validateJobPatch(p models.JobPatch) error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
	}
	if p.Type != nil && !p.Type.Valid() {
		return fmt.Errorf("%w: unknown job type %q", ErrInvalidInput, *p.Type)
	}
	if p.ExperienceLevel != nil && !p.ExperienceLevel.Valid() {
		return fmt.Errorf("%w: unknown experience level %q", ErrInvalidInput, *p.ExperienceLevel)
	}
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("%w: unknown job status %q", ErrInvalidInput, *p.Status)
	}
	return nil
}

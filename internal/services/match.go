package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/talent-matcher/internal/cache"
	"alfredoptarigan/talent-matcher/internal/matching"
	"alfredoptarigan/talent-matcher/internal/models"
	"alfredoptarigan/talent-matcher/internal/repositories"
)

// Anchor selects the side a match lookup starts from. When both ids are set
// the candidate wins.
type Anchor struct {
	CandidateID *uuid.UUID
	JobID       *uuid.UUID
}

// NewMatch is a computed match the caller chose to keep.
type NewMatch struct {
	CandidateID  uuid.UUID
	JobID        uuid.UUID
	MatchScore   int
	SkillMatches []string
}

type MatchQuery = repositories.MatchFilter

type MatchService interface {
	FindMatches(ctx context.Context, anchor Anchor) ([]matching.Result, error)
	Create(ctx context.Context, userID string, input NewMatch) (*models.Match, error)
	UpdateStatus(ctx context.Context, userID string, id uuid.UUID, status models.MatchStatus) (*models.Match, error)
	List(ctx context.Context, query MatchQuery) ([]models.Match, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Match, error)
	Stats(ctx context.Context) (*models.DashboardStats, error)
}

type matchService struct {
	matchRepo     repositories.MatchRepository
	candidateRepo repositories.CandidateRepository
	jobRepo       repositories.JobRepository
	collections   *collections
	summaries     SummaryQueue
	logger        *zap.Logger
}

// NewMatchService wires the match operations. summaries may be nil, in which
// case saved matches get no generated summary.
func NewMatchService(
	matchRepo repositories.MatchRepository,
	candidateRepo repositories.CandidateRepository,
	jobRepo repositories.JobRepository,
	snapshots cache.Snapshots,
	summaries SummaryQueue,
	logger *zap.Logger,
) MatchService {
	return &matchService{
		matchRepo:     matchRepo,
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
		collections:   newCollections(candidateRepo, jobRepo, snapshots),
		summaries:     summaries,
		logger:        logger,
	}
}

// FindMatches scores the anchor against the other side: open jobs for a
// candidate, every candidate for a job. A missing or unknown anchor yields an
// empty result.
func (s *matchService) FindMatches(ctx context.Context, anchor Anchor) ([]matching.Result, error) {
	switch {
	case anchor.CandidateID != nil:
		candidate, err := s.candidateRepo.FindByID(ctx, *anchor.CandidateID)
		if err != nil {
			return emptyOnNotFound(err)
		}

		jobs, err := s.collections.openJobs(ctx)
		if err != nil {
			return nil, err
		}
		return matching.ForCandidate(*candidate, jobs), nil

	case anchor.JobID != nil:
		job, err := s.jobRepo.FindByID(ctx, *anchor.JobID)
		if err != nil {
			return emptyOnNotFound(err)
		}

		candidates, err := s.collections.candidates(ctx)
		if err != nil {
			return nil, err
		}
		return matching.ForJob(*job, candidates), nil
	}

	return []matching.Result{}, nil
}

// Create persists a match with status pending.
func (s *matchService) Create(ctx context.Context, userID string, input NewMatch) (*models.Match, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if input.MatchScore < 0 || input.MatchScore > 100 {
		return nil, fmt.Errorf("%w: match score must be between 0 and 100", ErrInvalidInput)
	}

	// Verify both sides exist
	if _, err := s.candidateRepo.FindByID(ctx, input.CandidateID); err != nil {
		return nil, err
	}
	if _, err := s.jobRepo.FindByID(ctx, input.JobID); err != nil {
		return nil, err
	}

	skillMatches := models.StringList(input.SkillMatches)
	if skillMatches == nil {
		skillMatches = models.StringList{}
	}

	match := &models.Match{
		CandidateID:   input.CandidateID,
		JobID:         input.JobID,
		MatchScore:    input.MatchScore,
		SkillMatches:  skillMatches,
		Status:        models.MatchStatusPending,
		CreatedBy:     userID,
		SummaryStatus: models.SummaryNone,
	}
	if s.summaries != nil {
		match.SummaryStatus = models.SummaryQueued
	}

	if err := s.matchRepo.Create(ctx, match); err != nil {
		return nil, err
	}

	s.logger.Info("🤝 Match saved",
		zap.Stringer("match_id", match.ID),
		zap.Stringer("candidate_id", match.CandidateID),
		zap.Stringer("job_id", match.JobID),
		zap.Int("score", match.MatchScore),
	)

	if s.summaries != nil {
		s.summaries.EnqueueJob(match.ID)
	}

	return match, nil
}

// UpdateStatus moves a saved match to another status. Only its creator may
// do so.
func (s *matchService) UpdateStatus(ctx context.Context, userID string, id uuid.UUID, status models.MatchStatus) (*models.Match, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown match status %q", ErrInvalidInput, status)
	}

	match, err := s.matchRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(userID, match.CreatedBy); err != nil {
		return nil, err
	}

	if err := s.matchRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	return s.matchRepo.FindByID(ctx, id)
}

func (s *matchService) List(ctx context.Context, query MatchQuery) ([]models.Match, error) {
	return s.matchRepo.Find(ctx, query)
}

func (s *matchService) Get(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	return s.matchRepo.FindByID(ctx, id)
}

// Stats returns the dashboard counters.
func (s *matchService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	candidates, err := s.candidateRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	openJobs, err := s.jobRepo.CountByStatus(ctx, models.JobStatusOpen)
	if err != nil {
		return nil, err
	}

	matches, err := s.matchRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &models.DashboardStats{
		TotalCandidates: candidates,
		OpenJobs:        openJobs,
		SavedMatches:    matches,
	}, nil
}

func emptyOnNotFound(err error) ([]matching.Result, error) {
	if errors.Is(err, repositories.ErrNotFound) {
		return []matching.Result{}, nil
	}
	return nil, err
}

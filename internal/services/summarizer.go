package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/talent-matcher/internal/repositories"
)

const summaryTemperature = 0.3

type Summarizer interface {
	SummarizeMatch(ctx context.Context, matchID uuid.UUID) error
}

type summarizer struct {
	matchRepo     repositories.MatchRepository
	candidateRepo repositories.CandidateRepository
	jobRepo       repositories.JobRepository
	generator     TextGenerator
	promptBuilder *PromptBuilder
	maxRetries    int
	logger        *zap.Logger
}

func NewSummarizer(
	matchRepo repositories.MatchRepository,
	candidateRepo repositories.CandidateRepository,
	jobRepo repositories.JobRepository,
	generator TextGenerator,
	maxRetries int,
	logger *zap.Logger,
) Summarizer {
	return &summarizer{
		matchRepo:     matchRepo,
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
		logger:        logger,
	}
}

// SummarizeMatch writes a recruiter note for a saved match. Failures are
// recorded on the match itself as well as returned. A match that is not
// queued, or already claimed by another run, yields ErrSummaryNotQueued.
func (s *summarizer) SummarizeMatch(ctx context.Context, matchID uuid.UUID) error {
	claimed, err := s.matchRepo.ClaimSummary(ctx, matchID)
	if err != nil {
		return err
	}
	if !claimed {
		return ErrSummaryNotQueued
	}

	log := s.logger.With(zap.Stringer("match_id", matchID))
	log.Info("🔄 Generating match summary")

	match, err := s.matchRepo.FindByID(ctx, matchID)
	if err != nil {
		s.fail(ctx, matchID, err.Error())
		return fmt.Errorf("failed to get match: %w", err)
	}

	candidate, err := s.candidateRepo.FindByID(ctx, match.CandidateID)
	if err != nil {
		s.fail(ctx, matchID, fmt.Sprintf("Candidate not found: %v", err))
		return fmt.Errorf("failed to get candidate: %w", err)
	}

	job, err := s.jobRepo.FindByID(ctx, match.JobID)
	if err != nil {
		s.fail(ctx, matchID, fmt.Sprintf("Job not found: %v", err))
		return fmt.Errorf("failed to get job: %w", err)
	}

	prompt := s.promptBuilder.BuildMatchSummaryPrompt(match, candidate, job)

	log.Debug("🤖 Calling language model", zap.Int("prompt_chars", len(prompt)))
	summary, err := s.generator.GenerateTextWithRetry(ctx, prompt, summaryTemperature, s.maxRetries)
	if err != nil {
		s.fail(ctx, matchID, fmt.Sprintf("Failed to generate summary: %v", err))
		return fmt.Errorf("failed to generate summary: %w", err)
	}

	if err := s.matchRepo.UpdateSummary(ctx, matchID, summary); err != nil {
		return fmt.Errorf("failed to save summary: %w", err)
	}

	log.Info("✅ Match summary completed")
	return nil
}

func (s *summarizer) fail(ctx context.Context, matchID uuid.UUID, msg string) {
	if err := s.matchRepo.UpdateSummaryError(ctx, matchID, msg); err != nil {
		s.logger.Error("failed to record summary error", zap.Stringer("match_id", matchID), zap.Error(err))
	}
}

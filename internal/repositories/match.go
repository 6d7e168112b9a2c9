package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"alfredoptarigan/talent-matcher/internal/models"
)

type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Match, error)
	Find(ctx context.Context, filter MatchFilter) ([]models.Match, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.MatchStatus) error
	ClaimSummary(ctx context.Context, id uuid.UUID) (bool, error)
	UpdateSummary(ctx context.Context, id uuid.UUID, summary string) error
	UpdateSummaryError(ctx context.Context, id uuid.UUID, errorMsg string) error
	FindPendingSummaries(ctx context.Context, limit int) ([]models.Match, error)
	Count(ctx context.Context) (int64, error)
}

// MatchFilter restricts Find to one candidate and/or one job.
type MatchFilter struct {
	CandidateID *uuid.UUID
	JobID       *uuid.UUID
}

type matchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Create(ctx context.Context, match *models.Match) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(match).Error; err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}
	return nil
}

func (r *matchRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	var match models.Match
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&match).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("match %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find match: %w", err)
	}
	return &match, nil
}

// Find returns saved matches, best score first.
func (r *matchRepository) Find(ctx context.Context, filter MatchFilter) ([]models.Match, error) {
	query := r.db.WithContext(ctx).Model(&models.Match{})
	if filter.CandidateID != nil {
		query = query.Where("candidate_id = ?", *filter.CandidateID)
	}
	if filter.JobID != nil {
		query = query.Where("job_id = ?", *filter.JobID)
	}

	matches := make([]models.Match, 0)
	if err := query.Order("match_score DESC").Order("created_at ASC").Find(&matches).Error; err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

func (r *matchRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.MatchStatus) error {
	return r.updateColumns(ctx, id, map[string]interface{}{
		"status": status,
	})
}

// ClaimSummary moves a queued match to processing. It reports false when the
// match is missing or no longer queued, so only one caller ever wins.
func (r *matchRepository) ClaimSummary(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.Match{}).
		Where("id = ? AND summary_status = ?", id, models.SummaryQueued).
		Updates(map[string]interface{}{
			"summary_status": models.SummaryProcessing,
			"updated_at":     time.Now(),
		})

	if result.Error != nil {
		return false, fmt.Errorf("failed to claim summary: %w", result.Error)
	}

	return result.RowsAffected == 1, nil
}

func (r *matchRepository) UpdateSummary(ctx context.Context, id uuid.UUID, summary string) error {
	return r.updateColumns(ctx, id, map[string]interface{}{
		"summary":        summary,
		"summary_status": models.SummaryCompleted,
		"summary_error":  nil,
	})
}

func (r *matchRepository) UpdateSummaryError(ctx context.Context, id uuid.UUID, errorMsg string) error {
	return r.updateColumns(ctx, id, map[string]interface{}{
		"summary_status": models.SummaryFailed,
		"summary_error":  errorMsg,
	})
}

func (r *matchRepository) FindPendingSummaries(ctx context.Context, limit int) ([]models.Match, error) {
	matches := make([]models.Match, 0)
	err := r.db.WithContext(ctx).
		Where("summary_status = ?", models.SummaryQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&matches).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find pending summaries: %w", err)
	}

	return matches, nil
}

func (r *matchRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Match{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count matches: %w", err)
	}
	return count, nil
}

func (r *matchRepository) updateColumns(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).Model(&models.Match{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update match: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("match %s: %w", id, ErrNotFound)
	}

	return nil
}

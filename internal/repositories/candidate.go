package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/talent-matcher/internal/models"
)

type CandidateRepository interface {
	Create(ctx context.Context, candidate *models.Candidate) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Candidate, error)
	FindAll(ctx context.Context) ([]models.Candidate, error)
	Update(ctx context.Context, id uuid.UUID, patch models.CandidatePatch) error
	UpdateResume(ctx context.Context, id uuid.UUID, filename, text string) error
	Count(ctx context.Context) (int64, error)
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) Create(ctx context.Context, candidate *models.Candidate) error {
	if err := r.db.WithContext(ctx).Create(candidate).Error; err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}
	return nil
}

func (r *candidateRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&candidate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("candidate %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}
	return &candidate, nil
}

// FindAll returns every candidate, oldest first.
func (r *candidateRepository) FindAll(ctx context.Context) ([]models.Candidate, error) {
	candidates := make([]models.Candidate, 0)
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return candidates, nil
}

func (r *candidateRepository) Update(ctx context.Context, id uuid.UUID, patch models.CandidatePatch) error {
	updates := patch.Columns()
	if len(updates) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).Model(&models.Candidate{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update candidate: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("candidate %s: %w", id, ErrNotFound)
	}

	return nil
}

func (r *candidateRepository) UpdateResume(ctx context.Context, id uuid.UUID, filename, text string) error {
	result := r.db.WithContext(ctx).Model(&models.Candidate{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"resume_file": filename,
			"resume_text": text,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update resume: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("candidate %s: %w", id, ErrNotFound)
	}

	return nil
}

func (r *candidateRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Candidate{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count candidates: %w", err)
	}
	return count, nil
}

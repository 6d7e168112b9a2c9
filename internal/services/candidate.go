package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/talent-matcher/internal/cache"
	"alfredoptarigan/talent-matcher/internal/matching"
	"alfredoptarigan/talent-matcher/internal/models"
	"alfredoptarigan/talent-matcher/internal/repositories"
)

type CandidateService interface {
	Create(ctx context.Context, userID string, candidate *models.Candidate) error
	Get(ctx context.Context, id uuid.UUID) (*models.Candidate, error)
	List(ctx context.Context, criteria matching.CandidateCriteria) ([]models.Candidate, error)
	Update(ctx context.Context, userID string, id uuid.UUID, patch models.CandidatePatch) (*models.Candidate, error)
	AttachResume(ctx context.Context, userID string, id uuid.UUID, file *multipart.FileHeader) (*models.UploadResponse, error)
	Skills(ctx context.Context) ([]string, error)
}

type candidateService struct {
	candidateRepo repositories.CandidateRepository
	storage       StorageService
	pdfParser     PDFParserService
	snapshots     cache.Snapshots
	collections   *collections
	logger        *zap.Logger
}

func NewCandidateService(
	candidateRepo repositories.CandidateRepository,
	jobRepo repositories.JobRepository,
	storage StorageService,
	pdfParser PDFParserService,
	snapshots cache.Snapshots,
	logger *zap.Logger,
) CandidateService {
	return &candidateService{
		candidateRepo: candidateRepo,
		storage:       storage,
		pdfParser:     pdfParser,
		snapshots:     snapshots,
		collections:   newCollections(candidateRepo, jobRepo, snapshots),
		logger:        logger,
	}
}

// Create stores a new candidate owned by userID.
func (s *candidateService) Create(ctx context.Context, userID string, candidate *models.Candidate) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	if err := validateCandidate(candidate); err != nil {
		return err
	}

	candidate.ID = uuid.Nil
	candidate.CreatedBy = userID
	candidate.ResumeFile = nil
	candidate.ResumeText = nil

	if err := s.candidateRepo.Create(ctx, candidate); err != nil {
		return err
	}
	s.snapshots.InvalidateCandidates(ctx)

	s.logger.Info("👤 Candidate created", zap.Stringer("candidate_id", candidate.ID), zap.String("user_id", userID))
	return nil
}

func (s *candidateService) Get(ctx context.Context, id uuid.UUID) (*models.Candidate, error) {
	return s.candidateRepo.FindByID(ctx, id)
}

func (s *candidateService) List(ctx context.Context, criteria matching.CandidateCriteria) ([]models.Candidate, error) {
	candidates, err := s.collections.candidates(ctx)
	if err != nil {
		return nil, err
	}
	return matching.FilterCandidates(candidates, criteria), nil
}

// Update applies the supplied fields only. The caller must own the candidate.
func (s *candidateService) Update(ctx context.Context, userID string, id uuid.UUID, patch models.CandidatePatch) (*models.Candidate, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	existing, err := s.candidateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(userID, existing.CreatedBy); err != nil {
		return nil, err
	}
	if err := validateCandidatePatch(patch); err != nil {
		return nil, err
	}

	if err := s.candidateRepo.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	s.snapshots.InvalidateCandidates(ctx)

	return s.candidateRepo.FindByID(ctx, id)
}

// AttachResume stores a PDF résumé for the candidate and keeps its text for
// match summaries.
func (s *candidateService) AttachResume(ctx context.Context, userID string, id uuid.UUID, file *multipart.FileHeader) (*models.UploadResponse, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	existing, err := s.candidateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(userID, existing.CreatedBy); err != nil {
		return nil, err
	}

	stored, err := s.storage.SaveResume(file, id)
	if err != nil {
		return nil, err
	}

	content, err := s.pdfParser.Extract(stored.Path)
	if err != nil {
		s.removeFile(stored.Filename)
		return nil, err
	}

	if err := s.candidateRepo.UpdateResume(ctx, id, stored.Filename, content.Text); err != nil {
		s.removeFile(stored.Filename)
		return nil, err
	}

	if existing.ResumeFile != nil && *existing.ResumeFile != stored.Filename {
		s.removeFile(*existing.ResumeFile)
	}
	s.snapshots.InvalidateCandidates(ctx)

	s.logger.Info("📄 Résumé attached",
		zap.Stringer("candidate_id", id),
		zap.String("file", stored.Filename),
		zap.Int("pages", content.PageCount),
	)

	return &models.UploadResponse{
		ID:           id.String(),
		Filename:     stored.Filename,
		OriginalName: file.Filename,
		PageCount:    content.PageCount,
	}, nil
}

func (s *candidateService) Skills(ctx context.Context) ([]string, error) {
	candidates, err := s.collections.candidates(ctx)
	if err != nil {
		return nil, err
	}
	return matching.SkillFacet(candidates), nil
}

func (s *candidateService) removeFile(filename string) {
	if err := s.storage.DeleteFile(filename); err != nil {
		s.logger.Warn("⚠️ Failed to remove résumé file", zap.String("file", filename), zap.Error(err))
	}
}

func validateCandidate(c *models.Candidate) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(c.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(c.Skills) == 0 {
		return fmt.Errorf("%w: at least one skill is required", ErrInvalidInput)
	}
	if c.Experience < 0 {
		return fmt.Errorf("%w: experience must not be negative", ErrInvalidInput)
	}
	if !c.Availability.Valid() {
		return fmt.Errorf("%w: unknown availability %q", ErrInvalidInput, c.Availability)
	}
	if c.SalaryExpectation != nil && *c.SalaryExpectation < 0 {
		return fmt.Errorf("%w: salary expectation must not be negative", ErrInvalidInput)
	}
	return nil
}

func validateCandidatePatch(p models.CandidatePatch) error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if p.Skills != nil && len(*p.Skills) == 0 {
		return fmt.Errorf("%w: at least one skill is required", ErrInvalidInput)
	}
	if p.Experience != nil && *p.Experience < 0 {
		return fmt.Errorf("%w: experience must not be negative", ErrInvalidInput)
	}
	if p.Availability != nil && !p.Availability.Valid() {
		return fmt.Errorf("%w: unknown availability %q", ErrInvalidInput, *p.Availability)
	}
	if p.SalaryExpectation != nil && *p.SalaryExpectation < 0 {
		return fmt.Errorf("%w: salary expectation must not be negative", ErrInvalidInput)
	}
	return nil
}

package repositories_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/talent-matcher/internal/models"
	"alfredoptarigan/talent-matcher/internal/repositories"
	"alfredoptarigan/talent-matcher/internal/testutil"
)

func newCandidate(name string, skills ...string) *models.Candidate {
	return &models.Candidate{
		Name:         name,
		Email:        name + "@example.com",
		Title:        "Engineer",
		Location:     "Remote",
		Experience:   3,
		Skills:       skills,
		Availability: models.AvailabilityAvailable,
		CreatedBy:    "user-1",
	}
}

func newJob(title string, status models.JobStatus) *models.Job {
	return &models.Job{
		Title:           title,
		Company:         "Acme",
		Location:        "Remote",
		Type:            models.JobTypeFullTime,
		RequiredSkills:  []string{"Go", "SQL"},
		PreferredSkills: []string{},
		ExperienceLevel: models.ExperienceMid,
		SalaryRange:     models.SalaryRange{Min: 100, Max: 150},
		Status:          status,
		PostedBy:        "user-2",
	}
}

func TestCandidateRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewCandidateRepository(testutil.NewDB(t))

	c := newCandidate("ada", "Go", "C++, embedded")
	require.NoError(t, repo.Create(ctx, c))
	require.NotEqual(t, uuid.Nil, c.ID)

	fetched, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada", fetched.Name)
	assert.Equal(t, models.StringList{"Go", "C++, embedded"}, fetched.Skills)
	assert.Nil(t, fetched.SalaryExpectation)

	title := "Staff Engineer"
	skills := []string{"Rust"}
	require.NoError(t, repo.Update(ctx, c.ID, models.CandidatePatch{Title: &title, Skills: &skills}))

	fetched, err = repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", fetched.Title)
	assert.Equal(t, models.StringList{"Rust"}, fetched.Skills)
	assert.Equal(t, "Remote", fetched.Location)

	require.NoError(t, repo.UpdateResume(ctx, c.ID, "resume_1.pdf", "plain text"))
	fetched, err = repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.ResumeText)
	assert.Equal(t, "plain text", *fetched.ResumeText)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestCandidateRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewCandidateRepository(testutil.NewDB(t))

	_, err := repo.FindByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, repositories.ErrNotFound))

	name := "ghost"
	err = repo.Update(ctx, uuid.New(), models.CandidatePatch{Name: &name})
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}

func TestCandidateRepository_FindAllKeepsInsertOrder(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewCandidateRepository(testutil.NewDB(t))

	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, newCandidate(name, "Go")))
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "first", all[0].Name)
}

func TestJobRepository_FindByStatus(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewJobRepository(testutil.NewDB(t))

	open := newJob("Open role", models.JobStatusOpen)
	closed := newJob("Closed role", models.JobStatusClosed)
	draft := newJob("Draft role", models.JobStatusDraft)
	for _, j := range []*models.Job{open, closed, draft} {
		require.NoError(t, repo.Create(ctx, j))
	}

	jobs, err := repo.FindByStatus(ctx, models.JobStatusOpen)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, open.ID, jobs[0].ID)
	assert.Equal(t, models.SalaryRange{Min: 100, Max: 150}, jobs[0].SalaryRange)
	assert.Equal(t, models.StringList{"Go", "SQL"}, jobs[0].RequiredSkills)

	status := models.JobStatusClosed
	require.NoError(t, repo.Update(ctx, open.ID, models.JobPatch{Status: &status}))

	count, err := repo.CountByStatus(ctx, models.JobStatusOpen)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMatchRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	candidates := repositories.NewCandidateRepository(db)
	jobs := repositories.NewJobRepository(db)
	repo := repositories.NewMatchRepository(db)

	c := newCandidate("ada", "Go")
	j := newJob("Backend", models.JobStatusOpen)
	require.NoError(t, candidates.Create(ctx, c))
	require.NoError(t, jobs.Create(ctx, j))

	low := &models.Match{CandidateID: c.ID, JobID: j.ID, MatchScore: 40, SkillMatches: []string{"Go"},
		Status: models.MatchStatusPending, CreatedBy: "user-1", SummaryStatus: models.SummaryQueued}
	high := &models.Match{CandidateID: c.ID, JobID: j.ID, MatchScore: 90, SkillMatches: []string{"Go"},
		Status: models.MatchStatusPending, CreatedBy: "user-1", SummaryStatus: models.SummaryNone}
	require.NoError(t, repo.Create(ctx, low))
	require.NoError(t, repo.Create(ctx, high))

	listed, err := repo.Find(ctx, repositories.MatchFilter{CandidateID: &c.ID})
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, high.ID, listed[0].ID)

	other := uuid.New()
	listed, err = repo.Find(ctx, repositories.MatchFilter{JobID: &other})
	require.NoError(t, err)
	assert.Empty(t, listed)

	pending, err := repo.FindPendingSummaries(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, low.ID, pending[0].ID)

	require.NoError(t, repo.UpdateSummary(ctx, low.ID, "Solid Go background."))
	require.NoError(t, repo.UpdateStatus(ctx, low.ID, models.MatchStatusContacted))

	fetched, err := repo.FindByID(ctx, low.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusContacted, fetched.Status)
	assert.Equal(t, models.SummaryCompleted, fetched.SummaryStatus)
	require.NotNil(t, fetched.Summary)
	assert.Equal(t, "Solid Go background.", *fetched.Summary)

	err = repo.UpdateStatus(ctx, uuid.New(), models.MatchStatusInterested)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestMatchRepository_ClaimSummaryOnce(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	candidates := repositories.NewCandidateRepository(db)
	jobs := repositories.NewJobRepository(db)
	repo := repositories.NewMatchRepository(db)

	c := newCandidate("ada", "Go")
	j := newJob("Backend", models.JobStatusOpen)
	require.NoError(t, candidates.Create(ctx, c))
	require.NoError(t, jobs.Create(ctx, j))

	queued := &models.Match{CandidateID: c.ID, JobID: j.ID, MatchScore: 70, SkillMatches: []string{"Go"},
		Status: models.MatchStatusPending, CreatedBy: "user-1", SummaryStatus: models.SummaryQueued}
	none := &models.Match{CandidateID: c.ID, JobID: j.ID, MatchScore: 70, SkillMatches: []string{"Go"},
		Status: models.MatchStatusPending, CreatedBy: "user-1", SummaryStatus: models.SummaryNone}
	require.NoError(t, repo.Create(ctx, queued))
	require.NoError(t, repo.Create(ctx, none))

	claimed, err := repo.ClaimSummary(ctx, queued.ID)
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = repo.ClaimSummary(ctx, queued.ID)
	require.NoError(t, err)
	assert.False(t, claimed)

	claimed, err = repo.ClaimSummary(ctx, none.ID)
	require.NoError(t, err)
	assert.False(t, claimed)

	claimed, err = repo.ClaimSummary(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, claimed)

	fetched, err := repo.FindByID(ctx, queued.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SummaryProcessing, fetched.SummaryStatus)

	pending, err := repo.FindPendingSummaries(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

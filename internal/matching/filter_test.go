package matching_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/talent-matcher/internal/matching"
	"alfredoptarigan/talent-matcher/internal/models"
)

func candidate(name, title, bio, location string, availability models.Availability, skills ...string) models.Candidate {
	return models.Candidate{
		ID:           uuid.New(),
		Name:         name,
		Title:        title,
		Bio:          bio,
		Location:     location,
		Availability: availability,
		Skills:       skills,
	}
}

func job(title, company, description, location string, jobType models.JobType, required, preferred []string) models.Job {
	return models.Job{
		ID:              uuid.New(),
		Title:           title,
		Company:         company,
		Description:     description,
		Location:        location,
		Type:            jobType,
		RequiredSkills:  required,
		PreferredSkills: preferred,
		Status:          models.JobStatusOpen,
	}
}

func ids[T any](items []T, id func(T) uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		out = append(out, id(it))
	}
	return out
}

func candidateID(c models.Candidate) uuid.UUID { return c.ID }
func jobID(j models.Job) uuid.UUID             { return j.ID }

func samplePool() []models.Candidate {
	return []models.Candidate{
		candidate("Ada Lovelace", "Analyst", "Wrote the first program", "London, UK", models.AvailabilityAvailable, "Math", "Go"),
		candidate("Grace Hopper", "Compiler Engineer", "COBOL and more", "Remote", models.AvailabilityOpen, "React", "Go"),
		candidate("Linus", "Kernel Hacker", "Likes C", "Remote (EU)", models.AvailabilityNotAvailable, "C", "Git"),
	}
}

func TestFilterCandidates_EmptyCriteriaIsIdentity(t *testing.T) {
	pool := samplePool()

	got := matching.FilterCandidates(pool, matching.CandidateCriteria{})

	assert.Equal(t, pool, got)
}

func TestFilterCandidates_ResultIsSubsetInInputOrder(t *testing.T) {
	pool := samplePool()
	criteria := matching.CandidateCriteria{Location: matching.Optional("remote")}

	got := matching.FilterCandidates(pool, criteria)

	assert.Equal(t, []uuid.UUID{pool[1].ID, pool[2].ID}, ids(got, candidateID))
	for _, c := range got {
		assert.Contains(t, ids(pool, candidateID), c.ID)
	}
}

func TestFilterCandidates_SearchIsCaseInsensitive(t *testing.T) {
	pool := []models.Candidate{candidate("Ada Lovelace", "", "", "", models.AvailabilityOpen, "Math")}

	got := matching.FilterCandidates(pool, matching.CandidateCriteria{Search: matching.Optional("ADA")})

	require.Len(t, got, 1)
	assert.Equal(t, "Ada Lovelace", got[0].Name)
}

func TestFilterCandidates_SearchFields(t *testing.T) {
	pool := samplePool()

	tests := []struct {
		name   string
		search string
		want   []uuid.UUID
	}{
		{name: "name", search: "grace", want: []uuid.UUID{pool[1].ID}},
		{name: "title", search: "kernel", want: []uuid.UUID{pool[2].ID}},
		{name: "bio", search: "first PROGRAM", want: []uuid.UUID{pool[0].ID}},
		{name: "location is not searched", search: "london", want: []uuid.UUID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matching.FilterCandidates(pool, matching.CandidateCriteria{Search: matching.Optional(tt.search)})
			assert.Equal(t, tt.want, ids(got, candidateID))
		})
	}
}

func TestFilterCandidates_SkillsOrWithinAndAcross(t *testing.T) {
	c := candidate("Sam", "Dev", "", "Remote", models.AvailabilityAvailable, "React", "Go")
	office := candidate("Kim", "Dev", "", "Berlin", models.AvailabilityAvailable, "React")
	pool := []models.Candidate{c, office}

	tests := []struct {
		name     string
		criteria matching.CandidateCriteria
		want     []uuid.UUID
	}{
		{
			name:     "lowercase skill matches",
			criteria: matching.CandidateCriteria{Skills: []string{"react"}},
			want:     []uuid.UUID{c.ID, office.ID},
		},
		{
			name:     "unknown skill excludes",
			criteria: matching.CandidateCriteria{Skills: []string{"rust"}},
			want:     []uuid.UUID{},
		},
		{
			name:     "any requested skill is enough",
			criteria: matching.CandidateCriteria{Skills: []string{"rust", "go"}},
			want:     []uuid.UUID{c.ID},
		},
		{
			name:     "substring of owned skill",
			criteria: matching.CandidateCriteria{Skills: []string{"rea"}},
			want:     []uuid.UUID{c.ID, office.ID},
		},
		{
			name:     "skills and location must both hold",
			criteria: matching.CandidateCriteria{Skills: []string{"react"}, Location: matching.Optional("Remote")},
			want:     []uuid.UUID{c.ID},
		},
		{
			name:     "empty skills slice imposes nothing",
			criteria: matching.CandidateCriteria{Skills: []string{}},
			want:     []uuid.UUID{c.ID, office.ID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matching.FilterCandidates(pool, tt.criteria)
			assert.Equal(t, tt.want, ids(got, candidateID))
		})
	}
}

func TestFilterCandidates_AvailabilityIsExact(t *testing.T) {
	pool := samplePool()
	open := models.AvailabilityOpen

	got := matching.FilterCandidates(pool, matching.CandidateCriteria{Availability: &open})

	assert.Equal(t, []uuid.UUID{pool[1].ID}, ids(got, candidateID))
}

func TestFilterJobs(t *testing.T) {
	backend := job("Backend Engineer", "Acme", "Build APIs", "Remote", models.JobTypeFullTime, []string{"Go"}, []string{"PostgreSQL"})
	frontend := job("Frontend Developer", "Globex", "React apps", "Berlin", models.JobTypeContract, []string{"TypeScript"}, []string{"React"})
	pool := []models.Job{backend, frontend}
	contract := models.JobTypeContract

	tests := []struct {
		name     string
		criteria matching.JobCriteria
		want     []uuid.UUID
	}{
		{name: "no criteria", criteria: matching.JobCriteria{}, want: []uuid.UUID{backend.ID, frontend.ID}},
		{name: "search company", criteria: matching.JobCriteria{Search: matching.Optional("GLOBEX")}, want: []uuid.UUID{frontend.ID}},
		{name: "search description", criteria: matching.JobCriteria{Search: matching.Optional("apis")}, want: []uuid.UUID{backend.ID}},
		{name: "preferred skills count", criteria: matching.JobCriteria{Skills: []string{"postgres"}}, want: []uuid.UUID{backend.ID}},
		{name: "required skills count", criteria: matching.JobCriteria{Skills: []string{"typescript"}}, want: []uuid.UUID{frontend.ID}},
		{name: "location substring", criteria: matching.JobCriteria{Location: matching.Optional("berl")}, want: []uuid.UUID{frontend.ID}},
		{name: "type equality", criteria: matching.JobCriteria{Type: &contract}, want: []uuid.UUID{frontend.ID}},
		{
			name:     "conjunction",
			criteria: matching.JobCriteria{Skills: []string{"go"}, Type: &contract},
			want:     []uuid.UUID{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matching.FilterJobs(pool, tt.criteria)
			assert.Equal(t, tt.want, ids(got, jobID))
		})
	}
}

func TestOptional(t *testing.T) {
	assert.Nil(t, matching.Optional(""))
	require.NotNil(t, matching.Optional("x"))
	assert.Equal(t, "x", *matching.Optional("x"))
}

func TestSkillFacet(t *testing.T) {
	pool := samplePool()

	assert.Equal(t, []string{"C", "Git", "Go", "Math", "React"}, matching.SkillFacet(pool))
	assert.Empty(t, matching.SkillFacet(nil))
}

package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/talent-matcher/internal/matching"
	"alfredoptarigan/talent-matcher/internal/models"
)

func TestScore_ExactComputation(t *testing.T) {
	j := job("Platform Engineer", "Acme", "", "Remote", models.JobTypeFullTime, []string{"Go", "Rust"}, []string{"Docker"})
	c := candidate("Sam", "", "", "", models.AvailabilityAvailable, "go", "docker", "python")

	got := matching.Score(&c, &j)

	// (2/2)*60 + (1/2)*40
	assert.Equal(t, 80, got.MatchScore)
	assert.Equal(t, []string{"go", "docker"}, got.SkillMatches)
	assert.Equal(t, matching.TierStrong, got.Tier)
	assert.Equal(t, j.ID, got.Job.ID)
	assert.Equal(t, c.ID, got.Candidate.ID)
}

func TestScore_CappedAtHundred(t *testing.T) {
	j := job("Everything", "Acme", "", "", models.JobTypeRemote,
		[]string{"Go"},
		[]string{"Rust", "Docker", "Kubernetes", "SQL", "Terraform"})
	c := candidate("Max", "", "", "", models.AvailabilityAvailable, "Go", "Rust", "Docker", "Kubernetes", "SQL", "Terraform")

	got := matching.Score(&c, &j)

	assert.Equal(t, 100, got.MatchScore)
	assert.Len(t, got.SkillMatches, 6)
}

func TestScore_NoRequiredSkills(t *testing.T) {
	j := job("Generalist", "Acme", "", "", models.JobTypePartTime, nil, []string{"Docker", "Go"})
	c := candidate("Pat", "", "", "", models.AvailabilityOpen, "docker")

	got := matching.Score(&c, &j)

	// denominator falls back to 1: (1/1)*60 + 0
	assert.Equal(t, 60, got.MatchScore)
	assert.Equal(t, matching.TierGood, got.Tier)
}

func TestScore_NoOverlap(t *testing.T) {
	j := job("Designer", "Acme", "", "", models.JobTypeContract, []string{"Figma"}, nil)
	c := candidate("Lee", "", "", "", models.AvailabilityOpen, "Go")

	got := matching.Score(&c, &j)

	assert.Zero(t, got.MatchScore)
	assert.Empty(t, got.SkillMatches)
	assert.NotNil(t, got.SkillMatches)
}

func TestScore_DuplicateCandidateSkillsAreKept(t *testing.T) {
	j := job("Backend", "Acme", "", "", models.JobTypeFullTime, []string{"Go", "Rust"}, nil)
	c := candidate("Dup", "", "", "", models.AvailabilityOpen, "Go", "go")

	got := matching.Score(&c, &j)

	assert.Equal(t, []string{"Go", "go"}, got.SkillMatches)
	assert.Equal(t, 100, got.MatchScore)
}

func TestScore_JobSkillMustContainCandidateSkill(t *testing.T) {
	j := job("Frontend", "Acme", "", "", models.JobTypeFullTime, []string{"JavaScript"}, nil)
	short := candidate("Short", "", "", "", models.AvailabilityOpen, "java")
	long := candidate("Long", "", "", "", models.AvailabilityOpen, "JavaScript ES2020")

	assert.Equal(t, 100, matching.Score(&short, &j).MatchScore)
	assert.Zero(t, matching.Score(&long, &j).MatchScore)
}

func TestForJob_ThresholdAndOrdering(t *testing.T) {
	j := job("Polyglot", "Acme", "", "", models.JobTypeFullTime,
		[]string{"Go", "Rust", "Python", "Java"},
		[]string{"Docker", "Kubernetes"})

	thirty := candidate("Thirty", "", "", "", models.AvailabilityOpen, "Docker", "Kubernetes")
	ninety := candidate("Ninety", "", "", "", models.AvailabilityNotAvailable, "Go", "Rust", "Python", "Docker")
	none := candidate("None", "", "", "", models.AvailabilityOpen, "Figma")
	fiftyFive := candidate("FiftyFive", "", "", "", models.AvailabilityAvailable, "Go", "Docker", "Kubernetes")

	got := matching.ForJob(j, []models.Candidate{thirty, ninety, none, fiftyFive})

	require.Len(t, got, 3)
	scores := []int{got[0].MatchScore, got[1].MatchScore, got[2].MatchScore}
	assert.Equal(t, []int{90, 55, 30}, scores)
	assert.Equal(t, []string{"Ninety", "FiftyFive", "Thirty"},
		[]string{got[0].Candidate.Name, got[1].Candidate.Name, got[2].Candidate.Name})
}

func TestForJob_ExactlyTwentyIsExcluded(t *testing.T) {
	j := job("Trio", "Acme", "", "", models.JobTypeFullTime, []string{"Go", "Rust", "Python"}, []string{"Docker"})
	c := candidate("Edge", "", "", "", models.AvailabilityOpen, "Docker")

	require.Equal(t, 20, matching.Score(&c, &j).MatchScore)
	assert.Empty(t, matching.ForJob(j, []models.Candidate{c}))
}

func TestForCandidate_RanksJobs(t *testing.T) {
	c := candidate("Sam", "", "", "", models.AvailabilityAvailable, "Go", "Docker")
	weak := job("Weak", "Acme", "", "", models.JobTypeFullTime, []string{"Go", "Rust", "Python"}, nil)
	strong := job("Strong", "Acme", "", "", models.JobTypeFullTime, []string{"Go"}, []string{"Docker"})
	unrelated := job("Unrelated", "Acme", "", "", models.JobTypeFullTime, []string{"Figma"}, nil)

	got := matching.ForCandidate(c, []models.Job{weak, unrelated, strong})

	require.Len(t, got, 2)
	assert.Equal(t, "Strong", got[0].Job.Title)
	assert.Equal(t, 100, got[0].MatchScore)
	assert.Equal(t, "Weak", got[1].Job.Title)
	assert.Equal(t, 33, got[1].MatchScore)
	assert.Equal(t, matching.TierWeak, got[1].Tier)
}

func TestForCandidate_EmptyPool(t *testing.T) {
	c := candidate("Sam", "", "", "", models.AvailabilityAvailable, "Go")

	got := matching.ForCandidate(c, nil)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRank_StableOnTies(t *testing.T) {
	in := []matching.Result{
		{MatchScore: 50, Candidate: models.Candidate{Name: "first"}},
		{MatchScore: 70, Candidate: models.Candidate{Name: "top"}},
		{MatchScore: 50, Candidate: models.Candidate{Name: "second"}},
		{MatchScore: 10, Candidate: models.Candidate{Name: "dropped"}},
	}

	got := matching.Rank(in)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"top", "first", "second"},
		[]string{got[0].Candidate.Name, got[1].Candidate.Name, got[2].Candidate.Name})
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		score int
		want  matching.Tier
	}{
		{100, matching.TierStrong},
		{80, matching.TierStrong},
		{79, matching.TierGood},
		{60, matching.TierGood},
		{59, matching.TierWeak},
		{21, matching.TierWeak},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, matching.TierFor(tt.score), "score %d", tt.score)
	}
}

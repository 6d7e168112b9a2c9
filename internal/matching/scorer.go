package matching

import (
	"math"
	"sort"

	"alfredoptarigan/talent-matcher/internal/models"
)

const (
	// MinScore is the highest score still treated as noise; results must beat it.
	MinScore = 20

	overlapWeight  = 60.0
	requiredWeight = 40.0
	maxScore       = 100
)

// Tier buckets a score the way the dashboard colours it.
type Tier string

const (
	TierStrong Tier = "strong"
	TierGood   Tier = "good"
	TierWeak   Tier = "weak"
)

func TierFor(score int) Tier {
	switch {
	case score >= 80:
		return TierStrong
	case score >= 60:
		return TierGood
	default:
		return TierWeak
	}
}

// Result is a computed, unsaved candidate/job pairing.
type Result struct {
	Job          models.Job       `json:"job"`
	Candidate    models.Candidate `json:"candidate"`
	MatchScore   int              `json:"match_score"`
	SkillMatches []string         `json:"skill_matches"`
	Tier         Tier             `json:"tier"`
}

// Score rates one candidate against one job.
//
// A candidate skill counts as matched when some job skill contains it,
// ignoring case. Overlap against required+preferred is worth 60 points and
// overlap against required alone another 40, both relative to the number of
// required skills (at least 1). The sum is rounded and capped at 100.
func Score(candidate *models.Candidate, job *models.Job) Result {
	all := job.AllSkills()

	skillMatches := make([]string, 0)
	required := 0
	for _, skill := range candidate.Skills {
		if anyContainsFold(all, skill) {
			skillMatches = append(skillMatches, skill)
		}
		if anyContainsFold(job.RequiredSkills, skill) {
			required++
		}
	}

	denominator := float64(max(len(job.RequiredSkills), 1))
	skillScore := float64(len(skillMatches)) / denominator * overlapWeight
	requiredScore := float64(required) / denominator * requiredWeight

	score := min(maxScore, int(math.Round(skillScore+requiredScore)))

	return Result{
		Job:          *job,
		Candidate:    *candidate,
		MatchScore:   score,
		SkillMatches: skillMatches,
		Tier:         TierFor(score),
	}
}

// ForCandidate scores one candidate against each job and ranks the results.
// Callers pass open jobs only.
func ForCandidate(candidate models.Candidate, jobs []models.Job) []Result {
	results := make([]Result, 0, len(jobs))
	for i := range jobs {
		results = append(results, Score(&candidate, &jobs[i]))
	}
	return Rank(results)
}

// ForJob scores every candidate against one job and ranks the results.
func ForJob(job models.Job, candidates []models.Candidate) []Result {
	results := make([]Result, 0, len(candidates))
	for i := range candidates {
		results = append(results, Score(&candidates[i], &job))
	}
	return Rank(results)
}

// Rank drops results scoring MinScore or less and orders the rest by score,
// highest first. Ties keep their input order.
func Rank(results []Result) []Result {
	kept := make([]Result, 0, len(results))
	for _, r := range results {
		if r.MatchScore > MinScore {
			kept = append(kept, r)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].MatchScore > kept[j].MatchScore
	})

	return kept
}

// Package matching holds the filtering and scoring rules shared by the
// candidate and job listings and the match finder. Everything here is a pure
// function of its inputs.
package matching

import (
	"sort"
	"strings"

	"alfredoptarigan/talent-matcher/internal/models"
)

// CandidateCriteria narrows a candidate collection. A nil pointer or an empty
// Skills slice imposes no constraint.
type CandidateCriteria struct {
	Search       *string
	Skills       []string
	Location     *string
	Availability *models.Availability
}

// JobCriteria narrows a job collection. The caller is expected to pass open
// jobs only.
type JobCriteria struct {
	Search   *string
	Skills   []string
	Location *string
	Type     *models.JobType
}

// Optional returns nil for an empty string, so form values can be passed
// straight through as criteria.
func Optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (c CandidateCriteria) IsEmpty() bool {
	return c.Search == nil && len(c.Skills) == 0 && c.Location == nil && c.Availability == nil
}

// Matches reports whether a single candidate satisfies every supplied criterion.
func (c CandidateCriteria) Matches(candidate *models.Candidate) bool {
	if c.Search != nil && !anyContainsFold([]string{candidate.Name, candidate.Title, candidate.Bio}, *c.Search) {
		return false
	}
	if len(c.Skills) > 0 && !skillsOverlap(candidate.Skills, c.Skills) {
		return false
	}
	if c.Location != nil && !containsFold(candidate.Location, *c.Location) {
		return false
	}
	if c.Availability != nil && candidate.Availability != *c.Availability {
		return false
	}
	return true
}

func (c JobCriteria) IsEmpty() bool {
	return c.Search == nil && len(c.Skills) == 0 && c.Location == nil && c.Type == nil
}

func (c JobCriteria) Matches(job *models.Job) bool {
	if c.Search != nil && !anyContainsFold([]string{job.Title, job.Company, job.Description}, *c.Search) {
		return false
	}
	if len(c.Skills) > 0 && !skillsOverlap(job.AllSkills(), c.Skills) {
		return false
	}
	if c.Location != nil && !containsFold(job.Location, *c.Location) {
		return false
	}
	if c.Type != nil && job.Type != *c.Type {
		return false
	}
	return true
}

// FilterCandidates returns the candidates matching every criterion, in input
// order. Empty criteria return the input slice as is.
func FilterCandidates(candidates []models.Candidate, criteria CandidateCriteria) []models.Candidate {
	if criteria.IsEmpty() {
		return candidates
	}

	filtered := make([]models.Candidate, 0, len(candidates))
	for i := range candidates {
		if criteria.Matches(&candidates[i]) {
			filtered = append(filtered, candidates[i])
		}
	}
	return filtered
}

// FilterJobs returns the jobs matching every criterion, in input order.
func FilterJobs(jobs []models.Job, criteria JobCriteria) []models.Job {
	if criteria.IsEmpty() {
		return jobs
	}

	filtered := make([]models.Job, 0, len(jobs))
	for i := range jobs {
		if criteria.Matches(&jobs[i]) {
			filtered = append(filtered, jobs[i])
		}
	}
	return filtered
}

// SkillFacet returns the sorted set of distinct skills across candidates.
// Skills are kept as spelled by their owners.
func SkillFacet(candidates []models.Candidate) []string {
	seen := make(map[string]struct{})
	skills := make([]string, 0)
	for _, c := range candidates {
		for _, s := range c.Skills {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			skills = append(skills, s)
		}
	}
	sort.Strings(skills)
	return skills
}

// containsFold reports whether needle is a case-insensitive substring of haystack.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func anyContainsFold(fields []string, needle string) bool {
	for _, f := range fields {
		if containsFold(f, needle) {
			return true
		}
	}
	return false
}

// skillsOverlap reports whether any wanted skill is a substring of any owned skill.
func skillsOverlap(owned, wanted []string) bool {
	for _, w := range wanted {
		if anyContainsFold(owned, w) {
			return true
		}
	}
	return false
}

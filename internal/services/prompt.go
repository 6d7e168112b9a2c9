package services

import (
	"fmt"
	"strings"

	"alfredoptarigan/talent-matcher/internal/models"
)

// maxResumeExcerpt bounds the résumé text placed in a prompt, in runes.
const maxResumeExcerpt = 4000

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildMatchSummaryPrompt asks for a short recruiter note on a saved match.
func (pb *PromptBuilder) BuildMatchSummaryPrompt(match *models.Match, candidate *models.Candidate, job *models.Job) string {
	resume := "(no résumé uploaded)"
	if candidate.ResumeText != nil && *candidate.ResumeText != "" {
		resume = truncateRunes(*candidate.ResumeText, maxResumeExcerpt)
	}

	return fmt.Sprintf(`You are a technical recruiter writing an internal note about a candidate shortlisted for a role.

JOB:
Title: %s
Company: %s
Location: %s
Type: %s
Experience level: %s
Required skills: %s
Preferred skills: %s
Description:
%s

CANDIDATE:
Name: %s
Title: %s
Location: %s
Experience: %d years
Skills: %s
Bio:
%s

RÉSUMÉ EXCERPT:
%s

SKILL MATCH SCORE: %d/100
MATCHED SKILLS: %s

Write 3-4 sentences for the hiring manager: what makes this candidate relevant, which required skills appear to be missing, and one question worth asking in a first call.
Do not restate the score. Return plain text only, no markdown.`,
		job.Title, job.Company, job.Location, job.Type, job.ExperienceLevel,
		joinOrNone(job.RequiredSkills), joinOrNone(job.PreferredSkills), job.Description,
		candidate.Name, candidate.Title, candidate.Location, candidate.Experience,
		joinOrNone(candidate.Skills), candidate.Bio,
		resume,
		match.MatchScore, joinOrNone(match.SkillMatches),
	)
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

package models

type CreateCandidateRequest struct {
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Title             string   `json:"title"`
	Location          string   `json:"location"`
	Experience        int      `json:"experience"`
	Skills            []string `json:"skills"`
	Bio               string   `json:"bio"`
	Availability      string   `json:"availability"`
	SalaryExpectation *float64 `json:"salary_expectation"`
	PortfolioURL      *string  `json:"portfolio_url"`
	LinkedInURL       *string  `json:"linkedin_url"`
	GithubURL         *string  `json:"github_url"`
}

type CreateJobRequest struct {
	Title           string      `json:"title"`
	Company         string      `json:"company"`
	Location        string      `json:"location"`
	Type            string      `json:"type"`
	Description     string      `json:"description"`
	RequiredSkills  []string    `json:"required_skills"`
	PreferredSkills []string    `json:"preferred_skills"`
	ExperienceLevel string      `json:"experience_level"`
	SalaryRange     SalaryRange `json:"salary_range"`
}

type CreateMatchRequest struct {
	CandidateID  string   `json:"candidate_id"`
	JobID        string   `json:"job_id"`
	MatchScore   int      `json:"match_score"`
	SkillMatches []string `json:"skill_matches"`
}

type UpdateMatchStatusRequest struct {
	Status string `json:"status"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	PageCount    int    `json:"page_count"`
}

type DashboardStats struct {
	TotalCandidates int64 `json:"total_candidates"`
	OpenJobs        int64 `json:"open_jobs"`
	SavedMatches    int64 `json:"saved_matches"`
}

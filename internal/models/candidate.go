package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Candidate struct {
	ID                uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Name              string       `gorm:"type:text;not null" json:"name"`
	Email             string       `gorm:"type:text" json:"email"`
	Title             string       `gorm:"type:text" json:"title"`
	Bio               string       `gorm:"type:text" json:"bio"`
	Location          string       `gorm:"type:text;index" json:"location"`
	Experience        int          `gorm:"not null;default:0" json:"experience"`
	Skills            StringList   `json:"skills"`
	Availability      Availability `gorm:"type:text;not null;index" json:"availability"`
	SalaryExpectation *float64     `gorm:"type:numeric" json:"salary_expectation,omitempty"`
	PortfolioURL      *string      `gorm:"type:text" json:"portfolio_url,omitempty"`
	LinkedInURL       *string      `gorm:"type:text" json:"linkedin_url,omitempty"`
	GithubURL         *string      `gorm:"type:text" json:"github_url,omitempty"`
	ResumeFile        *string      `gorm:"type:text" json:"resume_file,omitempty"`
	ResumeText        *string      `gorm:"type:text" json:"-"`
	CreatedBy         string       `gorm:"type:text;not null;index" json:"created_by"`
	CreatedAt         time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Candidate) TableName() string {
	return "candidates"
}

func (c *Candidate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// CandidatePatch carries a partial candidate update. Nil fields are left
// untouched.
type CandidatePatch struct {
	Name              *string       `json:"name"`
	Email             *string       `json:"email"`
	Title             *string       `json:"title"`
	Bio               *string       `json:"bio"`
	Location          *string       `json:"location"`
	Experience        *int          `json:"experience"`
	Skills            *[]string     `json:"skills"`
	Availability      *Availability `json:"availability"`
	SalaryExpectation *float64      `json:"salary_expectation"`
	PortfolioURL      *string       `json:"portfolio_url"`
	LinkedInURL       *string       `json:"linkedin_url"`
	GithubURL         *string       `json:"github_url"`
}

// Columns returns the column/value pairs to write for the supplied fields.
func (p CandidatePatch) Columns() map[string]interface{} {
	updates := map[string]interface{}{}

	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.Email != nil {
		updates["email"] = *p.Email
	}
	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if p.Bio != nil {
		updates["bio"] = *p.Bio
	}
	if p.Location != nil {
		updates["location"] = *p.Location
	}
	if p.Experience != nil {
		updates["experience"] = *p.Experience
	}
	if p.Skills != nil {
		updates["skills"] = StringList(*p.Skills)
	}
	if p.Availability != nil {
		updates["availability"] = *p.Availability
	}
	if p.SalaryExpectation != nil {
		updates["salary_expectation"] = *p.SalaryExpectation
	}
	if p.PortfolioURL != nil {
		updates["portfolio_url"] = *p.PortfolioURL
	}
	if p.LinkedInURL != nil {
		updates["linkedin_url"] = *p.LinkedInURL
	}
	if p.GithubURL != nil {
		updates["github_url"] = *p.GithubURL
	}

	return updates
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SalaryRange struct {
	Min float64 `gorm:"type:numeric" json:"min"`
	Max float64 `gorm:"type:numeric" json:"max"`
}

type Job struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string          `gorm:"type:text;not null" json:"title"`
	Company         string          `gorm:"type:text;index" json:"company"`
	Location        string          `gorm:"type:text;index" json:"location"`
	Type            JobType         `gorm:"type:text;not null;index" json:"type"`
	Description     string          `gorm:"type:text" json:"description"`
	RequiredSkills  StringList      `json:"required_skills"`
	PreferredSkills StringList      `json:"preferred_skills"`
	ExperienceLevel ExperienceLevel `gorm:"type:text;not null" json:"experience_level"`
	SalaryRange     SalaryRange     `gorm:"embedded;embeddedPrefix:salary_" json:"salary_range"`
	Status          JobStatus       `gorm:"type:text;not null;index" json:"status"`
	PostedBy        string          `gorm:"type:text;not null;index" json:"posted_by"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Job) TableName() string {
	return "jobs"
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

// AllSkills returns required followed by preferred skills.
func (j *Job) AllSkills() []string {
	skills := make([]string, 0, len(j.RequiredSkills)+len(j.PreferredSkills))
	skills = append(skills, j.RequiredSkills...)
	return append(skills, j.PreferredSkills...)
}

type JobPatch struct {
	Title           *string          `json:"title"`
	Company         *string          `json:"company"`
	Location        *string          `json:"location"`
	Type            *JobType         `json:"type"`
	Description     *string          `json:"description"`
	RequiredSkills  *[]string        `json:"required_skills"`
	PreferredSkills *[]string        `json:"preferred_skills"`
	ExperienceLevel *ExperienceLevel `json:"experience_level"`
	SalaryRange     *SalaryRange     `json:"salary_range"`
	Status          *JobStatus       `json:"status"`
}

func (p JobPatch) Columns() map[string]interface{} {
	updates := map[string]interface{}{}

	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if p.Company != nil {
		updates["company"] = *p.Company
	}
	if p.Location != nil {
		updates["location"] = *p.Location
	}
	if p.Type != nil {
		updates["type"] = *p.Type
	}
	if p.Description != nil {
		updates["description"] = *p.Description
	}
	if p.RequiredSkills != nil {
		updates["required_skills"] = StringList(*p.RequiredSkills)
	}
	if p.PreferredSkills != nil {
		updates["preferred_skills"] = StringList(*p.PreferredSkills)
	}
	if p.ExperienceLevel != nil {
		updates["experience_level"] = *p.ExperienceLevel
	}
	if p.SalaryRange != nil {
		updates["salary_min"] = p.SalaryRange.Min
		updates["salary_max"] = p.SalaryRange.Max
	}
	if p.Status != nil {
		updates["status"] = *p.Status
	}

	return updates
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Match is a user-confirmed candidate/job pairing. Scores computed on demand
// by the matcher are never stored here unless a user asks for it.
type Match struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	CandidateID   uuid.UUID     `gorm:"type:uuid;not null;index" json:"candidate_id"`
	JobID         uuid.UUID     `gorm:"type:uuid;not null;index" json:"job_id"`
	MatchScore    int           `gorm:"not null;index" json:"match_score"`
	SkillMatches  StringList    `json:"skill_matches"`
	Status        MatchStatus   `gorm:"type:text;not null;index" json:"status"`
	CreatedBy     string        `gorm:"type:text;not null" json:"created_by"`
	Summary       *string       `gorm:"type:text" json:"summary,omitempty"`
	SummaryStatus SummaryStatus `gorm:"type:text;not null;index" json:"summary_status"`
	SummaryError  *string       `gorm:"type:text" json:"summary_error,omitempty"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Candidate Candidate `gorm:"foreignKey:CandidateID" json:"-"`
	Job       Job      `gorm:"foreignKey:JobID" json:"-"`
}

func (Match) TableName() string {
	return "matches"
}

func (m *Match) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Tables lists every model handled by AutoMigrate, in dependency order.
func Tables() []interface{} {
	return []interface{}{
		&Candidate{},
		&Job{},
		&Match{},
	}
}

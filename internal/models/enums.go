package models

import "fmt"

type Availability string

const (
	AvailabilityAvailable    Availability = "available"
	AvailabilityOpen         Availability = "open"
	AvailabilityNotAvailable Availability = "not-available"
)

func (a Availability) Valid() bool {
	switch a {
	case AvailabilityAvailable, AvailabilityOpen, AvailabilityNotAvailable:
		return true
	}
	return false
}

// ParseAvailability converts a raw string to an Availability, returning an
// error for unknown values.
func ParseAvailability(s string) (Availability, error) {
	if a := Availability(s); a.Valid() {
		return a, nil
	}
	return "", fmt.Errorf("unknown availability %q", s)
}

type JobType string

const (
	JobTypeFullTime JobType = "full-time"
	JobTypePartTime JobType = "part-time"
	JobTypeContract JobType = "contract"
	JobTypeRemote   JobType = "remote"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeRemote:
		return true
	}
	return false
}

func ParseJobType(s string) (JobType, error) {
	if t := JobType(s); t.Valid() {
		return t, nil
	}
	return "", fmt.Errorf("unknown job type %q", s)
}

type ExperienceLevel string

const (
	ExperienceEntry  ExperienceLevel = "entry"
	ExperienceMid    ExperienceLevel = "mid"
	ExperienceSenior ExperienceLevel = "senior"
	ExperienceLead   ExperienceLevel = "lead"
)

func (l ExperienceLevel) Valid() bool {
	switch l {
	case ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceLead:
		return true
	}
	return false
}

func ParseExperienceLevel(s string) (ExperienceLevel, error) {
	if l := ExperienceLevel(s); l.Valid() {
		return l, nil
	}
	return "", fmt.Errorf("unknown experience level %q", s)
}

type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
	JobStatusDraft  JobStatus = "draft"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusOpen, JobStatusClosed, JobStatusDraft:
		return true
	}
	return false
}

func ParseJobStatus(s string) (JobStatus, error) {
	if st := JobStatus(s); st.Valid() {
		return st, nil
	}
	return "", fmt.Errorf("unknown job status %q", s)
}

type MatchStatus string

const (
	MatchStatusPending       MatchStatus = "pending"
	MatchStatusInterested    MatchStatus = "interested"
	MatchStatusNotInterested MatchStatus = "not-interested"
	MatchStatusContacted     MatchStatus = "contacted"
)

func (s MatchStatus) Valid() bool {
	switch s {
	case MatchStatusPending, MatchStatusInterested, MatchStatusNotInterested, MatchStatusContacted:
		return true
	}
	return false
}

func ParseMatchStatus(s string) (MatchStatus, error) {
	if st := MatchStatus(s); st.Valid() {
		return st, nil
	}
	return "", fmt.Errorf("unknown match status %q", s)
}

// SummaryStatus tracks background summary generation for a persisted match.
type SummaryStatus string

const (
	SummaryNone       SummaryStatus = "none"
	SummaryQueued     SummaryStatus = "queued"
	SummaryProcessing SummaryStatus = "processing"
	SummaryCompleted  SummaryStatus = "completed"
	SummaryFailed     SummaryStatus = "failed"
)

package model

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// JobStatus is lifecycle state of a job posting
type JobStatus string

const (
	// JobStatusActive jobs are publicly listed and accept applications
	JobStatusActive JobStatus = "active"
	// JobStatusClosed jobs stay viewable by id but are hidden from listings
	JobStatusClosed JobStatus = "closed"
)

// ParseJobStatus converts raw input into a JobStatus.
func ParseJobStatus(s string) (JobStatus, error) {
	switch st := JobStatus(s); st {
	case JobStatusActive, JobStatusClosed:
		return st, nil
	default:
		return "", fmt.Errorf("unknown job status %q", s)
	}
}

// JobTypes lists the job types offered on the posting form.
var JobTypes = []string{"full-time", "part-time", "contract", "internship"}

// EditableJobInfo is part of job that recruiter can edit
type EditableJobInfo struct {
	Title        string  `gorm:"type:varchar(200);not null" json:"title" form:"title"`
	Company      string  `gorm:"type:varchar(200);not null;index" json:"company" form:"company"`
	Location     string  `gorm:"type:varchar(200);not null" json:"location" form:"location"`
	JobType      string  `gorm:"type:varchar(50)" json:"job_type" form:"job_type"`
	Experience   string  `gorm:"type:varchar(50)" json:"experience" form:"experience"`
	Salary       *string `gorm:"type:varchar(100)" json:"salary" form:"salary"`
	Skills       string  `gorm:"type:text" json:"skills" form:"skills"`
	Description  string  `gorm:"type:text;not null" json:"description" form:"description"`
	Requirements string  `gorm:"type:text" json:"requirements" form:"requirements"`
}

// Job is gorm model of a job posting. RecruiterID is set once on create.
type Job struct {
	ID          uint  `gorm:"primaryKey;autoIncrement" json:"id"`
	RecruiterID uint  `gorm:"not null;index;<-:create" json:"recruiter_id"`
	Recruiter   *User `gorm:"foreignKey:RecruiterID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"recruiter,omitempty"`
	EditableJobInfo
	Status    JobStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	SalaryMin *int      `gorm:"index" json:"-"`
	SalaryMax *int      `gorm:"index" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// BeforeSave keeps the parsed salary bounds in step with the salary text.
func (j *Job) BeforeSave(tx *gorm.DB) error {
	if j.Status == "" {
		j.Status = JobStatusActive
	}
	j.SalaryMin, j.SalaryMax = nil, nil
	if j.Salary == nil {
		return nil
	}
	if lo, hi, ok := ParseSalaryRange(*j.Salary); ok {
		j.SalaryMin, j.SalaryMax = &lo, &hi
	}
	return nil
}

// IsActive reports whether job is open for listing and applications.
func (j Job) IsActive() bool {
	return j.Status == JobStatusActive
}

// SkillList splits comma separated skills into trimmed entries.
func (j Job) SkillList() []string {
	var skills []string
	for _, s := range strings.Split(j.Skills, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// SalaryText returns the salary or empty string when not given.
func (j Job) SalaryText() string {
	if j.Salary == nil {
		return ""
	}
	return *j.Salary
}

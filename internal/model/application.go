package model

import (
	"fmt"
	"time"
)

// ApplicationStatus is review state of an application.
// Recruiters may move an application between any two statuses.
type ApplicationStatus string

const (
	// ApplicationStatusPending indicates that the application is waiting for review
	ApplicationStatusPending ApplicationStatus = "pending"
	// ApplicationStatusReviewed indicates that the recruiter has looked at the application
	ApplicationStatusReviewed ApplicationStatus = "reviewed"
	// ApplicationStatusAccepted indicates that the applicant has been accepted
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	// ApplicationStatusRejected indicates that the application has been rejected
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// ApplicationStatuses in display order
var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusPending,
	ApplicationStatusReviewed,
	ApplicationStatusAccepted,
	ApplicationStatusRejected,
}

// ParseApplicationStatus converts raw input into an ApplicationStatus.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	for _, st := range ApplicationStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// CanTransition reports whether status may change from one value to another.
// Every valid status is reachable from every other one.
func (s ApplicationStatus) CanTransition(to ApplicationStatus) bool {
	_, fromErr := ParseApplicationStatus(string(s))
	_, toErr := ParseApplicationStatus(string(to))
	return fromErr == nil && toErr == nil
}

// Application represents a job seeker's submission to a job.
// (JobID, UserID) is unique.
type Application struct {
	ID          uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	JobID       uint              `gorm:"not null;uniqueIndex:idx_applications_job_user;<-:create" json:"job_id"`
	Job         *Job              `gorm:"foreignKey:JobID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"job,omitempty"`
	UserID      uint              `gorm:"not null;uniqueIndex:idx_applications_job_user;index;<-:create" json:"user_id"`
	Applicant   *User             `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"applicant,omitempty"`
	CoverLetter string            `gorm:"type:text" json:"cover_letter"`
	ResumeURL   *string           `gorm:"type:varchar(500)" json:"resume_url"`
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	AppliedAt   time.Time         `gorm:"autoCreateTime" json:"applied_at"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

// HasResume reports whether a resume was uploaded with the application.
func (a Application) HasResume() bool {
	return a.ResumeURL != nil && *a.ResumeURL != ""
}

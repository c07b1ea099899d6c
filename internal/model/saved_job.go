package model

import "time"

// SavedJob is a user's bookmark on a job. (UserID, JobID) is unique.
type SavedJob struct {
	ID      uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  uint      `gorm:"not null;uniqueIndex:idx_saved_jobs_user_job" json:"user_id"`
	User    *User     `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	JobID   uint      `gorm:"not null;uniqueIndex:idx_saved_jobs_user_job;index" json:"job_id"`
	Job     *Job      `gorm:"foreignKey:JobID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"job,omitempty"`
	SavedAt time.Time `gorm:"autoCreateTime" json:"saved_at"`
}

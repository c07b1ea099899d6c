package database

import (
	"gorm.io/gorm"

	"github.com/sadhna1118/job-portal-website/internal/model"
	"github.com/sadhna1118/job-portal-website/internal/utilities"
)

// ApplicationsPerPage is page size of a seeker's application list
const ApplicationsPerPage = 10

// HasApplied reports whether userID already applied to jobID.
func HasApplied(db *gorm.DB, jobID, userID uint) (bool, error) {
	var count int64
	err := db.Model(&model.Application{}).
		Where("job_id = ? AND user_id = ?", jobID, userID).
		Count(&count).Error
	return count > 0, err
}

// CreateApplication inserts app in pending status. A second application
// by the same user to the same job fails with utilities.ErrAlreadyApplied.
func CreateApplication(tx *gorm.DB, app *model.Application) error {
	applied, err := HasApplied(tx, app.JobID, app.UserID)
	if err != nil {
		return err
	}
	if applied {
		return utilities.ErrAlreadyApplied
	}

	app.Status = model.ApplicationStatusPending
	if err := tx.Create(app).Error; err != nil {
		if IsUniqueViolation(err) {
			return utilities.ErrAlreadyApplied
		}
		return err
	}
	return nil
}

// GetApplication loads application id with its job.
func GetApplication(db *gorm.DB, id uint) (model.Application, error) {
	var app model.Application
	if err := db.Preload("Job").First(&app, id).Error; err != nil {
		return model.Application{}, notFound(err)
	}
	return app, nil
}

// UpdateApplicationStatus sets app's status and refreshes its update time.
func UpdateApplicationStatus(tx *gorm.DB, app *model.Application, status model.ApplicationStatus) error {
	if !app.Status.CanTransition(status) {
		return utilities.ValidationErrors{utilities.MsgStatusInvalid}
	}
	return tx.Model(app).Update("status", status).Error
}

// ApplicationPage is one page of a seeker's applications.
type ApplicationPage struct {
	Applications []model.Application `json:"applications"`
	Pagination
	Status string           `json:"status"`
	Counts map[string]int64 `json:"status_counts"`
}

// ListUserApplications pages through userID's applications, newest first.
// status "all" or empty lists every status.
func ListUserApplications(db *gorm.DB, userID uint, status string, page int) (ApplicationPage, error) {
	if status == "" {
		status = filterAll
	}
	res := ApplicationPage{Status: status}

	q := db.Model(&model.Application{}).Where("user_id = ?", userID)
	if status != filterAll {
		q = q.Where("status = ?", status)
	}
	p, err := Paginate(q, "applied_at DESC, id DESC", page, ApplicationsPerPage, &res.Applications, "Job")
	if err != nil {
		return ApplicationPage{}, err
	}
	res.Pagination = p

	if res.Counts, err = ApplicationStatusCounts(db, userID); err != nil {
		return ApplicationPage{}, err
	}
	return res, nil
}

// ApplicationStatusCounts counts userID's applications per status, plus "all".
func ApplicationStatusCounts(db *gorm.DB, userID uint) (map[string]int64, error) {
	counts := map[string]int64{filterAll: 0}
	for _, st := range model.ApplicationStatuses {
		counts[string(st)] = 0
	}

	var rows []struct {
		Status string
		Count  int64
	}
	if err := db.Model(&model.Application{}).
		Select("status, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		counts[r.Status] += r.Count
		counts[filterAll] += r.Count
	}
	return counts, nil
}

// UserApplications lists every application of userID with its job, newest first.
func UserApplications(db *gorm.DB, userID uint) ([]model.Application, error) {
	apps := []model.Application{}
	err := db.Preload("Job").
		Where("user_id = ?", userID).
		Order("applied_at DESC, id DESC").
		Find(&apps).Error
	return apps, err
}

// JobApplications lists applications to jobID with their applicants, newest first.
func JobApplications(db *gorm.DB, jobID uint) ([]model.Application, error) {
	apps := []model.Application{}
	err := db.Preload("Applicant").
		Where("job_id = ?", jobID).
		Order("applied_at DESC, id DESC").
		Find(&apps).Error
	return apps, err
}

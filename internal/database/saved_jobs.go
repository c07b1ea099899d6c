package database

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sadhna1118/job-portal-website/internal/model"
)

// SavedJobsPerPage is page size of the bookmark list
const SavedJobsPerPage = 10

// ToggleSave flips userID's bookmark on jobID and reports whether the job is now saved.
func ToggleSave(tx *gorm.DB, userID, jobID uint) (bool, error) {
	res := tx.Where("user_id = ? AND job_id = ?", userID, jobID).Delete(&model.SavedJob{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	// A concurrent toggle may have inserted the pair already; either way it is saved.
	saved := model.SavedJob{UserID: userID, JobID: jobID}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&saved).Error; err != nil {
		return false, err
	}
	return true, nil
}

// IsSaved reports whether userID bookmarked jobID.
func IsSaved(db *gorm.DB, userID, jobID uint) (bool, error) {
	var count int64
	err := db.Model(&model.SavedJob{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&count).Error
	return count > 0, err
}

// SavedJobIDs returns ids of every job userID bookmarked.
func SavedJobIDs(db *gorm.DB, userID uint) ([]uint, error) {
	ids := []uint{}
	err := db.Model(&model.SavedJob{}).
		Where("user_id = ?", userID).
		Order("job_id").
		Pluck("job_id", &ids).Error
	return ids, err
}

// SavedJobPage is one page of a user's bookmarks.
type SavedJobPage struct {
	SavedJobs []model.SavedJob `json:"saved_jobs"`
	Pagination
}

// ListSavedJobs pages through userID's bookmarks on active jobs, newest bookmark first.
func ListSavedJobs(db *gorm.DB, userID uint, page int) (SavedJobPage, error) {
	var res SavedJobPage
	q := db.Model(&model.SavedJob{}).
		Joins("JOIN jobs ON jobs.id = saved_jobs.job_id").
		Where("saved_jobs.user_id = ? AND jobs.status = ?", userID, model.JobStatusActive)

	p, err := Paginate(q, "saved_jobs.saved_at DESC, saved_jobs.id DESC", page, SavedJobsPerPage, &res.SavedJobs, "Job")
	if err != nil {
		return SavedJobPage{}, err
	}
	res.Pagination = p
	return res, nil
}

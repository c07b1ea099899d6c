package database

import (
	"strings"

	"gorm.io/gorm"

	"github.com/sadhna1118/job-portal-website/internal/model"
	"github.com/sadhna1118/job-portal-website/internal/utilities"
)

// GetUser loads user id.
func GetUser(db *gorm.DB, id uint) (model.User, error) {
	var user model.User
	if err := db.First(&user, id).Error; err != nil {
		return model.User{}, notFound(err)
	}
	return user, nil
}

// FindUserByEmail loads the user with email, compared case-insensitively.
func FindUserByEmail(db *gorm.DB, email string) (model.User, error) {
	var user model.User
	email = strings.ToLower(strings.TrimSpace(email))
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return model.User{}, notFound(err)
	}
	return user, nil
}

// EmailExists reports whether an account uses email.
func EmailExists(db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.Model(&model.User{}).Where("email = ?", strings.ToLower(email)).Count(&count).Error
	return count > 0, err
}

// UsernameExists reports whether an account uses username.
func UsernameExists(db *gorm.DB, username string) (bool, error) {
	var count int64
	err := db.Model(&model.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// CreateUser inserts user. A clash on email or username fails with a conflict error.
func CreateUser(tx *gorm.DB, user *model.User) error {
	if exists, err := EmailExists(tx, user.Email); err != nil {
		return err
	} else if exists {
		return utilities.ErrEmailTaken
	}
	if exists, err := UsernameExists(tx, user.Username); err != nil {
		return err
	} else if exists {
		return utilities.ErrUsernameTaken
	}

	if err := tx.Create(user).Error; err != nil {
		if IsUniqueViolation(err) {
			return utilities.ErrAccountTaken
		}
		return err
	}
	return nil
}

// ListUsers lists all accounts, newest first.
func ListUsers(db *gorm.DB) ([]model.User, error) {
	users := []model.User{}
	err := db.Order("created_at DESC, id DESC").Find(&users).Error
	return users, err
}

// ListAllJobs lists jobs of every status with their recruiters, newest first.
func ListAllJobs(db *gorm.DB) ([]model.Job, error) {
	jobs := []model.Job{}
	err := db.Preload("Recruiter").Order("created_at DESC, id DESC").Find(&jobs).Error
	return jobs, err
}

// DeleteUser removes user id with everything that references it: posted jobs
// and their applications and bookmarks, own applications and bookmarks.
// Admin accounts cannot be deleted. It returns resume references of removed applications.
func DeleteUser(tx *gorm.DB, id uint) ([]string, error) {
	user, err := GetUser(tx, id)
	if err != nil {
		return nil, err
	}
	if user.Role == model.RoleAdmin {
		return nil, utilities.ErrForbidden
	}

	var jobIDs []uint
	if err := tx.Model(&model.Job{}).Where("recruiter_id = ?", id).Pluck("id", &jobIDs).Error; err != nil {
		return nil, err
	}

	var resumes []string
	for _, jobID := range jobIDs {
		r, err := DeleteJob(tx, jobID)
		if err != nil {
			return nil, err
		}
		resumes = append(resumes, r...)
	}

	var own []string
	if err := tx.Model(&model.Application{}).
		Where("user_id = ? AND resume_url IS NOT NULL AND resume_url <> ''", id).
		Pluck("resume_url", &own).Error; err != nil {
		return nil, err
	}
	resumes = append(resumes, own...)

	if err := tx.Where("user_id = ?", id).Delete(&model.Application{}).Error; err != nil {
		return nil, err
	}
	if err := tx.Where("user_id = ?", id).Delete(&model.SavedJob{}).Error; err != nil {
		return nil, err
	}
	if err := tx.Delete(&model.User{}, id).Error; err != nil {
		return nil, err
	}
	return resumes, nil
}

// AdminStats are the figures on the admin dashboard.
type AdminStats struct {
	TotalUsers        int64        `json:"total_users"`
	TotalJobs         int64        `json:"total_jobs"`
	TotalApplications int64        `json:"total_applications"`
	ActiveJobs        int64        `json:"active_jobs"`
	RecentUsers       []model.User `json:"recent_users"`
	RecentJobs        []model.Job  `json:"recent_jobs"`
}

// recentAdminItems is number of users and jobs shown on the admin dashboard
const recentAdminItems = 5

// GetAdminStats collects totals and the most recent users and jobs.
func GetAdminStats(db *gorm.DB) (AdminStats, error) {
	var s AdminStats
	if err := db.Model(&model.User{}).Count(&s.TotalUsers).Error; err != nil {
		return AdminStats{}, err
	}
	if err := db.Model(&model.Job{}).Count(&s.TotalJobs).Error; err != nil {
		return AdminStats{}, err
	}
	if err := db.Model(&model.Application{}).Count(&s.TotalApplications).Error; err != nil {
		return AdminStats{}, err
	}
	if err := db.Model(&model.Job{}).Where("status = ?", model.JobStatusActive).Count(&s.ActiveJobs).Error; err != nil {
		return AdminStats{}, err
	}
	if err := db.Order("created_at DESC, id DESC").Limit(recentAdminItems).Find(&s.RecentUsers).Error; err != nil {
		return AdminStats{}, err
	}
	if err := db.Order("created_at DESC, id DESC").Limit(recentAdminItems).Find(&s.RecentJobs).Error; err != nil {
		return AdminStats{}, err
	}
	return s, nil
}

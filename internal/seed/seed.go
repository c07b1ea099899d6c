package seed

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/sadhna1118/job-portal-website/internal/model"
	"github.com/sadhna1118/job-portal-website/internal/utilities"
)

// Summary counts inserted rows.
type Summary struct {
	Recruiters   int
	Seekers      int
	Jobs         int
	Applications int
	SavedJobs    int
}

// Clear removes every job, application, bookmark and non-admin account.
func Clear(tx *gorm.DB) error {
	all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
	if err := all.Delete(&model.Application{}).Error; err != nil {
		return err
	}
	if err := all.Delete(&model.SavedJob{}).Error; err != nil {
		return err
	}
	if err := all.Delete(&model.Job{}).Error; err != nil {
		return err
	}
	return tx.Where("role <> ?", model.RoleAdmin).Delete(&model.User{}).Error
}

// Insert replaces existing sample data with d in one transaction.
// Every generated account gets password.
func Insert(ctx context.Context, db *gorm.DB, d Dataset, password string) (Summary, error) {
	if len(password) < utilities.MinPasswordLength {
		return Summary{}, utilities.ValidationErrors{utilities.MsgPasswordTooShort}
	}
	hash, err := utilities.HashPassword(password)
	if err != nil {
		return Summary{}, err
	}

	var sum Summary
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := Clear(tx); err != nil {
			return fmt.Errorf("clear existing data: %w", err)
		}

		recruiters, err := createUsers(tx, d.Recruiters, hash)
		if err != nil {
			return err
		}
		seekers, err := createUsers(tx, d.Seekers, hash)
		if err != nil {
			return err
		}

		jobs := make([]model.Job, 0, len(d.Jobs))
		for _, pj := range d.Jobs {
			job := pj.Job
			job.RecruiterID = recruiters[pj.Recruiter].ID
			jobs = append(jobs, job)
		}
		if len(jobs) > 0 {
			if err := tx.Create(&jobs).Error; err != nil {
				return fmt.Errorf("create jobs: %w", err)
			}
		}

		apps := make([]model.Application, 0, len(d.Applications))
		for _, pa := range d.Applications {
			app := pa.Application
			app.JobID = jobs[pa.Job].ID
			app.UserID = seekers[pa.Seeker].ID
			apps = append(apps, app)
		}
		if len(apps) > 0 {
			if err := tx.Create(&apps).Error; err != nil {
				return fmt.Errorf("create applications: %w", err)
			}
		}

		saves := make([]model.SavedJob, 0, len(d.Saves))
		for _, ps := range d.Saves {
			saves = append(saves, model.SavedJob{
				UserID:  seekers[ps.Seeker].ID,
				JobID:   jobs[ps.Job].ID,
				SavedAt: ps.SavedAt,
			})
		}
		if len(saves) > 0 {
			if err := tx.Create(&saves).Error; err != nil {
				return fmt.Errorf("create saved jobs: %w", err)
			}
		}

		sum = Summary{
			Recruiters:   len(recruiters),
			Seekers:      len(seekers),
			Jobs:         len(jobs),
			Applications: len(apps),
			SavedJobs:    len(saves),
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	slog.Info("Sample data seeded",
		"recruiters", sum.Recruiters,
		"seekers", sum.Seekers,
		"jobs", sum.Jobs,
		"applications", sum.Applications,
		"saved_jobs", sum.SavedJobs,
	)
	return sum, nil
}

func createUsers(tx *gorm.DB, users []model.User, hash string) ([]model.User, error) {
	out := make([]model.User, len(users))
	copy(out, users)
	for i := range out {
		out[i].PasswordHash = hash
	}
	if len(out) == 0 {
		return out, nil
	}
	if err := tx.Create(&out).Error; err != nil {
		return nil, fmt.Errorf("create users: %w", err)
	}
	return out, nil
}

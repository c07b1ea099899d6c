package database

import (
	"strings"

	"gorm.io/gorm"

	"github.com/sadhna1118/job-portal-website/internal/model"
)

const (
	// JobsPerPage is page size of job listing
	JobsPerPage = 10
	// RecentJobsLimit is number of jobs on the landing page
	RecentJobsLimit = 6
	// SimilarJobsLimit caps the similar jobs shown on a detail page
	SimilarJobsLimit = 3
	// filterAll disables a type or experience filter
	filterAll = "all"
)

// JobFilter holds listing criteria. Zero values disable a criterion.
type JobFilter struct {
	Search     string `form:"search" json:"search"`
	Location   string `form:"location" json:"location"`
	JobType    string `form:"type" json:"type"`
	Experience string `form:"experience" json:"experience"`
	MinSalary  int    `form:"min_salary" json:"min_salary"`
}

// Apply adds the filter's predicates to q. Active status is always required.
func (f JobFilter) Apply(q *gorm.DB) *gorm.DB {
	q = q.Where("jobs.status = ?", model.JobStatusActive)

	if s := strings.TrimSpace(f.Search); s != "" {
		p := likePattern(s)
		d := q.Dialector.Name()
		q = q.Where("("+strings.Join([]string{
			likeClause(d, "jobs.title"),
			likeClause(d, "jobs.skills"),
			likeClause(d, "jobs.description"),
			likeClause(d, "jobs.company"),
		}, " OR ")+")", p, p, p, p)
	}
	if l := strings.TrimSpace(f.Location); l != "" {
		q = q.Where(likeClause(q.Dialector.Name(), "jobs.location"), likePattern(l))
	}
	if f.JobType != "" && f.JobType != filterAll {
		q = q.Where("jobs.job_type = ?", f.JobType)
	}
	if f.Experience != "" && f.Experience != filterAll {
		q = q.Where("jobs.experience = ?", f.Experience)
	}
	if f.MinSalary > 0 {
		q = q.Where("jobs.salary_max >= ?", f.MinSalary)
	}
	return q
}

// JobPage is one page of the public job listing.
type JobPage struct {
	Jobs []model.Job `json:"jobs"`
	Pagination
	Filter           JobFilter     `json:"filter"`
	JobTypes         []string      `json:"job_types"`
	ExperienceLevels []string      `json:"experience_levels"`
	SavedJobIDs      []uint        `json:"saved_job_ids"`
	Saved            map[uint]bool `json:"-"`
}

// ListJobs returns the page of active jobs matching f, newest first.
// viewerID, when set, fills in which jobs the viewer bookmarked.
func ListJobs(db *gorm.DB, f JobFilter, page int, viewerID *uint) (JobPage, error) {
	res := JobPage{Filter: f, Saved: map[uint]bool{}, SavedJobIDs: []uint{}}

	q := f.Apply(db.Model(&model.Job{}))
	p, err := Paginate(q, "jobs.created_at DESC, jobs.id DESC", page, JobsPerPage, &res.Jobs)
	if err != nil {
		return JobPage{}, err
	}
	res.Pagination = p

	if res.JobTypes, err = distinctJobValues(db, "job_type"); err != nil {
		return JobPage{}, err
	}
	if res.ExperienceLevels, err = distinctJobValues(db, "experience"); err != nil {
		return JobPage{}, err
	}

	if viewerID != nil {
		if res.SavedJobIDs, err = SavedJobIDs(db, *viewerID); err != nil {
			return JobPage{}, err
		}
		for _, id := range res.SavedJobIDs {
			res.Saved[id] = true
		}
	}
	return res, nil
}

func distinctJobValues(db *gorm.DB, column string) ([]string, error) {
	values := []string{}
	err := db.Model(&model.Job{}).
		Where(column+" IS NOT NULL AND "+column+" <> ''").
		Distinct(column).
		Order(column).
		Pluck(column, &values).Error
	return values, err
}

// GetJob loads a job of any status with its recruiter.
func GetJob(db *gorm.DB, id uint) (model.Job, error) {
	var job model.Job
	if err := db.Preload("Recruiter").First(&job, id).Error; err != nil {
		return model.Job{}, notFound(err)
	}
	return job, nil
}

// RecentJobs returns the newest active jobs.
func RecentJobs(db *gorm.DB, limit int) ([]model.Job, error) {
	jobs := []model.Job{}
	err := db.Where("status = ?", model.JobStatusActive).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&jobs).Error
	return jobs, err
}

// SimilarJobs returns up to SimilarJobsLimit other active jobs from the same company
// or whose title contains the first word of job's title.
func SimilarJobs(db *gorm.DB, job model.Job) ([]model.Job, error) {
	q := db.Where("id <> ? AND status = ?", job.ID, model.JobStatusActive)

	if words := strings.Fields(job.Title); len(words) > 0 {
		q = q.Where("(company = ? OR "+likeClause(q.Dialector.Name(), "title")+")", job.Company, likePattern(words[0]))
	} else {
		q = q.Where("company = ?", job.Company)
	}

	jobs := []model.Job{}
	err := q.Order("id").Limit(SimilarJobsLimit).Find(&jobs).Error
	return jobs, err
}

// JobDetail is a job page with the viewer's relation to it.
type JobDetail struct {
	Job        model.Job   `json:"job"`
	HasApplied bool        `json:"has_applied"`
	IsSaved    bool        `json:"is_saved"`
	Similar    []model.Job `json:"similar_jobs"`
}

// GetJobDetail loads job id regardless of status. viewerID, when set, fills HasApplied and IsSaved.
func GetJobDetail(db *gorm.DB, id uint, viewerID *uint) (JobDetail, error) {
	job, err := GetJob(db, id)
	if err != nil {
		return JobDetail{}, err
	}
	d := JobDetail{Job: job}

	if viewerID != nil {
		if d.HasApplied, err = HasApplied(db, id, *viewerID); err != nil {
			return JobDetail{}, err
		}
		if d.IsSaved, err = IsSaved(db, *viewerID, id); err != nil {
			return JobDetail{}, err
		}
	}

	if d.Similar, err = SimilarJobs(db, job); err != nil {
		return JobDetail{}, err
	}
	return d, nil
}

// RecruiterJob is a recruiter's job with its number of applications.
type RecruiterJob struct {
	model.Job
	ApplicationCount int64 `json:"application_count"`
}

// RecruiterJobs lists jobs posted by recruiterID, newest first.
func RecruiterJobs(db *gorm.DB, recruiterID uint) ([]RecruiterJob, error) {
	var jobs []model.Job
	if err := db.Where("recruiter_id = ?", recruiterID).Order("created_at DESC, id DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}

	counts := map[uint]int64{}
	if len(ids) > 0 {
		var rows []struct {
			JobID uint
			Count int64
		}
		if err := db.Model(&model.Application{}).
			Select("job_id, COUNT(*) AS count").
			Where("job_id IN ?", ids).
			Group("job_id").
			Scan(&rows).Error; err != nil {
			return nil, err
		}
		for _, r := range rows {
			counts[r.JobID] = r.Count
		}
	}

	res := make([]RecruiterJob, 0, len(jobs))
	for _, j := range jobs {
		res = append(res, RecruiterJob{Job: j, ApplicationCount: counts[j.ID]})
	}
	return res, nil
}

// DeleteJob removes job id with its applications and bookmarks.
// It returns the resume references of the removed applications.
func DeleteJob(tx *gorm.DB, id uint) ([]string, error) {
	var resumes []string
	if err := tx.Model(&model.Application{}).
		Where("job_id = ? AND resume_url IS NOT NULL AND resume_url <> ''", id).
		Pluck("resume_url", &resumes).Error; err != nil {
		return nil, err
	}
	if err := tx.Where("job_id = ?", id).Delete(&model.SavedJob{}).Error; err != nil {
		return nil, err
	}
	if err := tx.Where("job_id = ?", id).Delete(&model.Application{}).Error; err != nil {
		return nil, err
	}
	res := tx.Delete(&model.Job{}, id)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, notFound(gorm.ErrRecordNotFound)
	}
	return resumes, nil
}

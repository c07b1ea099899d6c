package seed

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/sadhna1118/job-portal-website/internal/model"
	"github.com/sadhna1118/job-portal-website/internal/utilities"
)

const day = 24 * time.Hour

// Options controls how much data Generate produces.
type Options struct {
	Recruiters int
	Seekers    int
	RandSeed   uint64
	// Now anchors every generated timestamp
	Now time.Time
}

// DefaultOptions generates one recruiter per catalogue company.
func DefaultOptions() Options {
	return Options{Recruiters: 10, Seekers: 12, RandSeed: 1, Now: time.Now()}
}

// PlannedJob is a job posted by Recruiters[Recruiter].
type PlannedJob struct {
	Recruiter int
	Job       model.Job
}

// PlannedApplication is Seekers[Seeker] applying to Jobs[Job].
type PlannedApplication struct {
	Seeker      int
	Job         int
	Application model.Application
}

// PlannedSave is Seekers[Seeker] bookmarking Jobs[Job].
type PlannedSave struct {
	Seeker  int
	Job     int
	SavedAt time.Time
}

// Dataset is generated sample data. Cross references are slice indexes until inserted.
type Dataset struct {
	Recruiters   []model.User
	Seekers      []model.User
	Jobs         []PlannedJob
	Applications []PlannedApplication
	Saves        []PlannedSave
}

type generator struct {
	cat *Catalogue
	rng *rand.Rand
	now time.Time
}

// Generate builds a dataset from cat. The same options always give the same dataset.
func Generate(cat *Catalogue, opts Options) Dataset {
	g := generator{
		cat: cat,
		rng: rand.New(rand.NewPCG(opts.RandSeed, opts.RandSeed^0x9e3779b97f4a7c15)),
		now: opts.Now,
	}

	var d Dataset
	d.Recruiters = g.recruiters(opts.Recruiters)
	d.Seekers = g.seekers(opts.Seekers)
	if len(d.Recruiters) == 0 {
		return d
	}
	d.Jobs = g.jobs(len(d.Recruiters))
	d.Applications = g.applications(d)
	d.Saves = g.saves(len(d.Seekers), len(d.Jobs))
	return d
}

func (g *generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

func (g *generator) pick(list []string) string {
	return list[g.rng.IntN(len(list))]
}

func (g *generator) phone() *string {
	return utilities.Ptr(fmt.Sprintf("+1-555-%03d-%04d", g.between(100, 999), g.between(1000, 9999)))
}

func slug(s string, sep string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteString(sep)
		}
	}
	return b.String()
}

// recruiters creates one recruiter per company, up to n.
func (g *generator) recruiters(n int) []model.User {
	n = min(n, len(g.cat.Companies), len(g.cat.RecruiterNames))
	users := make([]model.User, 0, max(n, 0))
	for i := 0; i < n; i++ {
		company := g.cat.Companies[i]
		users = append(users, model.User{
			Username: "recruiter_" + slug(company, "_"),
			Email:    "recruiter@" + slug(company, "") + ".com",
			Role:     model.RoleRecruiter,
			FullName: utilities.Ptr(g.cat.RecruiterNames[i]),
			Phone:    g.phone(),
		})
	}
	return users
}

func (g *generator) seekers(n int) []model.User {
	n = min(n, len(g.cat.SeekerNames))
	users := make([]model.User, 0, max(n, 0))
	for i := 0; i < n; i++ {
		name := g.cat.SeekerNames[i]
		users = append(users, model.User{
			Username: slug(name, "_"),
			Email:    slug(name, ".") + "@" + g.cat.SeekerEmailDomain,
			Role:     model.RoleJobSeeker,
			FullName: utilities.Ptr(name),
			Phone:    g.phone(),
		})
	}
	return users
}

func (g *generator) salary(band SalaryBand) string {
	return fmt.Sprintf("$%dK - $%dK", g.between(band.MinLow, band.MinHigh), g.between(band.MaxLow, band.MaxHigh))
}

// jobs posts one or two jobs per catalogue title, each at the company of a random recruiter.
func (g *generator) jobs(recruiters int) []PlannedJob {
	var jobs []PlannedJob
	for _, cat := range g.cat.Categories {
		for _, title := range cat.Titles {
			for n := g.between(1, 2); n > 0; n-- {
				r := g.rng.IntN(recruiters)
				lvl := g.cat.ExperienceLevels[g.rng.IntN(len(g.cat.ExperienceLevels))]
				jobs = append(jobs, PlannedJob{
					Recruiter: r,
					Job: model.Job{
						EditableJobInfo: model.EditableJobInfo{
							Title:        title,
							Company:      g.cat.Companies[r],
							Location:     g.pick(g.cat.Locations),
							JobType:      g.pick(g.cat.JobTypes),
							Experience:   lvl.Name,
							Salary:       utilities.Ptr(g.salary(lvl.Salary)),
							Skills:       g.pick(cat.Skills),
							Description:  g.cat.descriptionFor(title),
							Requirements: strings.TrimSpace(g.cat.Requirements[lvl.Requirements]),
						},
						Status:    model.JobStatusActive,
						CreatedAt: g.now.Add(-time.Duration(g.between(1, 30)) * day),
					},
				})
			}
		}
	}
	return jobs
}

func (g *generator) coverLetter(job model.Job, seeker model.User) string {
	return strings.TrimSpace(strings.NewReplacer(
		"{{title}}", job.Title,
		"{{company}}", job.Company,
		"{{name}}", seeker.DisplayName(),
	).Replace(g.cat.CoverLetter))
}

// applications lets every seeker apply to two to five distinct jobs, never before the job was posted.
func (g *generator) applications(d Dataset) []PlannedApplication {
	var apps []PlannedApplication
	for s, seeker := range d.Seekers {
		n := min(g.between(2, 5), len(d.Jobs))
		for _, j := range g.rng.Perm(len(d.Jobs))[:n] {
			job := d.Jobs[j].Job

			applied := g.now
			if maxDays := min(25, int(g.now.Sub(job.CreatedAt)/day)); maxDays > 0 {
				applied = g.now.Add(-time.Duration(g.between(1, maxDays)) * day)
			}
			status := model.ApplicationStatuses[g.rng.IntN(len(model.ApplicationStatuses))]
			updated := applied
			if status != model.ApplicationStatusPending {
				updated = applied.Add(time.Duration(g.between(1, 5)) * day)
				if updated.After(g.now) {
					updated = g.now
				}
			}

			apps = append(apps, PlannedApplication{
				Seeker: s,
				Job:    j,
				Application: model.Application{
					CoverLetter: g.coverLetter(job, seeker),
					Status:      status,
					AppliedAt:   applied,
					UpdatedAt:   updated,
				},
			})
		}
	}
	return apps
}

// saves bookmarks one to four distinct jobs per seeker.
func (g *generator) saves(seekers, jobs int) []PlannedSave {
	var saves []PlannedSave
	for s := 0; s < seekers; s++ {
		n := min(g.between(1, 4), jobs)
		for _, j := range g.rng.Perm(jobs)[:n] {
			saves = append(saves, PlannedSave{
				Seeker:  s,
				Job:     j,
				SavedAt: g.now.Add(-time.Duration(g.between(1, 20)) * day),
			})
		}
	}
	return saves
}

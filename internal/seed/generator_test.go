package seed

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadhna1118/job-portal-website/internal/model"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func testOptions(seed uint64) Options {
	return Options{Recruiters: 10, Seekers: 12, RandSeed: seed, Now: fixedNow}
}

func TestDefaultCatalogue(t *testing.T) {
	cat, err := DefaultCatalogue()
	require.NoError(t, err)
	assert.NotEmpty(t, cat.Companies)
	assert.Contains(t, cat.JobTypes, "full-time")
	assert.Len(t, cat.Requirements, 3)
}

func TestParseCatalogueRejectsIncomplete(t *testing.T) {
	_, err := ParseCatalogue([]byte("companies: [Acme]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seeker_names is empty")
	assert.Contains(t, err.Error(), "seeker_email_domain is empty")

	_, err = ParseCatalogue([]byte("companies: [\n"))
	assert.Error(t, err)
}

func TestGenerateIsDeterministic(t *testing.T) {
	cat, err := DefaultCatalogue()
	require.NoError(t, err)

	a := Generate(cat, testOptions(42))
	b := Generate(cat, testOptions(42))
	c := Generate(cat, testOptions(43))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestGenerateInvariants(t *testing.T) {
	cat, err := DefaultCatalogue()
	require.NoError(t, err)
	d := Generate(cat, testOptions(7))

	require.Len(t, d.Recruiters, 10)
	require.Len(t, d.Seekers, 12)
	assert.Equal(t, "recruiter_google", d.Recruiters[0].Username)
	assert.Equal(t, "recruiter@google.com", d.Recruiters[0].Email)
	assert.Equal(t, "alex_thompson", d.Seekers[0].Username)
	assert.Equal(t, "alex.thompson@example.com", d.Seekers[0].Email)

	emails := map[string]bool{}
	for _, u := range append(append([]model.User{}, d.Recruiters...), d.Seekers...) {
		assert.False(t, emails[u.Email], "duplicate email %s", u.Email)
		emails[u.Email] = true
		assert.True(t, u.Role.SelfRegistrable())
	}

	titles := 0
	for _, c := range cat.Categories {
		titles += len(c.Titles)
	}
	assert.GreaterOrEqual(t, len(d.Jobs), titles)
	assert.LessOrEqual(t, len(d.Jobs), 2*titles)

	for _, pj := range d.Jobs {
		job := pj.Job
		assert.Equal(t, cat.Companies[pj.Recruiter], job.Company, "a recruiter posts for their own company")
		assert.True(t, job.CreatedAt.Before(fixedNow))
		_, hi, ok := model.ParseSalaryRange(*job.Salary)
		assert.True(t, ok, "salary %q parses", *job.Salary)
		assert.Positive(t, hi)
		assert.NotEmpty(t, job.Description)
	}

	pairs := map[[2]int]bool{}
	for _, pa := range d.Applications {
		key := [2]int{pa.Seeker, pa.Job}
		assert.False(t, pairs[key], "seeker applies to a job at most once")
		pairs[key] = true

		app := pa.Application
		assert.False(t, app.AppliedAt.Before(d.Jobs[pa.Job].Job.CreatedAt))
		assert.False(t, app.UpdatedAt.Before(app.AppliedAt))
		assert.False(t, app.UpdatedAt.After(fixedNow))
		assert.True(t, strings.Contains(app.CoverLetter, d.Jobs[pa.Job].Job.Title))
		if app.Status == model.ApplicationStatusPending {
			assert.Equal(t, app.AppliedAt, app.UpdatedAt)
		}
	}

	saved := map[[2]int]bool{}
	for _, ps := range d.Saves {
		key := [2]int{ps.Seeker, ps.Job}
		assert.False(t, saved[key], "bookmark pairs are unique")
		saved[key] = true
	}
}

func TestGenerateCapsCounts(t *testing.T) {
	cat, err := DefaultCatalogue()
	require.NoError(t, err)

	d := Generate(cat, Options{Recruiters: 100, Seekers: 100, RandSeed: 1, Now: fixedNow})
	assert.Len(t, d.Recruiters, len(cat.RecruiterNames))
	assert.Len(t, d.Seekers, len(cat.SeekerNames))

	d = Generate(cat, Options{Recruiters: 0, Seekers: 3, RandSeed: 1, Now: fixedNow})
	assert.Empty(t, d.Jobs)
	assert.Empty(t, d.Applications)
}

func TestDescriptionFor(t *testing.T) {
	cat, err := DefaultCatalogue()
	require.NoError(t, err)

	assert.Contains(t, cat.descriptionFor("Backend Developer"), "engineering team")
	assert.Contains(t, cat.descriptionFor("Data Analyst"), "datasets")
	assert.Contains(t, cat.descriptionFor("Scrum Master"), "across teams")
}

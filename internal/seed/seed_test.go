package seed

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadhna1118/job-portal-website/internal/auth"
	"github.com/sadhna1118/job-portal-website/internal/database"
	"github.com/sadhna1118/job-portal-website/internal/model"
	"github.com/sadhna1118/job-portal-website/internal/utilities"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	teardown, db, err := database.GetTestDB()
	if err != nil {
		log.Fatalf("Failed to start test database: %v", err)
	}
	testDB = db

	code := m.Run()

	if teardown != nil {
		_ = teardown(context.Background())
	}
	os.Exit(code)
}

func TestInsert(t *testing.T) {
	cat, err := DefaultCatalogue()
	require.NoError(t, err)
	d := Generate(cat, Options{Recruiters: 3, Seekers: 4, RandSeed: 9, Now: fixedNow})

	sum, err := Insert(context.Background(), testDB.DB, d, "sample-pass")
	require.NoError(t, err)
	assert.Equal(t, Summary{
		Recruiters:   3,
		Seekers:      4,
		Jobs:         len(d.Jobs),
		Applications: len(d.Applications),
		SavedJobs:    len(d.Saves),
	}, sum)

	var users int64
	require.NoError(t, testDB.Model(&model.User{}).Where("role <> ?", model.RoleAdmin).Count(&users).Error)
	assert.Equal(t, int64(7), users)

	var admins int64
	require.NoError(t, testDB.Model(&model.User{}).Where("role = ?", model.RoleAdmin).Count(&admins).Error)
	assert.Equal(t, int64(1), admins, "admin account survives reseeding")

	var withSalary int64
	require.NoError(t, testDB.Model(&model.Job{}).Where("salary_max IS NOT NULL").Count(&withSalary).Error)
	assert.Equal(t, int64(len(d.Jobs)), withSalary)

	user, err := auth.Authenticate(testDB.DB, d.Seekers[0].Email, "sample-pass")
	require.NoError(t, err)
	assert.Equal(t, model.RoleJobSeeker, user.Role)

	// reseeding replaces rather than appends
	sum, err = Insert(context.Background(), testDB.DB, d, "sample-pass")
	require.NoError(t, err)
	var jobs int64
	require.NoError(t, testDB.Model(&model.Job{}).Count(&jobs).Error)
	assert.Equal(t, int64(sum.Jobs), jobs)
}

func TestInsertRejectsShortPassword(t *testing.T) {
	_, err := Insert(context.Background(), testDB.DB, Dataset{}, "abc")
	assert.Equal(t, utilities.ValidationErrors{utilities.MsgPasswordTooShort}, err)
}

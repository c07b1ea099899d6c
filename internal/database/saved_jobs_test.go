package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadhna1118/job-portal-website/internal/model"
)

func countSaved(t *testing.T, userID, jobID uint) int64 {
	var n int64
	require.NoError(t, testDB.Model(&model.SavedJob{}).Where("user_id = ? AND job_id = ?", userID, jobID).Count(&n).Error)
	return n
}

func TestToggleSaveTwiceRestoresState(t *testing.T) {
	before := countSaved(t, TestSeeker1.ID, TestJob1.ID)
	require.Equal(t, int64(0), before)

	saved, err := ToggleSave(testDB.DB, TestSeeker1.ID, TestJob1.ID)
	require.NoError(t, err)
	assert.True(t, saved)
	assert.Equal(t, int64(1), countSaved(t, TestSeeker1.ID, TestJob1.ID))

	saved, err = ToggleSave(testDB.DB, TestSeeker1.ID, TestJob1.ID)
	require.NoError(t, err)
	assert.False(t, saved)
	assert.Equal(t, before, countSaved(t, TestSeeker1.ID, TestJob1.ID))
}

func TestSavedPairIsUnique(t *testing.T) {
	first := model.SavedJob{UserID: TestSeeker2.ID, JobID: TestJob3.ID}
	require.NoError(t, testDB.Create(&first).Error)
	defer testDB.Delete(&first)

	err := testDB.Create(&model.SavedJob{UserID: TestSeeker2.ID, JobID: TestJob3.ID}).Error
	assert.True(t, IsUniqueViolation(err))
}

func TestListSavedJobsHidesClosedJobs(t *testing.T) {
	for _, id := range []uint{TestJob1.ID, TestClosedJob.ID, TestJob3.ID} {
		_, err := ToggleSave(testDB.DB, TestSeeker1.ID, id)
		require.NoError(t, err)
	}
	defer func() {
		testDB.Where("user_id = ?", TestSeeker1.ID).Delete(&model.SavedJob{})
	}()

	page, err := ListSavedJobs(testDB.DB, TestSeeker1.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	require.Len(t, page.SavedJobs, 2)
	assert.Equal(t, TestJob3.ID, page.SavedJobs[0].JobID, "newest bookmark first")
	for _, s := range page.SavedJobs {
		require.NotNil(t, s.Job)
		assert.True(t, s.Job.IsActive())
	}
}

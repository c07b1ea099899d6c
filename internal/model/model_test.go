package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSalaryRange(t *testing.T) {
	cases := []struct {
		in     string
		lo, hi int
		ok     bool
	}{
		{"$80K - $120K", 80000, 120000, true},
		{"90,000-110,000", 90000, 110000, true},
		{"15000 THB", 15000, 15000, true},
		{"$1.5M", 1500000, 1500000, true},
		{"Competitive", 0, 0, false},
		{"", 0, 0, false},
		{"99999999999999999999", math.MaxInt, math.MaxInt, true},
		{"$50K - 9999999999999999M", 50000, math.MaxInt, true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			lo, hi, ok := ParseSalaryRange(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.lo, lo)
			assert.Equal(t, tc.hi, hi)
		})
	}
}

func TestJobBeforeSaveSetsSalaryBounds(t *testing.T) {
	salary := "$60K - $90K"
	j := Job{EditableJobInfo: EditableJobInfo{Salary: &salary}}
	require.NoError(t, j.BeforeSave(nil))

	assert.Equal(t, JobStatusActive, j.Status)
	require.NotNil(t, j.SalaryMin)
	require.NotNil(t, j.SalaryMax)
	assert.Equal(t, 60000, *j.SalaryMin)
	assert.Equal(t, 90000, *j.SalaryMax)

	j.Salary = nil
	require.NoError(t, j.BeforeSave(nil))
	assert.Nil(t, j.SalaryMin)
	assert.Nil(t, j.SalaryMax)
}

func TestSkillList(t *testing.T) {
	j := Job{EditableJobInfo: EditableJobInfo{Skills: " Go, SQL ,,Docker "}}
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, j.SkillList())
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("recruiter")
	require.NoError(t, err)
	assert.Equal(t, RoleRecruiter, r)
	assert.True(t, r.SelfRegistrable())
	assert.False(t, RoleAdmin.SelfRegistrable())

	_, err = ParseRole("superuser")
	assert.Error(t, err)
}

func TestApplicationStatus(t *testing.T) {
	for _, s := range []string{"pending", "reviewed", "accepted", "rejected"} {
		st, err := ParseApplicationStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, string(st))
	}
	_, err := ParseApplicationStatus("hired")
	assert.Error(t, err)

	assert.True(t, ApplicationStatusAccepted.CanTransition(ApplicationStatusPending))
	assert.False(t, ApplicationStatusAccepted.CanTransition("hired"))
}

func TestParseJobStatus(t *testing.T) {
	st, err := ParseJobStatus("closed")
	require.NoError(t, err)
	assert.Equal(t, JobStatusClosed, st)
	_, err = ParseJobStatus("draft")
	assert.Error(t, err)
}

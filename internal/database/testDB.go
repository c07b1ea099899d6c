package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sadhna1118/job-portal-website/internal/config"
	m "github.com/sadhna1118/job-portal-website/internal/model"
	"github.com/sadhna1118/job-portal-website/internal/utilities"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported test users & jobs
var (
	TestAdminUser  m.User
	TestRecruiter1 m.User
	TestRecruiter2 m.User
	TestSeeker1    m.User
	TestSeeker2    m.User

	// Add exported plain password
	TestSeedPassword = "SeedPass123!"

	// Exported seeded jobs. TestJob1 is the oldest active job, TestClosedJob is closed.
	TestJob1      m.Job
	TestJob2      m.Job
	TestJob3      m.Job
	TestJob4      m.Job
	TestClosedJob m.Job
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	cfg := &DBConfig{
		Driver:        config.DriverPostgres,
		useConstr:     true,
		Constr:        fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
		DBName:        dbName,
		AdminEmail:    "admin@example.com",
		AdminUsername: "admin_user",
		AdminPassword: TestSeedPassword,
	}

	db, err := NewDBInstance(cfg)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts two recruiters, two job seekers and five jobs if empty.
func seedTestData(db *DBinstanceStruct) error {
	if err := db.Where("role = ?", m.RoleAdmin).First(&TestAdminUser).Error; err != nil {
		return err
	}

	var userCount int64
	if err := db.Model(&m.User{}).Count(&userCount).Error; err != nil {
		return err
	}

	// Ignore admin user that got create during NewDBInstance
	if userCount > 1 {
		return loadTestData(db)
	}

	userSpecs := []struct {
		username string
		email    string
		fullName string
		role     m.Role
	}{
		{"recruiter_1", "recruiter1@example.com", "Rita Recruiter", m.RoleRecruiter},
		{"recruiter_2", "recruiter2@example.com", "Ravi Recruiter", m.RoleRecruiter},
		{"seeker_1", "seeker1@example.com", "Alice Seeker", m.RoleJobSeeker},
		{"seeker_2", "seeker2@example.com", "Bob Seeker", m.RoleJobSeeker},
	}

	// Pre-hash shared password for all seeded users
	hashedPwd, errHash := utilities.HashPassword(TestSeedPassword)
	if errHash != nil {
		return errHash
	}

	users := make([]m.User, 0, len(userSpecs))
	for _, s := range userSpecs {
		users = append(users, m.User{
			Username:     s.username,
			Email:        s.email,
			FullName:     ptr(s.fullName),
			Role:         s.role,
			PasswordHash: hashedPwd,
		})
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}
	assignUsers(users)

	now := time.Now()
	jobs := []m.Job{
		{
			RecruiterID: TestRecruiter1.ID,
			EditableJobInfo: m.EditableJobInfo{
				Title:       "Senior Go Engineer",
				Company:     "TechNova",
				Location:    "Bangkok (Hybrid)",
				JobType:     "full-time",
				Experience:  "Senior",
				Salary:      ptr("$80K - $120K"),
				Skills:      "Go, PostgreSQL, Kubernetes",
				Description: "Build and operate Go microservices.",
			},
			CreatedAt: now.Add(-5 * time.Hour),
		},
		{
			RecruiterID: TestRecruiter1.ID,
			EditableJobInfo: m.EditableJobInfo{
				Title:       "Frontend Developer",
				Company:     "TechNova",
				Location:    "Remote",
				JobType:     "part-time",
				Experience:  "Mid",
				Skills:      "React, TypeScript",
				Description: "Own the component library.",
			},
			CreatedAt: now.Add(-4 * time.Hour),
		},
		{
			RecruiterID: TestRecruiter2.ID,
			EditableJobInfo: m.EditableJobInfo{
				Title:       "Data Analyst",
				Company:     "DataForge",
				Location:    "Chiang Mai (On-site)",
				JobType:     "contract",
				Experience:  "Junior",
				Salary:      ptr("40,000-60,000"),
				Skills:      "SQL, Statistics",
				Description: "Work with data engineers on dashboards.",
			},
			CreatedAt: now.Add(-3 * time.Hour),
		},
		{
			RecruiterID: TestRecruiter2.ID,
			EditableJobInfo: m.EditableJobInfo{
				Title:       "Backend Intern",
				Company:     "DataForge",
				Location:    "Bangkok",
				JobType:     "internship",
				Experience:  "Entry",
				Salary:      ptr("15000 THB"),
				Skills:      "Python, APIs",
				Description: "Support the platform team.",
			},
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			RecruiterID: TestRecruiter1.ID,
			EditableJobInfo: m.EditableJobInfo{
				Title:       "QA Engineer",
				Company:     "TechNova",
				Location:    "Bangkok",
				JobType:     "full-time",
				Experience:  "Mid",
				Description: "Keep releases green.",
			},
			Status:    m.JobStatusClosed,
			CreatedAt: now.Add(-1 * time.Hour),
		},
	}
	if err := db.Create(&jobs).Error; err != nil {
		return err
	}
	assignJobs(jobs)

	return nil
}

// loadTestData populates exported variables when records already exist.
func loadTestData(db *DBinstanceStruct) error {
	var users []m.User
	if err := db.Where("username IN ?", []string{
		"recruiter_1", "recruiter_2", "seeker_1", "seeker_2",
	}).Find(&users).Error; err != nil {
		return err
	}
	assignUsers(users)

	var jobs []m.Job
	if err := db.Order("id ASC").Limit(5).Find(&jobs).Error; err != nil {
		return err
	}
	assignJobs(jobs)
	return nil
}

func assignUsers(users []m.User) {
	for _, u := range users {
		switch u.Username {
		case "recruiter_1":
			TestRecruiter1 = u
		case "recruiter_2":
			TestRecruiter2 = u
		case "seeker_1":
			TestSeeker1 = u
		case "seeker_2":
			TestSeeker2 = u
		}
	}
}

func assignJobs(jobs []m.Job) {
	targets := []*m.Job{&TestJob1, &TestJob2, &TestJob3, &TestJob4, &TestClosedJob}
	for i := range jobs {
		if i < len(targets) {
			*targets[i] = jobs[i]
		}
	}
}

// ptr helper
func ptr[T any](v T) *T { return &v }

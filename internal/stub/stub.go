// Package stub is an in-memory TrainTrack backend: every endpoint the client
// slices call, served from seeded in-process data. It backs cmd/stubserver
// for local development and the integration tests; it is not a production
// server.
package stub

import (
	"log"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"farhanadbm1/traintrack-client/internal/config"
	"farhanadbm1/traintrack-client/internal/domain"
)

// Server holds the stub's configuration and dataset.
type Server struct {
	jwtSecret     string
	jwtExpiration time.Duration
	data          *dataset
}

// New creates a stub server with the default seed data.
func New(cfg config.StubConfig) *Server {
	expiration := cfg.JWTExpiration
	if expiration <= 0 {
		expiration = time.Hour * 24
	}
	if cfg.JWTSecret == "" {
		panic("stub JWT secret cannot be empty")
	}
	return &Server{
		jwtSecret:     cfg.JWTSecret,
		jwtExpiration: expiration,
		data:          seed(),
	}
}

// dataset is the whole backend state behind one mutex. Collections are
// slices so listings keep insertion order, matching what a real backend
// returns.
type dataset struct {
	mu sync.Mutex

	users       []domain.User
	passwords   map[int]string // user id -> bcrypt hash
	courses     []domain.Course
	assignments []domain.CourseAssignment
	tasks       []domain.TaskAssignment
	submissions []domain.TaskSubmission
	evaluations []domain.TaskEvaluation
	materials   []domain.TrainingMaterial

	nextID int
}

func (d *dataset) id() int {
	d.nextID++
	return d.nextID
}

// SeedPassword is the password every seeded account uses.
const SeedPassword = "password123"

// seed builds the default dataset: one admin, one trainer, two trainees and
// a course with both non-admins assigned.
func seed() *dataset {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("FATAL: Failed to hash seed password: %v", err)
	}

	d := &dataset{passwords: make(map[int]string)}

	users := []domain.User{
		{Username: "admin", Name: "Ada Admin", Email: "admin@traintrack.local", Role: domain.RoleAdmin},
		{Username: "trainer", Name: "Tom Trainer", Email: "trainer@traintrack.local", Role: domain.RoleTrainer},
		{Username: "trainee", Name: "Tina Trainee", Email: "trainee@traintrack.local", Role: domain.RoleTrainee},
		{Username: "trainee2", Name: "Theo Trainee", Email: "trainee2@traintrack.local", Role: domain.RoleTrainee},
	}
	for _, u := range users {
		u.ID = d.id()
		d.users = append(d.users, u)
		d.passwords[u.ID] = string(hash)
	}

	now := time.Now().UTC()
	start := now.AddDate(0, 0, -7).Format("2006-01-02")
	end := now.AddDate(0, 0, 21).Format("2006-01-02")
	course := domain.Course{
		ID:                d.id(),
		Title:             "Go Fundamentals",
		Description:       "Language basics, tooling and testing.",
		StartDate:         start,
		EndDate:           end,
		DurationDays:      durationDays(start, end),
		Status:            domain.CourseActive,
		CreatedBy:         d.users[0].ID,
		CreatedByUserName: d.users[0].Name,
	}
	d.courses = append(d.courses, course)

	for _, u := range []domain.User{d.users[1], d.users[2]} {
		role := domain.RoleTrainee
		if u.IsTrainer() {
			role = domain.RoleTrainer
		}
		d.assignments = append(d.assignments, domain.CourseAssignment{
			ID:           d.id(),
			CourseID:     course.ID,
			UserID:       u.ID,
			UserName:     u.Name,
			UserEmail:    u.Email,
			Role:         role,
			AssignedDate: now.Format(time.RFC3339),
		})
	}

	return d
}

func (d *dataset) userByEmail(email string) (domain.User, bool) {
	for _, u := range d.users {
		if u.Email == email {
			return u, true
		}
	}
	return domain.User{}, false
}

func (d *dataset) userByID(id int) (int, bool) {
	for i := range d.users {
		if d.users[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

func (d *dataset) courseByID(id int) (int, bool) {
	for i := range d.courses {
		if d.courses[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

func (d *dataset) taskByID(id int) (int, bool) {
	for i := range d.tasks {
		if d.tasks[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func durationDays(start, end string) int {
	s, err1 := time.Parse("2006-01-02", start)
	e, err2 := time.Parse("2006-01-02", end)
	if err1 != nil || err2 != nil {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

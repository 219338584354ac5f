package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"farhanadbm1/traintrack-client/internal/api"
	"farhanadbm1/traintrack-client/internal/config"
	"farhanadbm1/traintrack-client/internal/derive"
	"farhanadbm1/traintrack-client/internal/session"
	"farhanadbm1/traintrack-client/internal/state"
	"farhanadbm1/traintrack-client/internal/storage"
)

const usage = `Usage: traintrack <command> [arguments]

Commands:
  login -email <email> -password <password>   Sign in and persist the session
  logout                                      Drop the persisted session
  whoami                                      Show the signed-in user
  users                                       List users (with summary counts)
  courses                                     List courses (with timeline status)
  my-courses                                  List courses assigned to you
  tasks -course <id>                          List tasks posted in a course
  materials -course <id>                      List training materials for a course
`

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("ERROR: Could not load config: %v", err)
	}

	sessionPath := cfg.Session.Path
	if sessionPath == "" {
		sessionPath = session.DefaultPath()
	}
	sess := session.NewStore(sessionPath)

	client := api.NewClient(cfg.API.BaseURL, sess)

	uploads, err := newUploader(cfg.Upload)
	if err != nil {
		log.Fatalf("ERROR: Could not configure uploads: %v", err)
	}

	store, err := state.New(client, uploads, sess)
	if err != nil {
		log.Fatalf("ERROR: Could not restore session: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	if err := run(ctx, store, os.Args[1], os.Args[2:]); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}

func newUploader(cfg config.UploadConfig) (storage.Uploader, error) {
	switch cfg.Provider {
	case "s3":
		return storage.NewS3Uploader(cfg.S3)
	default:
		return storage.NewMediaUploader(cfg.Media.Endpoint, cfg.Media.Preset), nil
	}
}

func run(ctx context.Context, store *state.Store, command string, args []string) error {
	switch command {
	case "login":
		return runLogin(ctx, store, args)
	case "logout":
		store.Users.Logout()
		fmt.Println("Signed out.")
		return nil
	case "whoami":
		return runWhoami(store)
	case "users":
		return runUsers(ctx, store)
	case "courses":
		return runCourses(ctx, store)
	case "my-courses":
		return runMyCourses(ctx, store)
	case "tasks":
		return runTasks(ctx, store, args)
	case "materials":
		return runMaterials(ctx, store, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func runLogin(ctx context.Context, store *state.Store, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)
	if *email == "" || *password == "" {
		return fmt.Errorf("login requires -email and -password")
	}

	if err := store.Users.Login(ctx, state.LoginInput{Email: *email, Password: *password}); err != nil {
		return err
	}
	user := store.Users.State().AuthUser
	fmt.Printf("Signed in as %s (%s)\n", user.Name, user.Role)
	return nil
}

func runWhoami(store *state.Store) error {
	user := store.Users.State().AuthUser
	if user == nil {
		fmt.Println("Not signed in.")
		return nil
	}
	fmt.Printf("%s <%s> role=%s id=%d\n", user.Name, user.Email, user.Role, user.ID)
	return nil
}

func runUsers(ctx context.Context, store *state.Store) error {
	if err := store.Users.FetchUsers(ctx); err != nil {
		return err
	}
	users := store.Users.State().Users
	for _, u := range users {
		status := "active"
		if u.IsDeleted {
			status = "deleted"
		}
		fmt.Printf("%4d  %-4s %-10s %-25s %s (%s)\n", u.ID, derive.Initials(u.Name), u.Role, u.Email, u.Name, status)
	}
	stats := derive.CountUsers(users)
	fmt.Printf("\n%d users: %d active, %d deleted (%d admins, %d trainers, %d trainees)\n",
		stats.Total, stats.Active, stats.Deleted, stats.Admins, stats.Trainers, stats.Trainees)
	return nil
}

func runCourses(ctx context.Context, store *state.Store) error {
	if err := store.Courses.FetchCourses(ctx); err != nil {
		return err
	}
	now := time.Now()
	courses := store.Courses.State().Courses
	for _, c := range courses {
		timeline := derive.CourseTimeline(c.StartDate, c.EndDate, now)
		fmt.Printf("%4d  %-30s %-9s %-10s %s to %s\n", c.ID, c.Title, c.Status, timeline, c.StartDate, c.EndDate)
	}
	stats := derive.CountCourses(courses, now)
	fmt.Printf("\n%d courses: %d active, %d archived; %d upcoming, %d ongoing, %d completed\n",
		stats.Total, stats.Active, stats.Archived, stats.Upcoming, stats.Ongoing, stats.Completed)
	return nil
}

func runMyCourses(ctx context.Context, store *state.Store) error {
	user := store.Users.State().AuthUser
	if user == nil {
		return fmt.Errorf("not signed in")
	}
	if err := store.CourseAssignments.FetchCoursesByUser(ctx, user.ID); err != nil {
		return err
	}
	now := time.Now()
	courses := store.CourseAssignments.State().UserCourses
	for _, c := range courses {
		timeline := derive.CourseTimeline(c.StartDate, c.EndDate, now)
		fmt.Printf("%4d  %-30s as %-8s %-10s %s to %s\n", c.ID, c.Title, c.RoleInCourse, timeline, c.StartDate, c.EndDate)
	}
	counts := derive.CountMyCoursesByTimeline(courses, now)
	fmt.Printf("\n%d courses: %d upcoming, %d ongoing, %d completed\n", len(courses),
		counts[derive.Upcoming], counts[derive.Ongoing], counts[derive.Completed])
	return nil
}

func runTasks(ctx context.Context, store *state.Store, args []string) error {
	fs := flag.NewFlagSet("tasks", flag.ExitOnError)
	courseID := fs.Int("course", 0, "course id")
	fs.Parse(args)
	if *courseID == 0 {
		return fmt.Errorf("tasks requires -course")
	}

	if err := store.TaskAssignments.FetchByCourse(ctx, *courseID); err != nil {
		return err
	}
	for _, t := range store.TaskAssignments.State().Tasks {
		fmt.Printf("%4d  %-30s due %s (mark %.0f)\n", t.ID, t.Title, t.DueDate, t.Mark)
	}
	return nil
}

func runMaterials(ctx context.Context, store *state.Store, args []string) error {
	fs := flag.NewFlagSet("materials", flag.ExitOnError)
	courseID := fs.Int("course", 0, "course id")
	fs.Parse(args)
	if *courseID == 0 {
		return fmt.Errorf("materials requires -course")
	}

	if err := store.TrainingMaterials.Fetch(ctx, *courseID); err != nil {
		return err
	}
	materials := store.TrainingMaterials.State().Materials
	if len(materials) == 0 {
		fmt.Println("No training materials.")
		return nil
	}
	for _, m := range materials {
		fmt.Printf("%4d  %-30s %-20s %s\n", m.ID, m.Title, m.FileType, m.FilePath)
	}
	return nil
}

package derive

import (
	"time"

	"farhanadbm1/traintrack-client/internal/domain"
)

// UserStats is the dashboard summary-card breakdown of the user collection.
type UserStats struct {
	Total    int
	Active   int
	Deleted  int
	Admins   int
	Trainers int
	Trainees int
}

func CountUsers(users []domain.User) UserStats {
	stats := UserStats{Total: len(users)}
	for _, u := range users {
		if u.IsDeleted {
			stats.Deleted++
		} else {
			stats.Active++
		}
		switch u.Role {
		case domain.RoleAdmin:
			stats.Admins++
		case domain.RoleTrainer:
			stats.Trainers++
		case domain.RoleTrainee:
			stats.Trainees++
		}
	}
	return stats
}

// CourseStats buckets the course collection by status and timeline.
type CourseStats struct {
	Total     int
	Active    int
	Archived  int
	Upcoming  int
	Ongoing   int
	Completed int
}

func CountCourses(courses []domain.Course, now time.Time) CourseStats {
	stats := CourseStats{Total: len(courses)}
	for _, c := range courses {
		switch c.Status {
		case domain.CourseActive:
			stats.Active++
		case domain.CourseArchived:
			stats.Archived++
		}
		switch CourseTimeline(c.StartDate, c.EndDate, now) {
		case Upcoming:
			stats.Upcoming++
		case Ongoing:
			stats.Ongoing++
		case Completed:
			stats.Completed++
		}
	}
	return stats
}

// CountMyCoursesByTimeline buckets a user's own course list ("my courses"
// projection) by timeline for the trainer/trainee dashboards.
func CountMyCoursesByTimeline(courses []domain.CourseWithRole, now time.Time) map[TimelineStatus]int {
	counts := make(map[TimelineStatus]int, 3)
	for _, c := range courses {
		counts[CourseTimeline(c.StartDate, c.EndDate, now)]++
	}
	return counts
}

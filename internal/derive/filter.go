package derive

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"farhanadbm1/traintrack-client/internal/domain"
)

// Initials returns up to two upper-cased initials for an avatar fallback.
func Initials(name string) string {
	var initials []rune
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		initials = append(initials, unicode.ToUpper(r))
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}

// SearchUsers returns the users whose name, email or username contains the
// query, case-insensitively, preserving order. An empty query matches all.
func SearchUsers(users []domain.User, query string) []domain.User {
	if query == "" {
		return users
	}
	q := strings.ToLower(query)
	var matched []domain.User
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), q) ||
			strings.Contains(strings.ToLower(u.Email), q) ||
			strings.Contains(strings.ToLower(u.Username), q) {
			matched = append(matched, u)
		}
	}
	return matched
}

// SearchCourses returns the courses whose title or description contains the
// query, case-insensitively, preserving order.
func SearchCourses(courses []domain.Course, query string) []domain.Course {
	if query == "" {
		return courses
	}
	q := strings.ToLower(query)
	var matched []domain.Course
	for _, c := range courses {
		if strings.Contains(strings.ToLower(c.Title), q) ||
			strings.Contains(strings.ToLower(c.Description), q) {
			matched = append(matched, c)
		}
	}
	return matched
}

// FilterUsersByRole keeps the users with the given global role.
func FilterUsersByRole(users []domain.User, role domain.Role) []domain.User {
	var matched []domain.User
	for _, u := range users {
		if u.Role == role {
			matched = append(matched, u)
		}
	}
	return matched
}

// ActiveUsers keeps the users that are not soft deleted.
func ActiveUsers(users []domain.User) []domain.User {
	var matched []domain.User
	for _, u := range users {
		if !u.IsDeleted {
			matched = append(matched, u)
		}
	}
	return matched
}

// DeletedUsers keeps the soft-deleted users.
func DeletedUsers(users []domain.User) []domain.User {
	var matched []domain.User
	for _, u := range users {
		if u.IsDeleted {
			matched = append(matched, u)
		}
	}
	return matched
}

// FilterAssignmentsByRole keeps the course assignments with the given
// in-course role.
func FilterAssignmentsByRole(assignments []domain.CourseAssignment, role domain.Role) []domain.CourseAssignment {
	var matched []domain.CourseAssignment
	for _, a := range assignments {
		if a.Role == role {
			matched = append(matched, a)
		}
	}
	return matched
}

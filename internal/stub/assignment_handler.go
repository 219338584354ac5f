package stub

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"farhanadbm1/traintrack-client/internal/domain"
)

type assignRoleRequest struct {
	CourseID int         `json:"courseId" binding:"required"`
	UserID   int         `json:"userId" binding:"required"`
	Role     domain.Role `json:"role" binding:"required,oneof=Trainer Trainee"`
}

func (s *Server) handleListAssignmentsByCourse(c *gin.Context) {
	courseID, err := strconv.Atoi(c.Param("courseId"))
	if err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid course id")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	assignments := make([]domain.CourseAssignment, 0)
	for _, a := range s.data.assignments {
		if a.CourseID == courseID {
			assignments = append(assignments, a)
		}
	}
	c.JSON(http.StatusOK, assignments)
}

func (s *Server) handleAssignRole(c *gin.Context) {
	var req assignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid assignment payload")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	if _, found := s.data.courseByID(req.CourseID); !found {
		abortWithMessage(c, http.StatusNotFound, "Course not found")
		return
	}
	i, found := s.data.userByID(req.UserID)
	if !found {
		abortWithMessage(c, http.StatusNotFound, "User not found")
		return
	}
	for _, a := range s.data.assignments {
		if a.CourseID == req.CourseID && a.UserID == req.UserID {
			abortWithMessage(c, http.StatusConflict, "User is already assigned to this course")
			return
		}
	}

	user := s.data.users[i]
	s.data.assignments = append(s.data.assignments, domain.CourseAssignment{
		ID:           s.data.id(),
		CourseID:     req.CourseID,
		UserID:       user.ID,
		UserName:     user.Name,
		UserEmail:    user.Email,
		Role:         req.Role,
		AssignedDate: timestamp(),
	})

	c.JSON(http.StatusOK, gin.H{"message": "Role assigned successfully"})
}

// handleUnassign is the one hard delete: the assignment record is removed
// outright.
func (s *Server) handleUnassign(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid assignment id")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	for i, a := range s.data.assignments {
		if a.ID == id {
			s.data.assignments = append(s.data.assignments[:i], s.data.assignments[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "User unassigned from course"})
			return
		}
	}
	abortWithMessage(c, http.StatusNotFound, "Assignment not found")
}

// handleListCoursesByUser returns the "my courses" projection: every course
// the user is assigned to, with the role they hold in it.
func (s *Server) handleListCoursesByUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	courses := make([]domain.CourseWithRole, 0)
	for _, a := range s.data.assignments {
		if a.UserID != userID {
			continue
		}
		i, found := s.data.courseByID(a.CourseID)
		if !found {
			continue
		}
		course := s.data.courses[i]
		courses = append(courses, domain.CourseWithRole{
			ID:           course.ID,
			Title:        course.Title,
			Description:  course.Description,
			StartDate:    course.StartDate,
			EndDate:      course.EndDate,
			DurationDays: course.DurationDays,
			Status:       course.Status,
			CreatedAt:    a.AssignedDate,
			UpdatedAt:    a.AssignedDate,
			IsAvailable:  true,
			RoleInCourse: a.Role,
		})
	}
	c.JSON(http.StatusOK, courses)
}

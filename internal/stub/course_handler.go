package stub

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"farhanadbm1/traintrack-client/internal/domain"
)

type courseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
	CreatedBy   int    `json:"createdBy"`
}

func (s *Server) handleListCourses(c *gin.Context) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	c.JSON(http.StatusOK, s.data.courses)
}

func (s *Server) handleRegisterCourse(c *gin.Context) {
	var req courseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid course payload")
		return
	}
	if days := durationDays(req.StartDate, req.EndDate); days <= 0 {
		abortWithMessage(c, http.StatusBadRequest, "End date must not be before start date")
		return
	}

	userID, err := userIDFromContext(c)
	if err != nil {
		abortWithMessage(c, http.StatusInternalServerError, "Failed to resolve user from token")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	createdByName := ""
	if i, found := s.data.userByID(userID); found {
		createdByName = s.data.users[i].Name
	}

	course := domain.Course{
		ID:                s.data.id(),
		Title:             req.Title,
		Description:       req.Description,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		DurationDays:      durationDays(req.StartDate, req.EndDate),
		Status:            domain.CourseActive,
		CreatedBy:         userID,
		CreatedByUserName: createdByName,
	}
	s.data.courses = append(s.data.courses, course)

	c.JSON(http.StatusCreated, course)
}

func (s *Server) handleGetCourse(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid course id")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	i, found := s.data.courseByID(id)
	if !found {
		abortWithMessage(c, http.StatusNotFound, "Course not found")
		return
	}
	c.JSON(http.StatusOK, s.data.courses[i])
}

func (s *Server) handleUpdateCourse(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid course id")
		return
	}
	var req courseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid course payload")
		return
	}
	if days := durationDays(req.StartDate, req.EndDate); days <= 0 {
		abortWithMessage(c, http.StatusBadRequest, "End date must not be before start date")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	i, found := s.data.courseByID(id)
	if !found {
		abortWithMessage(c, http.StatusNotFound, "Course not found")
		return
	}

	course := &s.data.courses[i]
	course.Title = req.Title
	course.Description = req.Description
	course.StartDate = req.StartDate
	course.EndDate = req.EndDate
	course.DurationDays = durationDays(req.StartDate, req.EndDate)

	c.JSON(http.StatusOK, *course)
}

// handleToggleCourseStatus flips Active <-> Archived and reports the
// resulting status; courses are never deleted.
func (s *Server) handleToggleCourseStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid course id")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	i, found := s.data.courseByID(id)
	if !found {
		abortWithMessage(c, http.StatusNotFound, "Course not found")
		return
	}

	course := &s.data.courses[i]
	if course.Status == domain.CourseActive {
		course.Status = domain.CourseArchived
	} else {
		course.Status = domain.CourseActive
	}

	c.JSON(http.StatusOK, gin.H{"newStatus": course.Status})
}

package stub

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"farhanadbm1/traintrack-client/internal/domain"
)

type taskRequest struct {
	CourseID    int     `json:"courseId" binding:"required"`
	TrainerID   int     `json:"trainerId" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	MaterialURL string  `json:"materialUrl"`
	DueDate     string  `json:"dueDate" binding:"required"`
	Mark        float64 `json:"mark"`
	IsAvailable bool    `json:"isAvailable"`
	IsDeleted   bool    `json:"isDeleted"`
}

func (s *Server) handleListTasksByCourse(c *gin.Context) {
	courseID, err := strconv.Atoi(c.Param("courseId"))
	if err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid course id")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	tasks := make([]domain.TaskAssignment, 0)
	for _, t := range s.data.tasks {
		if t.CourseID == courseID && !t.IsDeleted {
			tasks = append(tasks, t)
		}
	}
	c.JSON(http.StatusOK, tasks)
}

func (s *Server) handleGetTask(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid task id")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	i, found := s.data.taskByID(id)
	if !found {
		abortWithMessage(c, http.StatusNotFound, "Task not found")
		return
	}
	c.JSON(http.StatusOK, s.data.tasks[i])
}

func (s *Server) handleCreateTask(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid task payload")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	if _, found := s.data.courseByID(req.CourseID); !found {
		abortWithMessage(c, http.StatusNotFound, "Course not found")
		return
	}

	s.data.tasks = append(s.data.tasks, domain.TaskAssignment{
		ID:          s.data.id(),
		CourseID:    req.CourseID,
		TrainerID:   req.TrainerID,
		Title:       req.Title,
		Description: req.Description,
		MaterialURL: req.MaterialURL,
		DueDate:     req.DueDate,
		Mark:        req.Mark,
		CreatedAt:   timestamp(),
		IsAvailable: true,
	})

	c.JSON(http.StatusCreated, gin.H{"message": "Task created"})
}

func (s *Server) handleUpdateTask(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid task id")
		return
	}
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid task payload")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	i, found := s.data.taskByID(id)
	if !found {
		abortWithMessage(c, http.StatusNotFound, "Task not found")
		return
	}

	task := &s.data.tasks[i]
	task.CourseID = req.CourseID
	task.TrainerID = req.TrainerID
	task.Title = req.Title
	task.Description = req.Description
	task.MaterialURL = req.MaterialURL
	task.DueDate = req.DueDate
	task.Mark = req.Mark
	task.IsAvailable = req.IsAvailable
	task.IsDeleted = req.IsDeleted

	c.JSON(http.StatusOK, gin.H{"message": "Task updated"})
}

// handleDeleteTask soft-deletes: the task is flagged, not removed, and stops
// appearing in course listings.
func (s *Server) handleDeleteTask(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid task id")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	i, found := s.data.taskByID(id)
	if !found {
		abortWithMessage(c, http.StatusNotFound, "Task not found")
		return
	}
	s.data.tasks[i].IsDeleted = true
	s.data.tasks[i].IsAvailable = false

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

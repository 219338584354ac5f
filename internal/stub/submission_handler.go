package stub

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"farhanadbm1/traintrack-client/internal/domain"
)

type submissionRequest struct {
	TaskID      int    `json:"taskId" binding:"required"`
	SubmittedBy int    `json:"submittedBy" binding:"required"`
	TaskURL     string `json:"taskUrl" binding:"required"`
}

// decorate fills the denormalized names listings carry alongside the raw
// submission record.
func (d *dataset) decorate(sub domain.TaskSubmission) domain.TaskSubmission {
	if i, found := d.userByID(sub.SubmittedBy); found {
		sub.SubmitterName = d.users[i].Name
	}
	if i, found := d.taskByID(sub.TaskID); found {
		sub.TaskTitle = d.tasks[i].Title
		if j, ok := d.courseByID(d.tasks[i].CourseID); ok {
			sub.CourseTitle = d.courses[j].Title
		}
	}
	return sub
}

func (s *Server) handleListSubmissionsByTask(c *gin.Context) {
	taskID, err := strconv.Atoi(c.Param("taskId"))
	if err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid task id")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	subs := make([]domain.TaskSubmission, 0)
	for _, sub := range s.data.submissions {
		if sub.TaskID == taskID && !sub.IsDeleted {
			subs = append(subs, s.data.decorate(sub))
		}
	}
	c.JSON(http.StatusOK, subs)
}

func (s *Server) handleListSubmissionsByTrainee(c *gin.Context) {
	traineeID, err := strconv.Atoi(c.Param("traineeId"))
	if err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid trainee id")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	subs := make([]domain.TaskSubmission, 0)
	for _, sub := range s.data.submissions {
		if sub.SubmittedBy == traineeID && !sub.IsDeleted {
			subs = append(subs, s.data.decorate(sub))
		}
	}
	c.JSON(http.StatusOK, subs)
}

func (s *Server) handleListSubmissionsByCourse(c *gin.Context) {
	courseID, err := strconv.Atoi(c.Param("courseId"))
	if err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid course id")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	taskIDs := make(map[int]bool)
	for _, t := range s.data.tasks {
		if t.CourseID == courseID {
			taskIDs[t.ID] = true
		}
	}

	subs := make([]domain.TaskSubmission, 0)
	for _, sub := range s.data.submissions {
		if taskIDs[sub.TaskID] && !sub.IsDeleted {
			subs = append(subs, s.data.decorate(sub))
		}
	}
	c.JSON(http.StatusOK, subs)
}

// handleCreateSubmission upserts: a trainee re-submitting a task replaces
// their previous file link rather than adding a second row.
func (s *Server) handleCreateSubmission(c *gin.Context) {
	var req submissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid submission payload")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	if _, found := s.data.taskByID(req.TaskID); !found {
		abortWithMessage(c, http.StatusNotFound, "Task not found")
		return
	}

	for i := range s.data.submissions {
		sub := &s.data.submissions[i]
		if sub.TaskID == req.TaskID && sub.SubmittedBy == req.SubmittedBy && !sub.IsDeleted {
			sub.TaskURL = req.TaskURL
			sub.CreatedAt = timestamp()
			c.JSON(http.StatusOK, gin.H{"message": "Submission updated"})
			return
		}
	}

	s.data.submissions = append(s.data.submissions, domain.TaskSubmission{
		ID:          s.data.id(),
		TaskID:      req.TaskID,
		SubmittedBy: req.SubmittedBy,
		TaskURL:     req.TaskURL,
		CreatedAt:   timestamp(),
		IsAvailable: true,
	})
	c.JSON(http.StatusCreated, gin.H{"message": "Submission created"})
}

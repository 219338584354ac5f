package stub

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"farhanadbm1/traintrack-client/internal/domain"
)

type evaluateRequest struct {
	TaskID           int     `json:"taskId" binding:"required"`
	TaskSubmissionID int     `json:"taskSubmissionId" binding:"required"`
	TraineeID        int     `json:"traineeId" binding:"required"`
	TrainerID        int     `json:"trainerId" binding:"required"`
	Mark             float64 `json:"mark"`
}

// handleListTraineesForTask builds the evaluation sheet: one row per trainee
// assigned to the task's course, joined with whatever submission and mark
// exist so far.
func (s *Server) handleListTraineesForTask(c *gin.Context) {
	taskID, err := strconv.Atoi(c.Param("taskId"))
	if err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid task id")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	ti, found := s.data.taskByID(taskID)
	if !found {
		abortWithMessage(c, http.StatusNotFound, "Task not found")
		return
	}
	task := s.data.tasks[ti]

	rows := make([]domain.TaskTraineeEvaluation, 0)
	for _, a := range s.data.assignments {
		if a.CourseID != task.CourseID || a.Role != domain.RoleTrainee {
			continue
		}
		row := domain.TaskTraineeEvaluation{
			UserID:             a.UserID,
			Name:               a.UserName,
			TaskAssignmentMark: task.Mark,
			TaskTitle:          task.Title,
		}
		for _, sub := range s.data.submissions {
			if sub.TaskID == taskID && sub.SubmittedBy == a.UserID && !sub.IsDeleted {
				row.TaskSubmissionID = sub.ID
				row.TaskURL = sub.TaskURL
				break
			}
		}
		for _, ev := range s.data.evaluations {
			if ev.TaskID == taskID && ev.TraineeID == a.UserID && !ev.IsDeleted {
				row.TaskEvaluationMark = ev.Mark
				break
			}
		}
		rows = append(rows, row)
	}
	c.JSON(http.StatusOK, rows)
}

// handleGetTraineeEvaluation returns the trainee's evaluation for a task, or
// a JSON null body when nobody has marked them yet.
func (s *Server) handleGetTraineeEvaluation(c *gin.Context) {
	taskID, err1 := strconv.Atoi(c.Param("taskId"))
	traineeID, err2 := strconv.Atoi(c.Param("traineeId"))
	if err1 != nil || err2 != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid task or trainee id")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	for _, ev := range s.data.evaluations {
		if ev.TaskID == taskID && ev.TraineeID == traineeID && !ev.IsDeleted {
			if i, found := s.data.taskByID(ev.TaskID); found {
				ev.TaskTitle = s.data.tasks[i].Title
			}
			if i, found := s.data.userByID(ev.TraineeID); found {
				ev.TraineeName = s.data.users[i].Name
			}
			if i, found := s.data.userByID(ev.TrainerID); found {
				ev.TrainerName = s.data.users[i].Name
			}
			c.JSON(http.StatusOK, ev)
			return
		}
	}
	c.JSON(http.StatusOK, nil)
}

// handleEvaluate upserts the mark keyed on task and trainee.
func (s *Server) handleEvaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid evaluation payload")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	i, found := s.data.taskByID(req.TaskID)
	if !found {
		abortWithMessage(c, http.StatusNotFound, "Task not found")
		return
	}
	// A task with no maximum accepts any non-negative mark.
	if req.Mark < 0 || (s.data.tasks[i].Mark > 0 && req.Mark > s.data.tasks[i].Mark) {
		abortWithMessage(c, http.StatusBadRequest, "Mark is out of range for this task")
		return
	}

	for j := range s.data.evaluations {
		ev := &s.data.evaluations[j]
		if ev.TaskID == req.TaskID && ev.TraineeID == req.TraineeID && !ev.IsDeleted {
			ev.Mark = req.Mark
			ev.TrainerID = req.TrainerID
			ev.TaskSubmissionID = req.TaskSubmissionID
			c.JSON(http.StatusOK, gin.H{"message": "Evaluation updated", "id": ev.ID})
			return
		}
	}

	id := s.data.id()
	s.data.evaluations = append(s.data.evaluations, domain.TaskEvaluation{
		ID:               id,
		TaskID:           req.TaskID,
		TaskSubmissionID: req.TaskSubmissionID,
		TraineeID:        req.TraineeID,
		TrainerID:        req.TrainerID,
		Mark:             req.Mark,
		CreatedAt:        timestamp(),
		IsAvailable:      true,
	})
	c.JSON(http.StatusCreated, gin.H{"message": "Evaluation saved", "id": id})
}

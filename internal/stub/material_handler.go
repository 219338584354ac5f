package stub

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"farhanadbm1/traintrack-client/internal/domain"
)

type materialRequest struct {
	CourseID    int    `json:"courseId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	FilePath    string `json:"filePath" binding:"required"`
	FileType    string `json:"fileType"`
	UploadedAt  string `json:"uploadedAt"`
	IsAvailable bool   `json:"isAvailable"`
	IsDeleted   bool   `json:"isDeleted"`
}

// handleListMaterials answers 404 when the course has no materials; clients
// treat that as an empty collection.
func (s *Server) handleListMaterials(c *gin.Context) {
	courseID, err := strconv.Atoi(c.Param("courseId"))
	if err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid course id")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	materials := make([]domain.TrainingMaterial, 0)
	for _, m := range s.data.materials {
		if m.CourseID == courseID && !m.IsDeleted {
			materials = append(materials, m)
		}
	}
	if len(materials) == 0 {
		abortWithMessage(c, http.StatusNotFound, "No training materials found for this course")
		return
	}
	c.JSON(http.StatusOK, materials)
}

func (s *Server) handleCreateMaterial(c *gin.Context) {
	var req materialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid material payload")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	if _, found := s.data.courseByID(req.CourseID); !found {
		abortWithMessage(c, http.StatusNotFound, "Course not found")
		return
	}

	uploadedAt := req.UploadedAt
	if uploadedAt == "" {
		uploadedAt = timestamp()
	}
	uploadedBy, _ := userIDFromContext(c)

	s.data.materials = append(s.data.materials, domain.TrainingMaterial{
		ID:          s.data.id(),
		CourseID:    req.CourseID,
		Title:       req.Title,
		Description: req.Description,
		FilePath:    req.FilePath,
		FileType:    req.FileType,
		UploadedBy:  uploadedBy,
		UploadedAt:  uploadedAt,
		IsAvailable: true,
	})
	c.JSON(http.StatusCreated, gin.H{"message": "Training material saved"})
}

func (s *Server) handleDeleteMaterial(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid material id")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	for i := range s.data.materials {
		if s.data.materials[i].ID == id && !s.data.materials[i].IsDeleted {
			s.data.materials[i].IsDeleted = true
			s.data.materials[i].IsAvailable = false
			s.data.materials[i].UpdatedAt = timestamp()
			c.JSON(http.StatusOK, gin.H{"message": "Training material deleted"})
			return
		}
	}
	abortWithMessage(c, http.StatusNotFound, "Training material not found")
}

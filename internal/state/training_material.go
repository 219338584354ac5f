package state

import (
	"context"
	"fmt"
	"sync"
	"time"

	"farhanadbm1/traintrack-client/internal/api"
	"farhanadbm1/traintrack-client/internal/domain"
	"farhanadbm1/traintrack-client/internal/storage"
)

// TrainingMaterialState is the material slice's readable state.
type TrainingMaterialState struct {
	Materials []domain.TrainingMaterial
	Status
}

// TrainingMaterialSlice owns the documents attached to a course. Upload is a
// two-phase operation: the file goes to object storage first, then the
// metadata (with the stored URL) goes to the backend, then the listing is
// refetched so the collection reflects server truth.
type TrainingMaterialSlice struct {
	mu      sync.Mutex
	api     *api.Client
	uploads storage.Uploader

	state TrainingMaterialState
}

func NewTrainingMaterialSlice(client *api.Client, uploads storage.Uploader) *TrainingMaterialSlice {
	return &TrainingMaterialSlice{api: client, uploads: uploads}
}

func (s *TrainingMaterialSlice) State() TrainingMaterialState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *TrainingMaterialSlice) ResetStatus() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.reset()
}

// --- Inputs ---

type UploadMaterialInput struct {
	CourseID    int
	Title       string
	Description string
}

// createMaterialRequest is the backend payload once the file URL is known.
type createMaterialRequest struct {
	CourseID    int    `json:"courseId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FilePath    string `json:"filePath"`
	FileType    string `json:"fileType"`
	UploadedAt  string `json:"uploadedAt"`
	IsAvailable bool   `json:"isAvailable"`
	IsDeleted   bool   `json:"isDeleted"`
}

// --- Operations ---

// Fetch replaces the collection with one course's materials. A backend 404
// means the course has no materials yet: the collection empties and no error
// is recorded. Malformed listing rows are dropped.
func (s *TrainingMaterialSlice) Fetch(ctx context.Context, courseID int) error {
	s.beginFetch()
	var materials []domain.TrainingMaterial
	if err := s.api.Get(ctx, fmt.Sprintf("/TrainingMaterial/%d", courseID), &materials); err != nil {
		if api.IsNotFound(err) {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.state.Materials = []domain.TrainingMaterial{}
			s.state.Loading = false
			return nil
		}
		s.failFetch(api.ErrorMessage(err, "Failed to load training materials."))
		return err
	}

	valid := make([]domain.TrainingMaterial, 0, len(materials))
	for _, m := range materials {
		if m.Valid() {
			valid = append(valid, m)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Materials = valid
	s.state.Loading = false
	return nil
}

// Upload pushes the file to object storage, registers the material with the
// backend and refetches the course's listing. An upload failure
// short-circuits before any backend call.
func (s *TrainingMaterialSlice) Upload(ctx context.Context, in UploadMaterialInput, file storage.UploadInput) error {
	s.beginMutation()
	url, err := s.uploads.Upload(ctx, file)
	if err != nil {
		s.failMutation("Failed to upload training material.")
		return err
	}

	req := createMaterialRequest{
		CourseID:    in.CourseID,
		Title:       in.Title,
		Description: in.Description,
		FilePath:    url,
		FileType:    file.ContentType,
		UploadedAt:  time.Now().UTC().Format(time.RFC3339),
		IsAvailable: true,
		IsDeleted:   false,
	}
	if err := s.api.Post(ctx, "/TrainingMaterial", req, nil); err != nil {
		s.failMutation(api.ErrorMessage(err, "Failed to save training material."))
		return err
	}

	s.mu.Lock()
	s.state.Success = true
	s.mu.Unlock()

	// Collection truth comes from the server; refetch clears Loading.
	return s.Fetch(ctx, in.CourseID)
}

// Delete removes a material and refetches the course's listing.
func (s *TrainingMaterialSlice) Delete(ctx context.Context, courseID, materialID int) error {
	s.beginMutation()
	if err := s.api.Delete(ctx, fmt.Sprintf("/TrainingMaterial/%d", materialID)); err != nil {
		s.failMutation(api.ErrorMessage(err, "Failed to delete training material."))
		return err
	}

	s.mu.Lock()
	s.state.Success = true
	s.mu.Unlock()

	return s.Fetch(ctx, courseID)
}

// --- flag reductions ---

func (s *TrainingMaterialSlice) beginFetch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.beginFetch()
}

func (s *TrainingMaterialSlice) beginMutation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.beginMutation()
}

func (s *TrainingMaterialSlice) failFetch(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.failFetch(msg)
}

func (s *TrainingMaterialSlice) failMutation(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.failMutation(msg)
}

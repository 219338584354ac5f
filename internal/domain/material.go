package domain

// TrainingMaterial is a document attached to a course. FilePath is an
// external object-storage URL, FileType the MIME type reported at upload.
type TrainingMaterial struct {
	ID          int    `json:"id"`
	CourseID    int    `json:"courseId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FilePath    string `json:"filePath"`
	FileType    string `json:"fileType"`
	UploadedBy  int    `json:"uploadedBy,omitempty"`
	UploadedAt  string `json:"uploadedAt"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
	IsAvailable bool   `json:"isAvailable"`
	IsDeleted   bool   `json:"isDeleted"`
}

// Valid reports whether a listing entry is well formed. Listings are filtered
// through this before they reach the collection; the backend has been seen
// returning placeholder rows.
func (m *TrainingMaterial) Valid() bool {
	return m.ID > 0 && m.Title != ""
}

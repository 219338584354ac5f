package domain

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RoleAdmin   Role = "Admin"
	RoleTrainer Role = "Trainer"
	RoleTrainee Role = "Trainee"
)

// User represents an account in the system (Admin, Trainer or Trainee).
// PhoneNumber and ProfilePicture are optional; IsDeleted is a soft-delete
// flag, accounts are never removed physically.
type User struct {
	ID             int    `json:"id"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phoneNumber,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	Role           Role   `json:"role"`
	IsDeleted      bool   `json:"isDeleted,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsTrainer() bool {
	return u.Role == RoleTrainer
}

func (u *User) IsTrainee() bool {
	return u.Role == RoleTrainee
}

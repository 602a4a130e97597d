package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleHOD        = "hod"
	RoleFaculty    = "faculty"
	RoleStudent    = "student"
)

var ErrUserNotFound = errors.New("user not found")

func ValidRole(role string) bool {
	switch role {
	case RoleSuperAdmin, RoleAdmin, RoleHOD, RoleFaculty, RoleStudent:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID  `json:"id"`
	CollegeID    *uuid.UUID `json:"college_id"`
	DepartmentID *uuid.UUID `json:"department_id"`
	SectionID    *uuid.UUID `json:"section_id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Role         string     `json:"role"`
	Year         *int       `json:"year"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(u.Email) == "" {
		return errors.New("email is required")
	}
	if !ValidRole(u.Role) {
		return fmt.Errorf("invalid role %q", u.Role)
	}
	// Only super admins float above a college.
	if u.Role != RoleSuperAdmin && u.CollegeID == nil {
		return fmt.Errorf("role %q requires a college", u.Role)
	}
	return nil
}

// ListFilter narrows a user listing. Nil fields are ignored.
type ListFilter struct {
	CollegeID    *uuid.UUID
	DepartmentID *uuid.UUID
	SectionID    *uuid.UUID
	Role         *string
	Year         *int
	Search       string
	Limit        int
	Offset       int
}

type Repository interface {
	Save(ctx context.Context, u *User) error
	SaveBatch(ctx context.Context, users []*User) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, filter ListFilter) ([]*User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

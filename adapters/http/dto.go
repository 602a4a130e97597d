package http

import (
	"time"

	"github.com/google/uuid"

	"github.com/khanhngo/campus-hub/internal/domain/notification"
	"github.com/khanhngo/campus-hub/internal/domain/user"
)

// Auth DTOs

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string  `json:"access_token"`
	User        UserDTO `json:"user"`
}

// User DTOs

type UserDTO struct {
	ID           uuid.UUID  `json:"id"`
	CollegeID    *uuid.UUID `json:"college_id,omitempty"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
	SectionID    *uuid.UUID `json:"section_id,omitempty"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone,omitempty"`
	Role         string     `json:"role"`
	Year         *int       `json:"year,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func ToUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID,
		CollegeID:    u.CollegeID,
		DepartmentID: u.DepartmentID,
		SectionID:    u.SectionID,
		Name:         u.Name,
		Email:        u.Email,
		Phone:        u.Phone,
		Role:         u.Role,
		Year:         u.Year,
		CreatedAt:    u.CreatedAt,
	}
}

type CreateUserRequest struct {
	CollegeID    *uuid.UUID `json:"college_id"`
	DepartmentID *uuid.UUID `json:"department_id"`
	SectionID    *uuid.UUID `json:"section_id"`
	Name         string     `json:"name" binding:"required"`
	Email        string     `json:"email" binding:"required,email"`
	Phone        string     `json:"phone"`
	Role         string     `json:"role" binding:"required,oneof=super_admin admin hod faculty student"`
	Year         *int       `json:"year"`
	Password     string     `json:"password" binding:"required,min=8"`
}

type UpdateUserRequest struct {
	CollegeID    *uuid.UUID `json:"college_id"`
	DepartmentID *uuid.UUID `json:"department_id"`
	SectionID    *uuid.UUID `json:"section_id"`
	Name         string     `json:"name" binding:"required"`
	Email        string     `json:"email" binding:"required,email"`
	Phone        string     `json:"phone"`
	Role         string     `json:"role" binding:"required,oneof=super_admin admin hod faculty student"`
	Year         *int       `json:"year"`
}

// Academic DTOs

type CollegeRequest struct {
	Name    string `json:"name" binding:"required"`
	Code    string `json:"code" binding:"required"`
	Address string `json:"address"`
}

type DepartmentRequest struct {
	CollegeID uuid.UUID  `json:"college_id" binding:"required"`
	Name      string     `json:"name" binding:"required"`
	Code      string     `json:"code" binding:"required"`
	HODID     *uuid.UUID `json:"hod_id"`
}

type SectionRequest struct {
	DepartmentID uuid.UUID `json:"department_id" binding:"required"`
	Name         string    `json:"name" binding:"required"`
	Year         int       `json:"year" binding:"required,min=1,max=5"`
	Capacity     int       `json:"capacity"`
}

type SubjectRequest struct {
	DepartmentID uuid.UUID `json:"department_id" binding:"required"`
	SemesterID   uuid.UUID `json:"semester_id" binding:"required"`
	Name         string    `json:"name" binding:"required"`
	Code         string    `json:"code" binding:"required"`
	Credits      int       `json:"credits"`
}

type SemesterRequest struct {
	CollegeID uuid.UUID `json:"college_id" binding:"required"`
	Number    int       `json:"number" binding:"required,min=1,max=10"`
	StartsOn  time.Time `json:"starts_on" binding:"required"`
	EndsOn    time.Time `json:"ends_on" binding:"required"`
}

// Interview DTOs

type ScheduleInterviewRequest struct {
	StudentID     uuid.UUID `json:"student_id" binding:"required"`
	InterviewerID uuid.UUID `json:"interviewer_id" binding:"required"`
	TargetRole    string    `json:"target_role" binding:"required"`
	ScheduledAt   time.Time `json:"scheduled_at" binding:"required"`
	DurationMin   int       `json:"duration_min" binding:"required,min=1"`
}

type RescheduleInterviewRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	DurationMin int       `json:"duration_min"`
}

type CompleteInterviewRequest struct {
	Feedback string `json:"feedback" binding:"required"`
}

// Notification DTOs

type CreateNotificationRequest struct {
	Title  string `json:"title" binding:"required"`
	Body   string `json:"body" binding:"required"`
	Target struct {
		CollegeID       *uuid.UUID  `json:"college_id"`
		DepartmentID    *uuid.UUID  `json:"department_id"`
		SectionID       *uuid.UUID  `json:"section_id"`
		Year            *int        `json:"year"`
		ExplicitUserIDs []uuid.UUID `json:"explicit_user_ids"`
	} `json:"target" binding:"required"`
}

func (req *CreateNotificationRequest) ToDomainTarget() notification.Target {
	return notification.Target{
		CollegeID:       req.Target.CollegeID,
		DepartmentID:    req.Target.DepartmentID,
		SectionID:       req.Target.SectionID,
		Year:            req.Target.Year,
		ExplicitUserIDs: req.Target.ExplicitUserIDs,
	}
}

// Certificate DTOs

type ReviewCertificateRequest struct {
	Approve bool   `json:"approve"`
	Comment string `json:"comment"`
}

// Resume DTOs

type SaveResumeProfileRequest struct {
	FullName string            `json:"full_name"`
	Email    string            `json:"email"`
	Phone    string            `json:"phone"`
	Headline string            `json:"headline"`
	Summary  string            `json:"summary"`
	Address  string            `json:"address"`
	Links    map[string]string `json:"links"`
}

type ResumeSectionRequest struct {
	Title        string         `json:"title" binding:"required"`
	Organization string         `json:"organization"`
	Description  string         `json:"description"`
	StartDate    *time.Time     `json:"start_date"`
	EndDate      *time.Time     `json:"end_date"`
	Fields       map[string]any `json:"fields"`
	Position     int            `json:"position"`
}

type GenerateResumeRequest struct {
	TargetRole string `json:"target_role" binding:"required"`
}

package interview

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khanhngo/campus-hub/internal/domain/interview"
	"github.com/khanhngo/campus-hub/internal/domain/user"
	"github.com/khanhngo/campus-hub/pkg/apperror"
	"github.com/khanhngo/campus-hub/pkg/logger"
)

type InterviewUseCase struct {
	repo     interview.Repository
	userRepo user.Repository
	logger   logger.Logger
}

func NewInterviewUseCase(repo interview.Repository, userRepo user.Repository, log logger.Logger) *InterviewUseCase {
	return &InterviewUseCase{repo: repo, userRepo: userRepo, logger: log}
}

type ScheduleInput struct {
	StudentID     uuid.UUID
	InterviewerID uuid.UUID
	TargetRole    string
	ScheduledAt   time.Time
	DurationMin   int
}

func (uc *InterviewUseCase) Schedule(ctx context.Context, in ScheduleInput) (*interview.Interview, error) {
	student, err := uc.userRepo.FindByID(ctx, in.StudentID)
	if err != nil {
		return nil, apperror.NewInvalidInput("student not found", err)
	}
	if student.Role != user.RoleStudent {
		return nil, apperror.NewInvalidInput("interviewee must be a student", nil)
	}
	if student.CollegeID == nil {
		return nil, apperror.NewInvalidInput("student has no college", nil)
	}
	if _, err := uc.userRepo.FindByID(ctx, in.InterviewerID); err != nil {
		return nil, apperror.NewInvalidInput("interviewer not found", err)
	}
	if in.ScheduledAt.Before(time.Now()) {
		return nil, apperror.NewInvalidInput("cannot schedule an interview in the past", nil)
	}

	now := time.Now().UTC()
	i := &interview.Interview{
		ID:            uuid.New(),
		CollegeID:     *student.CollegeID,
		StudentID:     in.StudentID,
		InterviewerID: in.InterviewerID,
		TargetRole:    in.TargetRole,
		ScheduledAt:   in.ScheduledAt,
		DurationMin:   in.DurationMin,
		Status:        interview.StatusScheduled,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := i.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("interview validation failed", err)
	}
	if err := uc.repo.Save(ctx, i); err != nil {
		return nil, err
	}

	uc.logger.Info("Mock interview scheduled",
		zap.String("interview_id", i.ID.String()),
		zap.Time("at", i.ScheduledAt),
	)
	return i, nil
}

func (uc *InterviewUseCase) Get(ctx context.Context, id uuid.UUID) (*interview.Interview, error) {
	i, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if err == interview.ErrInterviewNotFound {
			return nil, apperror.NewNotFound("interview", id.String())
		}
		return nil, err
	}
	return i, nil
}

func (uc *InterviewUseCase) ListByStudent(ctx context.Context, studentID uuid.UUID, page, limit int) ([]*interview.Interview, error) {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	return uc.repo.ListByStudent(ctx, studentID, limit, (page-1)*limit)
}

func (uc *InterviewUseCase) ListByInterviewer(ctx context.Context, interviewerID uuid.UUID, page, limit int) ([]*interview.Interview, error) {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	return uc.repo.ListByInterviewer(ctx, interviewerID, limit, (page-1)*limit)
}

type RescheduleInput struct {
	ID          uuid.UUID
	ScheduledAt time.Time
	DurationMin int
}

func (uc *InterviewUseCase) Reschedule(ctx context.Context, in RescheduleInput) (*interview.Interview, error) {
	i, err := uc.Get(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if i.Status != interview.StatusScheduled {
		return nil, apperror.NewInvalidInput("only scheduled interviews can be rescheduled", nil)
	}
	if in.ScheduledAt.Before(time.Now()) {
		return nil, apperror.NewInvalidInput("cannot schedule an interview in the past", nil)
	}

	i.ScheduledAt = in.ScheduledAt
	if in.DurationMin > 0 {
		i.DurationMin = in.DurationMin
	}
	if err := uc.repo.Update(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

// Complete records the interviewer's feedback and closes the slot.
func (uc *InterviewUseCase) Complete(ctx context.Context, id uuid.UUID, feedback string) (*interview.Interview, error) {
	i, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if i.Status != interview.StatusScheduled {
		return nil, apperror.NewInvalidInput("interview is not open", nil)
	}
	i.Status = interview.StatusCompleted
	i.Feedback = feedback
	if err := uc.repo.Update(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (uc *InterviewUseCase) Cancel(ctx context.Context, id uuid.UUID) (*interview.Interview, error) {
	i, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if i.Status != interview.StatusScheduled {
		return nil, apperror.NewInvalidInput("interview is not open", nil)
	}
	i.Status = interview.StatusCancelled
	if err := uc.repo.Update(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

package user

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khanhngo/campus-hub/internal/domain/user"
	"github.com/khanhngo/campus-hub/pkg/apperror"
	"github.com/khanhngo/campus-hub/pkg/auth"
)

// csv layout: name,email,phone,role,year,password. Header row required,
// year and password optional per row.
const importColumns = 6

type BulkImportInput struct {
	CollegeID    uuid.UUID
	DepartmentID *uuid.UUID
	SectionID    *uuid.UUID
	CSV          io.Reader
}

type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type BulkImportOutput struct {
	Imported int        `json:"imported"`
	Skipped  []RowError `json:"skipped"`
}

// BulkImport parses the CSV, validates every row, and inserts the valid ones
// in one batch. Invalid rows are reported back, not fatal.
func (uc *UserUseCase) BulkImport(ctx context.Context, in BulkImportInput) (*BulkImportOutput, error) {
	reader := csv.NewReader(in.CSV)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, apperror.NewInvalidInput("cannot read CSV header", err)
	}
	if len(header) < importColumns-2 {
		return nil, apperror.NewInvalidInput(
			fmt.Sprintf("expected header name,email,phone,role[,year,password], got %d columns", len(header)), nil)
	}

	out := &BulkImportOutput{Skipped: []RowError{}}
	users := make([]*user.User, 0)
	now := time.Now().UTC()

	for rowNum := 2; ; rowNum++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			out.Skipped = append(out.Skipped, RowError{Row: rowNum, Message: "malformed CSV row"})
			continue
		}

		u, rowErr := uc.parseRow(record, in, now)
		if rowErr != "" {
			out.Skipped = append(out.Skipped, RowError{Row: rowNum, Message: rowErr})
			continue
		}
		users = append(users, u)
	}

	if len(users) == 0 {
		return out, nil
	}

	if err := uc.repo.SaveBatch(ctx, users); err != nil {
		return nil, err
	}
	out.Imported = len(users)
	uc.logger.Info("Bulk user import finished",
		zap.Int("imported", out.Imported),
		zap.Int("skipped", len(out.Skipped)),
	)
	return out, nil
}

func (uc *UserUseCase) parseRow(record []string, in BulkImportInput, now time.Time) (*user.User, string) {
	field := func(i int) string {
		if i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}

	u := &user.User{
		ID:           uuid.New(),
		CollegeID:    &in.CollegeID,
		DepartmentID: in.DepartmentID,
		SectionID:    in.SectionID,
		Name:         field(0),
		Email:        field(1),
		Phone:        field(2),
		Role:         field(3),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if yearStr := field(4); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, fmt.Sprintf("invalid year %q", yearStr)
		}
		u.Year = &year
	}

	password := field(5)
	if password == "" {
		// Temporary credential; the account owner resets it on first login.
		password = uuid.NewString()
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "failed to hash password"
	}
	u.PasswordHash = hash

	if err := u.Validate(); err != nil {
		return nil, err.Error()
	}
	return u, ""
}

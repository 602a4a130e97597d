package user

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanhngo/campus-hub/internal/domain/user"
	"github.com/khanhngo/campus-hub/pkg/logger"
)

type fakeUserRepo struct {
	batches [][]*user.User
}

func (f *fakeUserRepo) Save(ctx context.Context, u *user.User) error { return nil }

func (f *fakeUserRepo) SaveBatch(ctx context.Context, users []*user.User) error {
	f.batches = append(f.batches, users)
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context, filter user.ListFilter) ([]*user.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *user.User) error { return nil }

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func TestBulkImport_ImportsValidRowsAndReportsBadOnes(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := NewUserUseCase(repo, logger.NewNop())

	csv := strings.Join([]string{
		"name,email,phone,role,year,password",
		"Alice Nguyen,alice@college.edu,5551111,student,2,secretpass1",
		"Bob Tran,bob@college.edu,5552222,faculty,,",
		",missing-name@college.edu,,student,1,",
		"Carol Le,carol@college.edu,5553333,student,notayear,",
		"Dave Pham,dave@college.edu,,dean,1,",
	}, "\n")

	out, err := uc.BulkImport(context.Background(), BulkImportInput{
		CollegeID: uuid.New(),
		CSV:       strings.NewReader(csv),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, out.Imported)
	require.Len(t, out.Skipped, 3)
	assert.Equal(t, 4, out.Skipped[0].Row)
	assert.Equal(t, 5, out.Skipped[1].Row)
	assert.Contains(t, out.Skipped[1].Message, "invalid year")
	assert.Equal(t, 6, out.Skipped[2].Row)

	require.Len(t, repo.batches, 1)
	batch := repo.batches[0]
	require.Len(t, batch, 2)
	assert.Equal(t, "alice@college.edu", batch[0].Email)
	require.NotNil(t, batch[0].Year)
	assert.Equal(t, 2, *batch[0].Year)

	// Rows without a password still get a usable hash.
	assert.NotEmpty(t, batch[1].PasswordHash)
	assert.Nil(t, batch[1].Year)
}

func TestBulkImport_EmptyFileAfterHeader(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := NewUserUseCase(repo, logger.NewNop())

	out, err := uc.BulkImport(context.Background(), BulkImportInput{
		CollegeID: uuid.New(),
		CSV:       strings.NewReader("name,email,phone,role,year,password\n"),
	})
	require.NoError(t, err)
	assert.Zero(t, out.Imported)
	assert.Empty(t, out.Skipped)
	assert.Empty(t, repo.batches)
}

func TestBulkImport_RejectsUnreadableHeader(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := NewUserUseCase(repo, logger.NewNop())

	_, err := uc.BulkImport(context.Background(), BulkImportInput{
		CollegeID: uuid.New(),
		CSV:       strings.NewReader(""),
	})
	assert.Error(t, err)
}

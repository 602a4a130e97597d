package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/khanhngo/campus-hub/internal/domain/resume"
	"github.com/khanhngo/campus-hub/pkg/logger"
)

type ResumeRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	profileRepo resume.ProfileRepository
	sectionRepo resume.SectionRepository
	testOwner   uuid.UUID
}

func (s *ResumeRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	s.profileRepo, s.sectionRepo = NewPostgresResumeRepo(pool, logger.NewNop())

	s.testOwner = uuid.New()
	query := `INSERT INTO users (id, name, email, role, password_hash) VALUES ($1, $2, $3, $4, $5)`
	_, err = pool.Exec(ctx, query, s.testOwner, "Test Student", "student@example.com", "super_admin", "hashedpassword")
	if err != nil {
		s.T().Fatalf("Failed to seed owner: %s", err)
	}
}

func (s *ResumeRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestResumeRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(ResumeRepoIntegrationTestSuite))
}

func (s *ResumeRepoIntegrationTestSuite) Test_Profile_MissingReadsAsEmpty() {
	p, err := s.profileRepo.GetByOwner(context.Background(), uuid.New())
	s.Require().NoError(err)
	s.Equal("", p.FullName)
	s.NotNil(p.Links)
}

func (s *ResumeRepoIntegrationTestSuite) Test_Profile_UpsertAndRead() {
	ctx := context.Background()

	p := &resume.Profile{
		OwnerID:   s.testOwner,
		FullName:  "Test Student",
		Email:     "student@example.com",
		Phone:     "5551234",
		Headline:  "CS undergrad",
		Links:     map[string]string{"github": "https://github.com/teststudent"},
		UpdatedAt: time.Now().UTC(),
	}
	s.Require().NoError(s.profileRepo.Upsert(ctx, p))

	p.Headline = "CS undergrad, class of 2027"
	s.Require().NoError(s.profileRepo.Upsert(ctx, p))

	got, err := s.profileRepo.GetByOwner(ctx, s.testOwner)
	s.Require().NoError(err)
	s.Equal("CS undergrad, class of 2027", got.Headline)
	s.Equal("https://github.com/teststudent", got.Links["github"])
}

func (s *ResumeRepoIntegrationTestSuite) Test_Section_CRUDAndCounts() {
	ctx := context.Background()
	now := time.Now().UTC()

	edu := &resume.Section{
		ID:           uuid.New(),
		OwnerID:      s.testOwner,
		Kind:         resume.KindEducation,
		Title:        "BSc Computer Science",
		Organization: "State University",
		Fields:       map[string]any{"gpa": 3.8},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.Require().NoError(s.sectionRepo.Save(ctx, edu))

	skillGroup := &resume.Section{
		ID:        uuid.New(),
		OwnerID:   s.testOwner,
		Kind:      resume.KindSkills,
		Title:     "Technical",
		Fields:    map[string]any{"items": []any{"Go", "Python"}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.Require().NoError(s.sectionRepo.Save(ctx, skillGroup))

	got, err := s.sectionRepo.FindByID(ctx, edu.ID, s.testOwner)
	s.Require().NoError(err)
	s.Equal("BSc Computer Science", got.Title)
	s.InDelta(3.8, got.Fields["gpa"], 0.001)

	listed, err := s.sectionRepo.ListByOwnerAndKind(ctx, s.testOwner, resume.KindEducation)
	s.Require().NoError(err)
	s.Len(listed, 1)

	counts, err := s.sectionRepo.CountByKind(ctx, s.testOwner)
	s.Require().NoError(err)
	s.Equal(1, counts[resume.KindEducation])
	s.Equal(1, counts[resume.KindSkills])
	s.Zero(counts[resume.KindProjects])

	edu.Title = "BSc Computer Science (Honours)"
	s.Require().NoError(s.sectionRepo.Update(ctx, edu))

	s.Require().NoError(s.sectionRepo.Delete(ctx, skillGroup.ID, s.testOwner))
	s.ErrorIs(s.sectionRepo.Delete(ctx, skillGroup.ID, s.testOwner), resume.ErrSectionNotFound)
}

func (s *ResumeRepoIntegrationTestSuite) Test_Section_OwnerScoping() {
	ctx := context.Background()
	now := time.Now().UTC()

	section := &resume.Section{
		ID:        uuid.New(),
		OwnerID:   s.testOwner,
		Kind:      resume.KindProjects,
		Title:     "Compiler project",
		Fields:    map[string]any{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.Require().NoError(s.sectionRepo.Save(ctx, section))

	_, err := s.sectionRepo.FindByID(ctx, section.ID, uuid.New())
	s.ErrorIs(err, resume.ErrSectionNotFound)
}

package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khanhngo/campus-hub/adapters/event"
	httpAdapter "github.com/khanhngo/campus-hub/adapters/http"
	"github.com/khanhngo/campus-hub/adapters/llm"
	"github.com/khanhngo/campus-hub/adapters/media_storage"
	"github.com/khanhngo/campus-hub/adapters/persistence"
	academicUC "github.com/khanhngo/campus-hub/internal/application/usecase/academic"
	authUC "github.com/khanhngo/campus-hub/internal/application/usecase/auth"
	certificateUC "github.com/khanhngo/campus-hub/internal/application/usecase/certificate"
	draftUC "github.com/khanhngo/campus-hub/internal/application/usecase/draft"
	interviewUC "github.com/khanhngo/campus-hub/internal/application/usecase/interview"
	notificationUC "github.com/khanhngo/campus-hub/internal/application/usecase/notification"
	resumeUC "github.com/khanhngo/campus-hub/internal/application/usecase/resume"
	userUC "github.com/khanhngo/campus-hub/internal/application/usecase/user"
	"github.com/khanhngo/campus-hub/internal/config"
	"github.com/khanhngo/campus-hub/internal/domain/draft"
	"github.com/khanhngo/campus-hub/internal/domain/user"
	"github.com/khanhngo/campus-hub/pkg/auth"
	"github.com/khanhngo/campus-hub/pkg/logger"
	"github.com/khanhngo/campus-hub/pkg/skills"
)

func main() {
	fmt.Println("Start Campus Hub API Server...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot init Kafka: %v", err)
	}
	defer kafkaClient.Close()

	// Draft storage is best-effort, so a missing Redis only downgrades the
	// backend instead of refusing to boot.
	var draftStore draft.Store
	if cfg.Draft.Backend == "memory" {
		draftStore = persistence.NewMemoryDraftStore()
	} else {
		redisClient, err := persistence.NewRedisClient(cfg, appLogger)
		if err != nil {
			appLogger.Warn("Redis unavailable, falling back to in-memory draft store", zap.Error(err))
			draftStore = persistence.NewMemoryDraftStore()
		} else {
			defer redisClient.Close()
			draftStore = persistence.NewRedisDraftStore(redisClient, appLogger)
		}
	}

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	collegeRepo := persistence.NewPostgresCollegeRepo(dbPool)
	departmentRepo := persistence.NewPostgresDepartmentRepo(dbPool)
	sectionRepo := persistence.NewPostgresSectionRepo(dbPool)
	subjectRepo := persistence.NewPostgresSubjectRepo(dbPool)
	semesterRepo := persistence.NewPostgresSemesterRepo(dbPool)
	interviewRepo := persistence.NewPostgresInterviewRepo(dbPool)
	notificationRepo := persistence.NewPostgresNotificationRepo(dbPool, appLogger)
	certificateRepo := persistence.NewPostgresCertificateRepo(dbPool)
	profileRepo, resumeSectionRepo := persistence.NewPostgresResumeRepo(dbPool, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: failed to initialize uploader: %v", err)
	}
	generator, err := llm.NewOpenAIResumeGenerator(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: failed to initialize resume generator: %v", err)
	}
	skillCatalog := skills.NewDefaultCatalog()

	// Use Cases
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	userUseCase := userUC.NewUserUseCase(userRepo, appLogger)
	collegeUseCase := academicUC.NewCollegeUseCase(collegeRepo, appLogger)
	departmentUseCase := academicUC.NewDepartmentUseCase(departmentRepo, userRepo, appLogger)
	sectionUseCase := academicUC.NewSectionUseCase(sectionRepo, appLogger)
	subjectUseCase := academicUC.NewSubjectUseCase(subjectRepo, appLogger)
	semesterUseCase := academicUC.NewSemesterUseCase(semesterRepo, appLogger)
	interviewUseCase := interviewUC.NewInterviewUseCase(interviewRepo, userRepo, appLogger)
	notificationUseCase := notificationUC.NewNotificationUseCase(notificationRepo, kafkaClient, appLogger)
	certificateUseCase := certificateUC.NewCertificateUseCase(certificateRepo, uploader, appLogger)
	resumeUseCase := resumeUC.NewResumeUseCase(profileRepo, resumeSectionRepo, generator, appLogger)
	draftUseCase := draftUC.NewDraftUseCase(draftStore, cfg.Draft.AutosaveQuiet)
	defer draftUseCase.Close()

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(loginUseCase, appLogger)
	userHandler := httpAdapter.NewUserHandler(userUseCase, appLogger)
	academicHandler := httpAdapter.NewAcademicHandler(
		collegeUseCase,
		departmentUseCase,
		sectionUseCase,
		subjectUseCase,
		semesterUseCase,
		appLogger,
	)
	interviewHandler := httpAdapter.NewInterviewHandler(interviewUseCase, appLogger)
	notificationHandler := httpAdapter.NewNotificationHandler(notificationUseCase, appLogger)
	certificateHandler := httpAdapter.NewCertificateHandler(certificateUseCase, appLogger)
	resumeHandler := httpAdapter.NewResumeHandler(resumeUseCase, draftUseCase, skillCatalog, appLogger)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)
	errorMiddleware := httpAdapter.ErrorMiddleware(appLogger)

	adminOnly := httpAdapter.RequireRoles(user.RoleAdmin)
	staff := httpAdapter.RequireRoles(user.RoleAdmin, user.RoleHOD)
	reviewers := httpAdapter.RequireRoles(user.RoleAdmin, user.RoleHOD, user.RoleFaculty)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(errorMiddleware)

	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)

		private := api.Group("/")
		private.Use(authMiddleware)
		{
			admin := private.Group("/admin")
			admin.Use(adminOnly)
			{
				admin.POST("/users", userHandler.CreateUser)
				admin.GET("/users", userHandler.ListUsers)
				admin.GET("/users/:id", userHandler.GetUser)
				admin.PUT("/users/:id", userHandler.UpdateUser)
				admin.DELETE("/users/:id", userHandler.DeleteUser)
				admin.POST("/users/import", userHandler.BulkImportUsers)

				admin.POST("/colleges", academicHandler.CreateCollege)
				admin.PUT("/colleges/:id", academicHandler.UpdateCollege)
				admin.DELETE("/colleges/:id", academicHandler.DeleteCollege)
				admin.POST("/departments", academicHandler.CreateDepartment)
				admin.PUT("/departments/:id", academicHandler.UpdateDepartment)
				admin.DELETE("/departments/:id", academicHandler.DeleteDepartment)
				admin.POST("/semesters", academicHandler.CreateSemester)
				admin.PUT("/semesters/:id", academicHandler.UpdateSemester)
				admin.DELETE("/semesters/:id", academicHandler.DeleteSemester)
			}

			org := private.Group("/")
			{
				org.GET("/colleges", academicHandler.ListColleges)
				org.GET("/colleges/:id", academicHandler.GetCollege)
				org.GET("/departments", academicHandler.ListDepartments)
				org.GET("/departments/:id", academicHandler.GetDepartment)
				org.GET("/sections", academicHandler.ListSections)
				org.GET("/subjects", academicHandler.ListSubjects)
				org.GET("/semesters", academicHandler.ListSemesters)
			}

			dept := private.Group("/")
			dept.Use(staff)
			{
				dept.POST("/sections", academicHandler.CreateSection)
				dept.PUT("/sections/:id", academicHandler.UpdateSection)
				dept.DELETE("/sections/:id", academicHandler.DeleteSection)
				dept.POST("/subjects", academicHandler.CreateSubject)
				dept.PUT("/subjects/:id", academicHandler.UpdateSubject)
				dept.DELETE("/subjects/:id", academicHandler.DeleteSubject)
			}

			interviews := private.Group("/interviews")
			{
				interviews.GET("", interviewHandler.ListMyInterviews)
				interviews.GET("/:id", interviewHandler.GetInterview)
				interviews.POST("", httpAdapter.RequireRoles(user.RoleAdmin, user.RoleHOD, user.RoleFaculty), interviewHandler.ScheduleInterview)
				interviews.PUT("/:id/reschedule", httpAdapter.RequireRoles(user.RoleAdmin, user.RoleHOD, user.RoleFaculty), interviewHandler.RescheduleInterview)
				interviews.PUT("/:id/complete", httpAdapter.RequireRoles(user.RoleAdmin, user.RoleHOD, user.RoleFaculty), interviewHandler.CompleteInterview)
				interviews.PUT("/:id/cancel", interviewHandler.CancelInterview)
			}

			notifications := private.Group("/notifications")
			{
				notifications.POST("", staff, notificationHandler.CreateNotification)
				notifications.GET("", notificationHandler.GetInbox)
				notifications.GET("/:id", staff, notificationHandler.GetNotification)
				notifications.PUT("/:id/read", notificationHandler.MarkNotificationRead)
			}

			certificates := private.Group("/certificates")
			{
				certificates.POST("", certificateHandler.UploadCertificate)
				certificates.GET("", certificateHandler.ListMyCertificates)
				certificates.GET("/pending", reviewers, certificateHandler.ListPendingCertificates)
				certificates.PUT("/:id/review", reviewers, certificateHandler.ReviewCertificate)
				certificates.DELETE("/:id", certificateHandler.DeleteCertificate)
			}

			resume := private.Group("/resume")
			{
				resume.GET("/profile", resumeHandler.GetProfile)
				resume.PUT("/profile", resumeHandler.SaveProfile)
				resume.GET("/completeness", resumeHandler.GetCompleteness)
				resume.GET("/skills/suggest", resumeHandler.SuggestSkills)
				resume.POST("/generate", resumeHandler.GenerateResume)

				resume.GET("/sections/:kind", resumeHandler.ListSections)
				resume.POST("/sections/:kind", resumeHandler.AddSection)
				resume.PUT("/sections/:kind/:id", resumeHandler.UpdateSection)
				resume.DELETE("/sections/:kind/:id", resumeHandler.DeleteSection)

				resume.GET("/drafts/:slot", resumeHandler.GetDraft)
				resume.PUT("/drafts/:slot", resumeHandler.SaveDraft)
				resume.POST("/drafts/:slot/autosave", resumeHandler.AutosaveDraft)
				resume.DELETE("/drafts/:slot", resumeHandler.ClearDraft)
			}
		}
	}

	appLogger.Info("Campus Hub API listening", zap.String("port", cfg.App.Port))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("FATAL: server stopped: %v", err)
	}
}

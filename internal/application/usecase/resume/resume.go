package resume

import (
	"github.com/khanhngo/campus-hub/internal/application/service"
	"github.com/khanhngo/campus-hub/internal/domain/resume"
	"github.com/khanhngo/campus-hub/pkg/logger"
)

type ResumeUseCase struct {
	profiles  resume.ProfileRepository
	sections  resume.SectionRepository
	generator service.ResumeGenerator
	logger    logger.Logger
}

func NewResumeUseCase(
	profiles resume.ProfileRepository,
	sections resume.SectionRepository,
	generator service.ResumeGenerator,
	log logger.Logger,
) *ResumeUseCase {
	return &ResumeUseCase{
		profiles:  profiles,
		sections:  sections,
		generator: generator,
		logger:    log,
	}
}

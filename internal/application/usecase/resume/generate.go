package resume

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khanhngo/campus-hub/internal/application/service"
	"github.com/khanhngo/campus-hub/internal/domain/resume"
	"github.com/khanhngo/campus-hub/pkg/apperror"
)

type GenerateInput struct {
	OwnerID    uuid.UUID
	TargetRole string
}

// Generate asks the AI collaborator for a tailored resume draft built from
// everything the student has entered so far.
func (uc *ResumeUseCase) Generate(ctx context.Context, in GenerateInput) (*service.GeneratedResume, error) {
	if strings.TrimSpace(in.TargetRole) == "" {
		return nil, apperror.NewInvalidInput("target role is required", nil)
	}

	profile, err := uc.GetProfile(ctx, in.OwnerID)
	if err != nil {
		return nil, err
	}

	profileContext, err := uc.buildProfileContext(ctx, profile)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(profileContext) == "" {
		return nil, apperror.NewInvalidInput("resume has no content to generate from", nil)
	}

	generated, err := uc.generator.Generate(ctx, in.TargetRole, profileContext)
	if err != nil {
		return nil, apperror.NewUpstream("AI service", "resume generation failed", err)
	}

	uc.logger.Info("Resume generated",
		zap.String("owner_id", in.OwnerID.String()),
		zap.String("target_role", in.TargetRole),
		zap.Int("ats_score", generated.ATSScore),
	)
	return generated, nil
}

// buildProfileContext flattens the profile and every section into the plain
// text block the prompt embeds.
func (uc *ResumeUseCase) buildProfileContext(ctx context.Context, profile *resume.Profile) (string, error) {
	var b strings.Builder

	if profile.FullName != "" {
		fmt.Fprintf(&b, "Name: %s\n", profile.FullName)
	}
	if profile.Headline != "" {
		fmt.Fprintf(&b, "Headline: %s\n", profile.Headline)
	}
	if profile.Summary != "" {
		fmt.Fprintf(&b, "Summary: %s\n", profile.Summary)
	}
	for label, url := range profile.Links {
		fmt.Fprintf(&b, "Link (%s): %s\n", label, url)
	}

	for _, kind := range resume.Kinds {
		sections, err := uc.sections.ListByOwnerAndKind(ctx, profile.OwnerID, kind)
		if err != nil {
			return "", err
		}
		if len(sections) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n## %s\n", kind)
		for _, s := range sections {
			fmt.Fprintf(&b, "- %s", s.Title)
			if s.Organization != "" {
				fmt.Fprintf(&b, " at %s", s.Organization)
			}
			if s.StartDate != nil {
				fmt.Fprintf(&b, " (%s", s.StartDate.Format("Jan 2006"))
				if s.EndDate != nil {
					fmt.Fprintf(&b, " to %s", s.EndDate.Format("Jan 2006"))
				}
				b.WriteString(")")
			}
			b.WriteString("\n")
			if s.Description != "" {
				fmt.Fprintf(&b, "  %s\n", s.Description)
			}
			for key, value := range s.Fields {
				fmt.Fprintf(&b, "  %s: %v\n", key, value)
			}
		}
	}
	return b.String(), nil
}

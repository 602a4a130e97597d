package service

import "context"

// GeneratedResume is the structured payload an AI collaborator returns for a
// target role: a tailored summary, formatted section texts keyed by section
// kind, and an ATS compatibility score in [0, 100].
type GeneratedResume struct {
	Summary  string            `json:"summary"`
	Sections map[string]string `json:"sections"`
	ATSScore int               `json:"ats_score"`
}

// ResumeGenerator is the AI generation collaborator. It is an opaque remote
// call; failures surface as errors with a human-readable message.
type ResumeGenerator interface {
	Generate(ctx context.Context, targetRole string, profileContext string) (*GeneratedResume, error)
}

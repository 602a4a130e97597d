package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanhngo/campus-hub/adapters/persistence"
	"github.com/khanhngo/campus-hub/internal/application/service"
	draftUC "github.com/khanhngo/campus-hub/internal/application/usecase/draft"
	resumeUC "github.com/khanhngo/campus-hub/internal/application/usecase/resume"
	"github.com/khanhngo/campus-hub/internal/domain/resume"
	"github.com/khanhngo/campus-hub/pkg/logger"
	"github.com/khanhngo/campus-hub/pkg/skills"
)

type stubProfileRepo struct {
	profiles map[uuid.UUID]*resume.Profile
}

func (s *stubProfileRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*resume.Profile, error) {
	if p, ok := s.profiles[ownerID]; ok {
		return p, nil
	}
	return &resume.Profile{OwnerID: ownerID, Links: map[string]string{}}, nil
}

func (s *stubProfileRepo) Upsert(ctx context.Context, p *resume.Profile) error {
	s.profiles[p.OwnerID] = p
	return nil
}

type stubSectionRepo struct {
	sections map[uuid.UUID]*resume.Section
}

func (s *stubSectionRepo) Save(ctx context.Context, sec *resume.Section) error {
	s.sections[sec.ID] = sec
	return nil
}

func (s *stubSectionRepo) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*resume.Section, error) {
	if sec, ok := s.sections[id]; ok && sec.OwnerID == ownerID {
		return sec, nil
	}
	return nil, resume.ErrSectionNotFound
}

func (s *stubSectionRepo) ListByOwnerAndKind(ctx context.Context, ownerID uuid.UUID, kind resume.SectionKind) ([]*resume.Section, error) {
	out := make([]*resume.Section, 0)
	for _, sec := range s.sections {
		if sec.OwnerID == ownerID && sec.Kind == kind {
			out = append(out, sec)
		}
	}
	return out, nil
}

func (s *stubSectionRepo) CountByKind(ctx context.Context, ownerID uuid.UUID) (map[resume.SectionKind]int, error) {
	counts := make(map[resume.SectionKind]int)
	for _, sec := range s.sections {
		if sec.OwnerID == ownerID {
			counts[sec.Kind]++
		}
	}
	return counts, nil
}

func (s *stubSectionRepo) Update(ctx context.Context, sec *resume.Section) error {
	s.sections[sec.ID] = sec
	return nil
}

func (s *stubSectionRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	if sec, ok := s.sections[id]; ok && sec.OwnerID == ownerID {
		delete(s.sections, id)
		return nil
	}
	return resume.ErrSectionNotFound
}

type stubGenerator struct{}

func (stubGenerator) Generate(ctx context.Context, targetRole, profileContext string) (*service.GeneratedResume, error) {
	return &service.GeneratedResume{Summary: "generated for " + targetRole, ATSScore: 80}, nil
}

func newResumeTestRouter(ownerID uuid.UUID) (*gin.Engine, *stubSectionRepo) {
	gin.SetMode(gin.TestMode)

	profileRepo := &stubProfileRepo{profiles: make(map[uuid.UUID]*resume.Profile)}
	sectionRepo := &stubSectionRepo{sections: make(map[uuid.UUID]*resume.Section)}

	useCase := resumeUC.NewResumeUseCase(profileRepo, sectionRepo, stubGenerator{}, logger.NewNop())
	drafts := draftUC.NewDraftUseCase(persistence.NewMemoryDraftStore(), time.Second)
	handler := NewResumeHandler(useCase, drafts, skills.NewDefaultCatalog(), logger.NewNop())

	router := gin.New()
	router.Use(ErrorMiddleware(logger.NewNop()))
	router.Use(func(c *gin.Context) {
		c.Set(GinContextKeyUserID, ownerID)
		c.Set(GinContextKeyRole, "student")
	})

	r := router.Group("/resume")
	{
		r.GET("/profile", handler.GetProfile)
		r.PUT("/profile", handler.SaveProfile)
		r.GET("/completeness", handler.GetCompleteness)
		r.GET("/skills/suggest", handler.SuggestSkills)
		r.POST("/sections/:kind", handler.AddSection)
		r.GET("/drafts/:slot", handler.GetDraft)
		r.PUT("/drafts/:slot", handler.SaveDraft)
		r.DELETE("/drafts/:slot", handler.ClearDraft)
	}
	return router, sectionRepo
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestResumeHandler_DraftLifecycle(t *testing.T) {
	router, _ := newResumeTestRouter(uuid.New())

	rr := doJSON(router, http.MethodGet, "/resume/drafts/resume.profile", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"found":false}`, rr.Body.String())

	rr = doJSON(router, http.MethodPut, "/resume/drafts/resume.profile", gin.H{"full_name": "Alice"})
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSON(router, http.MethodGet, "/resume/drafts/resume.profile", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Found bool            `json:"found"`
		Draft json.RawMessage `json:"draft"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Found)
	assert.JSONEq(t, `{"full_name":"Alice"}`, string(resp.Draft))

	rr = doJSON(router, http.MethodDelete, "/resume/drafts/resume.profile", nil)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSON(router, http.MethodGet, "/resume/drafts/resume.profile", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"found":false}`, rr.Body.String())
}

func TestResumeHandler_DraftRejectsUnknownSlot(t *testing.T) {
	router, _ := newResumeTestRouter(uuid.New())

	rr := doJSON(router, http.MethodPut, "/resume/drafts/not.a.slot", gin.H{"x": 1})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestResumeHandler_SavingProfileClearsItsDraft(t *testing.T) {
	router, _ := newResumeTestRouter(uuid.New())

	rr := doJSON(router, http.MethodPut, "/resume/drafts/resume.profile", gin.H{"full_name": "Draft Name"})
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSON(router, http.MethodPut, "/resume/profile", gin.H{"full_name": "Final Name", "email": "a@b.edu"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(router, http.MethodGet, "/resume/drafts/resume.profile", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"found":false}`, rr.Body.String())
}

func TestResumeHandler_SuggestSkills(t *testing.T) {
	router, _ := newResumeTestRouter(uuid.New())

	rr := doJSON(router, http.MethodGet, "/resume/skills/suggest?q=Python,+Ja&category=technical", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp.Suggestions, "Java")
	assert.Contains(t, resp.Suggestions, "JavaScript")
	assert.NotContains(t, resp.Suggestions, "Python")

	// Empty active token yields no suggestions.
	rr = doJSON(router, http.MethodGet, "/resume/skills/suggest?q=Python,+&category=technical", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"suggestions":[]}`, rr.Body.String())
}

func TestResumeHandler_Completeness(t *testing.T) {
	router, _ := newResumeTestRouter(uuid.New())

	rr := doJSON(router, http.MethodGet, "/resume/completeness", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Score int `json:"score"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Zero(t, resp.Score)

	rr = doJSON(router, http.MethodPut, "/resume/profile", gin.H{
		"full_name": "Alice", "email": "alice@college.edu", "phone": "5551111",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(router, http.MethodPost, "/resume/sections/education", gin.H{"title": "BSc CS"})
	require.Equal(t, http.StatusCreated, rr.Code)

	// Contact block plus one of six collections: 2 of 7 checks.
	rr = doJSON(router, http.MethodGet, "/resume/completeness", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 29, resp.Score)
}

func TestResumeHandler_AddSectionRejectsUnknownKind(t *testing.T) {
	router, _ := newResumeTestRouter(uuid.New())

	rr := doJSON(router, http.MethodPost, "/resume/sections/nonsense", gin.H{"title": "x"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

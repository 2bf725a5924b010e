package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	endorsementusecases "chambers/internal/application/endorsement/usecases"
	matterusecases "chambers/internal/application/matter/usecases"
	"chambers/internal/domain/endorsement"
	"chambers/internal/domain/matter"
	"chambers/internal/shared/biztime"
	"chambers/internal/shared/logger"
)

type fakeMatterRepo struct {
	matter.Repository
	findBySIDFn  func(ctx context.Context, firmID uint, sid string) (*matter.Matter, error)
	listByFirmFn func(ctx context.Context, firmID uint, limit, offset int) ([]*matter.Matter, int64, error)
}

func (f *fakeMatterRepo) FindBySID(ctx context.Context, firmID uint, sid string) (*matter.Matter, error) {
	return f.findBySIDFn(ctx, firmID, sid)
}

func (f *fakeMatterRepo) ListByFirm(ctx context.Context, firmID uint, limit, offset int) ([]*matter.Matter, int64, error) {
	return f.listByFirmFn(ctx, firmID, limit, offset)
}

type fakeEndorsementRepo struct {
	listByMatterFn func(ctx context.Context, firmID, matterID uint, limit, offset int) ([]*endorsement.Endorsement, int64, error)
}

func (f *fakeEndorsementRepo) Create(ctx context.Context, e *endorsement.Endorsement) error {
	return nil
}

func (f *fakeEndorsementRepo) ListByMatter(ctx context.Context, firmID, matterID uint, limit, offset int) ([]*endorsement.Endorsement, int64, error) {
	return f.listByMatterFn(ctx, firmID, matterID, limit, offset)
}

func (f *fakeEndorsementRepo) ExistsForMatterInWindow(ctx context.Context, firmID, matterID uint, window biztime.Window) (bool, error) {
	return false, nil
}

type passthroughRenderer struct{}

func (passthroughRenderer) ToHTMLSanitized(markdown string) (string, error) {
	return "<p>" + markdown + "</p>", nil
}

// asStaff simulates the auth middleware for a staff member of firm 1.
func asStaff(userID uint, department string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("firm_id", uint(1))
		c.Set("department", department)
		c.Set("user_role", "staff")
		c.Next()
	}
}

func testRouter(t *testing.T, repo *fakeMatterRepo, userID uint, department string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logger.NewLogger()

	handler := NewMatterHandler(
		matterusecases.NewCreateMatterUseCase(repo, log),
		matterusecases.NewGetMatterUseCase(repo, log),
		matterusecases.NewListMattersUseCase(repo, log),
	)

	router := gin.New()
	router.Use(asStaff(userID, department))
	router.GET("/matters", handler.ListMatters)
	router.GET("/matters/:sid", handler.GetMatter)
	router.POST("/matters", handler.CreateMatter)
	return router
}

func reconstructTestMatter(t *testing.T, sid string, userIDs []uint, departments []string) *matter.Matter {
	t.Helper()
	now := time.Now().UTC()
	m, err := matter.ReconstructMatter(7, sid, 1, "Smith v Jones", "LIT-1",
		matter.StatusOpen, matter.NewAccessScope(userIDs, departments), now, now)
	require.NoError(t, err)
	return m
}

func TestMatterHandler_GetMatter_DeniedIs403(t *testing.T) {
	repo := &fakeMatterRepo{findBySIDFn: func(ctx context.Context, firmID uint, sid string) (*matter.Matter, error) {
		return reconstructTestMatter(t, sid, []uint{99}, []string{"litigation"}), nil
	}}
	router := testRouter(t, repo, 4, "estates")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/matters/mat_abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
}

func TestMatterHandler_GetMatter_AllowedByAssignment(t *testing.T) {
	repo := &fakeMatterRepo{findBySIDFn: func(ctx context.Context, firmID uint, sid string) (*matter.Matter, error) {
		return reconstructTestMatter(t, sid, []uint{4}, nil), nil
	}}
	router := testRouter(t, repo, 4, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/matters/mat_abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mat_abc")
}

func TestMatterHandler_GetMatter_MissingIs404(t *testing.T) {
	repo := &fakeMatterRepo{findBySIDFn: func(ctx context.Context, firmID uint, sid string) (*matter.Matter, error) {
		return nil, nil
	}}
	router := testRouter(t, repo, 4, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/matters/mat_missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMatterHandler_ListMatters_ScopesRows(t *testing.T) {
	repo := &fakeMatterRepo{listByFirmFn: func(ctx context.Context, firmID uint, limit, offset int) ([]*matter.Matter, int64, error) {
		open := reconstructTestMatter(t, "mat_open", nil, nil)
		restricted := reconstructTestMatter(t, "mat_restricted", []uint{99}, nil)
		return []*matter.Matter{open, restricted}, 2, nil
	}}
	router := testRouter(t, repo, 4, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/matters", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mat_open")
	assert.NotContains(t, w.Body.String(), "mat_restricted")
}

func TestMatterHandler_CreateMatter_ValidatesBody(t *testing.T) {
	router := testRouter(t, &fakeMatterRepo{}, 4, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/matters", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEndorsementHandler_ListRendersHTML(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logger.NewLogger()

	matters := &fakeMatterRepo{findBySIDFn: func(ctx context.Context, firmID uint, sid string) (*matter.Matter, error) {
		return reconstructTestMatter(t, sid, nil, nil), nil
	}}
	e, err := endorsement.NewEndorsement(1, 7, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), 4, "Postponed")
	require.NoError(t, err)
	endorsements := &fakeEndorsementRepo{listByMatterFn: func(ctx context.Context, firmID, matterID uint, limit, offset int) ([]*endorsement.Endorsement, int64, error) {
		return []*endorsement.Endorsement{e}, 1, nil
	}}

	handler := NewEndorsementHandler(
		endorsementusecases.NewCreateEndorsementUseCase(endorsements, matters, log),
		endorsementusecases.NewListEndorsementsUseCase(endorsements, matters, passthroughRenderer{}, log),
	)

	router := gin.New()
	router.Use(asStaff(4, ""))
	router.GET("/matters/:sid/endorsements", handler.ListEndorsements)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/matters/mat_abc/endorsements", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "\\u003cp\\u003ePostponed\\u003c/p\\u003e")
}

func TestEndorsementHandler_CreateDeniedIs403(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logger.NewLogger()

	matters := &fakeMatterRepo{findBySIDFn: func(ctx context.Context, firmID uint, sid string) (*matter.Matter, error) {
		return reconstructTestMatter(t, sid, []uint{99}, nil), nil
	}}
	endorsements := &fakeEndorsementRepo{}

	handler := NewEndorsementHandler(
		endorsementusecases.NewCreateEndorsementUseCase(endorsements, matters, log),
		endorsementusecases.NewListEndorsementsUseCase(endorsements, matters, passthroughRenderer{}, log),
	)

	router := gin.New()
	router.Use(asStaff(4, ""))
	router.POST("/matters/:sid/endorsements", handler.CreateEndorsement)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/matters/mat_abc/endorsements",
		strings.NewReader(`{"date":"2025-06-12","note":"Postponed"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

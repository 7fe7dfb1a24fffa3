package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/candidate-compare/backend/gemini"
	"github.com/candidate-compare/backend/jdparse"
	"github.com/candidate-compare/backend/matching"
	"github.com/candidate-compare/backend/models"
	"github.com/candidate-compare/backend/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubAI stands in for the Gemini client across all handler dependencies
type stubAI struct {
	questions   []string
	questionErr error
	parsedJD    *models.JobDescription
	parseErr    error
	healthy     bool
}

func (a *stubAI) GenerateInterviewQuestions(_ context.Context, _ *models.JobDescription, _ *models.Candidate) (*gemini.QuestionsResponse, error) {
	if a.questionErr != nil {
		return nil, a.questionErr
	}
	return &gemini.QuestionsResponse{Questions: a.questions}, nil
}

func (a *stubAI) ParseJD(_ context.Context, _ string) (*models.JobDescription, error) {
	if a.parseErr != nil {
		return nil, a.parseErr
	}
	if a.parsedJD == nil {
		return nil, errors.New("stub has no parsed JD configured")
	}
	return a.parsedJD, nil
}

func (a *stubAI) HealthCheck(_ context.Context) bool { return a.healthy }

// testApp wires real handlers over the in-memory store and a stub AI
type testApp struct {
	store  *storage.MemoryStore
	ai     *stubAI
	router *gin.Engine
}

func newTestApp() *testApp {
	store := storage.NewMemoryStore()
	ai := &stubAI{questions: []string{"q1", "q2", "q3"}, healthy: true}
	log := zap.NewNop()

	jdService := jdparse.NewService(ai, store, log, time.Second)
	engine := matching.NewEngine(store, ai, log, time.Second)

	jdHandler := NewJDHandler(jdService, store, log)
	candidateHandler := NewCandidateHandler(store, log)
	matchHandler := NewMatchHandler(engine, log)
	healthHandler := NewHealthHandler(store, ai, "test")

	router := gin.New()
	router.GET("/", healthHandler.Index)
	router.GET("/health", healthHandler.Health)

	api := router.Group("/api")
	api.GET("/status", healthHandler.Status)

	jd := api.Group("/jd")
	jd.POST("/parse", jdHandler.ParseJD)
	jd.GET("", jdHandler.GetJD)
	jd.DELETE("", jdHandler.DeleteJD)
	jd.POST("/demo", jdHandler.LoadDemoJD)
	jd.GET("/status", jdHandler.JDStatus)

	candidates := api.Group("/candidates")
	candidates.POST("/import", candidateHandler.ImportSampleCandidates)
	candidates.GET("", candidateHandler.ListCandidates)
	candidates.DELETE("", candidateHandler.ClearCandidates)
	candidates.GET("/stats/overview", candidateHandler.CandidateStats)
	candidates.GET("/:candidateId", candidateHandler.GetCandidate)

	match := api.Group("/match")
	match.GET("/batch/all", matchHandler.BatchMatch)
	match.GET("/ranking/top", matchHandler.TopMatches)
	match.GET("/comparison/:candidateId1/:candidateId2", matchHandler.CompareCandidates)
	match.GET("/insights", matchHandler.MatchInsights)
	match.POST("/:candidateId", matchHandler.CalculateMatch)

	return &testApp{store: store, ai: ai, router: router}
}

func (app *testApp) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

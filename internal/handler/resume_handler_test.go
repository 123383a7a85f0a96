package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/Nithinrathna/interview-prep/internal/llm"
	"github.com/Nithinrathna/interview-prep/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	response string
	err      error
	prompts  []string
}

func (g *fakeGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

type fakeHistoryStore struct {
	records   []models.HistoryRecord
	insertErr error
}

func (s *fakeHistoryStore) Insert(_ context.Context, record models.HistoryRecord) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.records = append(s.records, record)
	return nil
}

func (s *fakeHistoryStore) Recent(_ context.Context) ([]models.HistoryRecord, error) {
	return s.records, nil
}

func newResumeRouter(t *testing.T, generator Generator, history HistoryStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewResumeHandler(generator, history, t.TempDir())

	router := gin.New()
	router.POST("/generate-questions", h.GenerateQuestions)
	router.POST("/generate-answers", h.GenerateAnswers)
	router.GET("/health", h.Health)
	router.GET("/questions-history", h.QuestionsHistory)
	return router
}

func uploadResume(t *testing.T, router *gin.Engine, filename, content string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/generate-questions", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const sampleResume = "Senior engineer with five years of Go and Docker experience, building REST APIs on Kubernetes with MongoDB for persistence."

const sampleResponse = `QUESTIONS:
1. How do goroutines differ from OS threads?
2. How would you design a rate limiter?

ANSWERS:
1. Goroutines are multiplexed onto OS threads by the runtime scheduler.
2. A token bucket per client keyed by IP is the usual approach.`

func TestGenerateQuestions(t *testing.T) {
	generator := &fakeGenerator{response: sampleResponse}
	history := &fakeHistoryStore{}
	router := newResumeRouter(t, generator, history)

	w := uploadResume(t, router, "resume.txt", sampleResume)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Skills    []string `json:"skills"`
		Questions []string `json:"questions"`
		Answers   []string `json:"answers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, []string{"MongoDB", "Docker", "Kubernetes", "Go"}, body.Skills)
	assert.Equal(t, []string{
		"How do goroutines differ from OS threads?",
		"How would you design a rate limiter?",
	}, body.Questions)
	assert.Len(t, body.Answers, 2)

	require.Len(t, generator.prompts, 1)
	assert.Contains(t, generator.prompts[0], sampleResume)

	require.Len(t, history.records, 1)
	assert.Equal(t, "resume.txt", history.records[0].Filename)
	assert.Equal(t, body.Questions, history.records[0].Questions)
}

func TestGenerateQuestions_NoFile(t *testing.T) {
	router := newResumeRouter(t, &fakeGenerator{response: sampleResponse}, nil)

	req := httptest.NewRequest(http.MethodPost, "/generate-questions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateQuestions_BadExtension(t *testing.T) {
	router := newResumeRouter(t, &fakeGenerator{response: sampleResponse}, nil)

	w := uploadResume(t, router, "resume.exe", sampleResume)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unsupported file type")
}

func TestGenerateQuestions_TextTooShort(t *testing.T) {
	router := newResumeRouter(t, &fakeGenerator{response: sampleResponse}, nil)

	w := uploadResume(t, router, "resume.txt", "too short")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "meaningful text")
}

func TestGenerateQuestions_UpstreamFailure(t *testing.T) {
	generator := &fakeGenerator{err: errors.New("deadline exceeded")}
	router := newResumeRouter(t, generator, nil)

	w := uploadResume(t, router, "resume.txt", sampleResume)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Gemini API error")
}

func TestGenerateQuestions_HistoryFailureIsBestEffort(t *testing.T) {
	history := &fakeHistoryStore{insertErr: errors.New("mongo down")}
	router := newResumeRouter(t, &fakeGenerator{response: sampleResponse}, history)

	w := uploadResume(t, router, "resume.txt", sampleResume)
	assert.Equal(t, http.StatusOK, w.Code, "a storage failure must not fail the request")
}

func TestGenerateAnswers(t *testing.T) {
	generator := &fakeGenerator{response: "1. First answer.\n2. Second answer."}
	router := newResumeRouter(t, generator, nil)

	w := doJSON(t, router, http.MethodPost, "/generate-answers", "", gin.H{
		"questions":  []string{"q1", "q2"},
		"skills":     []string{"Go"},
		"transcript": "we talked about concurrency",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Answers []string `json:"answers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"First answer.", "Second answer."}, body.Answers)

	require.Len(t, generator.prompts, 1)
	assert.Contains(t, generator.prompts[0], "Skills: Go")
	assert.Contains(t, generator.prompts[0], "we talked about concurrency")
}

func TestGenerateAnswers_LengthAlwaysMatches(t *testing.T) {
	generator := &fakeGenerator{response: "a single unstructured reply"}
	router := newResumeRouter(t, generator, nil)

	w := doJSON(t, router, http.MethodPost, "/generate-answers", "", gin.H{
		"questions": []string{"q1", "q2", "q3"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Answers []string `json:"answers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Answers, 3)
	assert.Equal(t, llm.FillerAnswer, body.Answers[2])
}

func TestGenerateAnswers_NoQuestions(t *testing.T) {
	router := newResumeRouter(t, &fakeGenerator{}, nil)

	w := doJSON(t, router, http.MethodPost, "/generate-answers", "", gin.H{"questions": []string{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResumeHealth(t *testing.T) {
	router := newResumeRouter(t, &fakeGenerator{}, &fakeHistoryStore{})

	w := doJSON(t, router, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, true, body["mongodb_connected"])
	assert.Equal(t, true, body["api_key_configured"])
}

func TestResumeHealth_Degraded(t *testing.T) {
	router := newResumeRouter(t, nil, nil)

	w := doJSON(t, router, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["mongodb_connected"])
	assert.Equal(t, false, body["api_key_configured"])
}

func TestQuestionsHistory(t *testing.T) {
	history := &fakeHistoryStore{}
	router := newResumeRouter(t, &fakeGenerator{response: sampleResponse}, history)

	uploadResume(t, router, "resume.txt", sampleResume)

	w := doJSON(t, router, http.MethodGet, "/questions-history", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		History []models.HistoryRecord `json:"history"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.History, 1)
	assert.Equal(t, "resume.txt", body.History[0].Filename)
}

func TestQuestionsHistory_StoreUnavailable(t *testing.T) {
	router := newResumeRouter(t, &fakeGenerator{}, nil)

	w := doJSON(t, router, http.MethodGet, "/questions-history", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "MongoDB not available")
}

func TestGenerateQuestions_RemovesTempFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	h := NewResumeHandler(&fakeGenerator{response: sampleResponse}, nil, dir)
	router := gin.New()
	router.POST("/generate-questions", h.GenerateQuestions)

	w := uploadResume(t, router, "resume.txt", sampleResume)
	require.Equal(t, http.StatusOK, w.Code)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temp upload must be deleted after processing")
}

package handler

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Nithinrathna/interview-prep/internal/extract"
	"github.com/Nithinrathna/interview-prep/internal/llm"
	"github.com/Nithinrathna/interview-prep/internal/models"
	"github.com/Nithinrathna/interview-prep/internal/skills"
	"github.com/Nithinrathna/interview-prep/internal/upload"

	"github.com/gin-gonic/gin"
)

const (
	maxUploadSize = 5 << 20 // 5MB

	// Extracted text shorter than this is treated as a failed extraction
	// rather than fed to the model.
	minResumeTextLen = 50
)

// Generator produces free text from a prompt. Satisfied by *llm.Client;
// faked in tests.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// HistoryStore persists and lists resume-processing records.
type HistoryStore interface {
	Insert(ctx context.Context, record models.HistoryRecord) error
	Recent(ctx context.Context) ([]models.HistoryRecord, error)
}

// ResumeHandler serves the resume-to-questions endpoints. Either
// collaborator may be nil when its configuration is missing; the health
// endpoint reports which ones are live.
type ResumeHandler struct {
	generator Generator
	history   HistoryStore
	uploadDir string
}

func NewResumeHandler(generator Generator, history HistoryStore, uploadDir string) *ResumeHandler {
	return &ResumeHandler{
		generator: generator,
		history:   history,
		uploadDir: uploadDir,
	}
}

type GenerateAnswersRequest struct {
	Questions  []string `json:"questions"`
	Skills     []string `json:"skills"`
	Transcript string   `json:"transcript"`
}

// GenerateQuestions accepts a multipart resume upload, extracts its
// text, detects skills, asks Gemini for tailored questions and answers,
// and returns all three. The history write is best-effort: a storage
// failure is logged but never fails the request.
func (h *ResumeHandler) GenerateQuestions(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	if fileHeader.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No selected file"})
		return
	}
	if !extract.Allowed(fileHeader.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported file type. Please upload PDF, DOCX, or TXT"})
		return
	}
	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds 5MB limit"})
		return
	}
	if h.generator == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gemini API key is not configured"})
		return
	}

	path, cleanup, err := upload.Save(fileHeader, h.uploadDir)
	if err != nil {
		log.Printf("[ERROR] GenerateQuestions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save uploaded file"})
		return
	}
	defer cleanup()

	resumeText, err := extract.Text(path)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error extracting text: " + err.Error()})
		return
	}
	if len(strings.TrimSpace(resumeText)) < minResumeTextLen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not extract meaningful text from file"})
		return
	}

	foundSkills := skills.Extract(resumeText)

	responseText, err := h.generator.GenerateContent(c.Request.Context(), llm.QuestionPrompt(resumeText))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gemini API error: " + err.Error()})
		return
	}

	questions, answers := llm.ParseQA(responseText)

	if h.history != nil {
		record := models.HistoryRecord{
			Filename:  fileHeader.Filename,
			Skills:    foundSkills,
			Questions: questions,
			Answers:   answers,
			Timestamp: time.Now().UTC(),
		}
		if err := h.history.Insert(c.Request.Context(), record); err != nil {
			log.Printf("Warning: could not save history for %s: %v", fileHeader.Filename, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"skills":    foundSkills,
		"questions": questions,
		"answers":   answers,
	})
}

// GenerateAnswers produces one answer per supplied question. The
// response list always has exactly len(questions) entries.
func (h *ResumeHandler) GenerateAnswers(c *gin.Context) {
	var req GenerateAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No questions provided"})
		return
	}
	if len(req.Questions) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid questions provided"})
		return
	}
	if h.generator == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gemini API key is not configured"})
		return
	}

	prompt := llm.AnswerPrompt(req.Questions, req.Skills, req.Transcript)
	responseText, err := h.generator.GenerateContent(c.Request.Context(), prompt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gemini API error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"answers": llm.ReconcileAnswers(responseText, len(req.Questions)),
	})
}

func (h *ResumeHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":             "healthy",
		"mongodb_connected":  h.history != nil,
		"api_key_configured": h.generator != nil,
	})
}

func (h *ResumeHandler) QuestionsHistory(c *gin.Context) {
	if h.history == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "MongoDB not available"})
		return
	}

	records, err := h.history.Recent(c.Request.Context())
	if err != nil {
		log.Printf("[ERROR] QuestionsHistory: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": records})
}

package llm

import (
	"strings"
	"testing"
)

func TestQuestionPrompt(t *testing.T) {
	t.Parallel()

	prompt := QuestionPrompt("resume body goes here")

	if !strings.Contains(prompt, "resume body goes here") {
		t.Fatal("prompt does not contain the resume text")
	}
	if !strings.Contains(prompt, "QUESTIONS:") || !strings.Contains(prompt, "ANSWERS:") {
		t.Fatal("prompt does not request the QUESTIONS:/ANSWERS: layout")
	}
}

func TestAnswerPrompt_NumbersQuestions(t *testing.T) {
	t.Parallel()

	prompt := AnswerPrompt([]string{"What is Go?", "What is Gin?"}, nil, "")

	if !strings.Contains(prompt, "1. What is Go?") {
		t.Fatal("first question not numbered")
	}
	if !strings.Contains(prompt, "2. What is Gin?") {
		t.Fatal("second question not numbered")
	}
	if strings.Contains(prompt, "Skills:") || strings.Contains(prompt, "Interview transcript:") {
		t.Fatal("context block present despite no skills or transcript")
	}
}

func TestAnswerPrompt_IncludesContext(t *testing.T) {
	t.Parallel()

	prompt := AnswerPrompt([]string{"q"}, []string{"Go", "Docker"}, "we discussed containers")

	if !strings.Contains(prompt, "Skills: Go, Docker") {
		t.Fatal("skills context missing")
	}
	if !strings.Contains(prompt, "Interview transcript: we discussed containers") {
		t.Fatal("transcript context missing")
	}
}

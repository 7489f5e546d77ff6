package prompts

import (
	"strings"
	"testing"
)

func TestPromptManagerBuildQuestionsPrompt(t *testing.T) {
	pm, err := NewPromptManager()
	if err != nil {
		t.Fatalf("NewPromptManager error: %v", err)
	}

	data := QuestionPromptData{
		JobTitle:       "Backend Engineer",
		JobDescription: "Build Go services",
		CompanyName:    "Acme",
		NumQuestions:   3,
	}
	prompt, err := pm.BuildPrompt("questions", "default", data)
	if err != nil {
		t.Fatalf("BuildPrompt error: %v", err)
	}

	if !containsAll(prompt, []string{"Job Title: Backend Engineer", "Job Description: Build Go services", "Company: Acme", "write 3 tailored"}) {
		t.Fatalf("prompt did not contain expected values: %s", prompt)
	}

	if _, err := pm.BuildPrompt("unknown", "default", data); err == nil {
		t.Fatalf("expected error for unknown mode")
	}

	if _, err := pm.BuildPrompt("questions", "missing", data); err == nil {
		t.Fatalf("expected error for missing variant")
	}

	if len(pm.GetTemplates()) != 2 {
		t.Fatalf("expected questions and score templates, got %d", len(pm.GetTemplates()))
	}
}

func TestPromptManagerOmitsBlankCompany(t *testing.T) {
	pm, err := NewPromptManager()
	if err != nil {
		t.Fatalf("NewPromptManager error: %v", err)
	}

	prompt, err := pm.BuildPrompt("questions", "default", QuestionPromptData{
		JobTitle:       "SWE",
		JobDescription: "APIs",
		NumQuestions:   5,
	})
	if err != nil {
		t.Fatalf("BuildPrompt error: %v", err)
	}
	if strings.Contains(prompt, "Company:") {
		t.Fatalf("expected no company line, got %s", prompt)
	}
}

func TestPromptManagerBuildScorePrompt(t *testing.T) {
	pm, err := NewPromptManager()
	if err != nil {
		t.Fatalf("NewPromptManager error: %v", err)
	}

	prompt, err := pm.BuildPrompt("score", "default", ScorePromptData{
		JobTitle: "SWE",
		Question: "Tell me about yourself",
		Response: "I build things",
	})
	if err != nil {
		t.Fatalf("BuildPrompt error: %v", err)
	}
	if !containsAll(prompt, []string{"Question: Tell me about yourself", "Response: I build things", "Score: X/10", "experience level"}) {
		t.Fatalf("score prompt missing expected content: %s", prompt)
	}
}

func TestPromptManagerSystemInstruction(t *testing.T) {
	pm, err := NewPromptManager()
	if err != nil {
		t.Fatalf("NewPromptManager error: %v", err)
	}

	expected := "You are an expert hiring manager crafting thoughtful interview questions."
	if got := pm.SystemInstruction("questions"); got != expected {
		t.Fatalf("unexpected system instruction %q", got)
	}
	if pm.SystemInstruction("unknown") != "" {
		t.Fatalf("expected empty instruction for unknown mode")
	}
}

func TestPromptManagerRejectsWrongData(t *testing.T) {
	pm, err := NewPromptManager()
	if err != nil {
		t.Fatalf("NewPromptManager error: %v", err)
	}

	if _, err := pm.BuildPrompt("score", "default", QuestionPromptData{JobTitle: "SWE"}); err == nil {
		t.Fatalf("expected error when template fields are missing")
	}
}

func containsAll(haystack string, terms []string) bool {
	for _, term := range terms {
		if !strings.Contains(haystack, term) {
			return false
		}
	}
	return true
}

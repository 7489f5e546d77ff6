package models

const (
	DefaultNumQuestions = 5
	MaxNumQuestions     = 20
)

// Prompt modes, one per template file.
const (
	PromptModeQuestions  = "questions"
	PromptModeScore      = "score"
	DefaultPromptVariant = "default"
)

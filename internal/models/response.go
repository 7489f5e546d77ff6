package models

// uniform error responses, {"detail": "..."}
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func (e *ErrorResponse) Error() string {
	return e.Detail
}

type CreateInterviewResponse struct {
	InterviewID uint `json:"interview_id"`
}

type QuestionItem struct {
	QuestionID   uint   `json:"question_id"`
	QuestionText string `json:"question_text"`
}

type GenerateQuestionsResponse struct {
	Questions []QuestionItem `json:"questions"`
}

type ScoreResponse struct {
	Score     *float64 `json:"score"`
	Reasoning string   `json:"reasoning"`
	ScoreID   uint     `json:"score_id"`
}

type InterviewHistoryResponse struct {
	Interviews []InterviewHistory `json:"interviews"`
}

type InterviewDetailResponse struct {
	Interview InterviewHistory `json:"interview"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// GenerationRequest is what the oracle adapters hand to an llm.Provider.
type GenerationRequest struct {
	RequestID         string
	SystemInstruction string
	Prompt            string
}

// GenerationResponse is the raw text reply of a provider plus call metadata.
type GenerationResponse struct {
	Content   string             `json:"content"`
	RequestID string             `json:"request_id"`
	Metadata  GenerationMetadata `json:"metadata"`
}

type GenerationMetadata struct {
	ProcessingTime int    `json:"processing_time_ms"`
	Provider       string `json:"provider"`
	Model          string `json:"model"`
}

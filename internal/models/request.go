package models

import (
	"fmt"
	"strings"
)

type CreateInterviewRequest struct {
	Name           string  `json:"name"`
	JobTitle       string  `json:"job_title"`
	JobDescription string  `json:"job_description"`
	CompanyName    *string `json:"company_name"`
}

// implements the Validator interface
func (r *CreateInterviewRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &ErrorResponse{Detail: "name is required"}
	}
	if strings.TrimSpace(r.JobTitle) == "" {
		return &ErrorResponse{Detail: "job_title is required"}
	}
	if strings.TrimSpace(r.JobDescription) == "" {
		return &ErrorResponse{Detail: "job_description is required"}
	}

	r.Name = strings.TrimSpace(r.Name)
	r.JobTitle = strings.TrimSpace(r.JobTitle)
	r.JobDescription = strings.TrimSpace(r.JobDescription)

	// blank company is treated as not provided
	if r.CompanyName != nil {
		company := strings.TrimSpace(*r.CompanyName)
		if company == "" {
			r.CompanyName = nil
		} else {
			r.CompanyName = &company
		}
	}
	return nil
}

type GenerateQuestionsRequest struct {
	InterviewID  uint `json:"interview_id"`
	NumQuestions *int `json:"num_questions"`
}

func (r *GenerateQuestionsRequest) Validate() error {
	if r.InterviewID == 0 {
		return &ErrorResponse{Detail: "interview_id is required"}
	}

	if r.NumQuestions == nil || *r.NumQuestions == 0 {
		n := DefaultNumQuestions
		r.NumQuestions = &n
		return nil
	}
	if *r.NumQuestions < 0 || *r.NumQuestions > MaxNumQuestions {
		return &ErrorResponse{Detail: fmt.Sprintf("num_questions must be between 1 and %d", MaxNumQuestions)}
	}
	return nil
}

// Count returns the requested number of questions after validation.
func (r *GenerateQuestionsRequest) Count() int {
	if r.NumQuestions == nil {
		return DefaultNumQuestions
	}
	return *r.NumQuestions
}

type ScoreRequest struct {
	QuestionID uint   `json:"question_id"`
	Response   string `json:"response"`
}

func (r *ScoreRequest) Validate() error {
	if r.QuestionID == 0 {
		return &ErrorResponse{Detail: "question_id is required"}
	}
	if strings.TrimSpace(r.Response) == "" {
		return &ErrorResponse{Detail: "response is required"}
	}
	return nil
}

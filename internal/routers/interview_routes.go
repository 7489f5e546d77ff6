package routers

import (
	"mockprep/interview/internal/handlers"
	"mockprep/interview/internal/middleware"
	"mockprep/interview/internal/models"

	"github.com/go-chi/chi/v5"
)

func InterviewRoutes(router chi.Router, interviewHandler *handlers.InterviewHandler) {
	router.With(middleware.ValidateRequest[*models.CreateInterviewRequest]()).Post("/interview", interviewHandler.CreateInterviewHandler)
	router.With(middleware.ValidateRequest[*models.GenerateQuestionsRequest]()).Post("/generate_questions_for_interview", interviewHandler.GenerateQuestionsHandler)
	router.With(middleware.ValidateRequest[*models.ScoreRequest]()).Post("/score_response", interviewHandler.ScoreResponseHandler)

	router.Get("/interview_history", interviewHandler.ListHistoryHandler)
	router.Get("/interview_history/{interview_id}", interviewHandler.GetHistoryHandler)

	router.Delete("/clear_history", interviewHandler.ClearHistoryHandler)
}

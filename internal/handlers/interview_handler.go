package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"mockprep/interview/internal/middleware"
	"mockprep/interview/internal/models"
	"mockprep/interview/internal/oracle"
	"mockprep/interview/internal/repositories"
	"mockprep/interview/internal/utils"
)

const (
	msgInterviewNotFound = "Interview not found"
	msgQuestionNotFound  = "Question not found"
	msgRequestTimedOut   = "Request timed out"
	msgHistoryCleared    = "All interview history cleared successfully"
)

// InterviewStore is the persistence surface the handlers need.
type InterviewStore interface {
	CreateSession(ctx context.Context, session *models.InterviewSession) error
	InsertQuestions(ctx context.Context, interviewID uint, texts []string) ([]models.GeneratedQuestion, error)
	InsertScore(ctx context.Context, score *models.Score) error
	GetSession(ctx context.Context, interviewID uint) (*models.InterviewSession, error)
	GetQuestion(ctx context.Context, questionID uint) (*models.GeneratedQuestion, error)
	ListHistory(ctx context.Context) ([]models.InterviewHistory, error)
	GetHistory(ctx context.Context, interviewID uint) (*models.InterviewHistory, error)
	ClearAll(ctx context.Context) error
}

type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, input oracle.QuestionInput) ([]string, error)
}

type ResponseScorer interface {
	Score(ctx context.Context, input oracle.ScoreInput) (*oracle.ScoreResult, error)
}

type InterviewHandler struct {
	store     InterviewStore
	generator QuestionGenerator
	scorer    ResponseScorer
	logger    *zap.Logger
}

func NewInterviewHandler(store InterviewStore, generator QuestionGenerator, scorer ResponseScorer, logger *zap.Logger) *InterviewHandler {
	return &InterviewHandler{
		store:     store,
		generator: generator,
		scorer:    scorer,
		logger:    logger,
	}
}

func (h *InterviewHandler) CreateInterviewHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.CreateInterviewRequest](r)
	requestID := requestIDFrom(r)

	session := &models.InterviewSession{
		Name:           req.Name,
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
		CompanyName:    req.CompanyName,
	}
	if err := h.store.CreateSession(r.Context(), session); err != nil {
		h.fail(w, r, requestID, "Failed to create interview", "", err)
		return
	}

	h.logger.Info("Interview created",
		zap.String("request_id", requestID),
		zap.Uint("interview_id", session.InterviewID))

	utils.JSON(w, http.StatusOK, models.CreateInterviewResponse{InterviewID: session.InterviewID})
}

// GenerateQuestionsHandler reads the session before calling the oracle, so an
// unknown interview produces no oracle call and no writes.
func (h *InterviewHandler) GenerateQuestionsHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.GenerateQuestionsRequest](r)
	requestID := requestIDFrom(r)

	session, err := h.store.GetSession(r.Context(), req.InterviewID)
	if err != nil {
		h.fail(w, r, requestID, "Failed to load interview", msgInterviewNotFound, err)
		return
	}

	texts, err := h.generator.GenerateQuestions(r.Context(), oracle.QuestionInput{
		RequestID:      requestID,
		JobTitle:       session.JobTitle,
		JobDescription: session.JobDescription,
		CompanyName:    session.CompanyName,
		NumQuestions:   req.Count(),
	})
	if err != nil {
		h.fail(w, r, requestID, "Question generation failed", "", err)
		return
	}

	inserted, err := h.store.InsertQuestions(r.Context(), session.InterviewID, texts)
	if err != nil {
		h.fail(w, r, requestID, "Failed to store questions", "", err)
		return
	}

	items := make([]models.QuestionItem, 0, len(inserted))
	for _, q := range inserted {
		items = append(items, models.QuestionItem{QuestionID: q.QuestionID, QuestionText: q.QuestionText})
	}

	h.logger.Info("Questions generated",
		zap.String("request_id", requestID),
		zap.Uint("interview_id", session.InterviewID),
		zap.Int("requested", req.Count()),
		zap.Int("stored", len(items)))

	utils.JSON(w, http.StatusOK, models.GenerateQuestionsResponse{Questions: items})
}

func (h *InterviewHandler) ScoreResponseHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.ScoreRequest](r)
	requestID := requestIDFrom(r)

	question, err := h.store.GetQuestion(r.Context(), req.QuestionID)
	if err != nil {
		h.fail(w, r, requestID, "Failed to load question", msgQuestionNotFound, err)
		return
	}

	session, err := h.store.GetSession(r.Context(), question.InterviewID)
	if err != nil {
		h.fail(w, r, requestID, "Failed to load interview", msgInterviewNotFound, err)
		return
	}

	result, err := h.scorer.Score(r.Context(), oracle.ScoreInput{
		RequestID: requestID,
		JobTitle:  session.JobTitle,
		Question:  question.QuestionText,
		Response:  req.Response,
	})
	if err != nil {
		h.fail(w, r, requestID, "Scoring failed", "", err)
		return
	}

	score := &models.Score{
		InterviewID: session.InterviewID,
		QuestionID:  question.QuestionID,
		Score:       result.Score,
		Reasoning:   result.Reasoning,
	}
	if err := h.store.InsertScore(r.Context(), score); err != nil {
		h.fail(w, r, requestID, "Failed to store score", "", err)
		return
	}

	h.logger.Info("Response scored",
		zap.String("request_id", requestID),
		zap.Uint("question_id", question.QuestionID),
		zap.Uint("score_id", score.ScoreID),
		zap.Bool("score_parsed", result.Score != nil))

	utils.JSON(w, http.StatusOK, models.ScoreResponse{
		Score:     result.Score,
		Reasoning: result.Reasoning,
		ScoreID:   score.ScoreID,
	})
}

func (h *InterviewHandler) ListHistoryHandler(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	history, err := h.store.ListHistory(r.Context())
	if err != nil {
		h.fail(w, r, requestID, "Failed to list history", "", err)
		return
	}

	utils.JSON(w, http.StatusOK, models.InterviewHistoryResponse{Interviews: history})
}

func (h *InterviewHandler) GetHistoryHandler(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	interviewID, err := strconv.ParseUint(chi.URLParam(r, "interview_id"), 10, 64)
	if err != nil || interviewID == 0 {
		utils.Error(w, http.StatusBadRequest, "interview_id must be a positive integer")
		return
	}

	history, err := h.store.GetHistory(r.Context(), uint(interviewID))
	if err != nil {
		h.fail(w, r, requestID, "Failed to load history", msgInterviewNotFound, err)
		return
	}

	utils.JSON(w, http.StatusOK, models.InterviewDetailResponse{Interview: *history})
}

func (h *InterviewHandler) ClearHistoryHandler(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	if err := h.store.ClearAll(r.Context()); err != nil {
		h.fail(w, r, requestID, "Failed to clear history", "", err)
		return
	}

	h.logger.Warn("Interview history cleared", zap.String("request_id", requestID))
	utils.JSON(w, http.StatusOK, models.MessageResponse{Message: msgHistoryCleared})
}

// fail logs err once and maps it to a response: 404 with notFoundMsg when the
// record is missing, 504 on a timeout, 500 with the error text otherwise.
// Nothing is written once the request deadline has passed, the timeout
// middleware owns that response.
func (h *InterviewHandler) fail(w http.ResponseWriter, r *http.Request, requestID, logMsg, notFoundMsg string, err error) {
	if notFoundMsg != "" && errors.Is(err, repositories.ErrNotFound) {
		h.logger.Info(logMsg, zap.String("request_id", requestID), zap.Error(err))
		utils.Error(w, http.StatusNotFound, notFoundMsg)
		return
	}

	if errors.Is(r.Context().Err(), context.DeadlineExceeded) {
		h.logger.Warn(logMsg, zap.String("request_id", requestID), zap.Error(err))
		return
	}

	if errors.Is(err, context.DeadlineExceeded) {
		h.logger.Warn(logMsg, zap.String("request_id", requestID), zap.Error(err))
		utils.Error(w, http.StatusGatewayTimeout, msgRequestTimedOut)
		return
	}

	h.logger.Error(logMsg, zap.String("request_id", requestID), zap.Error(err))
	utils.Error(w, http.StatusInternalServerError, err.Error())
}

// requestIDFrom prefers the chi request id and falls back to a fresh uuid.
func requestIDFrom(r *http.Request) string {
	if id := chimiddleware.GetReqID(r.Context()); id != "" {
		return id
	}
	return uuid.New().String()
}

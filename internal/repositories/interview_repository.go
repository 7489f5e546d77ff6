package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mockprep/interview/internal/models"
)

var ErrNotFound = errors.New("record not found")

type InterviewRepository struct {
	DB *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) *InterviewRepository {
	return &InterviewRepository{DB: db}
}

// InitSchema creates any missing tables and columns. Safe to call repeatedly.
func (r *InterviewRepository) InitSchema(ctx context.Context) error {
	if err := r.DB.WithContext(ctx).AutoMigrate(models.AllModels()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

func (r *InterviewRepository) CreateSession(ctx context.Context, session *models.InterviewSession) error {
	if err := r.DB.WithContext(ctx).Omit(clause.Associations).Create(session).Error; err != nil {
		return fmt.Errorf("failed to create interview session: %w", err)
	}
	return nil
}

// InsertQuestions stores the texts in order and returns only the rows inserted
// by this call.
func (r *InterviewRepository) InsertQuestions(ctx context.Context, interviewID uint, texts []string) ([]models.GeneratedQuestion, error) {
	questions := make([]models.GeneratedQuestion, 0, len(texts))
	if len(texts) == 0 {
		return questions, nil
	}

	for _, text := range texts {
		questions = append(questions, models.GeneratedQuestion{
			QuestionText: text,
			InterviewID:  interviewID,
		})
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// one insert per row keeps id assignment in input order on every driver
		for i := range questions {
			if err := tx.Omit(clause.Associations).Create(&questions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert questions: %w", err)
	}

	return questions, nil
}

func (r *InterviewRepository) InsertScore(ctx context.Context, score *models.Score) error {
	if err := r.DB.WithContext(ctx).Create(score).Error; err != nil {
		return fmt.Errorf("failed to insert score: %w", err)
	}
	return nil
}

func (r *InterviewRepository) GetSession(ctx context.Context, interviewID uint) (*models.InterviewSession, error) {
	var session models.InterviewSession
	err := r.DB.WithContext(ctx).First(&session, "interview_id = ?", interviewID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("interview %d: %w", interviewID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load interview %d: %w", interviewID, err)
	}
	return &session, nil
}

func (r *InterviewRepository) GetQuestion(ctx context.Context, questionID uint) (*models.GeneratedQuestion, error) {
	var question models.GeneratedQuestion
	err := r.DB.WithContext(ctx).First(&question, "question_id = ?", questionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("question %d: %w", questionID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load question %d: %w", questionID, err)
	}
	return &question, nil
}

// ListHistory returns every session, newest first, with its questions and
// their latest scores.
func (r *InterviewRepository) ListHistory(ctx context.Context) ([]models.InterviewHistory, error) {
	var sessions []models.InterviewSession
	err := r.DB.WithContext(ctx).
		Order("created_at DESC").
		Order("interview_id DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	return r.assembleHistory(ctx, sessions, false)
}

func (r *InterviewRepository) GetHistory(ctx context.Context, interviewID uint) (*models.InterviewHistory, error) {
	session, err := r.GetSession(ctx, interviewID)
	if err != nil {
		return nil, err
	}

	history, err := r.assembleHistory(ctx, []models.InterviewSession{*session}, true)
	if err != nil {
		return nil, err
	}
	return &history[0], nil
}

// ClearAll removes children before parents in a single transaction.
func (r *InterviewRepository) ClearAll(ctx context.Context) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, model := range []interface{}{&models.Score{}, &models.GeneratedQuestion{}, &models.InterviewSession{}} {
			if err := all.Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

func (r *InterviewRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// assembleHistory loads questions and latest scores in two queries and keeps
// the session order. When scoped is false every row is loaded, so the query
// never carries one bind variable per session.
func (r *InterviewRepository) assembleHistory(ctx context.Context, sessions []models.InterviewSession, scoped bool) ([]models.InterviewHistory, error) {
	history := make([]models.InterviewHistory, 0, len(sessions))
	if len(sessions) == 0 {
		return history, nil
	}

	db := r.DB.WithContext(ctx)
	questionQuery := db.Model(&models.GeneratedQuestion{})
	// portable subquery picking the latest score per question
	latest := db.Model(&models.Score{}).Select("MAX(score_id)")

	if scoped {
		ids := make([]uint, 0, len(sessions))
		for _, s := range sessions {
			ids = append(ids, s.InterviewID)
		}
		questionQuery = questionQuery.Where("interview_id IN ?", ids)
		latest = latest.Where("interview_id IN ?", ids)
	}
	latest = latest.Group("question_id")

	var questions []models.GeneratedQuestion
	if err := questionQuery.Order("question_id ASC").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}

	var scores []models.Score
	if err := db.Where("score_id IN (?)", latest).Find(&scores).Error; err != nil {
		return nil, fmt.Errorf("failed to load scores: %w", err)
	}

	scoreByQuestion := make(map[uint]models.Score, len(scores))
	for _, s := range scores {
		scoreByQuestion[s.QuestionID] = s
	}

	questionsBySession := make(map[uint][]models.QuestionHistory, len(sessions))
	for _, q := range questions {
		entry := models.QuestionHistory{
			QuestionID:   q.QuestionID,
			QuestionText: q.QuestionText,
		}
		if s, ok := scoreByQuestion[q.QuestionID]; ok {
			reasoning := s.Reasoning
			entry.Score = s.Score
			entry.Reasoning = &reasoning
		}
		questionsBySession[q.InterviewID] = append(questionsBySession[q.InterviewID], entry)
	}

	for _, s := range sessions {
		qs := questionsBySession[s.InterviewID]
		if qs == nil {
			qs = []models.QuestionHistory{}
		}
		history = append(history, models.InterviewHistory{
			InterviewID:    s.InterviewID,
			Name:           s.Name,
			JobTitle:       s.JobTitle,
			JobDescription: s.JobDescription,
			CompanyName:    s.CompanyName,
			CreatedAt:      s.CreatedAt,
			Questions:      qs,
		})
	}

	return history, nil
}

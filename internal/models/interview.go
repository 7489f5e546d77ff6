package models

import "time"

// InterviewSession is one mock-interview attempt. Rows are never updated.
type InterviewSession struct {
	InterviewID    uint      `gorm:"column:interview_id;primaryKey;autoIncrement" json:"interview_id"`
	Name           string    `gorm:"not null" json:"name"`
	JobTitle       string    `gorm:"not null" json:"job_title"`
	JobDescription string    `gorm:"type:text;not null" json:"job_description"`
	CompanyName    *string   `json:"company_name"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`

	Questions []GeneratedQuestion `gorm:"foreignKey:InterviewID;references:InterviewID;constraint:OnDelete:CASCADE" json:"-"`
	Scores    []Score             `gorm:"foreignKey:InterviewID;references:InterviewID;constraint:OnDelete:CASCADE" json:"-"`
}

func (InterviewSession) TableName() string { return "interview_sessions" }

// GeneratedQuestion belongs to exactly one session.
type GeneratedQuestion struct {
	QuestionID   uint      `gorm:"column:question_id;primaryKey;autoIncrement" json:"question_id"`
	QuestionText string    `gorm:"type:text;not null" json:"question_text"`
	InterviewID  uint      `gorm:"not null;index" json:"interview_id"`
	CreatedAt    time.Time `json:"created_at"`

	Scores []Score `gorm:"foreignKey:QuestionID;references:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (GeneratedQuestion) TableName() string { return "generated_questions" }

// Score is the oracle's verdict on one response. Score is nil when no number
// could be extracted from the reply.
type Score struct {
	ScoreID     uint      `gorm:"column:score_id;primaryKey;autoIncrement" json:"score_id"`
	InterviewID uint      `gorm:"not null;index" json:"interview_id"`
	QuestionID  uint      `gorm:"not null;index" json:"question_id"`
	Score       *float64  `json:"score"`
	Reasoning   string    `gorm:"type:text" json:"reasoning"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Score) TableName() string { return "scores" }

// InterviewHistory is the read-side aggregate of a session, its questions and
// their latest scores.
type InterviewHistory struct {
	InterviewID    uint              `json:"interview_id"`
	Name           string            `json:"name"`
	JobTitle       string            `json:"job_title"`
	JobDescription string            `json:"job_description"`
	CompanyName    *string           `json:"company_name"`
	CreatedAt      time.Time         `json:"created_at"`
	Questions      []QuestionHistory `json:"questions"`
}

// QuestionHistory carries a question and its latest score, if any. Answer is
// always nil since responses are not stored.
type QuestionHistory struct {
	QuestionID   uint     `json:"question_id"`
	QuestionText string   `json:"question_text"`
	Answer       *string  `json:"answer"`
	Score        *float64 `json:"score"`
	Reasoning    *string  `json:"reasoning"`
}

// AllModels lists the tables in dependency order, parents first.
func AllModels() []interface{} {
	return []interface{}{&InterviewSession{}, &GeneratedQuestion{}, &Score{}}
}

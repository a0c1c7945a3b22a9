package domain

import "time"

// Setting represents a key-value configuration setting
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// well-known setting keys with their fallback defaults
const (
	SettingQuestionCount  = "question_count"
	SettingInterviewTitle = "interview_title"

	DefaultQuestionCount  = 8
	DefaultInterviewTitle = "Student Profile Interview"
)

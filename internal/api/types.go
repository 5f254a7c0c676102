package api

// Specialization is one selectable department specialization.
type Specialization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Difficulty describes one difficulty level and its test parameters.
type Difficulty struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Questions   int    `json:"questions"`
	TimeMinutes int    `json:"time_minutes"`
}

// Question is a single test question. Options are referenced by 1-based
// index in answer submissions.
type Question struct {
	ID      int      `json:"id"`
	Prompt  string   `json:"question"`
	Options []string `json:"options"`
}

// StartTestRequest carries the complete profile to the remote service.
type StartTestRequest struct {
	TelegramID     int64  `json:"telegram_id"`
	FullName       string `json:"full_name"`
	Position       string `json:"position"`
	Department     string `json:"department"`
	Specialization string `json:"specialization"`
	Difficulty     string `json:"difficulty"`
}

// StartTestResponse is the session issued by the remote service: an opaque
// token, the full ordered question list and the time budget.
type StartTestResponse struct {
	SessionID   string     `json:"session_id"`
	TimeMinutes int        `json:"time_minutes"`
	Questions   []Question `json:"questions"`
}

// SubmitAnswerRequest records one question's selected option indices.
type SubmitAnswerRequest struct {
	TelegramID      int64  `json:"telegram_id"`
	SessionID       string `json:"session_id"`
	QuestionID      int    `json:"question_id"`
	SelectedAnswers []int  `json:"selected_answers"`
}

// FinishTestRequest ends a session and requests grading.
type FinishTestRequest struct {
	TelegramID int64  `json:"telegram_id"`
	SessionID  string `json:"session_id"`
}

// Result is the server-computed grade summary. It is never recomputed
// locally.
type Result struct {
	Correct        int     `json:"correct"`
	Total          int     `json:"total"`
	Percentage     float64 `json:"percentage"`
	Grade          string  `json:"grade"`
	TimeSpent      int     `json:"time_spent"` // minutes
	FullName       string  `json:"full_name"`
	Position       string  `json:"position"`
	Department     string  `json:"department"`
	Specialization string  `json:"specialization"`
}

type finishResponse struct {
	Result Result `json:"result"`
}

// GradeCounts is the per-grade distribution in aggregate statistics.
type GradeCounts struct {
	Excellent    int `json:"excellent"`
	Good         int `json:"good"`
	Satisfactory int `json:"satisfactory"`
	Fail         int `json:"fail"`
}

// RecentResult is one row of the recent-results list.
type RecentResult struct {
	Specialization string  `json:"specialization"`
	Difficulty     string  `json:"difficulty"`
	Grade          string  `json:"grade"`
	Percentage     float64 `json:"percentage"`
	Date           string  `json:"date"`
}

// Stats is the aggregate history for one identity.
type Stats struct {
	TotalTests     int            `json:"total_tests"`
	AvgPercentage  float64        `json:"avg_percentage"`
	BestPercentage float64        `json:"best_percentage"`
	Grades         GradeCounts    `json:"grades"`
	RecentResults  []RecentResult `json:"recent_results"`
}

// ReviewQuestion is one question of the post-test detailed review, with the
// learner's answers and the correct ones.
type ReviewQuestion struct {
	QuestionID     int      `json:"question_id"`
	Prompt         string   `json:"question"`
	Options        []string `json:"options"`
	UserAnswers    []int    `json:"user_answers"`
	CorrectAnswers []int    `json:"correct_answers"`
	IsCorrect      bool     `json:"is_correct"`
}

type reviewResponse struct {
	Questions []ReviewQuestion `json:"questions"`
}

type specializationsResponse struct {
	Specializations []Specialization `json:"specializations"`
}

type difficultiesResponse struct {
	Difficulties []Difficulty `json:"difficulties"`
}

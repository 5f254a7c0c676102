package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func TestSpecializations(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/specializations", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"specializations":[{"id":"oupds","name":"ООУПДС"},{"id":"doznanie","name":"Дознание"}]}`))
	})

	specs, err := client.Specializations(t.Context())
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, "oupds", specs[0].ID)
	assert.Equal(t, "Дознание", specs[1].Name)
}

func TestDifficulties(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"difficulties":[{"id":"базовый","name":"Базовый","questions":30,"time_minutes":25}]}`))
	})

	diffs, err := client.Difficulties(t.Context())
	require.NoError(t, err)
	require.Len(t, diffs, 1)
	assert.Equal(t, 30, diffs[0].Questions)
	assert.Equal(t, 25, diffs[0].TimeMinutes)
}

func TestStartTest(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/test/start", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"session_id": "abc123",
			"time_minutes": 10,
			"questions": [
				{"id": 0, "question": "Вопрос 1", "options": ["а", "б", "в"]},
				{"id": 1, "question": "Вопрос 2", "options": ["а", "б"]}
			]
		}`))
	})

	resp, err := client.StartTest(t.Context(), StartTestRequest{
		TelegramID:     42,
		FullName:       "Иванов И.И.",
		Position:       "Пристав",
		Department:     "ОСП №1",
		Specialization: "oupds",
		Difficulty:     "базовый",
	})
	require.NoError(t, err)
	assert.Equal(t, "abc123", resp.SessionID)
	assert.Equal(t, 10, resp.TimeMinutes)
	require.Len(t, resp.Questions, 2)
	assert.Equal(t, "Вопрос 1", resp.Questions[0].Prompt)
	assert.Len(t, resp.Questions[0].Options, 3)
}

func TestStartTest_MalformedBodyRejected(t *testing.T) {
	// session_id missing: schema validation must classify this as an error
	// rather than returning a half-populated session.
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"time_minutes": 10, "questions": [{"id":0,"question":"q","options":["a"]}]}`))
	})

	_, err := client.StartTest(t.Context(), StartTestRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start")
}

func TestStartTest_ServerError(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Invalid specialization"}`, http.StatusBadRequest)
	})

	_, err := client.StartTest(t.Context(), StartTestRequest{Specialization: "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestFinishTest(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/test/finish", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":{
			"correct": 4, "total": 5, "percentage": 80.0, "grade": "отлично",
			"time_spent": 7, "full_name": "Иванов И.И.", "position": "Пристав",
			"department": "ОСП №1", "specialization": "ООУПДС"
		}}`))
	})

	res, err := client.FinishTest(t.Context(), FinishTestRequest{TelegramID: 42, SessionID: "abc123"})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Correct)
	assert.Equal(t, "отлично", res.Grade)
	assert.InDelta(t, 80.0, res.Percentage, 0.001)
}

func TestFinishTest_MalformedBodyRejected(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":{"correct": 4}}`))
	})

	_, err := client.FinishTest(t.Context(), FinishTestRequest{SessionID: "abc123"})
	require.Error(t, err)
}

func TestStats(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stats/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"total_tests": 3, "avg_percentage": 71.2, "best_percentage": 90.0,
			"grades": {"excellent": 1, "good": 1, "satisfactory": 1, "fail": 0},
			"recent_results": [{"specialization":"ООУПДС","difficulty":"базовый","grade":"хорошо","percentage":75.0,"date":"2026-08-20"}]
		}`))
	})

	stats, err := client.Stats(t.Context(), 42)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalTests)
	assert.Equal(t, 1, stats.Grades.Excellent)
	require.Len(t, stats.RecentResults, 1)
	assert.Equal(t, "хорошо", stats.RecentResults[0].Grade)
}

func TestReview(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/result/abc123", r.URL.Path)
		assert.Equal(t, "42", r.URL.Query().Get("telegram_id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"questions":[{
			"question_id": 0, "question": "Вопрос", "options": ["а","б","в"],
			"user_answers": [1,3], "correct_answers": [1,3], "is_correct": true
		}]}`))
	})

	review, err := client.Review(t.Context(), "abc123", 42)
	require.NoError(t, err)
	require.Len(t, review, 1)
	assert.True(t, review[0].IsCorrect)
	assert.Equal(t, []int{1, 3}, review[0].UserAnswers)
}

func TestSubmitAnswer_NonOKStatus(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Session not found"}`, http.StatusNotFound)
	})

	err := client.SubmitAnswer(t.Context(), SubmitAnswerRequest{SessionID: "gone", QuestionID: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

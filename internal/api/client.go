// Package api is the client for the remote attestation service. The service
// owns question content, scoring and persistence; this client only moves
// JSON over HTTP and classifies failures.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/imroc/req/v3"
	"github.com/pkg/errors"
)

// DefaultBaseURL is used when no --api flag or env override is given.
const DefaultBaseURL = "http://localhost:8000"

const defaultTimeout = 15 * time.Second

// Client talks to the attestation service.
type Client struct {
	http *req.Client
}

// New creates a Client for the given base URL.
func New(baseURL string) *Client {
	httpClient := req.C().
		SetBaseURL(baseURL).
		SetTimeout(defaultTimeout).
		SetJsonMarshal(json.Marshal).
		SetJsonUnmarshal(json.Unmarshal)

	return &Client{http: httpClient}
}

// Specializations fetches the list of selectable specializations.
func (c *Client) Specializations(ctx context.Context) ([]Specialization, error) {
	var out specializationsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetSuccessResult(&out).
		Get("/api/specializations")
	if err != nil {
		return nil, errors.Wrap(err, "fetch specializations")
	}
	if err := checkStatus(resp, "specializations"); err != nil {
		return nil, err
	}
	return out.Specializations, nil
}

// Difficulties fetches the difficulty levels with their question counts and
// time budgets.
func (c *Client) Difficulties(ctx context.Context) ([]Difficulty, error) {
	var out difficultiesResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetSuccessResult(&out).
		Get("/api/difficulties")
	if err != nil {
		return nil, errors.Wrap(err, "fetch difficulties")
	}
	if err := checkStatus(resp, "difficulties"); err != nil {
		return nil, err
	}
	return out.Difficulties, nil
}

// StartTest submits the profile and receives a new session: token, the full
// question list and the time budget in minutes.
func (c *Client) StartTest(ctx context.Context, request StartTestRequest) (*StartTestResponse, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(request).
		Post("/api/test/start")
	if err != nil {
		return nil, errors.Wrapf(err, "start test for specialization %s", request.Specialization)
	}
	if err := checkStatus(resp, "test start"); err != nil {
		return nil, err
	}

	raw, err := resp.ToBytes()
	if err != nil {
		return nil, errors.Wrap(err, "read test start body")
	}
	if err := validateBody("start", startSchema, raw); err != nil {
		return nil, errors.Wrap(err, "test start")
	}

	var out StartTestResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.Wrap(err, "decode test start body")
	}
	return &out, nil
}

// SubmitAnswer records the selected option indices for one question.
// The response body carries nothing the client needs.
func (c *Client) SubmitAnswer(ctx context.Context, request SubmitAnswerRequest) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(request).
		Post("/api/test/answer")
	if err != nil {
		return errors.Wrapf(err, "submit answer for question %d", request.QuestionID)
	}
	return checkStatus(resp, "answer")
}

// FinishTest ends the session and returns the graded result.
func (c *Client) FinishTest(ctx context.Context, request FinishTestRequest) (*Result, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(request).
		Post("/api/test/finish")
	if err != nil {
		return nil, errors.Wrapf(err, "finish session %s", request.SessionID)
	}
	if err := checkStatus(resp, "test finish"); err != nil {
		return nil, err
	}

	raw, err := resp.ToBytes()
	if err != nil {
		return nil, errors.Wrap(err, "read test finish body")
	}
	if err := validateBody("finish", finishSchema, raw); err != nil {
		return nil, errors.Wrap(err, "test finish")
	}

	var out finishResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.Wrap(err, "decode test finish body")
	}
	return &out.Result, nil
}

// Stats fetches aggregate history for the given identity.
func (c *Client) Stats(ctx context.Context, telegramID int64) (*Stats, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/api/stats/%d", telegramID))
	if err != nil {
		return nil, errors.Wrapf(err, "fetch stats for %d", telegramID)
	}
	if err := checkStatus(resp, "stats"); err != nil {
		return nil, err
	}

	raw, err := resp.ToBytes()
	if err != nil {
		return nil, errors.Wrap(err, "read stats body")
	}
	if err := validateBody("stats", statsSchema, raw); err != nil {
		return nil, errors.Wrap(err, "stats")
	}

	var out Stats
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.Wrap(err, "decode stats body")
	}
	return &out, nil
}

// Review fetches the per-question breakdown for a finished session.
func (c *Client) Review(ctx context.Context, sessionID string, telegramID int64) ([]ReviewQuestion, error) {
	var out reviewResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("telegram_id", fmt.Sprintf("%d", telegramID)).
		SetSuccessResult(&out).
		Get(fmt.Sprintf("/api/result/%s", sessionID))
	if err != nil {
		return nil, errors.Wrapf(err, "fetch review for session %s", sessionID)
	}
	if err := checkStatus(resp, "review"); err != nil {
		return nil, err
	}
	return out.Questions, nil
}

func checkStatus(resp *req.Response, op string) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}
	body, _ := resp.ToString()
	return errors.Errorf("%s failed with HTTP %d: %s", op, resp.StatusCode, body)
}

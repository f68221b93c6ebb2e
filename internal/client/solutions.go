package client

import (
	"context"
	"net/http"
	"time"
)

type AnswerInfo struct {
	ID     int64  `json:"id"`
	Text   string `json:"text"`
	UserID int64  `json:"user_id"`
}

type AttemptStats struct {
	Attempts int `json:"attempts"`
	Solved   int `json:"solved"`
}

// SolutionClient registers canonical answers and reads attempt statistics.
type SolutionClient struct {
	base
}

func NewSolutionClient(baseURL string, timeout time.Duration) *SolutionClient {
	return &SolutionClient{base: newBase(baseURL, timeout)}
}

func (c *SolutionClient) CreateAnswer(ctx context.Context, token, text string) (*AnswerInfo, error) {
	body := struct {
		Answer string `json:"answer"`
	}{Answer: text}

	var a AnswerInfo
	if err := c.do(ctx, http.MethodPost, "/api/solutions/answers/create", token, body, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *SolutionClient) TeacherStats(ctx context.Context, token string) (*AttemptStats, error) {
	var s AttemptStats
	if err := c.do(ctx, http.MethodGet, "/api/solutions/teacher/stats", token, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

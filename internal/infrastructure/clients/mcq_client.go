package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// GeneratedMCQ is one question tuple as returned by the generation
// service. The answer is stored as returned; membership in the options
// is only enforced at the edit boundary.
type GeneratedMCQ struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// QuestionGenerator turns a transcript into a set of MCQs.
type QuestionGenerator interface {
	Generate(ctx context.Context, transcript string, noOfMCQs string) ([]GeneratedMCQ, error)
}

type MCQClient struct {
	baseURL    string
	httpClient *http.Client
}

type mcqRequest struct {
	Transcript string `json:"transcript"`
	NoOfMCQs   string `json:"noOfMCQs"`
}

type mcqResponse struct {
	Result []GeneratedMCQ `json:"result"`
}

func NewMCQClient(baseURL string) *MCQClient {
	return &MCQClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Minute,
		},
	}
}

func (c *MCQClient) Generate(ctx context.Context, transcript string, noOfMCQs string) ([]GeneratedMCQ, error) {
	payload, err := json.Marshal(mcqRequest{
		Transcript: transcript,
		NoOfMCQs:   noOfMCQs,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("MCQ request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("MCQ service returned %d: %s", resp.StatusCode, body)
	}

	var parsed mcqResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("MCQ response could not be decoded: %w", err)
	}
	return parsed.Result, nil
}

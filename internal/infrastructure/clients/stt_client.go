package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Transcriber turns one audio artifact into a transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

type STTClient struct {
	baseURL    string
	httpClient *http.Client
}

type sttResponse struct {
	Transcription string `json:"transcription"`
}

func NewSTTClient(baseURL string) *STTClient {
	return &STTClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			// Transcribing a 300s window is slow; the pipeline blocks on it.
			Timeout: 10 * time.Minute,
		},
	}
}

func (c *STTClient) Transcribe(ctx context.Context, audioPath string) (string, error) {
	file, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("audio artifact could not be opened: %w", err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return "", fmt.Errorf("multipart form could not be built: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("audio artifact could not be copied: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("STT request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("STT service returned %d: %s", resp.StatusCode, payload)
	}

	var parsed sttResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("STT response could not be decoded: %w", err)
	}
	return parsed.Transcription, nil
}

package queue

import (
	"encoding/json"
	"fmt"
)

// VideoJob is the unit of work handed from the upload flow to the
// segment-processing consumer.
type VideoJob struct {
	VideoPath string `json:"video_path"`
	VideoID   string `json:"video_id"`
	Title     string `json:"title"`
	NoOfMCQs  string `json:"no_of_mcqs"`
}

func SerializeJob(job VideoJob) (string, error) {
	raw, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("failed to serialize job: %w", err)
	}
	return string(raw), nil
}

func DeserializeJob(data string) (*VideoJob, error) {
	var job VideoJob
	if err := json.Unmarshal([]byte(data), &job); err != nil {
		return nil, fmt.Errorf("failed to deserialize job: %w", err)
	}
	return &job, nil
}

package dto

type MCQQueryRequestDTO struct {
	VideoID string `json:"videoId"`
}

type MCQItemDTO struct {
	ID           string   `json:"_id"`
	SegmentIndex int      `json:"segmentIndex"`
	Start        float64  `json:"start"` // minutes
	End          float64  `json:"end"`   // minutes
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	Answer       string   `json:"answer"`
}

type MCQQueryResponse struct {
	Result []MCQItemDTO `json:"result"`
}

type MCQEditRequestDTO struct {
	ID       string   `json:"_id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

type MCQEditResponse struct {
	Result MCQItemDTO `json:"result"`
}

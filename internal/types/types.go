package types

import "errors"

// Error kinds. Adapters wrap these so callers can classify a stage failure
// with errors.Is without parsing message text.
var (
	ErrValidation      = errors.New("validation error")
	ErrProcessing      = errors.New("processing error")
	ErrExternalService = errors.New("external service error")
	ErrAuth            = errors.New("auth error")
	ErrUpload          = errors.New("upload error")
)

type Status string

const (
	StatusSuccess        Status = "success"
	StatusPartialSuccess Status = "partial_success"
	StatusFailure        Status = "failure"
)

// PipelineResult is the terminal record of one short-assembly run. It is
// constructed once by the orchestrator and never mutated afterwards.
type PipelineResult struct {
	Status      Status `json:"status"`
	OutputPath  string `json:"output_path,omitempty"`
	VideoID     string `json:"video_id,omitempty"`
	VideoURL    string `json:"video_url,omitempty"`
	ErrorDetail string `json:"error_detail,omitempty"`
}

// UploadMetadata describes the published short.
type UploadMetadata struct {
	Title       string
	Description string
	Tags        []string
	CategoryID  string
	Visibility  string
}

// UploadReceipt is what the hosting service assigned to the uploaded file.
type UploadReceipt struct {
	VideoID string
	URL     string
}

// EmailMessage is one unread message, already flattened for summarization.
type EmailMessage struct {
	ID      string `json:"id"`
	Sender  string `json:"sender"`
	Subject string `json:"subject"`
	Date    string `json:"date"`
	Body    string `json:"body"`
}

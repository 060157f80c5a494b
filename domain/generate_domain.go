package domain

import "errors"

var (
	MessagePromptRequired = "prompt is required"
	MessageUpstreamFailed = "model request failed"
	MessageInternalError  = "unexpected server error"

	ErrModelNotConfigured = errors.New("model API key is not configured")
)

type (
	GenerateRequest struct {
		Prompt string `json:"prompt"`
	}

	GenerateResponse struct {
		Text string `json:"text"`
	}

	GenerateErrorResponse struct {
		Error  string `json:"error"`
		Status int    `json:"status,omitempty"`
		Detail string `json:"detail,omitempty"`
	}
)

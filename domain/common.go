package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest = "failed to parse request body"

	ErrParseID = errors.New("failed to parse id")

	// Failure taxonomy shared by every action. Handlers turn these into
	// user-facing messages; nothing is retried.
	ErrOCR             = errors.New("no text could be recognized in the image")
	ErrExtractionParse = errors.New("model response is not a valid grocery list")
	ErrEmptyGeneration = errors.New("model response contained no recipes")
	ErrStore           = errors.New("inventory store operation failed")
	ErrUpstream        = errors.New("model request failed")
)

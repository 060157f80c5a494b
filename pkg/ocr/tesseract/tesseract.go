//go:build cgo

// Package tesseract recognizes receipt text with a local Tesseract install.
package tesseract

import (
	"context"
	"fmt"

	"Grocery-Tracker/pkg/ocr"

	"github.com/otiai10/gosseract/v2"
)

type Engine struct {
	language string
}

func New(language string) *Engine {
	return &Engine{language: language}
}

// Recognize blocks for the whole recognition; gosseract exposes no progress
// hooks, so progress is reported at stage boundaries.
func (e *Engine) Recognize(ctx context.Context, image []byte, progress ocr.ProgressFunc) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if e.language != "" {
		if err := client.SetLanguage(e.language); err != nil {
			return "", fmt.Errorf("set language %q: %w", e.language, err)
		}
	}
	progress(0.1)

	if err := client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("failed to set image source: %w", err)
	}
	progress(0.3)

	if err := ctx.Err(); err != nil {
		return "", err
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR extraction failed: %w", err)
	}
	progress(0.95)
	return text, nil
}

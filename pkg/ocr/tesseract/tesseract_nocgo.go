//go:build !cgo

package tesseract

import (
	"context"
	"errors"

	"Grocery-Tracker/pkg/ocr"
)

type Engine struct {
	language string
}

func New(language string) *Engine {
	return &Engine{language: language}
}

func (e *Engine) Recognize(ctx context.Context, image []byte, progress ocr.ProgressFunc) (string, error) {
	return "", errors.New("tesseract OCR is not available in a build without cgo")
}

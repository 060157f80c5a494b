package ocr

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"Grocery-Tracker/domain"
)

type (
	// ProgressFunc receives the fraction of recognition completed, in [0,1].
	ProgressFunc func(fraction float64)

	// Engine turns image bytes into raw text. Implementations may report
	// progress from any goroutine.
	Engine interface {
		Recognize(ctx context.Context, image []byte, progress ProgressFunc) (string, error)
	}

	Extractor struct {
		engine Engine
	}
)

func NewExtractor(engine Engine) *Extractor {
	return &Extractor{engine: engine}
}

// Extract runs the engine and returns normalized text. Progress reported to
// the caller never decreases and ends at 1 on success. Empty output is a
// failure, not an empty receipt.
func (e *Extractor) Extract(ctx context.Context, image []byte, progress ProgressFunc) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tracker := &progressTracker{ctx: ctx, report: progress}
	tracker.update(0)

	raw, err := e.engine.Recognize(ctx, image, tracker.update)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}
	if err != nil {
		if errors.Is(err, domain.ErrOCR) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", domain.ErrOCR, err)
	}

	text := Normalize(raw)
	if strings.TrimSpace(text) == "" {
		return "", domain.ErrOCR
	}

	tracker.update(1)
	return text, nil
}

type progressTracker struct {
	mu     sync.Mutex
	ctx    context.Context
	last   float64
	report ProgressFunc
}

func (p *progressTracker) update(fraction float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctx.Err() != nil {
		return
	}
	if fraction < 0 || fraction != fraction {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	if fraction < p.last {
		fraction = p.last
	}
	p.last = fraction
	if p.report != nil {
		p.report(fraction)
	}
}

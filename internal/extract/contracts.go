package extract

import (
	"context"
	"time"
)

// ProgressFunc receives coarse recognition progress in percent (0..100).
// Progress updates are informational only; they never drive control flow.
type ProgressFunc func(pct int)

// Recognition is the raw output of the recognition engine for one image.
type Recognition struct {
	Text       string
	Confidence float32
	Language   string
	Duration   time.Duration
	Warnings   []string
}

// TextRecognizer is the recognition-engine contract: image file -> text.
// Implementations must fail with common.ErrRecognition when the
// recognized text is shorter than the minimum usable length.
type TextRecognizer interface {
	Recognize(ctx context.Context, imagePath string, onProgress ProgressFunc) (Recognition, error)
}

package ocr

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanfolio/cv-scanner/internal/common"
)

// stubRunner plays back canned tesseract output.
type stubRunner struct {
	stdout map[string]string // keyed by last arg ("tsv") or "" for plain OCR
	err    error
	calls  [][]string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, append([]string{name}, args...))
	if s.err != nil {
		return nil, []byte("boom"), s.err
	}
	key := ""
	if len(args) > 0 && args[len(args)-1] == "tsv" {
		key = "tsv"
	}
	return []byte(s.stdout[key]), nil, nil
}

const sampleText = "Jean Dupont\njean.dupont@mail.com\n06 12 34 56 78\nParis"

func TestRecognizeHappyPath(t *testing.T) {
	runner := &stubRunner{stdout: map[string]string{"": sampleText}}
	e := NewExtractor(Config{}, nil).WithRunner(runner)

	var progress []int
	rec, err := e.Recognize(context.Background(), "cv.jpg", func(pct int) {
		progress = append(progress, pct)
	})

	require.NoError(t, err)
	assert.Equal(t, sampleText, rec.Text)
	assert.Equal(t, "fra+eng", rec.Language)
	assert.Equal(t, []int{0, 70, 100}, progress)
	// email + phone + base
	assert.InDelta(t, 0.55, rec.Confidence, 0.001)
}

func TestRecognizeNilProgressIsFine(t *testing.T) {
	runner := &stubRunner{stdout: map[string]string{"": sampleText}}
	e := NewExtractor(Config{}, nil).WithRunner(runner)

	_, err := e.Recognize(context.Background(), "cv.jpg", nil)
	require.NoError(t, err)
}

func TestRecognizeShortTextFails(t *testing.T) {
	runner := &stubRunner{stdout: map[string]string{"": "abc"}}
	e := NewExtractor(Config{}, nil).WithRunner(runner)

	_, err := e.Recognize(context.Background(), "cv.jpg", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrRecognition)
}

func TestRecognizeEngineFailureWrapped(t *testing.T) {
	runner := &stubRunner{err: errors.New("exit status 1")}
	e := NewExtractor(Config{}, nil).WithRunner(runner)

	_, err := e.Recognize(context.Background(), "cv.jpg", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrRecognition)
}

func TestRecognizeTSVConfidenceBlended(t *testing.T) {
	tsv := strings.Join([]string{
		"level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\ttext\tconf",
		"5\t1\t1\t1\t1\t1\t0\t0\t10\t10\tJean\t80",
		"5\t1\t1\t1\t1\t2\t0\t0\t10\t10\tDupont\t60",
		"5\t1\t1\t1\t1\t3\t0\t0\t10\t10\t\t-1",
	}, "\n")
	runner := &stubRunner{stdout: map[string]string{"": sampleText, "tsv": tsv}}
	e := NewExtractor(Config{EnableTSVConfidence: true}, nil).WithRunner(runner)

	rec, err := e.Recognize(context.Background(), "cv.jpg", nil)

	require.NoError(t, err)
	// mean word conf 0.7, heuristic 0.55, blended 0.7*0.7 + 0.3*0.55
	assert.InDelta(t, 0.655, rec.Confidence, 0.001)
}

func TestRecognizeCharWhitelistFlag(t *testing.T) {
	runner := &stubRunner{stdout: map[string]string{"": sampleText}}
	e := NewExtractor(Config{CharWhitelist: "abc123"}, nil).WithRunner(runner)

	_, err := e.Recognize(context.Background(), "cv.jpg", nil)
	require.NoError(t, err)

	require.NotEmpty(t, runner.calls)
	joined := strings.Join(runner.calls[0], " ")
	assert.Contains(t, joined, "tessedit_char_whitelist=abc123")
}

package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/scanfolio/cv-scanner/constants"
	"github.com/scanfolio/cv-scanner/internal/common"
	"github.com/scanfolio/cv-scanner/internal/extract"
)

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "fra+eng"
	TessdataDir   string

	// CharWhitelist restricts recognition to the given characters
	// (tesseract tessedit_char_whitelist). Empty means no restriction.
	CharWhitelist string

	EnableTSVConfidence bool

	PSM int // e.g., 6 is good for uniform block of text
	OEM int // 1 = LSTM; leave 0 to use default

	// MinTextLen is the minimum usable recognized-text length in runes.
	// Shorter output fails with common.ErrRecognition.
	MinTextLen int
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "fra+eng"
	}
	if cfg.MinTextLen <= 0 {
		cfg.MinTextLen = constants.MinUsableTextLen
	}
	return &Extractor{cfg: cfg, runner: newExecRunner(logger), logger: logger}
}

// WithRunner swaps the command runner; tests use this to stub tesseract.
func (e *Extractor) WithRunner(r Runner) *Extractor {
	e.runner = r
	return e
}

// Recognize runs tesseract over the image and returns normalized text.
// Implements extract.TextRecognizer. Progress checkpoints are coarse
// (start, after OCR, after confidence); they inform the UI only.
func (e *Extractor) Recognize(ctx context.Context, imagePath string, onProgress extract.ProgressFunc) (extract.Recognition, error) {
	start := time.Now()
	report := func(pct int) {
		if onProgress != nil {
			onProgress(pct)
		}
	}
	report(0)

	txt, warn, err := e.tesseractOCR(ctx, imagePath)
	if err != nil {
		return extract.Recognition{Language: e.cfg.TesseractLang, Warnings: warn},
			fmt.Errorf("%w: %v", common.ErrRecognition, err)
	}
	txt = Normalize(txt)
	report(70)

	if utf8.RuneCountInString(txt) < e.cfg.MinTextLen {
		e.logger.Warn("recognized text below usable length",
			"path", imagePath, "len", utf8.RuneCountInString(txt), "min", e.cfg.MinTextLen)
		return extract.Recognition{Language: e.cfg.TesseractLang, Warnings: warn},
			fmt.Errorf("%w: recognized text too short (%d runes)", common.ErrRecognition, utf8.RuneCountInString(txt))
	}

	// compute confidence
	var ocrConf float32
	if e.cfg.EnableTSVConfidence {
		if c, w, err2 := e.tesseractTSVConfidence(ctx, imagePath); err2 == nil {
			ocrConf = c
			warn = append(warn, w...)
		} else {
			warn = append(warn, err2.Error())
		}
	}
	heurConf := heuristicConfidence(txt)

	// blend: weight OCR higher if present
	var conf float32
	if ocrConf > 0 {
		conf = 0.7*ocrConf + 0.3*heurConf
	} else {
		conf = heurConf
	}
	if conf > 1.0 {
		conf = 1.0
	}
	report(100)

	return extract.Recognition{
		Text:       txt,
		Confidence: conf,
		Language:   e.cfg.TesseractLang,
		Duration:   time.Since(start),
		Warnings:   warn,
	}, nil
}

func (e *Extractor) tesseractOCR(ctx context.Context, path string) (string, []string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	if e.cfg.CharWhitelist != "" {
		args = append(args, "-c", "tessedit_char_whitelist="+e.cfg.CharWhitelist)
	}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", strconv.Itoa(e.cfg.PSM))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", strconv.Itoa(e.cfg.OEM))
	}

	// tesseract <file> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}

	// minor cleanup of obvious line noise
	txt := reBoxNoise.ReplaceAllString(string(out), "")
	return txt, nil, nil
}

// tesseractTSVConfidence runs tesseract in TSV mode and returns mean word conf in 0..1.
func (e *Extractor) tesseractTSVConfidence(ctx context.Context, path string) (float32, []string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", strconv.Itoa(e.cfg.PSM))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", strconv.Itoa(e.cfg.OEM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	// TSV output
	args = append(args, "tsv")

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return 0, []string{string(errb)}, fmt.Errorf("tesseract TSV: %w", err)
	}
	lines := strings.Split(string(out), "\n")
	// conf column is the last; header line includes "conf"
	var sum, n float64
	for i, ln := range lines {
		if i == 0 || len(ln) == 0 {
			continue
		} // skip header
		cols := strings.Split(ln, "\t")
		if len(cols) < 12 {
			continue
		}
		confStr := cols[len(cols)-1]
		if confStr == "" || confStr == "-1" {
			continue
		}
		if v, err := strconv.ParseFloat(confStr, 64); err == nil {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, nil, nil
	}
	mean := sum / n // 0..100
	return float32(mean / 100.0), nil, nil
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scanfolio/cv-scanner/gen/ent"
	"github.com/scanfolio/cv-scanner/internal/common"
	"github.com/scanfolio/cv-scanner/internal/ocr"
	repo "github.com/scanfolio/cv-scanner/internal/repository"
	"github.com/scanfolio/cv-scanner/internal/session"
)

// runscan drives a single capture session over one CV image and stores
// the confirmed candidate. With SQLITE_PATH set it runs fully offline
// against an embedded database.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 3 {
		logger.Error("usage", "cmd", "runscan <profile-id-uuid> <image-path>")
		os.Exit(2)
	}
	profileID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid profile id (must be UUID)", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}
	imagePath := os.Args[2]

	cfg := common.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var entc *ent.Client
	switch {
	case cfg.Database.SQLitePath != "":
		entc, err = repo.OpenSQLite(ctx, cfg.Database.SQLitePath, logger)
		if err != nil {
			logger.Error("open sqlite", "path", cfg.Database.SQLitePath, "error", err)
			os.Exit(1)
		}
		defer func() {
			if cerr := entc.Close(); cerr != nil {
				logger.Error("close ent client", "error", cerr)
			}
		}()
	case cfg.Database.DSN != "":
		var pool *pgxpool.Pool
		entc, pool, err = repo.Open(ctx, repo.Config{
			DSN:             cfg.Database.DSN,
			MaxConns:        10,
			MinConns:        1,
			MaxConnLifetime: 30 * time.Minute,
			MaxConnIdleTime: 5 * time.Minute,
			DialTimeout:     3 * time.Second,
		}, logger)
		if err != nil {
			logger.Error("open db", "error", err)
			os.Exit(1)
		}
		defer func() {
			if cerr := entc.Close(); cerr != nil {
				logger.Error("close ent client", "error", cerr)
			}
		}()
		defer pool.Close()
	default:
		logger.Error("either SQLITE_PATH or DB_URL is required")
		os.Exit(1)
	}

	recognizer := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		CharWhitelist: cfg.OCR.CharWhitelist,
		PSM:           cfg.OCR.PSM,
		OEM:           cfg.OCR.OEM,
		MinTextLen:    cfg.Pipeline.MinTextLen,
	}, logger)

	cvsRepo := repo.NewCVRepository(entc, logger)
	store := repo.NewCVStore(cvsRepo, profileID)

	sess, err := session.New(session.NewFileSource(imagePath), recognizer, store, logger)
	if err != nil {
		logger.Error("open session", "path", imagePath, "error", err)
		os.Exit(1)
	}

	start := time.Now()
	err = sess.Capture(ctx, func(pct int) {
		logger.Info("recognition progress", "pct", pct)
	})
	if err != nil {
		logger.Error("capture failed", "path", imagePath, "error", err)
		sess.Discard()
		os.Exit(1)
	}

	draft := sess.Draft()
	out, _ := json.MarshalIndent(draft, "", "  ")
	fmt.Println(string(out))

	if err := sess.Goto(session.StepSummary); err != nil {
		logger.Error("goto summary", "error", err)
		os.Exit(1)
	}
	cvID, err := sess.Confirm(ctx)
	if err != nil {
		logger.Error("confirm failed", "error", err)
		os.Exit(1)
	}

	logger.Info("scan OK",
		"cv_id", cvID,
		"skills", len(draft.Skills),
		"experiences", len(draft.Experiences),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

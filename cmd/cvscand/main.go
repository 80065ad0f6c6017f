package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/scanfolio/cv-scanner/gen/proto/cvs/v1"
	"github.com/scanfolio/cv-scanner/internal/async"
	"github.com/scanfolio/cv-scanner/internal/common"
	"github.com/scanfolio/cv-scanner/internal/export"
	"github.com/scanfolio/cv-scanner/internal/ingest"
	"github.com/scanfolio/cv-scanner/internal/ocr"
	pipeline "github.com/scanfolio/cv-scanner/internal/pipeline"
	repo "github.com/scanfolio/cv-scanner/internal/repository"
	svc "github.com/scanfolio/cv-scanner/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("missing DB_URL environment variable")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(svc.RequestIDInterceptor(logger)),
	)

	profilesRepo := repo.NewProfileRepository(entc, logger)
	cvsRepo := repo.NewCVRepository(entc, logger)
	filesRepo := repo.NewScanFileRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)

	recognizer := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		CharWhitelist: cfg.OCR.CharWhitelist,
		PSM:           cfg.OCR.PSM,
		OEM:           cfg.OCR.OEM,
		MinTextLen:    cfg.Pipeline.MinTextLen,
	}, logger)

	ocrStage := pipeline.NewOCRStage(filesRepo, jobsRepo, recognizer, logger)
	parseStage := pipeline.NewParseStage(logger, pipeline.Config{
		MinConfidence: cfg.Pipeline.MinConfidence,
	}, jobsRepo, cvsRepo)
	proc := pipeline.NewProcessor(logger, ocrStage, parseStage)

	queue := async.NewProcessorQueue(proc, logger,
		async.WithWorkers(6),
		async.WithQueueSize(512),
		async.WithProcessTimeout(3*time.Minute),
	)

	ingestor := ingest.NewFSIngestor(profilesRepo, filesRepo, logger)

	v1.RegisterProfilesServiceServer(grpcServer, svc.NewProfileServer(profilesRepo, logger))
	v1.RegisterCVsServiceServer(grpcServer, svc.NewCVService(cvsRepo, logger))
	v1.RegisterIngestionServiceServer(grpcServer, svc.NewIngestionService(ingestor, proc, profilesRepo, logger))
	v1.RegisterExportServiceServer(grpcServer, svc.NewExportServer(export.NewService(entc, cvsRepo, logger), logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	// Optional drop-folder watcher: new CV images under WATCH_ROOT are
	// ingested for WATCH_PROFILE_ID and queued for processing.
	if root := cfg.Pipeline.WatchRoot; root != "" {
		profileID, err := uuid.Parse(os.Getenv("WATCH_PROFILE_ID"))
		if err != nil {
			logger.Error("WATCH_ROOT set but WATCH_PROFILE_ID is not a UUID", "error", err)
			os.Exit(1)
		}
		evCh, errCh, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:    []string{root},
			Debounce: 500 * time.Millisecond,
		})
		if err != nil {
			logger.Error("failed to start watcher", "root", root, "error", err)
			os.Exit(1)
		}
		go func() {
			for path := range evCh {
				r, err := ingestor.IngestPath(ctx, profileID, path)
				if err != nil {
					logger.Error("watch.ingest.failed", "path", path, "error", err)
					continue
				}
				fileID, err := uuid.Parse(r.FileID)
				if err != nil {
					continue
				}
				if err := queue.Enqueue(ctx, async.Job{FileID: fileID}); err != nil {
					logger.Error("watch.enqueue.failed", "file_id", r.FileID, "error", err)
				}
			}
		}()
		go func() {
			for err := range errCh {
				logger.Error("watch.error", "error", err)
			}
		}()
		logger.Info("watching drop folder", "root", root, "profile_id", profileID)
	}

	logger.Info("cv-scanner listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
}

package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/scanfolio/cv-scanner/internal/common"
)

// RequestIDInterceptor tags every unary call with a request ID and logs
// the method outcome. Handlers can read the ID back through
// common.RequestIDFromContext.
func RequestIDInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		ctx = common.WithRequestID(ctx, uuid.NewString())

		start := time.Now()
		resp, err := handler(ctx, req)
		elapsed := time.Since(start)

		if err != nil {
			logger.Warn("rpc failed",
				"method", info.FullMethod,
				"request_id", common.RequestIDFromContext(ctx),
				"elapsed_ms", elapsed.Milliseconds(),
				"error", err)
			return resp, err
		}

		logger.Debug("rpc ok",
			"method", info.FullMethod,
			"request_id", common.RequestIDFromContext(ctx),
			"elapsed_ms", elapsed.Milliseconds())
		return resp, nil
	}
}

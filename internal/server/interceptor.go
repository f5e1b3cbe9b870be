package server

import (
	"context"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/pipetrak/pipetrak/internal/common"
)

// UnaryRequestInterceptor tags every call with a request ID and logs its
// outcome. The request ID travels in the context so deeper layers can log
// against it.
func UnaryRequestInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := uuid.NewString()
		ctx = common.WithRequestID(ctx, requestID)

		start := time.Now()
		resp, err := handler(ctx, req)
		elapsed := time.Since(start)

		if err != nil {
			logger.Warn("rpc failed",
				"method", info.FullMethod,
				"request_id", requestID,
				"code", status.Code(err).String(),
				"duration_ms", elapsed.Milliseconds(),
				"error", err,
			)
			return resp, err
		}
		logger.Info("rpc completed",
			"method", info.FullMethod,
			"request_id", requestID,
			"duration_ms", elapsed.Milliseconds(),
		)
		return resp, nil
	}
}

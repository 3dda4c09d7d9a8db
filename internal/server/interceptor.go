package server

import (
	"context"

	"golang.org/x/sync/semaphore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// limitConcurrency admits at most limit calls at once. Excess calls queue on
// the semaphore instead of spawning unbounded work; a caller deadline that
// expires while queued surfaces as the transport's context error.
func limitConcurrency(limit int64) grpc.UnaryServerInterceptor {
	sem := semaphore.NewWeighted(limit)

	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, status.FromContextError(ctx.Err()).Err()
		}
		defer sem.Release(1)

		return handler(ctx, req)
	}
}

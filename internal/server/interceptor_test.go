package server

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestLimitConcurrency_BoundsParallelism(t *testing.T) {
	const limit = 4
	const calls = 20

	interceptor := limitConcurrency(limit)

	var current, peak atomic.Int64
	handler := func(ctx context.Context, req any) (any, error) {
		c := current.Add(1)
		for {
			p := peak.Load()
			if c <= p || peak.CompareAndSwap(p, c) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		current.Add(-1)
		return "ok", nil
	}

	var wg sync.WaitGroup
	errs := make(chan error, calls)
	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{}, handler)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	require.LessOrEqual(t, peak.Load(), int64(limit))
}

func TestLimitConcurrency_DeadlineWhileQueued(t *testing.T) {
	interceptor := limitConcurrency(1)

	started := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_, _ = interceptor(context.Background(), nil, &grpc.UnaryServerInfo{},
			func(ctx context.Context, req any) (any, error) {
				close(started)
				<-release
				return nil, nil
			})
	}()
	<-started
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{},
		func(ctx context.Context, req any) (any, error) {
			t.Fatal("handler must not run after the deadline expired in the queue")
			return nil, nil
		})
	require.Equal(t, codes.DeadlineExceeded, status.Code(err))
}

package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oggyb/campus-connect/internal/metrics"
)

// recoverUnary turns a handler panic into codes.Internal and reports it.
func recoverUnary(log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = panicked(log, info.FullMethod, r)
			}
		}()
		return handler(ctx, req)
	}
}

func recoverStream(log *slog.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = panicked(log, info.FullMethod, r)
			}
		}()
		return handler(srv, ss)
	}
}

func panicked(log *slog.Logger, method string, r any) error {
	sentry.CurrentHub().Recover(r)
	log.Error("panic in handler", "method", method, "panic", fmt.Sprint(r))
	return status.Error(codes.Internal, "internal error")
}

// observeUnary logs and counts every RPC once it completes.
func observeUnary(log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		observe(log, info.FullMethod, start, err)
		return resp, err
	}
}

func observeStream(log *slog.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		err := handler(srv, ss)
		observe(log, info.FullMethod, start, err)
		return err
	}
}

func observe(log *slog.Logger, method string, start time.Time, err error) {
	code := status.Code(err)
	elapsed := time.Since(start)
	metrics.RPCs.WithLabelValues(method, code.String()).Inc()
	metrics.RPCDuration.WithLabelValues(method).Observe(elapsed.Seconds())

	switch code {
	case codes.OK:
		log.Debug("rpc", "method", method, "duration", elapsed)
	case codes.Internal, codes.Unknown, codes.DataLoss:
		log.Error("rpc failed", "method", method, "code", code.String(), "duration", elapsed, "err", err)
	default:
		log.Info("rpc rejected", "method", method, "code", code.String(), "duration", elapsed)
	}
}

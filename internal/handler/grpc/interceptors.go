package grpc

import (
	"context"
	"regexp"
	"time"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// traceIDKey is the metadata key carrying the caller's trace id.
const traceIDKey = "x-trace-id"

var traceIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// withTraceLogger returns ctx carrying a child logger with the trace id taken
// from the incoming metadata, or a fresh one.
func (h *Handler) withTraceLogger(ctx context.Context) (context.Context, *logger.Logger) {
	traceID := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if !traceIDPattern.MatchString(traceID) {
		traceID = uuid.NewString()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})

	return l.WithContext(ctx), l
}

func (h *Handler) unaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	ctx, l := h.withTraceLogger(ctx)

	resp, err := handler(ctx, req)

	l.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Msg("gRPC call")

	return resp, err
}

// loggedStream overrides the stream context with the request logger.
type loggedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *loggedStream) Context() context.Context {
	return s.ctx
}

func (h *Handler) streamLogging(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	start := time.Now()
	ctx, l := h.withTraceLogger(ss.Context())

	err := handler(srv, &loggedStream{ServerStream: ss, ctx: ctx})

	l.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Msg("gRPC stream")

	return err
}

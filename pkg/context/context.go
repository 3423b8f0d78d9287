package context

import (
	"context"
)

type errorContextType struct{}

var ErrorContextKey errorContextType

func WithErrorContextValue(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, ErrorContextKey, err)
}

func ErrorFromContext(ctx context.Context) error {
	if ctx == nil {
		return nil
	}

	err, _ := ctx.Value(ErrorContextKey).(error)
	return err
}

type requestIdContextType struct{}

var RequestIdContextKey requestIdContextType

func WithRequestIdContextValue(ctx context.Context, requestId string) context.Context {
	return context.WithValue(ctx, RequestIdContextKey, requestId)
}

func RequestIdFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	requestId, _ := ctx.Value(RequestIdContextKey).(string)
	return requestId
}

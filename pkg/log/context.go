package log

import (
	"context"
	"maps"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	fieldsKey
)

// WithRequestID adds a request ID to the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the request ID from context.
// Returns empty string if not found or context is nil.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithFields adds structured fields to the context, merged over any
// fields already present. The parent's map is never modified.
func WithFields(ctx context.Context, keysAndValues ...any) context.Context {
	fields := maps.Clone(FieldsFromContext(ctx))
	if fields == nil {
		fields = make(map[string]any, len(keysAndValues)/2)
	}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			fields[key] = keysAndValues[i+1]
		}
	}
	return context.WithValue(ctx, fieldsKey, fields)
}

// WithPost tags every entry logged with ctx with the post being processed.
func WithPost(ctx context.Context, username, tweetID string) context.Context {
	return WithFields(ctx, "username", username, "tweet_id", tweetID)
}

// FieldsFromContext extracts structured fields from context.
// Returns nil if no fields are set.
func FieldsFromContext(ctx context.Context) map[string]any {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(fieldsKey).(map[string]any)
	return fields
}

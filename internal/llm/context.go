package llm

import "context"

type ctxKey int

const purposeKey ctxKey = iota

// WithPurpose labels the context with what the request is for (e.g.
// "exam-gen"). The logging decorator stores the label with the event so
// `examly llm list` can be filtered by it.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom returns the purpose label, or "unknown" for unlabeled requests.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

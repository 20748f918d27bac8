package llm

import "context"

// purposeKey carries the label under which a request is logged, for
// example "doubt" when the tutor answers a question or "insight" when
// the result screen asks for an exam summary.
type purposeKey struct{}

// WithPurpose labels the context so the logging decorator can record
// what the call was for.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom reads the label back. Calls made without a label are
// recorded as "unknown".
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok {
		return p
	}
	return "unknown"
}

package middleware

import (
	"context"
	"io"
	"net/http"

	json "github.com/goccy/go-json"

	validkit "github.com/reoring/validkit"
	"github.com/reoring/validkit/source"
)

// ctxKeyValidated is a typed context key for storing a validated T.
// Using a generic struct type ensures uniqueness per T.
type ctxKeyValidated[T any] struct{}

// ContextWithValidated attaches a validated T to the context.
func ContextWithValidated[T any](ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, ctxKeyValidated[T]{}, v)
}

// ValidatedFromContext retrieves a validated T from context.
func ValidatedFromContext[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(ctxKeyValidated[T]{}).(T)
	return v, ok
}

// DefaultOpt returns the options used at HTTP JSON boundaries when the caller
// passes none: every issue is reported so clients can fix a body in one round.
func DefaultOpt() validkit.Opt {
	return validkit.Opt{CollectErrors: true}
}

// DecodeJSON reads a JSON body from r and validates it against s.
// Decoding failures are returned as plain errors, validation failures as
// validkit.Issues.
func DecodeJSON[T any](r io.Reader, s validkit.Typed[T], opts ...validkit.Opt) (T, error) {
	if len(opts) == 0 {
		opts = []validkit.Opt{DefaultOpt()}
	}
	data, err := source.ReadJSON(r)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.Validate(data, opts...)
}

// IssuePayload is the wire form of a single issue.
type IssuePayload struct {
	Path    string         `json:"path"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Hint    string         `json:"hint,omitempty"`
	Params  map[string]any `json:"params,omitempty"`
}

// ErrorPayload shapes Issues for JSON responses.
func ErrorPayload(issues validkit.Issues) map[string]any {
	out := make([]IssuePayload, len(issues))
	for i, it := range issues {
		out[i] = IssuePayload{Path: it.Path, Code: it.Code, Message: it.Message, Hint: it.Hint, Params: it.Params}
	}
	return map[string]any{"issues": out}
}

// ErrorBody returns the response body for err: the issue list for validation
// failures, {"error": ...} otherwise.
func ErrorBody(err error) map[string]any {
	if iss, ok := validkit.AsIssues(err); ok {
		return ErrorPayload(iss)
	}
	return map[string]any{"error": err.Error()}
}

// Handler validates the JSON request body against s before calling next. On
// success the validated T is stored in the request context; on failure a 400
// response carrying ErrorBody is written and next is not called.
func Handler[T any](s validkit.Typed[T], next http.Handler, opts ...validkit.Opt) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v, err := DecodeJSON(r.Body, s, opts...)
		if err != nil {
			WriteJSON(w, http.StatusBadRequest, ErrorBody(err))
			return
		}
		next.ServeHTTP(w, r.WithContext(ContextWithValidated(r.Context(), v)))
	})
}

// WriteJSON writes body as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

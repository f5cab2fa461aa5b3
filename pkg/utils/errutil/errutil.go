package errutil

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/getsentry/sentry-go"
	"github.com/immersivevr/immersive/pkg/utils/logging"
	"github.com/immersivevr/immersive/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

// ErrorResponse is the body written for every failed API request
type ErrorResponse struct {
	Message string `json:"message"`
}

// Handle logs the error with a message, reports it when error reporting is
// enabled and returns it unchanged.
func Handle(ctx context.Context, err error, msg string) error {
	if err == nil {
		return nil
	}

	logging.From(ctx).Error(msg, errorAttrs(err)...)
	report(ctx, err, nil)
	return err
}

// HandleHTTP logs the error and writes a JSON error response carrying only
// message. The error itself never reaches the client.
func HandleHTTP(ctx context.Context, w http.ResponseWriter, err error, statusCode int, message string) {
	if err == nil {
		return
	}

	attrs := append([]any{"status", statusCode}, errorAttrs(err)...)
	if statusCode >= http.StatusInternalServerError {
		logging.From(ctx).Error("HTTP error", attrs...)
		report(ctx, err, map[string]string{"status": strconv.Itoa(statusCode)})
	} else {
		logging.From(ctx).Warn("HTTP error", attrs...)
	}

	WriteMessage(ctx, w, statusCode, message)
}

// WriteMessage writes {"message": message} with statusCode
func WriteMessage(ctx context.Context, w http.ResponseWriter, statusCode int, message string) {
	data, err := json.Marshal(ErrorResponse{Message: message})
	if err != nil {
		logging.From(ctx).Error("failed to marshal error response", slog.Any("error", err))
		http.Error(w, message, statusCode)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	safe.Write(ctx, w, data)
}

func errorAttrs(err error) []any {
	var ge *goerr.Error
	if errors.As(err, &ge) {
		return []any{
			"error", err.Error(),
			"values", ge.Values(),
			"stack", ge.Stacks(),
		}
	}
	return []any{"error", err.Error()}
}

func report(ctx context.Context, err error, tags map[string]string) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	if hub.Client() == nil {
		return
	}

	hub.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		var ge *goerr.Error
		if errors.As(err, &ge) {
			for k, v := range ge.Values() {
				scope.SetTag("goerr."+k, toTag(v))
			}
		}
		hub.CaptureException(err)
	})
}

func toTag(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		data, err := json.Marshal(x)
		if err != nil {
			return ""
		}
		return string(data)
	}
}

package errutil_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/immersivevr/immersive/pkg/utils/errutil"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestHandleHTTP_WritesFixedMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	err := goerr.New("database password is hunter2", goerr.V("table", "models"))

	errutil.HandleHTTP(context.Background(), rec, err, http.StatusInternalServerError, "Failed to fetch models")

	gt.Value(t, rec.Code).Equal(http.StatusInternalServerError)
	gt.Value(t, rec.Header().Get("Content-Type")).Equal("application/json")

	var body errutil.ErrorResponse
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body)).Required()
	gt.Value(t, body.Message).Equal("Failed to fetch models")
	gt.B(t, len(rec.Body.String()) < 64).True()
}

func TestHandleHTTP_NilErrorWritesNothing(t *testing.T) {
	rec := httptest.NewRecorder()
	errutil.HandleHTTP(context.Background(), rec, nil, http.StatusNotFound, "Model not found")
	gt.Value(t, rec.Body.Len()).Equal(0)
}

func TestHandle_ReturnsSameError(t *testing.T) {
	original := errors.New("boom")
	gt.Value(t, errutil.Handle(context.Background(), original, "failed")).Equal(original)
	gt.NoError(t, errutil.Handle(context.Background(), nil, "failed"))
}

func TestWriteMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	errutil.WriteMessage(context.Background(), rec, http.StatusNotFound, "Model not found")

	gt.Value(t, rec.Code).Equal(http.StatusNotFound)
	gt.Value(t, rec.Body.String()).Equal(`{"message":"Model not found"}`)
}

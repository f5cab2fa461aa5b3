package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/immersivevr/immersive/pkg/domain/model"
	"github.com/immersivevr/immersive/pkg/usecase"
	"github.com/immersivevr/immersive/pkg/utils/errutil"
	"github.com/immersivevr/immersive/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

// Fixed client facing messages. Error details stay in the logs.
const (
	msgListFailed = "Failed to fetch models"
	msgGetFailed  = "Failed to fetch model"
	msgNotFound   = "Model not found"
)

func listModelsHandler(catalog CatalogUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := catalog.ListModels(r.Context())
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError, msgListFailed)
			return
		}
		if records == nil {
			records = []*model.ModelRecord{}
		}
		writeJSON(w, r, records, msgListFailed)
	}
}

func getModelHandler(catalog CatalogUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseModelID(w, r)
		if !ok {
			return
		}

		record, err := catalog.GetModel(r.Context(), id)
		if err != nil {
			writeLookupError(w, r, err)
			return
		}
		writeJSON(w, r, record, msgGetFailed)
	}
}

func appearanceHandler(catalog CatalogUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseModelID(w, r)
		if !ok {
			return
		}

		appearance, err := catalog.Appearance(r.Context(), id)
		if err != nil {
			writeLookupError(w, r, err)
			return
		}
		writeJSON(w, r, appearance, msgGetFailed)
	}
}

func defaultAppearanceHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, model.DefaultAppearance(), msgGetFailed)
	}
}

// parseModelID reads {id} from the path. Anything that is not an integer is
// answered as not found.
func parseModelID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w,
			goerr.Wrap(err, "invalid model id", goerr.V(usecase.ModelIDKey, raw)),
			http.StatusNotFound, msgNotFound)
		return 0, false
	}
	return id, true
}

func writeLookupError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, usecase.ErrModelNotFound) {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusNotFound, msgNotFound)
		return
	}
	errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError, msgGetFailed)
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any, failMessage string) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError, failMessage)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	safe.Write(r.Context(), w, data)
}

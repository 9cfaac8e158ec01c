package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/recipehub/recipe-hub-backend/internal/domain"
)

type detailBody struct {
	Detail string `json:"detail"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response body", "error", err)
	}
}

// writeError maps domain errors onto the API's status code taxonomy:
// 400 field validation, 401 unauthenticated, 403 forbidden, 404 missing,
// 409 conflict. Anything unrecognized is logged and reported as a 500.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var verr domain.ValidationError
	var cerr domain.ConflictError

	switch {
	case errors.As(err, &verr):
		writeJSON(ctx, w, http.StatusBadRequest, verr.Fields)
	case errors.As(err, &cerr):
		writeJSON(ctx, w, http.StatusConflict, detailBody{Detail: cerr.Detail})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(ctx, w, http.StatusNotFound, detailBody{Detail: "Not found."})
	case errors.Is(err, domain.ErrForbidden):
		writeJSON(ctx, w, http.StatusForbidden,
			detailBody{Detail: "You do not have permission to perform this action."})
	case errors.Is(err, domain.ErrAuthenticationRequired):
		writeJSON(ctx, w, http.StatusUnauthorized,
			detailBody{Detail: "Authentication credentials were not provided."})
	default:
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "request failed", "error", err)
		writeJSON(ctx, w, http.StatusInternalServerError, detailBody{Detail: "Internal server error."})
	}
}

// decodeJSON reads a request body, converting type mismatches (e.g. a
// fractional rating) into per-field validation errors.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return domain.NewFieldError(typeErr.Field, fieldTypeMessage(typeErr.Type.Kind()))
		}
		return domain.NewFieldError("non_field_errors", "Invalid JSON body.")
	}
	return nil
}

func fieldTypeMessage(kind reflect.Kind) string {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "A valid integer is required."
	default:
		return "Invalid value."
	}
}

// pathID extracts a numeric route variable. Unparseable IDs behave like
// missing objects.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, domain.ErrNotFound
	}
	return id, nil
}

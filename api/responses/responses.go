package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	pkgerrors "github.com/oumar782/Jessback/pkg/errors"
	"github.com/oumar782/Jessback/pkg/logger"
	"github.com/oumar782/Jessback/pkg/pagination"
	"github.com/oumar782/Jessback/pkg/types"
)

// WriteSuccess writes the payload as-is. Rows are returned bare; the legacy
// clients do not expect an envelope around single resources.
func WriteSuccess(w http.ResponseWriter, data any) {
	WriteSuccessStatus(w, http.StatusOK, data)
}

func WriteSuccessStatus(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, data)
}

// WriteRawJSON writes an already-encoded JSON body.
func WriteRawJSON(w http.ResponseWriter, status int, raw []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(raw); err != nil {
		log.Printf(`{"level":"error","msg":"failed to write response","err":"%v"}`, err)
	}
}

// WriteList wraps a page of rows with its pagination block.
func WriteList(w http.ResponseWriter, data any, meta pagination.Meta) {
	writeJSON(w, http.StatusOK, types.ListEnvelope{Data: data, Pagination: meta})
}

// WriteCount writes a total row count.
func WriteCount(w http.ResponseWriter, total int64) {
	writeJSON(w, http.StatusOK, types.CountEnvelope{Total: total})
}

// WriteError maps the error to its HTTP status and writes {"error": msg}.
// Message detail is suppressed for internal codes; the full chain, including
// any Postgres diagnostics, goes to the log instead.
func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())

	msg := meta.PublicMessage
	switch typed.Code() {
	case pkgerrors.CodeValidation,
		pkgerrors.CodeNotFound,
		pkgerrors.CodeConflict:
		if m := typed.Message(); m != "" {
			msg = m
		}
	}

	if logg != nil {
		dump := pkgerrors.Dump(err)

		fields := map[string]any{
			"error":         dump.TopMessage,
			"error_code":    dump.Code,
			"error_chain":   dump.Chain,
			"pg_code":       dump.PGCode,
			"pg_detail":     dump.PGDetail,
			"pg_message":    dump.PGMessage,
			"pg_table":      dump.PGTable,
			"pg_column":     dump.PGColumn,
			"pg_constraint": dump.PGConstraint,
		}

		ctx = logg.WithFields(ctx, fields)
		logg.Error(ctx, "request.error", err)
	}

	writeJSON(w, meta.HTTPStatus, types.ErrorEnvelope{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}

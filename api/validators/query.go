package validators

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	pkgerrors "github.com/oumar782/Jessback/pkg/errors"
)

func ParseQueryInt(r *http.Request, key string, defaultVal int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	return value, nil
}

// ParsePathID reads an integer path parameter; non-integer values reject with
// a validation error rather than a routing miss.
func ParsePathID(r *http.Request, key string) (int64, error) {
	raw := strings.TrimSpace(chi.URLParam(r, key))
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, key+" must be an integer").WithDetails(map[string]any{"field": key})
	}
	return value, nil
}

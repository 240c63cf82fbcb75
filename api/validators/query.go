package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/veltrade/order-records-backend/pkg/errors"
)

// ParsePathID reads a positive integer identifier from a path segment.
func ParsePathID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "order id must be a positive integer").
			WithDetails(map[string]any{"id": raw})
	}
	return id, nil
}

// ParseSortOrder normalizes the sort direction query parameter; empty input
// defaults to ascending.
func ParseSortOrder(r *http.Request, key string) (string, error) {
	raw := strings.ToLower(strings.TrimSpace(r.URL.Query().Get(key)))
	switch raw {
	case "", "asc":
		return "asc", nil
	case "desc":
		return "desc", nil
	}
	return "", pkgerrors.New(pkgerrors.CodeValidation, "sort order must be asc or desc").
		WithDetails(map[string]any{"field": key})
}

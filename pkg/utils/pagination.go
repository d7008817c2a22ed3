package utils

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"sweaty/pkg/errors"
)

const (
	DefaultLimit = 20
	MaxLimit     = 50

	// BrowseMaxLimit is the catalog's own per-request ceiling.
	BrowseMaxLimit = 500
)

// PaginationParams represents offset/limit pagination
type PaginationParams struct {
	Offset int
	Limit  int
}

// ParseLimit reads the "limit" query parameter. Missing means DefaultLimit;
// anything non-numeric or outside [1, MaxLimit] is a validation error.
func ParseLimit(c echo.Context) (int, error) {
	raw := strings.TrimSpace(c.QueryParam("limit"))
	if raw == "" {
		return DefaultLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > MaxLimit {
		return 0, errors.Validation("limit must be an integer between 1 and 50")
	}

	return limit, nil
}

// GetPaginationParams reads offset/limit for browse listings and passes them
// through unchanged. Missing values default to 0 and DefaultLimit; a negative
// offset or a limit outside [1, BrowseMaxLimit] is a validation error.
func GetPaginationParams(c echo.Context) (PaginationParams, error) {
	params := PaginationParams{Limit: DefaultLimit}

	if raw := strings.TrimSpace(c.QueryParam("offset")); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return PaginationParams{}, errors.Validation("offset must be a non-negative integer")
		}
		params.Offset = offset
	}

	if raw := strings.TrimSpace(c.QueryParam("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > BrowseMaxLimit {
			return PaginationParams{}, errors.Validation("limit must be an integer between 1 and 500")
		}
		params.Limit = limit
	}

	return params, nil
}

// SplitList parses a comma separated query parameter, dropping blanks.
func SplitList(raw string) []string {
	if raw == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

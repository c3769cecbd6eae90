package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/jitsunotes/internal/common"
	"github.com/labstack/echo/v4"
)

// pathID parses a numeric route parameter. A malformed id cannot name any
// row, so it is reported as not found.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, common.ErrorNotFound
	}
	return id, nil
}

// formFields returns the submitted form for partial updates.
func formFields(c echo.Context) (map[string][]string, error) {
	values, err := c.FormParams()
	if err != nil {
		return nil, fmt.Errorf("%w: malformed form", common.ErrorValidation)
	}
	return values, nil
}

// optionalString returns nil for a field that is absent or blank. Updates
// have no way to clear a field.
func optionalString(values map[string][]string, key string) *string {
	v, ok := values[key]
	if !ok || len(v) == 0 || v[0] == "" {
		return nil
	}
	s := v[0]
	return &s
}

// parseCheckbox accepts the browser's "on" as well as strconv booleans.
func parseCheckbox(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on":
		return true, nil
	case "", "off":
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: invalid boolean %q", common.ErrorValidation, raw)
	}
	return b, nil
}

func optionalBool(values map[string][]string, key string) (*bool, error) {
	raw := optionalString(values, key)
	if raw == nil {
		return nil, nil
	}
	b, err := parseCheckbox(*raw)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// parseOptionalID reads an id that may be left blank. Blank means none.
func parseOptionalID(raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid id %q", common.ErrorValidation, raw)
	}
	return &id, nil
}

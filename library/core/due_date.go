package core

import (
	"strings"
	"time"
)

// dueDateLayouts are tried in order. Layouts without a zone are read as UTC.
var dueDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDueDate parses an ISO 8601 due date.
func ParseDueDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, newValidationError("dueDate", value, ErrMissingDueDate)
	}

	for _, layout := range dueDateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, newValidationError("dueDate", value, ErrInvalidDueDate)
}

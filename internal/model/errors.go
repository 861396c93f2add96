package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrNoRecord = errors.New("no record")
var ErrInvalidInterval = errors.New("end date is before start date")
var ErrMalformedImport = errors.New("malformed import")

// ValidationError carries per-field messages for a rejected event. Cause,
// when set, is a sentinel such as ErrInvalidInterval.
type ValidationError struct {
	Fields map[string]string
	Cause  error
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, e.Fields[k])
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

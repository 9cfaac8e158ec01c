package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound               = errors.New("not found")
	ErrForbidden              = errors.New("forbidden")
	ErrAuthenticationRequired = errors.New("authentication required")
)

// ValidationError reports one or more per-field validation failures.
type ValidationError struct {
	Fields map[string][]string
}

func NewFieldError(field, message string) ValidationError {
	return ValidationError{Fields: map[string][]string{field: {message}}}
}

func (e ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var sb strings.Builder
	sb.WriteString("validation failed:")
	for _, field := range fields {
		fmt.Fprintf(&sb, " %s: %s;", field, strings.Join(e.Fields[field], ", "))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// ConflictError signals that a write collides with existing state, such as a
// second difficulty rating for the same (recipe, user) pair.
type ConflictError struct {
	Detail string
}

func (e ConflictError) Error() string {
	return e.Detail
}

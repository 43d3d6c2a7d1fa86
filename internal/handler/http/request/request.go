// Package request decodes and validates inbound JSON bodies and query values.
// Every failure is reported as an *entity.ValidationError so the boundary
// answers 400 before the use cases see any input.
package request

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"publications-api/internal/domain/entity"
)

// Normalizer is implemented by request DTOs that clean up their fields
// (trimming and similar) before validation.
type Normalizer interface {
	Normalize()
}

// DecodeJSON reads a single JSON object from the request body into dst.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return &entity.ValidationError{Field: "body", Message: "request body too large"}
		case errors.Is(err, io.EOF):
			return &entity.ValidationError{Field: "body", Message: "request body is empty"}
		default:
			return &entity.ValidationError{Field: "body", Message: "invalid JSON"}
		}
	}
	if dec.More() {
		return &entity.ValidationError{Field: "body", Message: "unexpected data after JSON object"}
	}
	return nil
}

// Bind decodes the body into dst, normalizes it and runs its validation rules.
func Bind(r *http.Request, dst validation.Validatable) error {
	if err := DecodeJSON(r, dst); err != nil {
		return err
	}
	if n, ok := dst.(Normalizer); ok {
		n.Normalize()
	}
	return Validate(dst)
}

// Validate runs v.Validate and converts ozzo field errors into a
// ValidationError naming the first failing field in alphabetical order.
func Validate(v validation.Validatable) error {
	err := v.Validate()
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fields := make([]string, 0, len(fieldErrs))
		for f := range fieldErrs {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		return &entity.ValidationError{Field: fields[0], Message: fieldErrs[fields[0]].Error()}
	}

	var internal validation.InternalError
	if errors.As(err, &internal) {
		return err
	}
	return &entity.ValidationError{Field: "body", Message: err.Error()}
}

// timestamp layouts accepted for ISO 8601 input; zone-less forms are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp parses an ISO 8601 date or date-time.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("must be an ISO 8601 date")
}

// IsTimestamp is an ozzo rule accepting strings ParseTimestamp understands.
// Empty values pass; combine with validation.Required when the field is mandatory.
var IsTimestamp = validation.By(func(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	_, err := ParseTimestamp(s)
	return err
})

package api

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError is returned when a provider id or model name is absent from its table.
type NotFoundError struct {
	Kind string // "provider" or "model"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// ProviderNotFound creates a NotFoundError for a provider id.
func ProviderNotFound(id string) *NotFoundError {
	return &NotFoundError{Kind: "provider", ID: id}
}

// ModelNotFound creates a NotFoundError for a model name.
func ModelNotFound(name string) *NotFoundError {
	return &NotFoundError{Kind: "model", ID: name}
}

// ViolationKind classifies a single settings violation.
type ViolationKind string

const (
	ViolationMissing ViolationKind = "missing"
	ViolationType    ViolationKind = "type"
	ViolationFormat  ViolationKind = "format"
	ViolationUnknown ViolationKind = "unknown"
)

// Violation describes one field that failed validation.
type Violation struct {
	Field   string        `json:"field"`
	Kind    ViolationKind `json:"kind"`
	Message string        `json:"message"`
}

// SchemaError carries every violation found while validating a settings object.
type SchemaError struct {
	Provider   string
	Violations []Violation
}

func (e *SchemaError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s (%s)", v.Field, v.Kind))
	}
	return fmt.Sprintf("invalid settings for %s: %s", e.Provider, strings.Join(parts, ", "))
}

// Fields maps each violated field to its message.
func (e *SchemaError) Fields() map[string]string {
	m := make(map[string]string, len(e.Violations))
	for _, v := range e.Violations {
		m[v.Field] = v.Message
	}
	return m
}

// Has reports whether field was violated with the given kind.
func (e *SchemaError) Has(field string, kind ViolationKind) bool {
	for _, v := range e.Violations {
		if v.Field == field && v.Kind == kind {
			return true
		}
	}
	return false
}

// DataIntegrityError is fatal: the registry tables are inconsistent and must not be served.
type DataIntegrityError struct {
	Problems []string
}

func (e *DataIntegrityError) Error() string {
	return "registry data integrity: " + strings.Join(e.Problems, "; ")
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}

func IsDataIntegrity(err error) bool {
	var de *DataIntegrityError
	return errors.As(err, &de)
}

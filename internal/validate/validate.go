// SPDX-License-Identifier: MIT

// Package validate provides configuration validation utilities for the chain tool.
package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Error represents a validation error
type Error struct {
	Field   string // Field name that failed validation
	Value   any    // The invalid value
	Message string // Human-readable error message
}

// Error implements the error interface
func (e Error) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// Validator accumulates validation errors and can produce a ValidationError when invalid.
type Validator struct {
	errors []Error
}

// ValidationError bundles multiple validation errors into a single error value.
type ValidationError struct {
	errors []Error
}

// New creates a new validator
func New() *Validator {
	return &Validator{
		errors: make([]Error, 0),
	}
}

// AddError adds a validation error
func (v *Validator) AddError(field, message string, value any) {
	v.errors = append(v.errors, Error{
		Field:   field,
		Value:   value,
		Message: message,
	})
}

// IsValid returns true if no errors have been accumulated
func (v *Validator) IsValid() bool {
	return len(v.errors) == 0
}

// Errors returns all accumulated validation errors
func (v *Validator) Errors() []Error {
	return v.errors
}

// Err converts the accumulated validation errors into an error value.
func (v *Validator) Err() error {
	if len(v.errors) == 0 {
		return nil
	}

	copied := make([]Error, len(v.errors))
	copy(copied, v.errors)

	return ValidationError{errors: copied}
}

// Errors returns the individual validation errors making up the validation failure.
func (e ValidationError) Errors() []Error {
	return e.errors
}

// Error implements the error interface for ValidationError.
func (e ValidationError) Error() string {
	if len(e.errors) == 0 {
		return ""
	}

	if len(e.errors) == 1 {
		return e.errors[0].Error()
	}

	msgs := make([]string, len(e.errors))
	for i, err := range e.errors {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// NotEmpty validates that a string is not empty or whitespace-only
func (v *Validator) NotEmpty(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "value cannot be empty", value)
	}
}

// Level validates that value names a supported log level
func (v *Validator) Level(field, value string) {
	if LogLevel(value).IsValid() {
		return
	}
	v.AddError(field,
		fmt.Sprintf("value must be one of %v, got %q", LogLevels, value),
		value)
}

// SnapshotPath validates the path of a snapshot file to be written.
// Empty paths are allowed (optional fields). The extension must be YAML and
// the parent directory must already exist.
func (v *Validator) SnapshotPath(field, path string) {
	if path == "" {
		return
	}

	if !hasYAMLExt(path) {
		v.AddError(field, fmt.Sprintf("must have a .yaml or .yml extension: %s", path), path)
		return
	}

	v.writableFile(field, path)
}

// TextfilePath validates the path of a metrics file in Prometheus text
// format. Empty paths are allowed. The node_exporter textfile collector only
// picks up files ending in .prom, so that extension is required.
func (v *Validator) TextfilePath(field, path string) {
	if path == "" {
		return
	}

	if strings.ToLower(filepath.Ext(path)) != ".prom" {
		v.AddError(field, fmt.Sprintf("must have a .prom extension: %s", path), path)
		return
	}

	v.writableFile(field, path)
}

// writableFile checks that path is not a directory and that its parent
// directory exists.
func (v *Validator) writableFile(field, path string) {
	cleaned := filepath.Clean(path)
	if info, err := os.Stat(cleaned); err == nil && info.IsDir() {
		v.AddError(field, fmt.Sprintf("path points to directory, expected file: %s", path), path)
		return
	}

	parent := filepath.Dir(cleaned)
	info, err := os.Stat(parent)
	if err != nil {
		v.AddError(field, fmt.Sprintf("parent directory not accessible: %v", err), path)
		return
	}
	if !info.IsDir() {
		v.AddError(field, fmt.Sprintf("parent is not a directory: %s", parent), path)
	}
}

// ExistingFile validates that path, when set, names a readable regular file
// with a YAML extension.
func (v *Validator) ExistingFile(field, path string) {
	if path == "" {
		return
	}

	if !hasYAMLExt(path) {
		v.AddError(field, fmt.Sprintf("must have a .yaml or .yml extension: %s", path), path)
		return
	}

	info, err := os.Stat(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			v.AddError(field, "file does not exist", path)
			return
		}
		v.AddError(field, fmt.Sprintf("cannot access file: %v", err), path)
		return
	}
	if !info.Mode().IsRegular() {
		v.AddError(field, "path is not a regular file", path)
	}
}

func hasYAMLExt(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

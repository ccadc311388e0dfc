package apperr

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// ConfigError reports a missing or invalid run setting. It is raised before any
// annotation is processed.
type ConfigError struct {
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return "config: " + e.Message + ": " + e.Err.Error()
	}
	return "config: " + e.Message
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func NewConfig(msg string) *ConfigError {
	return &ConfigError{Message: msg}
}

func NewConfigWrap(msg string, err error) *ConfigError {
	return &ConfigError{Message: msg, Err: err}
}

// RecordError reports a malformed input row. Line is 1-based and counts the header.
type RecordError struct {
	Line    int
	Column  string
	Message string
	Err     error
}

func (e *RecordError) Error() string {
	msg := fmt.Sprintf("line %d", e.Line)
	if e.Column != "" {
		msg += fmt.Sprintf(", column %q", e.Column)
	}
	msg += ": " + e.Message
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

func NewRecord(line int, column, msg string) *RecordError {
	return &RecordError{Line: line, Column: column, Message: msg}
}

func NewRecordWrap(line int, column, msg string, err error) *RecordError {
	return &RecordError{Line: line, Column: column, Message: msg, Err: err}
}

func IsConfig(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

func IsRecord(err error) bool {
	var re *RecordError
	return errors.As(err, &re)
}

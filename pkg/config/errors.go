package config

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a configuration could not be loaded.
type ErrorKind string

const (
	KindRead      ErrorKind = "read"
	KindParse     ErrorKind = "parse"
	KindDuplicate ErrorKind = "duplicate"
	KindInvalid   ErrorKind = "invalid"
)

// Error is returned for every configuration that cannot be turned into a Model.
type Error struct {
	Source string
	Kind   ErrorKind
	Key    string
	Err    error
}

func (e *Error) Error() string {
	msg := e.Source
	if e.Key != "" {
		msg += fmt.Sprintf(": `%s`", e.Key)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsConfigError reports whether err (or anything it wraps) is a configuration error.
func IsConfigError(err error) bool {
	var cfgErr *Error
	return errors.As(err, &cfgErr)
}

func newError(source string, kind ErrorKind, key string, err error) *Error {
	return &Error{Source: source, Kind: kind, Key: key, Err: err}
}

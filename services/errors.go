package services

import "errors"

// ErrorKind tags an AdmissionError so the HTTP layer can map it to a
// status code without string matching.
type ErrorKind string

const (
	KindInvalidInput ErrorKind = "invalid_input"
	KindConflict     ErrorKind = "conflict"
	KindPersistence  ErrorKind = "persistence_error"
)

type AdmissionError struct {
	Kind    ErrorKind
	Message string
}

func (e *AdmissionError) Error() string {
	return e.Message
}

func errInvalidInput(message string) error {
	return &AdmissionError{Kind: KindInvalidInput, Message: message}
}

func errConflict(message string) error {
	return &AdmissionError{Kind: KindConflict, Message: message}
}

func errPersistence(message string) error {
	return &AdmissionError{Kind: KindPersistence, Message: message}
}

// KindOf returns the kind of an admission error, or "" for any other
// error value.
func KindOf(err error) ErrorKind {
	var ae *AdmissionError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}

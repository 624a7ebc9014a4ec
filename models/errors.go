package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")

	// InvalidStateError is rendered with the http status code 409
	InvalidStateError = errors.New("invalid state transition")
)

// Case lifecycle related errors
var (
	ErrCaseNotFound = errors.Wrap(NotFoundError, "case not found")

	ErrCaseIdAlreadyExists = errors.Wrap(ConflictError, "a case with this id already exists")

	ErrCaseHasNoFiles = errors.Wrap(BadParameterError,
		"case has no uploaded documents to analyze")

	ErrCaseAlreadyAnalyzing = errors.Wrap(InvalidStateError,
		"analysis is already in progress for this case")

	ErrCaseTerminal = errors.Wrap(InvalidStateError,
		"case analysis already reached a terminal status")
)

package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/outfit-curator/internal/form"
	"github.com/jonathan/outfit-curator/internal/metrics"
	"github.com/jonathan/outfit-curator/internal/recommender"
)

// ErrUnsupportedMediaType indicates a submission body the server cannot decode
type ErrUnsupportedMediaType struct {
	ContentType string
}

func (e *ErrUnsupportedMediaType) Error() string {
	return "unsupported content type: " + e.ContentType
}

// ErrBadSubmission indicates a submission body that could not be parsed
type ErrBadSubmission struct {
	Cause error
}

func (e *ErrBadSubmission) Error() string {
	return "invalid submission: " + e.Cause.Error()
}

func (e *ErrBadSubmission) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		invalidInventory *form.InvalidInventoryError
		requestFailed    *recommender.RequestFailedError
		unexpected       *recommender.UnexpectedError
		mediaType        *ErrUnsupportedMediaType
		badSubmission    *ErrBadSubmission
	)

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &invalidInventory), errors.As(err, &badSubmission):
		return http.StatusBadRequest
	case errors.As(err, &mediaType):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &requestFailed), errors.As(err, &unexpected):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// submissionOutcome labels a submission for the metrics counter.
func submissionOutcome(outfitCount int, err error) string {
	var (
		invalidInventory *form.InvalidInventoryError
		requestFailed    *recommender.RequestFailedError
	)

	switch {
	case err == nil && outfitCount == 0:
		return metrics.OutcomeEmpty
	case err == nil:
		return metrics.OutcomeOutfits
	case errors.As(err, &invalidInventory):
		return metrics.OutcomeInvalidInventory
	case errors.As(err, &requestFailed):
		return metrics.OutcomeRequestFailed
	default:
		return metrics.OutcomeUnexpected
	}
}

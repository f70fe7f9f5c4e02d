package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jonathan/outfit-curator/internal/form"
	"github.com/jonathan/outfit-curator/internal/metrics"
	"github.com/jonathan/outfit-curator/internal/recommender"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil", err: nil, expected: http.StatusOK},
		{name: "invalid inventory", err: &form.InvalidInventoryError{Message: "x"}, expected: http.StatusBadRequest},
		{name: "bad submission", err: &ErrBadSubmission{Cause: errors.New("eof")}, expected: http.StatusBadRequest},
		{name: "unsupported media type", err: &ErrUnsupportedMediaType{ContentType: "text/xml"}, expected: http.StatusUnsupportedMediaType},
		{name: "request failed", err: &recommender.RequestFailedError{StatusCode: 500}, expected: http.StatusBadGateway},
		{name: "unexpected", err: &recommender.UnexpectedError{Cause: context.Canceled}, expected: http.StatusBadGateway},
		{name: "wrapped", err: fmt.Errorf("submit: %w", &recommender.RequestFailedError{StatusCode: 404}), expected: http.StatusBadGateway},
		{name: "unknown", err: assert.AnError, expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestSubmissionOutcome(t *testing.T) {
	assert.Equal(t, metrics.OutcomeEmpty, submissionOutcome(0, nil))
	assert.Equal(t, metrics.OutcomeOutfits, submissionOutcome(2, nil))
	assert.Equal(t, metrics.OutcomeInvalidInventory, submissionOutcome(0, &form.InvalidInventoryError{}))
	assert.Equal(t, metrics.OutcomeRequestFailed, submissionOutcome(0, &recommender.RequestFailedError{}))
	assert.Equal(t, metrics.OutcomeUnexpected, submissionOutcome(0, &recommender.UnexpectedError{}))
	assert.Equal(t, metrics.OutcomeUnexpected, submissionOutcome(0, assert.AnError))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "unsupported content type: text/xml", (&ErrUnsupportedMediaType{ContentType: "text/xml"}).Error())

	cause := errors.New("unexpected EOF")
	err := &ErrBadSubmission{Cause: cause}
	assert.Equal(t, "invalid submission: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, cause)
}

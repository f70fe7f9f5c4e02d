package recommender

import "fmt"

// RequestFailedError is returned when the service answers with a non-2xx status.
// Body holds the raw response text.
type RequestFailedError struct {
	StatusCode int
	Body       string
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("Request failed: %d - %s", e.StatusCode, e.Body)
}

// UnexpectedError wraps transport failures and undecodable responses.
type UnexpectedError struct {
	Cause error
}

func (e *UnexpectedError) Error() string {
	if e.Cause == nil {
		return "Unexpected error"
	}
	return fmt.Sprintf("Unexpected error: %v", e.Cause)
}

func (e *UnexpectedError) Unwrap() error {
	return e.Cause
}

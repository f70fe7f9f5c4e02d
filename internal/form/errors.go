package form

// InvalidInventoryError reports inventory text that is not a JSON array.
// No request is sent when it is returned.
type InvalidInventoryError struct {
	Message string
	Cause   error
}

func (e *InvalidInventoryError) Error() string {
	return "Invalid inventory JSON: " + e.Message
}

func (e *InvalidInventoryError) Unwrap() error {
	return e.Cause
}

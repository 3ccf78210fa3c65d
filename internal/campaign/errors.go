package campaign

import "fmt"

// DefaultSaveErrorMessage is shown when the backend gives no usable message.
const DefaultSaveErrorMessage = "Error saving template"

// APIError is a non-2xx response from the backend. Error returns the
// human-readable message only, since that is what the wizard displays.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// TransportError wraps a failure to reach the backend or read its answer.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", DefaultSaveErrorMessage, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

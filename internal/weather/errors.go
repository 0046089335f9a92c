package weather

import "net/http"

// ErrorKind classifies request-facing failures.
type ErrorKind string

const (
	// KindMissingParameter means the caller omitted a required query value.
	KindMissingParameter ErrorKind = "missing_parameter"
	// KindServerMisconfigured means the upstream credential is not set.
	KindServerMisconfigured ErrorKind = "server_misconfigured"
	// KindProviderError means the upstream was reachable but returned a
	// failure status; its message and status code are passed through.
	KindProviderError ErrorKind = "provider_error"
	// KindFetchFailed means the outbound call or the response parse blew
	// up; details are logged server-side, the caller gets an opaque 500.
	KindFetchFailed ErrorKind = "fetch_failed"
)

// Error is the typed failure the service layer returns. Handlers map it
// onto the HTTP response; Status is the code to respond with.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func errMissingParameter() *Error {
	return &Error{Kind: KindMissingParameter, Status: http.StatusBadRequest, Message: "missing query parameter"}
}

func errServerMisconfigured() *Error {
	return &Error{Kind: KindServerMisconfigured, Status: http.StatusInternalServerError, Message: "server misconfigured"}
}

func errFetchFailed() *Error {
	return &Error{Kind: KindFetchFailed, Status: http.StatusInternalServerError, Message: "failed to fetch weather data"}
}

package remote

import "fmt"

// APIError is returned when an upstream service answers with a non-success
// status. The raw body is kept so the request boundary can surface it.
type APIError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s api error: %d: %s", e.Service, e.StatusCode, e.Body)
}

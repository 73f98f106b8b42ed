package rest

import (
	"fmt"
	"strings"
)

// APIError carries a non-2xx backend response.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("api responded %d", e.Status)
	}
	return fmt.Sprintf("api responded %d: %s", e.Status, e.Body)
}

// excerpt flattens a response body into a short, single-line error detail.
func excerpt(data []byte) string {
	s := strings.Join(strings.Fields(string(data)), " ")
	const max = 200
	if len(s) > max {
		s = s[:max] + "..."
	}
	return s
}

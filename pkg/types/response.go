package types

type SuccessEnvelope struct {
	Data any `json:"data"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// ListPage wraps load-more style list payloads. NextOffset is nil when the
// final page has been reached.
type ListPage struct {
	Items      any  `json:"items"`
	NextOffset *int `json:"next_offset,omitempty"`
	Total      *int `json:"total,omitempty"`
}

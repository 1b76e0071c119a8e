package view

type Response[T any] struct {
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// CreateResponse wraps handler output in the common envelope.
func CreateResponse[T any](data T, err error, message string) Response[T] {
	r := Response[T]{
		Data:    data,
		Message: message,
	}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

package dto

// ErrorResponse is the wire shape for every failed request: a short
// error message plus optional detail for operator debugging. There is
// no partial-success shape; a request either fully succeeds or fully
// fails with this object.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// NewErrorResponse creates an error response.
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Error: message}
}

// WithDetail attaches detail text to the error response.
func (e *ErrorResponse) WithDetail(detail string) *ErrorResponse {
	e.Detail = detail
	return e
}

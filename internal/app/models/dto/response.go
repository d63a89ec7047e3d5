package dto

// SuccessResponse is a plain message payload for endpoints that have
// nothing else to return.
type SuccessResponse struct {
	Message string `json:"message"`
}

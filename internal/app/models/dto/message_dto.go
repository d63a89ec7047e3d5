package dto

// SendMessageRequest carries a new message.
type SendMessageRequest struct {
	RecipientID int64  `json:"recipientId" binding:"required"`
	Subject     string `json:"subject" binding:"required"`
	Body        string `json:"body" binding:"required"`
}

package dto

// MessageResponse is the body of every plain success or error reply.
type MessageResponse struct {
	Message string `json:"message"`
}

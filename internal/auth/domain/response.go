package domain

// AuthResponse is the uniform result of every account operation.
// Expected business conditions (wrong password, not found, forbidden)
// come back as Success=false with a human-readable message, never as a
// hard error. Infrastructure failures propagate separately.
type AuthResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *UserSummary `json:"user,omitempty"`
}

// Failure builds a failed response with the given message.
func Failure(message string) AuthResponse {
	return AuthResponse{Success: false, Message: message}
}

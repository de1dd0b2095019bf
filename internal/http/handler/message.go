package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

// Response is the error-side body. Success responses carry their payload
// flattened next to the success flag, matching the public API contract.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

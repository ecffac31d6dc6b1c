package dto

// ErrorResponse is the JSON error envelope for API routes.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

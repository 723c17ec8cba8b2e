package model

// Common Response structure for all API calls
type Response struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Fetch Success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// DefaultResponse is a generic wrapper for Huma responses
type DefaultResponse struct {
	Body Response
}

// Request carries a free-form JSON body, decoded later with mapstructure.
type Request struct {
	Body map[string]any
}

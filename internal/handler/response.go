package handler

// Response is the standard API response
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the standard API error response
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

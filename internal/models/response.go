package models

// ApiResponse is the envelope returned by every API endpoint.
type ApiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// OK builds a successful response with an optional payload.
func OK(message string, data interface{}) ApiResponse {
	return ApiResponse{Success: true, Message: message, Data: data}
}

// Fail builds an error response.
func Fail(message string, err error) ApiResponse {
	resp := ApiResponse{Success: false, Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}

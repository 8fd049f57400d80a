package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// InsufficientCreditsResponse extends the error payload with the credit
// shortfall so clients can render a top-up prompt
type InsufficientCreditsResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Required  int64  `json:"required"`
	Available int64  `json:"available"`
}

// CheckInUnavailableResponse carries when the next check-in opens
type CheckInUnavailableResponse struct {
	Code          int    `json:"code"`
	Message       string `json:"message"`
	NextAvailable string `json:"nextAvailable"`
}

package dto

// GenerateVideoRequest represents the API request for creating a generation job
type GenerateVideoRequest struct {
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl" binding:"required"`
	Prompt   string `json:"prompt" binding:"required"`
	Mood     string `json:"mood" binding:"required,oneof=happy sad epic funny calm mysterious"`
}

// GenerateVideoResponse represents the API response after submitting a generation
type GenerateVideoResponse struct {
	Job              JobResponse `json:"job"`
	CreditsRemaining int64       `json:"creditsRemaining"`
}

// JobResponse represents a generation job in API responses
type JobResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title,omitempty"`
	Status       string `json:"status"`
	Prompt       string `json:"prompt"`
	Mood         string `json:"mood"`
	VideoURL     string `json:"videoUrl,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	Error        string `json:"error,omitempty"`
	CreatedAt    string `json:"createdAt"`
	CompletedAt  string `json:"completedAt,omitempty"`
}

// JobListResponse represents a page of the user's generation jobs
type JobListResponse struct {
	Jobs []JobResponse `json:"jobs"`
}

package models

// Request bodies per endpoint. Constraints live in the binding tags and are
// enforced by gin's validator; handlers translate failures to HTTP 400.

// POST /api/v1/user
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,min=6"`
}

// POST /api/v1/login. Password length is only checked at registration.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// PATCH/PUT /api/v1/user/:id. Every field is optional; constraints apply
// only when a field is present. Unknown fields are ignored.
type UpdateUserRequest struct {
	Name     string `json:"name" binding:"omitempty,min=3,max=100"`
	Email    string `json:"email" binding:"omitempty,email,max=100"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

// POST /api/v1/summarize
type SummarizeRequest struct {
	Transcription string `json:"transcription" binding:"required,min=1"`
}

// POST /api/v1/summarize response body.
type SummaryResult struct {
	OriginalText string `json:"originalText"`
	Summary      string `json:"summary"`
}

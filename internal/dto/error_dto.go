package dto

// ErrorResponse is the uniform error body for every failed request.
type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// DetailResponse carries a short human-readable outcome for operations that
// return no entity, e.g. enroll or delete.
type DetailResponse struct {
	Detail string `json:"detail"`
}

package application

// CreateUserInput is the schema-validated payload of a create request.
type CreateUserInput struct {
	Name  string
	Email string
}

// UpdateUserInput carries the optional fields of an update request.
// The HTTP layer normalizes Email (trim + lowercase) before handing it over.
type UpdateUserInput struct {
	Name  *string
	Email *string
}

// UserResponse is the DTO shape sent across the HTTP boundary.
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

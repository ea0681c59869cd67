package router

import "github.com/google/uuid"

type CredentialsRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type SearchRequest struct {
	Prompt string `json:"prompt"`
}

type SummaryRequest struct {
	Content string `json:"content"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

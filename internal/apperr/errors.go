package apperr

import "fmt"

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// NetworkError is a failed call to an external dependency (search, page fetch, LLM, price index).
type NetworkError struct {
	Message string
	Err     error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func NewNetwork(msg string) *NetworkError {
	return &NetworkError{Message: msg}
}

func NewNetworkWrap(msg string, err error) *NetworkError {
	return &NetworkError{Message: msg, Err: err}
}

// ExtractionError means the fetched page lacks the structural markers of an article.
type ExtractionError struct {
	URL     string
	Message string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %s", e.URL, e.Message)
}

func NewExtraction(url, msg string) *ExtractionError {
	return &ExtractionError{URL: url, Message: msg}
}

// SummarizationError means the model answer could not be parsed into a summary.
type SummarizationError struct {
	Message string
	Raw     string
	Err     error
}

func (e *SummarizationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *SummarizationError) Unwrap() error {
	return e.Err
}

func NewSummarization(msg, raw string) *SummarizationError {
	return &SummarizationError{Message: msg, Raw: raw}
}

func NewSummarizationWrap(msg, raw string, err error) *SummarizationError {
	return &SummarizationError{Message: msg, Raw: raw, Err: err}
}

type DuplicateArticleError struct {
	URL string
	Err error
}

func (e *DuplicateArticleError) Error() string {
	return "article already exists: " + e.URL
}

func (e *DuplicateArticleError) Unwrap() error {
	return e.Err
}

func NewDuplicateArticle(url string, err error) *DuplicateArticleError {
	return &DuplicateArticleError{URL: url, Err: err}
}

// AuthenticationError covers bad credentials and invalid or expired session tokens.
type AuthenticationError struct {
	Message string
	Err     error
}

func (e *AuthenticationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

func NewAuthentication(msg string) *AuthenticationError {
	return &AuthenticationError{Message: msg}
}

func NewAuthenticationWrap(msg string, err error) *AuthenticationError {
	return &AuthenticationError{Message: msg, Err: err}
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFound(msg string) *NotFoundError {
	return &NotFoundError{Message: msg}
}

type ConflictError struct {
	Message string
	Err     error
}

func (e *ConflictError) Error() string {
	return e.Message
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}

func NewConflict(msg string, err error) *ConflictError {
	return &ConflictError{Message: msg, Err: err}
}

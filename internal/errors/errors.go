package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeAPI           ErrorType = "API"
	TypeInternal      ErrorType = "INTERNAL"
	TypeUpdate        ErrorType = "UPDATE"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// UserMessage returns the message shown to the user, without the type prefix
func (e *AppError) UserMessage() string {
	return e.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithMessage creates a new AppError with the message replaced
func (e *AppError) WithMessage(msg string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    msg,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Catalog errors
var (
	ErrModelNotFound = NewAppError(TypeAPI, "Model not found", nil).
				WithSuggestion("Search the catalog: toktab search <query>")

	ErrTimeout = NewAppError(TypeAPI, "Request timed out. Please try again.", nil).
			WithSuggestion("Check your network connection, or raise the timeout: toktab config show")

	ErrInvalidQuery = NewAppError(TypeAPI, "Invalid search query", nil).
			WithSuggestion("Quote multi-word queries: toktab search \"gemini 3\"")

	ErrNetwork = NewAppError(TypeAPI, "Network error", nil).
			WithSuggestion("Check your network connection and try again")

	ErrAPI = NewAppError(TypeAPI, "API error", nil)
)

// Configuration errors
var (
	ErrConfigMissing = NewAppError(TypeConfiguration, "Configuration is missing", nil).
				WithSuggestion("Run any toktab command once to create the default config")

	ErrInvalidBaseURL = NewAppError(TypeConfiguration, "Catalog base URL is not a valid URL", nil).
				WithSuggestion("Set a valid URL: toktab config set-url https://toktab.com/api")
)

// Update errors
var (
	ErrUpdateCheckFailed = NewAppError(TypeUpdate, "Failed to check for updates", nil).
		WithSuggestion("See releases at: https://github.com/tomdyson/toktab-cli/releases")
)

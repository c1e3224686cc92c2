package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableUsers         = "users"
	TableIssues        = "issues"
	TableIssueComments = "issue_comments"
	TableIssuePhotos   = "issue_photos"
	TableActivityLogs  = "activity_logs"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
)

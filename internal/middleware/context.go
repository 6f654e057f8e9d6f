package middleware

// Context keys used to store request metadata.
const (
	ContextKeyOperator  = "operator"
	ContextKeyRole      = "operator_role"
	ContextKeyRequestID = "request_id"
)

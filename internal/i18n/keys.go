package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates a body that is not valid JSON for the endpoint.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInvalidID indicates a missing or blank path id.
	ErrKeyInvalidID = "error.invalid_id"
	// ErrKeyMissingAssociationID indicates a composition call without an association id.
	ErrKeyMissingAssociationID = "error.missing_association_id"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyUpstreamUnavailable indicates the manufacturing service circuit is open.
	ErrKeyUpstreamUnavailable = "error.upstream_unavailable"
	// ErrKeyUpstreamFailure indicates the manufacturing service could not be reached or answered garbage.
	ErrKeyUpstreamFailure = "error.upstream_failure"
	// ErrKeyPlanNotReady indicates the production plan view is loading or failed.
	ErrKeyPlanNotReady = "error.plan_not_ready"
	// ErrKeyAuditDisabled indicates the audit trail is not configured.
	ErrKeyAuditDisabled = "error.audit_disabled"
)

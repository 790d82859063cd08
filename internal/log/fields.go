package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"

	FieldMemberID    = "member_id"
	FieldMemberCount = "member_count"
	FieldPolicyID    = "policy_id"
	FieldPolicyCount = "policy_count"
	FieldDebtID      = "debt_id"
	FieldTotalDebt   = "total_debt"
	FieldCurrency    = "currency"
	FieldGapCount    = "gap_count"
	FieldBackend     = "backend"
	FieldModel       = "model"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentAdvisor   = "advisor"
	ComponentRateLimit = "rate_limit"
)

// Operations defines standard operation names
const (
	OpCreate   = "create"
	OpDelete   = "delete"
	OpUpdate   = "update"
	OpAnalyze  = "analyze"
	OpExport   = "export"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)

package logging

// Standardized field names for structured logging, shared so the same
// concept always carries the same key in log output.
const (
	FieldConfigID   = "config_id"
	FieldBankID     = "bank_id"
	FieldEndpoint   = "endpoint"
	FieldField      = "field"
	FieldStatusCode = "status_code"
	FieldCount      = "count"
	FieldDraftFile  = "draft_file"
	FieldStrategy   = "strategy"
	FieldModel      = "model"
	FieldOperation  = "operation"
	FieldDuration   = "duration_ms"
)

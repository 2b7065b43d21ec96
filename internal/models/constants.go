package models

// Default AI settings applied when a configuration has no stored aiConfig,
// or when individual properties are missing from a stored one.
const (
	DefaultAIModel       = "gemini-2.0-flash"
	DefaultAITemperature = 0.2
	DefaultAIMaxTokens   = 1024
)

// DefaultAISystemPrompt is the extraction instruction sent with AI-strategy
// requests when the operator has not written their own.
const DefaultAISystemPrompt = "You extract transaction fields from bank notification emails. " +
	"Return only the requested fields as JSON."

// Merchant-duplicate review statuses
const (
	DuplicateStatusPending   = "PENDING"
	DuplicateStatusMerged    = "MERGED"
	DuplicateStatusDismissed = "DISMISSED"
)

// File permissions
const (
	PermissionDraftFile  = 0600
	PermissionReportFile = 0644
)

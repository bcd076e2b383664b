package logging

// Standardized field names for structured logging.
const (
	FieldFile        = "file_path"
	FieldBackend     = "backend"
	FieldCategory    = "category"
	FieldAmount      = "amount"
	FieldDate        = "date"
	FieldLine        = "line"
	FieldReason      = "reason"
	FieldOperation   = "operation"
	FieldStrategy    = "strategy"
	FieldCount       = "count"
	FieldDelimiter   = "delimiter"
	FieldFormat      = "format"
	FieldComponent   = "component"
	FieldDescription = "description"
	FieldAttempt     = "attempt"
	FieldModel       = "model"
)

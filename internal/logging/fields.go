package logging

// Standardized field names for structured logging. Keeping these in one
// place makes the reconciliation logs uniform and easy to filter.
const (
	FieldFile       = "file_path"
	FieldSheet      = "sheet"
	FieldRow        = "row"
	FieldCount      = "count"
	FieldAmount     = "amount"
	FieldDepositor  = "depositor"
	FieldMemberID   = "member_id"
	FieldMemberName = "member_name"
	FieldMatchType  = "match_type"
	FieldConfidence = "confidence"
	FieldStrategy   = "strategy"
	FieldFeeType    = "fee_type"
	FieldPeriod     = "period"
	FieldMonths     = "months"
	FieldStatus     = "status"
	FieldRecordID   = "record_id"
	FieldDelimiter  = "delimiter"
	FieldOutputFile = "output_file"
)

package logger

// Common structured field names used across the service.
const (
	FieldService = "service"
	FieldError   = "error"
	FieldUserID  = "user_id"
	FieldGroup   = "sambung_group"
	FieldBarcode = "barcode"
)

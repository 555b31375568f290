package compliance

// RequiredFields are the payload keys every submission must carry.
var RequiredFields = []string{
	FieldTransactionID,
	FieldAmount,
	FieldTimestamp,
	FieldStatus,
}

// ValidatePayload reports whether the payload carries all required fields.
// Presence is the only gate: no type or range checks are applied, and
// additional fields pass through untouched.
func ValidatePayload(payload map[string]any) bool {
	for _, field := range RequiredFields {
		if _, ok := payload[field]; !ok {
			return false
		}
	}
	return true
}

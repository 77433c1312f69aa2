package validator

// Validator validates a struct using its field tags.
type Validator interface {
	// Validate returns nil when data passes all tag rules, or an error
	// describing the failed fields.
	Validate(data any) error
}

package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"email":       "must be a valid email",
	"numeric":     "must be a number",
	"min":         "must have at least %s items",
	"max":         "maximum at %s characters long",
	"gt":          "must be greater than %s",
	"gte":         "must be greater than or equal to %s",
	"oneof":       "must be one of [%s]",
	"gender":      "must be one of 'male', 'female' or 'other'",
	"bill_status": "must be one of 'pending', 'paid' or 'failed'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
	"oneof": true,
}

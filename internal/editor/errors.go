package editor

import "fmt"

// Field identifies which editor field a validation error belongs to, so the
// UI can surface it next to the offending control and clear it as soon as
// the field becomes valid.
type Field string

const (
	FieldTitle     Field = "title"
	FieldDateRange Field = "dateRange"
)

// ValidationError is a field-scoped, recoverable input error. It never
// discards draft state; the caller corrects the field and revalidates.
type ValidationError struct {
	Field   Field
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates the errors of a full-draft validation pass.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	return fmt.Sprintf("%d validation errors (first: %s)", len(e), e[0].Error())
}

// ForField returns the error attached to the given field, if any.
func (e ValidationErrors) ForField(f Field) (ValidationError, bool) {
	for _, ve := range e {
		if ve.Field == f {
			return ve, true
		}
	}
	return ValidationError{}, false
}

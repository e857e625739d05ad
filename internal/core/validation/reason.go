package validation

// FailureReason is the outcome of a Validate function.
//
// The zero value None means the text passed every check.
type FailureReason int

const (
	// None indicates the text is valid.
	None FailureReason = iota
	// TooLong indicates the text exceeds the maximum length.
	TooLong
	// TooShort indicates the text is below the minimum length.
	TooShort
	// HasIllegal indicates a character outside the allowed set.
	HasIllegal
	// NoDomain indicates an email without an "@" part.
	NoDomain
	// NoMatch indicates the final pattern check failed.
	NoMatch
)

// String returns the reason name.
func (r FailureReason) String() string {
	switch r {
	case None:
		return "NONE"
	case TooLong:
		return "TOO_LONG"
	case TooShort:
		return "TOO_SHORT"
	case HasIllegal:
		return "HAS_ILLEGAL"
	case NoDomain:
		return "NO_DOMAIN"
	case NoMatch:
		return "NO_MATCH"
	default:
		return "UNKNOWN"
	}
}

// Failed reports whether r is an actual failure.
func (r FailureReason) Failed() bool {
	return r != None
}

// Field identifies the kind of text being validated.
type Field string

const (
	FieldUsername Field = "username"
	FieldPassword Field = "password"
	FieldEmail    Field = "email"
	FieldSession  Field = "session"
	FieldJSON     Field = "json"
	FieldNumber   Field = "number"
)

// Fields lists every field with a Validate function.
func Fields() []Field {
	return []Field{FieldUsername, FieldPassword, FieldEmail, FieldSession, FieldJSON, FieldNumber}
}

// Error is a validation failure for a specific field.
//
// Its message is the user-facing text from Message.
type Error struct {
	Field  Field
	Reason FailureReason
}

// Error implements the error interface.
func (e *Error) Error() string {
	return Message(e.Field, e.Reason)
}

// Check runs the Validate function for field and wraps a failure as *Error.
// It returns nil when the text is valid.
func Check(field Field, text string) error {
	reason, err := Validate(field, text)
	if err != nil {
		return err
	}
	if reason.Failed() {
		return &Error{Field: field, Reason: reason}
	}
	return nil
}

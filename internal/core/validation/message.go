package validation

// Message returns the text shown to a user whose input for field failed
// with reason. Unknown combinations fall back to a generic message.
func Message(field Field, reason FailureReason) string {
	if reason == None {
		return ""
	}

	switch field {
	case FieldUsername:
		switch reason {
		case TooLong:
			return "Your username is too long"
		case TooShort:
			return "Your username is too short"
		case HasIllegal, NoMatch:
			return "Invalid characters in username"
		}
		return "Your username is invalid"
	case FieldPassword:
		switch reason {
		case TooShort:
			return "Your password is too short"
		case NoMatch:
			return "Invalid characters in password"
		}
		return "Your password is invalid"
	case FieldEmail:
		switch reason {
		case TooLong:
			return "Your email is too long"
		case TooShort:
			return "Your email is too short"
		case HasIllegal:
			return "Invalid characters in email"
		case NoDomain:
			return "Your email needs a domain"
		case NoMatch:
			return "Invalid email address format"
		}
		return "Your email is invalid"
	case FieldSession:
		switch reason {
		case TooLong:
			return "Your session was too long"
		case TooShort:
			return "Your session was too short"
		case NoMatch:
			return "Your session was incorrect"
		}
		return "Unknown session error"
	case FieldJSON:
		switch reason {
		case TooShort:
			return "JSON returned empty"
		case NoMatch:
			return "Invalid JSON format"
		}
		return "JSON validation failure"
	case FieldNumber:
		switch reason {
		case TooLong:
			return "Your number is too long"
		case NoMatch:
			return "Not a valid number"
		}
		return "Your number is invalid"
	}

	return "Invalid " + string(field)
}

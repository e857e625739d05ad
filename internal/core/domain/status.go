package domain

import "strconv"

// Status is the application-level code carried in the "error" field of
// every service response envelope.
type Status int

const (
	StatusOK              Status = 0
	StatusSessionCreated  Status = 201
	StatusAccountCreated  Status = 202
	StatusPointsUpdated   Status = 204
	StatusUsernameUpdated Status = 205
	StatusPasswordUpdated Status = 206
	StatusEmailUpdated    Status = 207
)

// String returns a readable name for known codes and the number otherwise.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusSessionCreated:
		return "session created"
	case StatusAccountCreated:
		return "account created"
	case StatusPointsUpdated:
		return "points updated"
	case StatusUsernameUpdated:
		return "username updated"
	case StatusPasswordUpdated:
		return "password updated"
	case StatusEmailUpdated:
		return "email updated"
	default:
		return "status " + strconv.Itoa(int(s))
	}
}

// Package validation checks and normalizes user-entered text before it is
// sent to the Teeline service.
//
// Every field has a Validate function that returns the first violated
// FailureReason (None when the text is acceptable). Username, password and
// email also have a Sanitize function that narrows input on every edit
// without ever rejecting it:
//
//   - validate.go: authoritative checks, run at submission time
//   - sanitize.go: idempotent coercions, safe to run on every keystroke
//   - charset.go: character sets shared by both, so a sanitized value can
//     only fail a length check
//   - message.go: user-facing text for each field and reason
package validation

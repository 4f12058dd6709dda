package lock

import "fmt"

// Outcome is the status surfaced to the presentation layer.
type Outcome uint8

const (
	// OutcomeKeySet: the secret was derived and stored.
	OutcomeKeySet Outcome = iota
	// OutcomeMatch: the image and password reproduce the stored secret.
	OutcomeMatch
	// OutcomeMismatch: derivation succeeded but does not match. Not an
	// error; the caller presented the wrong image or password.
	OutcomeMismatch
	// OutcomeNoKey: no secret is stored, so nothing can be verified.
	OutcomeNoKey
	// OutcomeKeyRemoved: the stored secret was deleted.
	OutcomeKeyRemoved
	// OutcomeInvalid: preconditions failed, no I/O was attempted.
	OutcomeInvalid
	// OutcomeReadFailed: the selected image could not be read.
	OutcomeReadFailed
	// OutcomeStoreFailed: the secret store is unavailable or failed.
	OutcomeStoreFailed
)

// String returns the outcome name for logs.
func (o Outcome) String() string {
	switch o {
	case OutcomeKeySet:
		return "key-set"
	case OutcomeMatch:
		return "match"
	case OutcomeMismatch:
		return "mismatch"
	case OutcomeNoKey:
		return "no-key"
	case OutcomeKeyRemoved:
		return "key-removed"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeReadFailed:
		return "read-failed"
	case OutcomeStoreFailed:
		return "store-failed"
	default:
		return fmt.Sprintf("outcome(%d)", o)
	}
}

// Result is what every controller operation returns. Err carries the
// underlying cause for the failure outcomes and is nil for KeySet,
// Match, Mismatch, NoKey and KeyRemoved.
type Result struct {
	Outcome Outcome
	Err     error
}

// Message renders the user-facing status line.
func (r Result) Message() string {
	switch r.Outcome {
	case OutcomeKeySet:
		return "Key set"
	case OutcomeMatch:
		return "Unlocked"
	case OutcomeMismatch:
		return "Wrong image or password"
	case OutcomeNoKey:
		return "No key configured"
	case OutcomeKeyRemoved:
		return "Key removed"
	case OutcomeInvalid:
		return fmt.Sprintf("Invalid input: %s", r.Err)
	case OutcomeReadFailed:
		return fmt.Sprintf("Could not read image: %s", r.Err)
	case OutcomeStoreFailed:
		return fmt.Sprintf("Secret store error: %s", r.Err)
	default:
		return r.Outcome.String()
	}
}

// ValidationError reports a failed precondition: empty password or no
// image selected. No byte source or store call happens before
// preconditions pass.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

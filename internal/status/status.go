// Package status models the transient outcome message shown after a form
// submission: idle → submitting → outcome → idle after a fixed delay.
package status

import (
	"errors"
	"time"

	"github.com/theimpacts/impacts/internal/submit"
)

// State is one node of the submission status machine.
type State int

const (
	Idle State = iota
	Submitting
	Success
	ValidationError
	Conflict
	GenericError
)

var stateNames = map[State]string{
	Idle:            "idle",
	Submitting:      "submitting",
	Success:         "success",
	ValidationError: "validation_error",
	Conflict:        "conflict",
	GenericError:    "error",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}

// Terminal reports whether s is an outcome that expires back to Idle.
func (s State) Terminal() bool {
	return s == Success || s == ValidationError || s == Conflict || s == GenericError
}

// Kind identifies which form a status belongs to.
type Kind string

const (
	KindContact    Kind = "contact"
	KindNewsletter Kind = "newsletter"
)

// Timeout returns how long an outcome of this kind stays visible.
func (k Kind) Timeout() time.Duration {
	if k == KindNewsletter {
		return 4000 * time.Millisecond
	}
	return 5000 * time.Millisecond
}

// Classify maps a submission client result to its terminal state.
func Classify(err error) State {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, submit.ErrValidation):
		return ValidationError
	case errors.Is(err, submit.ErrConflict):
		return Conflict
	default:
		return GenericError
	}
}

// Message is the static, user-facing text for a state. Idle and Submitting
// have no message.
func Message(k Kind, s State) string {
	switch k {
	case KindNewsletter:
		switch s {
		case Success:
			return "Thanks for subscribing!"
		case Conflict:
			return "Already subscribed!"
		case ValidationError:
			return "Please enter your email address."
		case GenericError:
			return "Something went wrong. Try again."
		}
	default:
		switch s {
		case Success:
			return "Thank you! We'll be in touch soon."
		case ValidationError:
			return "Please fill in your name, email, service and message."
		case Conflict, GenericError:
			return "Something went wrong. Please try again."
		}
	}
	return ""
}

package status

import (
	"encoding/json"
	"time"
)

// Record is a presenter state frozen with an absolute expiry, for owners that
// cannot hold a live timer (a web session between requests).
type Record struct {
	Kind      Kind      `json:"kind"`
	State     State     `json:"state"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// NewRecord returns the terminal record for a finished submission.
func NewRecord(kind Kind, err error, now time.Time) Record {
	return Record{Kind: kind, State: Classify(err), ExpiresAt: now.Add(kind.Timeout())}
}

// At returns the state observed at now: a terminal state past its expiry
// reads as Idle.
func (r Record) At(now time.Time) State {
	if r.State.Terminal() && !now.Before(r.ExpiresAt) {
		return Idle
	}
	return r.State
}

// Remaining is how long the record's outcome stays visible after now.
func (r Record) Remaining(now time.Time) time.Duration {
	if !r.State.Terminal() {
		return 0
	}
	if d := r.ExpiresAt.Sub(now); d > 0 {
		return d
	}
	return 0
}

// Message returns the text for the state observed at now.
func (r Record) Message(now time.Time) string { return Message(r.Kind, r.At(now)) }

// Encode serializes the record for session storage.
func (r Record) Encode() string {
	b, _ := json.Marshal(r)
	return string(b)
}

// DecodeRecord parses a record written by Encode. Garbage or "" yields an
// idle record of the given kind.
func DecodeRecord(kind Kind, s string) Record {
	var r Record
	if s == "" || json.Unmarshal([]byte(s), &r) != nil || r.Kind != kind {
		return Record{Kind: kind}
	}
	return r
}

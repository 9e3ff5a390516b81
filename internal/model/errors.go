package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInfeasibleCapacity means the activities cannot seat every participant.
	ErrInfeasibleCapacity = errors.New("infeasible capacity")
	// ErrMalformedPreferences means a preference list references an activity
	// that does not exist or ranks more activities than there are.
	ErrMalformedPreferences = errors.New("malformed preferences")
)

// Diagnostic codes for data-quality problems found in the input.
const (
	CodeDuplicateIdentifier  = "duplicate_identifier"
	CodeDuplicateRank        = "duplicate_rank"
	// CodeMalformedPreferences marks a participant row that fails the run.
	CodeMalformedPreferences = "malformed_preferences"
)

// ParticipantError ties a fatal error to the participant it was found on.
type ParticipantError struct {
	ParticipantID string
	Kind          error
	Msg           string
}

func (e *ParticipantError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return fmt.Sprintf("participant %s: %s", e.ParticipantID, e.Kind.Error())
	}
	return fmt.Sprintf("participant %s: %s: %s", e.ParticipantID, e.Kind.Error(), e.Msg)
}

func (e *ParticipantError) Unwrap() error { return e.Kind }

// Malformedf builds a ParticipantError of kind ErrMalformedPreferences.
func Malformedf(participantID, format string, args ...any) error {
	return &ParticipantError{
		ParticipantID: participantID,
		Kind:          ErrMalformedPreferences,
		Msg:           fmt.Sprintf(format, args...),
	}
}
